// internal/app/features/quiz/handler.go
package quiz

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/dalemusser/govcodex/internal/app/features/errors"
	attemptstore "github.com/dalemusser/govcodex/internal/app/store/attempts"
	curriculumstore "github.com/dalemusser/govcodex/internal/app/store/curriculum"
	quizstore "github.com/dalemusser/govcodex/internal/app/store/quizzes"
	"github.com/dalemusser/govcodex/internal/app/system/learner"
	"github.com/dalemusser/govcodex/internal/app/system/timeouts"
	"github.com/dalemusser/govcodex/internal/app/system/viewdata"
	"github.com/dalemusser/govcodex/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves module quizzes and the learner progress page.
type Handler struct {
	Quizzes  *quizstore.Store
	Modules  *curriculumstore.Store
	Attempts *attemptstore.Store
	Errors   *errors.ErrorLogger
	Log      *zap.Logger
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Quizzes:  quizstore.New(db),
		Modules:  curriculumstore.New(db),
		Attempts: attemptstore.New(db),
		Errors:   errors.NewErrorLogger(logger),
		Log:      logger,
	}
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /quiz/{slug} – quiz form                                                |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeQuiz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	slug := chi.URLParam(r, "slug")
	quiz, err := h.Quizzes.GetByModuleSlug(ctx, slug)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			h.Errors.LogNotFound(w, r, "quiz: quiz not found",
				"That module has no quiz.", "/curriculum")
			return
		}
		h.Errors.LogServerError(w, r, "quiz: get quiz failed", err,
			"We could not load that quiz right now.", "/curriculum")
		return
	}

	data := struct {
		viewdata.BaseVM
		Quiz models.Quiz
	}{
		BaseVM: viewdata.NewBaseVM(r, quiz.Title, "/curriculum/"+slug),
		Quiz:   quiz,
	}

	templates.Render(w, r, "quiz_form", data)
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /quiz/{slug} – grade a submission                                      |
*─────────────────────────────────────────────────────────────────────────────*/

// questionResult pairs one question with how the learner answered it.
type questionResult struct {
	Question models.QuizQuestion
	Given    int
	Correct  bool
}

func (h *Handler) ServeSubmit(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	slug := chi.URLParam(r, "slug")
	quiz, err := h.Quizzes.GetByModuleSlug(ctx, slug)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			h.Errors.LogNotFound(w, r, "quiz: quiz not found",
				"That module has no quiz.", "/curriculum")
			return
		}
		h.Errors.LogServerError(w, r, "quiz: get quiz failed", err,
			"We could not load that quiz right now.", "/curriculum")
		return
	}

	if err := r.ParseForm(); err != nil {
		h.Errors.LogBadRequest(w, r, "quiz: bad form", err,
			"We could not read your answers.", "/quiz/"+slug)
		return
	}

	answers, results, score := grade(quiz, r.PostForm.Get)
	passed := score >= quiz.PassScore

	att := models.Attempt{
		ModuleSlug: slug,
		Score:      score,
		Total:      len(quiz.Questions),
		Passed:     passed,
		Answers:    answers,
	}
	if l, ok := learner.CurrentLearner(r); ok {
		att.LearnerID = l.ID
		if _, err := h.Attempts.Insert(ctx, att); err != nil {
			// The learner still gets their result; only history is lost.
			h.Log.Error("quiz: record attempt failed",
				zap.String("module", slug), zap.Error(err))
		}
	}

	data := struct {
		viewdata.BaseVM
		Quiz    models.Quiz
		Results []questionResult
		Score   int
		Total   int
		Passed  bool
	}{
		BaseVM:  viewdata.NewBaseVM(r, quiz.Title+" – Results", "/curriculum/"+slug),
		Quiz:    quiz,
		Results: results,
		Score:   score,
		Total:   len(quiz.Questions),
		Passed:  passed,
	}

	templates.Render(w, r, "quiz_result", data)
}

// grade scores a submission. Form fields are named q0, q1, … with the chosen
// choice index as the value; missing or malformed answers count as skipped.
func grade(quiz models.Quiz, formValue func(string) string) (answers []int, results []questionResult, score int) {
	answers = make([]int, len(quiz.Questions))
	results = make([]questionResult, len(quiz.Questions))
	for i, q := range quiz.Questions {
		given := -1
		if raw := formValue(fmt.Sprintf("q%d", i)); raw != "" {
			if n, err := strconv.Atoi(raw); err == nil && n >= 0 && n < len(q.Choices) {
				given = n
			}
		}
		correct := given == q.Answer
		if correct {
			score++
		}
		answers[i] = given
		results[i] = questionResult{Question: q, Given: given, Correct: correct}
	}
	return answers, results, score
}
