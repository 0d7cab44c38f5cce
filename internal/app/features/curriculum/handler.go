// internal/app/features/curriculum/handler.go
package curriculum

import (
	"context"
	"html/template"
	"net/http"

	"github.com/dalemusser/govcodex/internal/app/features/errors"
	actindexstore "github.com/dalemusser/govcodex/internal/app/store/actindex"
	curriculumstore "github.com/dalemusser/govcodex/internal/app/store/curriculum"
	glossarystore "github.com/dalemusser/govcodex/internal/app/store/glossary"
	quizstore "github.com/dalemusser/govcodex/internal/app/store/quizzes"
	"github.com/dalemusser/govcodex/internal/app/system/htmlsanitize"
	"github.com/dalemusser/govcodex/internal/app/system/timeouts"
	"github.com/dalemusser/govcodex/internal/app/system/viewdata"
	"github.com/dalemusser/govcodex/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves the learning-module pages.
type Handler struct {
	Modules  *curriculumstore.Store
	Articles *actindexstore.Store
	Terms    *glossarystore.Store
	Quizzes  *quizstore.Store
	Errors   *errors.ErrorLogger
	Log      *zap.Logger
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Modules:  curriculumstore.New(db),
		Articles: actindexstore.New(db),
		Terms:    glossarystore.New(db),
		Quizzes:  quizstore.New(db),
		Errors:   errors.NewErrorLogger(logger),
		Log:      logger,
	}
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /curriculum – module list                                               |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	mods, err := h.Modules.ListActive(ctx)
	if err != nil {
		h.Errors.LogServerError(w, r, "curriculum: list modules failed", err,
			"We could not load the curriculum right now.", "/")
		return
	}

	data := struct {
		viewdata.BaseVM
		Modules []models.Module
	}{
		BaseVM:  viewdata.NewBaseVM(r, "Curriculum", "/"),
		Modules: mods,
	}

	templates.Render(w, r, "curriculum_list", data)
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /curriculum/{slug} – single module                                      |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeModule(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	slug := chi.URLParam(r, "slug")
	mod, err := h.Modules.GetBySlug(ctx, slug)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			h.Errors.LogNotFound(w, r, "curriculum: module not found",
				"That module does not exist.", "/curriculum")
			return
		}
		h.Errors.LogServerError(w, r, "curriculum: get module failed", err,
			"We could not load that module right now.", "/curriculum")
		return
	}
	if !mod.IsActive() {
		h.Errors.LogNotFound(w, r, "curriculum: module not published",
			"That module is not available yet.", "/curriculum")
		return
	}

	// Module bodies are authored content; sanitize anyway so a bad seed
	// file cannot inject script.
	body := htmlsanitize.SanitizeHTML(mod.BodyHTML)

	articles := h.referencedArticles(ctx, mod)
	terms := h.referencedTerms(ctx, mod)

	_, quizErr := h.Quizzes.GetByModuleSlug(ctx, mod.Slug)
	if quizErr != nil && quizErr != mongo.ErrNoDocuments {
		h.Log.Warn("curriculum: quiz lookup failed",
			zap.String("module", mod.Slug), zap.Error(quizErr))
	}

	data := struct {
		viewdata.BaseVM
		Module   models.Module
		Body     template.HTML
		Articles []models.Article
		Terms    []models.Term
		HasQuiz  bool
	}{
		BaseVM:   viewdata.NewBaseVM(r, mod.Title, "/curriculum"),
		Module:   mod,
		Body:     body,
		Articles: articles,
		Terms:    terms,
		HasQuiz:  quizErr == nil,
	}

	templates.Render(w, r, "curriculum_module", data)
}

// referencedArticles resolves the module's article references, skipping
// numbers that don't resolve rather than failing the page.
func (h *Handler) referencedArticles(ctx context.Context, mod models.Module) []models.Article {
	var out []models.Article
	for _, num := range mod.ArticleRefs {
		art, err := h.Articles.GetByNumber(ctx, num)
		if err != nil {
			if err != mongo.ErrNoDocuments {
				h.Log.Warn("curriculum: article lookup failed",
					zap.String("number", num), zap.Error(err))
			}
			continue
		}
		out = append(out, art)
	}
	return out
}

func (h *Handler) referencedTerms(ctx context.Context, mod models.Module) []models.Term {
	var out []models.Term
	for _, slug := range mod.TermRefs {
		term, err := h.Terms.GetBySlug(ctx, slug)
		if err != nil {
			if err != mongo.ErrNoDocuments {
				h.Log.Warn("curriculum: term lookup failed",
					zap.String("term", slug), zap.Error(err))
			}
			continue
		}
		out = append(out, term)
	}
	return out
}
