// internal/app/features/quiz/progress.go
package quiz

import (
	"context"
	"net/http"

	"github.com/dalemusser/govcodex/internal/app/system/learner"
	"github.com/dalemusser/govcodex/internal/app/system/timeouts"
	"github.com/dalemusser/govcodex/internal/app/system/viewdata"
	"github.com/dalemusser/govcodex/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
)

// moduleProgress is one curriculum module with the learner's standing on it.
type moduleProgress struct {
	Module    models.Module
	HasQuiz   bool
	Attempted bool
	Passed    bool
	Best      models.Attempt
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /progress – per-learner progress across the curriculum                  |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeProgress(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	mods, err := h.Modules.ListActive(ctx)
	if err != nil {
		h.Errors.LogServerError(w, r, "progress: list modules failed", err,
			"We could not load your progress right now.", "/")
		return
	}

	var rows []moduleProgress
	l, hasLearner := learner.CurrentLearner(r)
	for _, mod := range mods {
		row := moduleProgress{Module: mod}
		if _, err := h.Quizzes.GetByModuleSlug(ctx, mod.Slug); err == nil {
			row.HasQuiz = true
		}
		if hasLearner && row.HasQuiz {
			if best, err := h.Attempts.BestForModule(ctx, l.ID, mod.Slug); err == nil {
				row.Attempted = true
				row.Passed = best.Passed
				row.Best = best
			}
		}
		rows = append(rows, row)
	}

	data := struct {
		viewdata.BaseVM
		Rows []moduleProgress
	}{
		BaseVM: viewdata.NewBaseVM(r, "My Progress", "/"),
		Rows:   rows,
	}

	templates.Render(w, r, "quiz_progress", data)
}
