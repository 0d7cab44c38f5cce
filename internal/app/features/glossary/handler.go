// internal/app/features/glossary/handler.go
package glossary

import (
	"context"
	"net/http"

	"github.com/dalemusser/govcodex/internal/app/features/errors"
	glossarystore "github.com/dalemusser/govcodex/internal/app/store/glossary"
	"github.com/dalemusser/govcodex/internal/app/system/timeouts"
	"github.com/dalemusser/govcodex/internal/app/system/viewdata"
	"github.com/dalemusser/govcodex/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves the governance glossary.
type Handler struct {
	Terms  *glossarystore.Store
	Errors *errors.ErrorLogger
	Log    *zap.Logger
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Terms:  glossarystore.New(db),
		Errors: errors.NewErrorLogger(logger),
		Log:    logger,
	}
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /glossary – full term list                                              |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	terms, err := h.Terms.List(ctx)
	if err != nil {
		h.Errors.LogServerError(w, r, "glossary: list terms failed", err,
			"We could not load the glossary right now.", "/")
		return
	}

	data := struct {
		viewdata.BaseVM
		Terms []models.Term
	}{
		BaseVM: viewdata.NewBaseVM(r, "Glossary", "/"),
		Terms:  terms,
	}

	templates.Render(w, r, "glossary_list", data)
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /glossary/{slug} – single term                                          |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeTerm(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	slug := chi.URLParam(r, "slug")
	term, err := h.Terms.GetBySlug(ctx, slug)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			h.Errors.LogNotFound(w, r, "glossary: term not found",
				"That term is not in the glossary.", "/glossary")
			return
		}
		h.Errors.LogServerError(w, r, "glossary: get term failed", err,
			"We could not load that term right now.", "/glossary")
		return
	}

	data := struct {
		viewdata.BaseVM
		Term models.Term
	}{
		BaseVM: viewdata.NewBaseVM(r, term.Name, "/glossary"),
		Term:   term,
	}

	templates.Render(w, r, "glossary_term", data)
}
