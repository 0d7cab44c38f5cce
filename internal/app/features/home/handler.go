// internal/app/features/home/handler.go
package home

import (
	"context"
	"net/http"

	curriculumstore "github.com/dalemusser/govcodex/internal/app/store/curriculum"
	"github.com/dalemusser/govcodex/internal/app/system/timeouts"
	"github.com/dalemusser/govcodex/internal/app/system/viewdata"
	"github.com/dalemusser/govcodex/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler holds dependencies needed to serve the landing page.
type Handler struct {
	Modules *curriculumstore.Store
	Log     *zap.Logger
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Modules: curriculumstore.New(db),
		Log:     logger,
	}
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET / – landing                                                             |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeRoot(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	// The landing page teases the first few modules; an empty or failing
	// list is not worth an error page here.
	mods, err := h.Modules.ListActive(ctx)
	if err != nil {
		h.Log.Warn("landing: list modules failed", zap.Error(err))
		mods = nil
	}
	if len(mods) > 4 {
		mods = mods[:4]
	}

	data := struct {
		viewdata.BaseVM
		Modules []models.Module
	}{
		BaseVM:  viewdata.NewBaseVM(r, "Welcome", "/"),
		Modules: mods,
	}

	templates.Render(w, r, "home", data)
}
