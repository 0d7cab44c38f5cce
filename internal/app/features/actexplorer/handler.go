// internal/app/features/actexplorer/handler.go
package actexplorer

import (
	"context"
	"net/http"
	"strings"

	"github.com/dalemusser/govcodex/internal/app/features/errors"
	actindexstore "github.com/dalemusser/govcodex/internal/app/store/actindex"
	curriculumstore "github.com/dalemusser/govcodex/internal/app/store/curriculum"
	"github.com/dalemusser/govcodex/internal/app/system/timeouts"
	"github.com/dalemusser/govcodex/internal/app/system/viewdata"
	"github.com/dalemusser/govcodex/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves the AI Act explorer: the tier overview, single articles,
// and search across the article index.
type Handler struct {
	Articles *actindexstore.Store
	Modules  *curriculumstore.Store
	Errors   *errors.ErrorLogger
	Log      *zap.Logger
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Articles: actindexstore.New(db),
		Modules:  curriculumstore.New(db),
		Errors:   errors.NewErrorLogger(logger),
		Log:      logger,
	}
}

// tierGroup is one tier's slice of the overview page.
type tierGroup struct {
	Tier     string
	Label    string
	Articles []models.Article
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /act – overview grouped by risk tier                                    |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeOverview(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	groups := make([]tierGroup, 0, len(models.RiskTiers))
	for _, tier := range models.RiskTiers {
		arts, err := h.Articles.ListByTier(ctx, tier)
		if err != nil {
			h.Errors.LogServerError(w, r, "actexplorer: list tier failed", err,
				"We could not load the AI Act index right now.", "/")
			return
		}
		groups = append(groups, tierGroup{
			Tier:     tier,
			Label:    models.RiskTierLabel(tier),
			Articles: arts,
		})
	}

	data := struct {
		viewdata.BaseVM
		Groups []tierGroup
	}{
		BaseVM: viewdata.NewBaseVM(r, "AI Act Explorer", "/"),
		Groups: groups,
	}

	templates.Render(w, r, "act_overview", data)
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /act/article/{number} – single article                                  |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeArticle(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	number := chi.URLParam(r, "number")
	art, err := h.Articles.GetByNumber(ctx, number)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			h.Errors.LogNotFound(w, r, "actexplorer: article not found",
				"That article is not in the index.", "/act")
			return
		}
		h.Errors.LogServerError(w, r, "actexplorer: get article failed", err,
			"We could not load that article right now.", "/act")
		return
	}

	modules := h.coveringModules(ctx, art.Number)

	data := struct {
		viewdata.BaseVM
		Article   models.Article
		TierLabel string
		Modules   []models.Module
	}{
		BaseVM:    viewdata.NewBaseVM(r, "Article "+art.Number, "/act"),
		Article:   art,
		TierLabel: models.RiskTierLabel(art.RiskTier),
		Modules:   modules,
	}

	templates.Render(w, r, "act_article", data)
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /act/search?q= – search the index                                       |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeSearch(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	query := strings.TrimSpace(r.URL.Query().Get("q"))

	var results []models.Article
	if query != "" {
		var err error
		results, err = h.Articles.Search(ctx, query)
		if err != nil {
			h.Errors.LogServerError(w, r, "actexplorer: search failed", err,
				"Search is unavailable right now.", "/act")
			return
		}
	}

	data := struct {
		viewdata.BaseVM
		Query   string
		Results []models.Article
	}{
		BaseVM:  viewdata.NewBaseVM(r, "Search the AI Act", "/act"),
		Query:   query,
		Results: results,
	}

	templates.Render(w, r, "act_search", data)
}

// coveringModules finds active curriculum modules that reference the given
// article number. Failures degrade to an empty list.
func (h *Handler) coveringModules(ctx context.Context, number string) []models.Module {
	mods, err := h.Modules.ListActive(ctx)
	if err != nil {
		h.Log.Warn("actexplorer: list modules failed", zap.Error(err))
		return nil
	}
	var out []models.Module
	for _, mod := range mods {
		for _, ref := range mod.ArticleRefs {
			if ref == number {
				out = append(out, mod)
				break
			}
		}
	}
	return out
}
