// internal/app/features/actexplorer/routes.go
package actexplorer

import "github.com/go-chi/chi/v5"

// Routes returns the explorer subrouter, mounted under /act.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeOverview)
	r.Get("/search", h.ServeSearch)
	r.Get("/article/{number}", h.ServeArticle)
	return r
}
