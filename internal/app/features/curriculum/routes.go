// internal/app/features/curriculum/routes.go
package curriculum

import "github.com/go-chi/chi/v5"

// Routes returns the curriculum subrouter, mounted under /curriculum.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeList)
	r.Get("/{slug}", h.ServeModule)
	return r
}
