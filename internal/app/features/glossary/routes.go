// internal/app/features/glossary/routes.go
package glossary

import "github.com/go-chi/chi/v5"

// Routes returns the glossary subrouter, mounted under /glossary.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeList)
	r.Get("/{slug}", h.ServeTerm)
	return r
}
