// internal/app/features/quiz/routes.go
package quiz

import "github.com/go-chi/chi/v5"

// Routes returns the quiz subrouter, mounted under /quiz.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/{slug}", h.ServeQuiz)
	r.Post("/{slug}", h.ServeSubmit)
	return r
}

// ProgressRoutes returns the progress subrouter, mounted under /progress.
// Progress lives with quizzes because it is derived from quiz attempts.
func ProgressRoutes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeProgress)
	return r
}
