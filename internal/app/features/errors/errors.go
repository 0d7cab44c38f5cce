// internal/app/features/errors/errors.go
package errors

import (
	"net/http"

	"github.com/dalemusser/govcodex/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
)

// pageData is the basic view model for error pages.
type pageData struct {
	viewdata.BaseVM
	Message string
}

// Handler is the errors feature handler.
// No DB needed; it just renders templates.
type Handler struct{}

// NewHandler constructs an errors Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// NotFound renders a friendly "not found" page.
// Also used as the router's catch-all.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	RenderNotFound(w, r, "That page does not exist.", "/")
}

// RenderNotFound shows a friendly 404 page with a message.
func RenderNotFound(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	if backURL == "" {
		backURL = "/"
	}
	data := pageData{
		BaseVM:  viewdata.NewBaseVM(r, "Not found", backURL),
		Message: msg,
	}

	w.WriteHeader(http.StatusNotFound)
	templates.Render(w, r, "error_not_found", data)
}

// RenderServerError shows a friendly 500 page with a message.
// The underlying error is logged by ErrorLogger, never shown to the client.
func RenderServerError(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	if backURL == "" {
		backURL = "/"
	}
	data := pageData{
		BaseVM:  viewdata.NewBaseVM(r, "Something went wrong", backURL),
		Message: msg,
	}

	w.WriteHeader(http.StatusInternalServerError)
	templates.Render(w, r, "error_server", data)
}

// RenderBadRequest shows a friendly 400 page with a message.
func RenderBadRequest(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	if backURL == "" {
		backURL = "/"
	}
	data := pageData{
		BaseVM:  viewdata.NewBaseVM(r, "Invalid request", backURL),
		Message: msg,
	}

	w.WriteHeader(http.StatusBadRequest)
	templates.Render(w, r, "error_bad_request", data)
}
