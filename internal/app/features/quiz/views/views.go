// internal/app/features/quiz/views/views.go
package quiz

import (
	"embed"

	"github.com/dalemusser/waffle/pantry/templates"
)

//go:embed templates/*.gohtml
var FS embed.FS

func init() {
	templates.Register(templates.Set{
		Name:     "quiz",
		FS:       FS,
		Patterns: []string{"templates/*.gohtml"},
	})
}
