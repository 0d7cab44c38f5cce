// internal/app/features/curriculum/views/views.go
package curriculum

import (
	"embed"

	"github.com/dalemusser/waffle/pantry/templates"
)

//go:embed templates/*.gohtml
var FS embed.FS

func init() {
	templates.Register(templates.Set{
		Name:     "curriculum",
		FS:       FS,
		Patterns: []string{"templates/*.gohtml"},
	})
}
