// internal/app/features/actexplorer/views/views.go
package actexplorer

import (
	"embed"

	"github.com/dalemusser/waffle/pantry/templates"
)

//go:embed templates/*.gohtml
var FS embed.FS

func init() {
	templates.Register(templates.Set{
		Name:     "actexplorer",
		FS:       FS,
		Patterns: []string{"templates/*.gohtml"},
	})
}
