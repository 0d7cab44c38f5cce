// internal/app/features/glossary/views/views.go
package glossary

import (
	"embed"

	"github.com/dalemusser/waffle/pantry/templates"
)

//go:embed templates/*.gohtml
var FS embed.FS

func init() {
	templates.Register(templates.Set{
		Name:     "glossary",
		FS:       FS,
		Patterns: []string{"templates/*.gohtml"},
	})
}
