// internal/app/features/rosterimport/templates.go
package rosterimport

import (
	"embed"

	"github.com/dalemusser/waffle/pantry/templates"
)

//go:embed templates/*.gohtml
var FS embed.FS

func init() {
	templates.Register(templates.Set{
		Name:     "rosterimport",
		FS:       FS,
		Patterns: []string{"templates/*.gohtml"},
	})
}
