// internal/app/features/rosterimport/routes.go
package rosterimport

import (
	"github.com/dalemusser/coursefaces/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes wires the roster import pages. Mounted at /import; admin only.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(auth.RequireSignedIn)
	r.Use(auth.RequireRole("admin"))
	r.Get("/", h.ServeImport)
	r.Post("/", h.HandleImport)
	return r
}
