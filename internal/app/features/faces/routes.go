// internal/app/features/faces/routes.go
package faces

import (
	"github.com/dalemusser/coursefaces/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	// Everything under /faces requires authentication
	r.Group(func(pr chi.Router) {
		pr.Use(auth.RequireSignedIn)

		pr.Get("/show", h.ServeShow)
		pr.Get("/print", h.ServePrint)
	})

	return r
}
