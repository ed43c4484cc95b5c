// internal/app/features/profile/routes.go
package profile

import (
	"github.com/dalemusser/coursefaces/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes serves the signed-in user's own profile. Mounted at /profile.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(auth.RequireSignedIn)
	r.Get("/", h.ServeProfile)
	r.Post("/password", h.HandleChangePassword)
	return r
}

// UserRoutes serves the course-scoped profile cards. Mounted at /users.
func UserRoutes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(auth.RequireSignedIn)
	r.Get("/{userID}/profile", h.ServeUserProfile)
	return r
}
