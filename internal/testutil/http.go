package testutil

import (
	"net/http"
	"net/http/httptest"
	"strconv"

	"github.com/dalemusser/coursefaces/internal/app/system/auth"
)

// TestUser represents user data for testing HTTP handlers.
type TestUser struct {
	ID    int64
	Name  string
	Email string
	Role  string
}

// AdminUser returns a TestUser with admin role.
func AdminUser() TestUser {
	return TestUser{
		ID:    9001,
		Name:  "Test Admin",
		Email: "admin@test.com",
		Role:  "admin",
	}
}

// TeacherUser returns a TestUser with teacher role.
func TeacherUser(id int64) TestUser {
	return TestUser{
		ID:    id,
		Name:  "Test Teacher",
		Email: "teacher@test.com",
		Role:  "teacher",
	}
}

// StudentUser returns a TestUser with student role.
func StudentUser(id int64) TestUser {
	return TestUser{
		ID:    id,
		Name:  "Test Student",
		Email: "student@test.com",
		Role:  "student",
	}
}

// WithUser adds a user to the request context for testing authenticated handlers.
// This bypasses the session middleware and injects the user directly.
func WithUser(r *http.Request, user TestUser) *http.Request {
	sessionUser := &auth.SessionUser{
		ID:    strconv.FormatInt(user.ID, 10),
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
	}
	return auth.WithTestUser(r, sessionUser)
}

// NewRequest creates an HTTP request for testing.
func NewRequest(method, target string) *http.Request {
	return httptest.NewRequest(method, target, nil)
}
