// internal/app/system/authz/authz.go
package authz

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/dalemusser/coursefaces/internal/app/system/auth"
)

// UserCtx returns the user's role (lowercased), name, numeric id, and a found
// flag. If no user is present in context or the user id is malformed, it
// returns "visitor", "", 0, false. This ensures callers can trust that ok=true
// means a valid, authenticated user with a valid id.
func UserCtx(r *http.Request) (role string, name string, userID int64, ok bool) {
	user, ok := auth.CurrentUser(r)
	if !ok {
		return "visitor", "", 0, false
	}
	userID, err := strconv.ParseInt(user.ID, 10, 64)
	if err != nil || userID <= 0 {
		// Malformed user id in session - fail closed.
		return "visitor", "", 0, false
	}
	return strings.ToLower(user.Role), user.Name, userID, true
}

// IsAdmin reports whether the current request's user is an admin.
func IsAdmin(r *http.Request) bool {
	role, _, _, ok := UserCtx(r)
	return ok && role == "admin"
}

// IsTeacher reports whether the current request's user is a teacher.
func IsTeacher(r *http.Request) bool {
	role, _, _, ok := UserCtx(r)
	return ok && role == "teacher"
}

// IsStudent reports whether the current request's user is a student.
func IsStudent(r *http.Request) bool {
	role, _, _, ok := UserCtx(r)
	return ok && role == "student"
}

// HasAnyRole reports whether the current request's user has any of the given
// roles. Returns false if no user is present (i.e., not signed in).
func HasAnyRole(r *http.Request, roles ...string) bool {
	role, _, _, ok := UserCtx(r)
	if !ok {
		return false
	}
	for _, want := range roles {
		if role == strings.ToLower(strings.TrimSpace(want)) {
			return true
		}
	}
	return false
}
