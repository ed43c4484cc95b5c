// internal/app/features/profile/profile.go
package profile

import (
	"context"
	"net/http"

	uierrors "github.com/dalemusser/coursefaces/internal/app/features/errors"
	userstore "github.com/dalemusser/coursefaces/internal/app/store/users"
	"github.com/dalemusser/coursefaces/internal/app/system/authutil"
	"github.com/dalemusser/coursefaces/internal/app/system/authz"
	"github.com/dalemusser/coursefaces/internal/app/system/htmlsanitize"
	"github.com/dalemusser/coursefaces/internal/app/system/roster"
	"github.com/dalemusser/coursefaces/internal/app/system/timeouts"
	"github.com/dalemusser/coursefaces/internal/app/system/viewdata"
	"github.com/dalemusser/coursefaces/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// profileData is the view model for the signed-in user's own profile page.
type profileData struct {
	viewdata.BaseVM

	FullName   string
	Email      string
	RoleLabel  string
	PictureURL string

	PasswordRules string
	Error         string
	Success       string
}

// ServeProfile renders the signed-in user's profile page.
func (h *Handler) ServeProfile(w http.ResponseWriter, r *http.Request) {
	_, _, uid, ok := authz.UserCtx(r)
	if !ok {
		uierrors.RenderUnauthorized(w, r, "/login")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	u, found, err := userstore.New(h.DB).GetByID(ctx, uid)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "DB load profile user", err, "A server error occurred.", "/")
		return
	}
	if !found {
		uierrors.RenderNotFound(w, r, "User not found.", "/")
		return
	}

	data := h.newProfileData(r, u)
	if query.Get(r, "success") == "password" {
		data.Success = "Password changed."
	}

	templates.Render(w, r, "profile", data)
}

// HandleChangePassword processes the password change form.
func (h *Handler) HandleChangePassword(w http.ResponseWriter, r *http.Request) {
	_, _, uid, ok := authz.UserCtx(r)
	if !ok {
		uierrors.RenderUnauthorized(w, r, "/login")
		return
	}

	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/profile")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	usrStore := userstore.New(h.DB)
	u, found, err := usrStore.GetByID(ctx, uid)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "DB load profile user", err, "A server error occurred.", "/")
		return
	}
	if !found {
		uierrors.RenderNotFound(w, r, "User not found.", "/")
		return
	}

	current := r.FormValue("current_password")
	newPassword := r.FormValue("new_password")
	confirm := r.FormValue("confirm_password")

	if u.PasswordHash == "" || !authutil.CheckPassword(current, u.PasswordHash) {
		h.renderProfileWithError(w, r, u, "Current password is incorrect.")
		return
	}
	if err := authutil.ValidatePassword(newPassword); err != nil {
		h.renderProfileWithError(w, r, u, err.Error())
		return
	}
	if newPassword != confirm {
		h.renderProfileWithError(w, r, u, "New passwords do not match.")
		return
	}
	if authutil.CheckPassword(newPassword, u.PasswordHash) {
		h.renderProfileWithError(w, r, u, "New password cannot be the same as your current password.")
		return
	}

	hash, err := authutil.HashPassword(newPassword)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "hash password failed", err, "Failed to update password.", "/profile")
		return
	}
	if err := usrStore.UpdatePassword(ctx, uid, hash); err != nil {
		h.ErrLog.LogServerError(w, r, "update password failed", err, "Failed to update password.", "/profile")
		return
	}

	h.Log.Info("password changed", zap.Int64("user_id", uid))
	http.Redirect(w, r, "/profile?success=password", http.StatusSeeOther)
}

func (h *Handler) newProfileData(r *http.Request, u models.User) profileData {
	return profileData{
		BaseVM:        viewdata.NewBaseVM(r, "Profile", "/"),
		FullName:      htmlsanitize.Text(u.FirstName + " " + u.LastName),
		Email:         u.Email,
		RoleLabel:     roleLabel(u.Role),
		PictureURL:    roster.PhotoURL(u.ID, u.PictureRev, roster.PhotoSize),
		PasswordRules: authutil.PasswordRules(),
	}
}

func (h *Handler) renderProfileWithError(w http.ResponseWriter, r *http.Request, u models.User, msg string) {
	data := h.newProfileData(r, u)
	data.Error = msg
	templates.Render(w, r, "profile", data)
}

func roleLabel(role string) string {
	switch role {
	case "admin":
		return "Administrator"
	case "teacher":
		return "Teacher"
	case "student":
		return "Student"
	default:
		return role
	}
}
