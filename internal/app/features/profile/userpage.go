// internal/app/features/profile/userpage.go
package profile

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	uierrors "github.com/dalemusser/coursefaces/internal/app/features/errors"
	coursestore "github.com/dalemusser/coursefaces/internal/app/store/courses"
	enrolmentstore "github.com/dalemusser/coursefaces/internal/app/store/enrolments"
	groupstore "github.com/dalemusser/coursefaces/internal/app/store/groups"
	memberstore "github.com/dalemusser/coursefaces/internal/app/store/members"
	userstore "github.com/dalemusser/coursefaces/internal/app/store/users"
	"github.com/dalemusser/coursefaces/internal/app/system/authz"
	"github.com/dalemusser/coursefaces/internal/app/system/htmlsanitize"
	"github.com/dalemusser/coursefaces/internal/app/system/roster"
	"github.com/dalemusser/coursefaces/internal/app/system/timeouts"
	"github.com/dalemusser/coursefaces/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
)

// userProfileData is the view model for another user's profile card.
type userProfileData struct {
	viewdata.BaseVM

	FullName   string
	RoleLabel  string
	PictureURL string
	Email      string
	ShowEmail  bool

	CourseName string
	Groups     []string
	HasGroups  bool
}

// ServeUserProfile renders the course-scoped profile card roster faces link
// to. Students may only view classmates: both the viewer and the target must
// hold an active enrolment in the course named by the course query param.
func (h *Handler) ServeUserProfile(w http.ResponseWriter, r *http.Request) {
	role, _, uid, ok := authz.UserCtx(r)
	if !ok {
		uierrors.RenderUnauthorized(w, r, "/login")
		return
	}

	targetID, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil || targetID <= 0 {
		uierrors.RenderNotFound(w, r, "User not found.", "/")
		return
	}

	courseID, _ := strconv.ParseInt(query.Get(r, "course"), 10, 64)
	if courseID < 0 {
		courseID = 0
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	target, found, err := userstore.New(h.DB).GetByID(ctx, targetID)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "DB load user", err, "A server error occurred.", "/")
		return
	}
	if !found {
		uierrors.RenderNotFound(w, r, "User not found.", "/")
		return
	}

	allowed, err := h.mayViewUser(ctx, role, uid, targetID, courseID)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "DB check profile access", err, "A server error occurred.", "/")
		return
	}
	if !allowed {
		uierrors.RenderForbidden(w, r, "You do not have access to this profile.", "/")
		return
	}

	backURL := "/"
	data := userProfileData{
		FullName:   htmlsanitize.Text(target.FirstName + " " + target.LastName),
		RoleLabel:  roleLabel(target.Role),
		PictureURL: roster.PhotoURL(target.ID, target.PictureRev, roster.PhotoSize),
		Email:      target.Email,
		ShowEmail:  uid == targetID || role == "admin" || role == "teacher",
	}

	if courseID > 0 {
		course, found, err := coursestore.New(h.DB).GetByID(ctx, courseID)
		if err != nil {
			h.ErrLog.LogServerError(w, r, "DB load course", err, "A server error occurred.", "/")
			return
		}
		if found {
			backURL = fmt.Sprintf("/faces/show?cid=%d", course.ID)
			data.CourseName = htmlsanitize.Text(course.FullName)
			groups, err := h.courseGroupNames(ctx, targetID, courseID)
			if err != nil {
				h.ErrLog.LogServerError(w, r, "DB load user groups", err, "A server error occurred.", "/")
				return
			}
			data.Groups = groups
			data.HasGroups = len(groups) > 0
		}
	}

	data.BaseVM = viewdata.NewBaseVM(r, data.FullName, backURL)
	templates.Render(w, r, "user_profile", data)
}

// mayViewUser decides whether viewer uid may see targetID's profile card.
func (h *Handler) mayViewUser(ctx context.Context, role string, uid, targetID, courseID int64) (bool, error) {
	if uid == targetID || role == "admin" || role == "teacher" {
		return true, nil
	}
	if courseID <= 0 {
		return false, nil
	}
	enrolments := enrolmentstore.New(h.DB)
	viewerIn, err := enrolments.HasActive(ctx, courseID, uid)
	if err != nil || !viewerIn {
		return false, err
	}
	return enrolments.HasActive(ctx, courseID, targetID)
}

// courseGroupNames lists the target's group names within the course,
// sanitized for display.
func (h *Handler) courseGroupNames(ctx context.Context, userID, courseID int64) ([]string, error) {
	ids, err := memberstore.New(h.DB).GroupIDsForUser(ctx, userID, courseID)
	if err != nil {
		return nil, err
	}
	groups := groupstore.New(h.DB)
	var names []string
	for _, id := range ids {
		g, found, err := groups.GroupByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if found {
			names = append(names, htmlsanitize.Text(g.Name))
		}
	}
	return names, nil
}
