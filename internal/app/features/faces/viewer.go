// internal/app/features/faces/viewer.go
package faces

import (
	"context"
	"net/http"

	"github.com/dalemusser/coursefaces/internal/app/policy/grouppolicy"
	enrolmentstore "github.com/dalemusser/coursefaces/internal/app/store/enrolments"
	memberstore "github.com/dalemusser/coursefaces/internal/app/store/members"
	"github.com/dalemusser/coursefaces/internal/app/system/authz"
	"github.com/dalemusser/coursefaces/internal/domain/models"
)

// buildViewer resolves the signed-in user into a grouppolicy.Viewer for the
// course. allowed is false when the user may not see the course roster at
// all: students need an active enrolment, admins and teachers always may.
func (h *Handler) buildViewer(ctx context.Context, r *http.Request, course models.Course) (viewer grouppolicy.Viewer, allowed bool, err error) {
	role, _, userID, ok := authz.UserCtx(r)
	if !ok {
		return grouppolicy.Viewer{}, false, nil
	}

	viewer = grouppolicy.Viewer{UserID: userID}

	switch role {
	case "admin", "teacher":
		viewer.AccessAllGroups = true
	default:
		enrolled, err := enrolmentstore.New(h.DB).HasActive(ctx, course.ID, userID)
		if err != nil {
			return grouppolicy.Viewer{}, false, err
		}
		if !enrolled {
			return grouppolicy.Viewer{}, false, nil
		}
	}

	groupIDs, err := memberstore.New(h.DB).GroupIDsForUser(ctx, userID, course.ID)
	if err != nil {
		return grouppolicy.Viewer{}, false, err
	}
	viewer.GroupIDs = make(map[int64]bool, len(groupIDs))
	for _, id := range groupIDs {
		viewer.GroupIDs[id] = true
	}

	return viewer, true, nil
}
