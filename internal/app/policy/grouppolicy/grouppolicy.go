// internal/app/policy/grouppolicy.go

// Package grouppolicy decides which groups a viewer may see inside a course.
//
// The rules mirror the host platform's separate-groups mode:
//   - a viewer with the access-all-groups capability sees every group;
//   - when the course does not run in separate-groups mode, everyone sees
//     every group;
//   - in separate-groups mode, a viewer sees only groups they belong to.
package grouppolicy

import "github.com/dalemusser/coursefaces/internal/domain/models"

// Viewer is the per-request permission scope for roster pages. It is built
// once from the session user and the viewer's memberships, then passed
// explicitly into every decision; there is no ambient request state here.
type Viewer struct {
	UserID          int64
	AccessAllGroups bool
	GroupIDs        map[int64]bool // groups the viewer belongs to in this course
}

// Member reports whether the viewer belongs to the given group.
func (v Viewer) Member(groupID int64) bool {
	return v.GroupIDs[groupID]
}

// Visible reports whether the viewer may see the group within the course.
func Visible(course models.Course, g models.Group, v Viewer) bool {
	if v.AccessAllGroups {
		return true
	}
	if course.GroupMode != models.GroupModeSeparate {
		return true
	}
	return v.Member(g.ID)
}
