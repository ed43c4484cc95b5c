// Package groupselect validates requested group ids and builds the group
// selection catalog for the faces pages.
//
// Everything here follows a silent-filter contract: a requested id that is
// unknown, non-positive, owned by another course, or hidden from the viewer
// is dropped, never reported as an error. Malformed selection state degrades
// to "no filter" instead of failing the request. Only data-access failures
// surface as errors.
package groupselect

import (
	"context"

	"github.com/dalemusser/coursefaces/internal/app/policy/grouppolicy"
	"github.com/dalemusser/coursefaces/internal/app/system/htmlsanitize"
	"github.com/dalemusser/coursefaces/internal/domain/models"
)

// GroupSource supplies group and grouping data for one course. The Mongo
// stores implement it; tests use in-memory fakes.
type GroupSource interface {
	// GroupByID looks up a single group. A missing id is (zero, false, nil),
	// not an error.
	GroupByID(ctx context.Context, id int64) (models.Group, bool, error)

	// CourseGroupings lists the course's groupings in presentation order.
	CourseGroupings(ctx context.Context, courseID int64) ([]models.Grouping, error)

	// GroupingGroups lists the groups belonging to one grouping.
	GroupingGroups(ctx context.Context, courseID, groupingID int64) ([]models.Group, error)

	// CourseGroups lists every group in the course.
	CourseGroups(ctx context.Context, courseID int64) ([]models.Group, error)
}

// GroupOption is one selectable group inside the catalog.
type GroupOption struct {
	ID      int64
	Name    string
	Checked bool
}

// GroupingView is one catalog entry: a grouping and its visible groups.
// The synthetic "ungrouped" bucket uses models.UngroupedID and IsUngrouped.
type GroupingView struct {
	ID          int64
	Name        string
	Groups      []GroupOption
	IsUngrouped bool
}

// Selection is the resolved group selection for one request.
type Selection struct {
	Groupings    []GroupingView
	HasGroupings bool

	// Selected holds the validated groups in first-request order; sections
	// on the faces pages follow this order.
	Selected    []models.Group
	SelectedIDs []int64

	selected map[int64]bool
}

// IsSelected reports whether the group id survived validation.
func (s Selection) IsSelected(id int64) bool {
	return s.selected[id]
}

// ValidateGroup checks one requested group id against the course and the
// viewer's visibility. It returns the group and true only when the id is
// positive, the group exists, belongs to the given course, and is visible to
// the viewer. Every other case is a silent miss, not a fault.
func ValidateGroup(ctx context.Context, src GroupSource, course models.Course, viewer grouppolicy.Viewer, groupID int64) (models.Group, bool, error) {
	if groupID <= 0 {
		return models.Group{}, false, nil
	}
	g, found, err := src.GroupByID(ctx, groupID)
	if err != nil {
		return models.Group{}, false, err
	}
	if !found {
		return models.Group{}, false, nil
	}
	// Request parameters can carry any id; a group from another course is
	// treated exactly like a missing one.
	if g.CourseID != course.ID {
		return models.Group{}, false, nil
	}
	if !grouppolicy.Visible(course, g, viewer) {
		return models.Group{}, false, nil
	}
	return g, true, nil
}

// Prepare resolves the requested ids into a validated selection and builds
// the full catalog of selectable groups organized by grouping.
//
// Requested ids are deduplicated (first occurrence wins) and validated via
// ValidateGroup; failures are dropped silently. The catalog visits groupings
// in source order, omits any grouping with no visible groups, and appends a
// synthetic "ungrouped" bucket for visible groups that belong to no grouping.
// Given unchanged underlying data the result is deterministic.
func Prepare(ctx context.Context, src GroupSource, course models.Course, viewer grouppolicy.Viewer, requestedIDs []int64) (Selection, error) {
	sel := Selection{selected: make(map[int64]bool)}

	seen := make(map[int64]bool, len(requestedIDs))
	for _, id := range requestedIDs {
		if seen[id] {
			continue
		}
		seen[id] = true

		g, ok, err := ValidateGroup(ctx, src, course, viewer, id)
		if err != nil {
			return Selection{}, err
		}
		if !ok {
			continue
		}
		sel.Selected = append(sel.Selected, g)
		sel.SelectedIDs = append(sel.SelectedIDs, g.ID)
		sel.selected[g.ID] = true
	}

	usedGroupIDs := make(map[int64]bool)

	groupings, err := src.CourseGroupings(ctx, course.ID)
	if err != nil {
		return Selection{}, err
	}
	for _, grouping := range groupings {
		groups, err := src.GroupingGroups(ctx, course.ID, grouping.ID)
		if err != nil {
			return Selection{}, err
		}
		var options []GroupOption
		for _, g := range groups {
			if !grouppolicy.Visible(course, g, viewer) {
				continue
			}
			usedGroupIDs[g.ID] = true
			options = append(options, GroupOption{
				ID:      g.ID,
				Name:    htmlsanitize.Text(g.Name),
				Checked: sel.selected[g.ID],
			})
		}
		if len(options) == 0 {
			continue
		}
		sel.Groupings = append(sel.Groupings, GroupingView{
			ID:     grouping.ID,
			Name:   htmlsanitize.Text(grouping.Name),
			Groups: options,
		})
	}

	allGroups, err := src.CourseGroups(ctx, course.ID)
	if err != nil {
		return Selection{}, err
	}
	var ungrouped []GroupOption
	for _, g := range allGroups {
		if usedGroupIDs[g.ID] {
			continue
		}
		if !grouppolicy.Visible(course, g, viewer) {
			continue
		}
		ungrouped = append(ungrouped, GroupOption{
			ID:      g.ID,
			Name:    htmlsanitize.Text(g.Name),
			Checked: sel.selected[g.ID],
		})
	}
	if len(ungrouped) > 0 {
		sel.Groupings = append(sel.Groupings, GroupingView{
			ID:          models.UngroupedID,
			Name:        "Not in a grouping",
			Groups:      ungrouped,
			IsUngrouped: true,
		})
	}

	sel.HasGroupings = len(sel.Groupings) > 0
	return sel, nil
}
