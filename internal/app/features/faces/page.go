// internal/app/features/faces/page.go
package faces

import (
	"context"
	"net/http"
	"time"

	uierrors "github.com/dalemusser/coursefaces/internal/app/features/errors"
	coursestore "github.com/dalemusser/coursefaces/internal/app/store/courses"
	"github.com/dalemusser/coursefaces/internal/app/system/groupselect"
	"github.com/dalemusser/coursefaces/internal/app/system/htmlsanitize"
	"github.com/dalemusser/coursefaces/internal/app/system/roster"
	"github.com/dalemusser/coursefaces/internal/app/system/timeouts"
	"github.com/dalemusser/coursefaces/internal/app/system/viewdata"
	"github.com/dalemusser/coursefaces/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/google/uuid"
)

// currentDateLayout matches the long date shown under the page heading.
const currentDateLayout = "2 January 2006"

// pageContext is everything the show and print handlers share once the
// request has been validated.
type pageContext struct {
	params    pageParams
	course    models.Course
	selection groupselect.Selection
	asm       *roster.Assembler

	// legacyGroup is the validated single-group filter, when one survived.
	legacyGroup models.Group
	legacyFound bool
}

// loadPage validates the request and resolves the course, the viewer, and
// the group selection. It renders the appropriate error page itself and
// returns false when the handler should stop.
func (h *Handler) loadPage(ctx context.Context, w http.ResponseWriter, r *http.Request) (*pageContext, bool) {
	p, ok := parseParams(r)
	if !ok {
		uierrors.RenderNotFound(w, r, "No course was specified.", "/")
		return nil, false
	}

	course, found, err := coursestore.New(h.DB).GetByID(ctx, p.CourseID)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "database error loading course", err, "A database error occurred.", "/")
		return nil, false
	}
	if !found {
		uierrors.RenderNotFound(w, r, "Course not found.", "/")
		return nil, false
	}

	viewer, allowed, err := h.buildViewer(ctx, r, course)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "database error resolving viewer", err, "A database error occurred.", "/")
		return nil, false
	}
	if !allowed {
		uierrors.RenderForbidden(w, r, "You do not have access to this course.", "/")
		return nil, false
	}

	src := newSource(h.DB)

	// The legacy single-group filter degrades to "no filter" when the id
	// fails validation. The validated group is kept so handlers never have
	// to fetch it a second time.
	var legacyGroup models.Group
	var legacyFound bool
	if p.GroupID > 0 {
		g, ok, err := groupselect.ValidateGroup(ctx, src, course, viewer, p.GroupID)
		if err != nil {
			h.ErrLog.LogServerError(w, r, "database error validating group filter", err, "A database error occurred.", "/")
			return nil, false
		}
		if ok {
			legacyGroup = g
			legacyFound = true
		} else {
			p.GroupID = 0
		}
	}

	sel, err := groupselect.Prepare(ctx, src, course, viewer, p.GroupIDs)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "database error resolving group selection", err, "A database error occurred.", "/")
		return nil, false
	}

	return &pageContext{
		params:      p,
		course:      course,
		selection:   sel,
		asm:         &roster.Assembler{Users: src},
		legacyGroup: legacyGroup,
		legacyFound: legacyFound,
	}, true
}

// buildSections assembles one roster section per selected group, in
// selection order.
func (h *Handler) buildSections(ctx context.Context, pc *pageContext) ([]sectionVM, error) {
	sections := make([]sectionVM, 0, len(pc.selection.Selected))
	for _, g := range pc.selection.Selected {
		cards, err := pc.asm.Assemble(ctx, pc.course.ID, g.ID, pc.params.OrderBy)
		if err != nil {
			return nil, err
		}
		sections = append(sections, sectionVM{
			DomID:     uuid.NewString(),
			GroupID:   g.ID,
			GroupName: htmlsanitize.Text(g.Name),
			Users:     cards,
			HasUsers:  len(cards) > 0,
		})
	}
	return sections, nil
}

// ServeShow renders the interactive faces page.
// GET /faces/show?cid=N[&groupid=N][&groupids=N...][&orderby=firstname|lastname]
func (h *Handler) ServeShow(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	pc, ok := h.loadPage(ctx, w, r)
	if !ok {
		return
	}
	p := pc.params

	data := showPageData{
		BaseVM:      viewdata.NewBaseVM(r, "Faces", "/"),
		CourseID:    pc.course.ID,
		CourseName:  htmlsanitize.Text(pc.course.FullName),
		CurrentDate: time.Now().Format(currentDateLayout),
		OrderBy:     p.OrderBy,
		OrderOptions: []orderOption{
			{Value: roster.OrderFirstName, Label: "First name", Selected: p.OrderBy == roster.OrderFirstName},
			{Value: roster.OrderLastName, Label: "Last name", Selected: p.OrderBy == roster.OrderLastName},
		},
		GroupID:      p.GroupID,
		Groupings:    pc.selection.Groupings,
		HasGroupings: pc.selection.HasGroupings,
		PanelOpen:    len(pc.selection.Selected) == 0,
		ShowURL:      showURL(pc.course.ID, p.OrderBy, p.GroupID, nil),
		PrintURL:     printURL(pc.course.ID, p.OrderBy, p.GroupID, pc.selection.SelectedIDs),
		ResetURL:     resetURL(pc.course.ID, p.OrderBy, p.GroupID),
	}

	if len(pc.selection.Selected) > 0 {
		sections, err := h.buildSections(ctx, pc)
		if err != nil {
			h.ErrLog.LogServerError(w, r, "database error assembling roster", err, "A database error occurred.", "/")
			return
		}
		data.MultiSection = true
		data.Sections = sections
	} else {
		cards, err := pc.asm.Assemble(ctx, pc.course.ID, p.GroupID, p.OrderBy)
		if err != nil {
			h.ErrLog.LogServerError(w, r, "database error assembling roster", err, "A database error occurred.", "/")
			return
		}
		data.Users = cards
		data.HasUsers = len(cards) > 0
	}

	templates.Render(w, r, "faces_show", data)
}
