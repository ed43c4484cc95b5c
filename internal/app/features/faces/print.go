// internal/app/features/faces/print.go
package faces

import (
	"context"
	"net/http"
	"time"

	"github.com/dalemusser/coursefaces/internal/app/system/htmlsanitize"
	"github.com/dalemusser/coursefaces/internal/app/system/timeouts"
	"github.com/dalemusser/coursefaces/internal/app/system/viewdata"
	"github.com/dalemusser/coursefaces/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/google/uuid"
)

// ServePrint renders the printable faces page: the same sections as the
// interactive page, stripped of chrome. With nothing selected it falls back
// to a single section holding the whole course roster.
// GET /faces/print?cid=N[&groupid=N][&groupids=N...][&orderby=...]
func (h *Handler) ServePrint(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	pc, ok := h.loadPage(ctx, w, r)
	if !ok {
		return
	}
	p := pc.params

	var sections []sectionVM
	if len(pc.selection.Selected) > 0 {
		var err error
		sections, err = h.buildSections(ctx, pc)
		if err != nil {
			h.ErrLog.LogServerError(w, r, "database error assembling roster", err, "A database error occurred.", "/")
			return
		}
	} else {
		cards, err := pc.asm.Assemble(ctx, pc.course.ID, p.GroupID, p.OrderBy)
		if err != nil {
			h.ErrLog.LogServerError(w, r, "database error assembling roster", err, "A database error occurred.", "/")
			return
		}
		section := sectionVM{
			DomID:    uuid.NewString(),
			GroupID:  p.GroupID,
			Users:    cards,
			HasUsers: len(cards) > 0,
		}
		if p.GroupID == models.UngroupedID {
			section.IsAll = true
			section.GroupName = htmlsanitize.Text(pc.course.FullName)
		} else if pc.legacyFound {
			section.GroupName = htmlsanitize.Text(pc.legacyGroup.Name)
		}
		sections = []sectionVM{section}
	}

	templates.Render(w, r, "faces_print", printPageData{
		BaseVM:      viewdata.NewBaseVM(r, "Faces", "/"),
		CourseName:  htmlsanitize.Text(pc.course.FullName),
		CurrentDate: time.Now().Format(currentDateLayout),
		Sections:    sections,
	})
}
