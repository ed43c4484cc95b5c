// internal/app/features/rosterimport/import.go
package rosterimport

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strconv"

	uierrors "github.com/dalemusser/coursefaces/internal/app/features/errors"
	coursestore "github.com/dalemusser/coursefaces/internal/app/store/courses"
	enrolmentstore "github.com/dalemusser/coursefaces/internal/app/store/enrolments"
	groupstore "github.com/dalemusser/coursefaces/internal/app/store/groups"
	memberstore "github.com/dalemusser/coursefaces/internal/app/store/members"
	userstore "github.com/dalemusser/coursefaces/internal/app/store/users"
	"github.com/dalemusser/coursefaces/internal/app/system/csvutil"
	"github.com/dalemusser/coursefaces/internal/app/system/htmlsanitize"
	"github.com/dalemusser/coursefaces/internal/app/system/timeouts"
	"github.com/dalemusser/coursefaces/internal/app/system/viewdata"
	"github.com/dalemusser/coursefaces/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// courseOption is one entry in the course select.
type courseOption struct {
	ID   int64
	Name string
}

// importPageData is the view model for the import form.
type importPageData struct {
	viewdata.BaseVM

	Courses    []courseOption
	HasCourses bool
	Error      template.HTML
	Success    string
}

// importResult summarizes what one import wrote.
type importResult struct {
	Users         int
	GroupsCreated int
	Memberships   int
}

// ServeImport renders the roster CSV upload form.
func (h *Handler) ServeImport(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	data, err := h.newImportPageData(ctx, r)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "DB list courses", err, "A server error occurred.", "/")
		return
	}

	templates.Render(w, r, "roster_import", data)
}

// HandleImport processes the uploaded roster CSV for a course. The file is
// pre-scanned before any write; a single bad row rejects the whole upload.
func (h *Handler) HandleImport(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, csvutil.MaxUploadSize)
	if err := r.ParseMultipartForm(csvutil.MaxUploadSize); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse multipart form failed", err, "The upload was too large or malformed.", "/import")
		return
	}

	courseID, err := strconv.ParseInt(r.FormValue("course_id"), 10, 64)
	if err != nil || courseID <= 0 {
		uierrors.RenderNotFound(w, r, "No course was specified.", "/import")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	course, found, err := coursestore.New(h.DB).GetByID(ctx, courseID)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "DB load course", err, "A server error occurred.", "/import")
		return
	}
	if !found {
		uierrors.RenderNotFound(w, r, "Course not found.", "/import")
		return
	}

	file, _, err := r.FormFile("roster")
	if err != nil {
		h.renderFormWithError(w, r, "Choose a CSV file to upload.")
		return
	}
	defer file.Close()

	rows, htmlErr, err := csvutil.PreScanRosterCSV(file)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "roster CSV scan failed", err, "A server error occurred.", "/import")
		return
	}
	if htmlErr != "" {
		h.renderFormWithErrorHTML(w, r, htmlErr)
		return
	}
	if len(rows) == 0 {
		h.renderFormWithError(w, r, "The CSV file has no rows.")
		return
	}

	res, err := h.importRows(ctx, courseID, rows)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "roster import failed", err, "A database error occurred during import.", "/import")
		return
	}

	h.Log.Info("roster imported",
		zap.Int64("course_id", courseID),
		zap.Int("users", res.Users),
		zap.Int("groups_created", res.GroupsCreated),
		zap.Int("memberships", res.Memberships))

	data, err := h.newImportPageData(ctx, r)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "DB list courses", err, "A server error occurred.", "/")
		return
	}
	data.Success = fmt.Sprintf("Imported %d users into %s (%d new groups, %d group memberships).",
		res.Users, htmlsanitize.Text(course.FullName), res.GroupsCreated, res.Memberships)
	templates.Render(w, r, "roster_import", data)
}

// importRows writes the pre-scanned rows. All writes are idempotent upserts
// keyed on the source ids, so re-uploading the same file is harmless.
func (h *Handler) importRows(ctx context.Context, courseID int64, rows []csvutil.RosterCSVRow) (importResult, error) {
	var res importResult

	users := userstore.New(h.DB)
	enrolments := enrolmentstore.New(h.DB)
	groups := groupstore.New(h.DB)
	members := memberstore.New(h.DB)

	existing, err := groups.CourseGroups(ctx, courseID)
	if err != nil {
		return res, err
	}
	byName := make(map[string]models.Group, len(existing))
	for _, g := range existing {
		byName[g.NameCI] = g
	}

	nextGroupID, err := h.nextGroupID(ctx)
	if err != nil {
		return res, err
	}

	for _, row := range rows {
		u := models.User{
			ID:        row.UserID,
			FirstName: row.FirstName,
			LastName:  row.LastName,
			Email:     row.Email,
			Role:      "student",
		}
		// Keep role, status, and photo revision of users we already know.
		if prev, found, err := users.GetByID(ctx, row.UserID); err != nil {
			return res, err
		} else if found {
			u.Role = prev.Role
			u.Status = prev.Status
			u.PictureRev = prev.PictureRev
		}
		if err := users.Upsert(ctx, u); err != nil {
			return res, err
		}
		res.Users++

		if err := enrolments.Upsert(ctx, models.Enrolment{
			CourseID: courseID,
			UserID:   row.UserID,
			Status:   models.EnrolmentActive,
		}); err != nil {
			return res, err
		}

		if row.GroupName == "" {
			continue
		}
		key := text.Fold(row.GroupName)
		g, ok := byName[key]
		if !ok {
			g = models.Group{
				ID:       nextGroupID,
				CourseID: courseID,
				Name:     row.GroupName,
			}
			if err := groups.Upsert(ctx, g); err != nil {
				return res, err
			}
			byName[key] = g
			nextGroupID++
			res.GroupsCreated++
		}
		if err := members.Add(ctx, models.GroupMember{
			GroupID:  g.ID,
			CourseID: courseID,
			UserID:   row.UserID,
		}); err != nil {
			return res, err
		}
		res.Memberships++
	}

	return res, nil
}

// nextGroupID returns one past the highest group id across all courses.
// Imported LMS groups keep their source ids; groups minted here slot in
// above them.
func (h *Handler) nextGroupID(ctx context.Context) (int64, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "_id", Value: -1}})
	var top models.Group
	err := h.DB.Collection("groups").FindOne(ctx, bson.M{}, opts).Decode(&top)
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return 1, nil
	case err != nil:
		return 0, err
	}
	return top.ID + 1, nil
}

func (h *Handler) newImportPageData(ctx context.Context, r *http.Request) (importPageData, error) {
	courses, err := coursestore.New(h.DB).ListActive(ctx)
	if err != nil {
		return importPageData{}, err
	}
	opts := make([]courseOption, 0, len(courses))
	for _, c := range courses {
		opts = append(opts, courseOption{ID: c.ID, Name: htmlsanitize.Text(c.FullName)})
	}
	return importPageData{
		BaseVM:     viewdata.NewBaseVM(r, "Import roster", "/"),
		Courses:    opts,
		HasCourses: len(opts) > 0,
	}, nil
}

func (h *Handler) renderFormWithError(w http.ResponseWriter, r *http.Request, msg string) {
	h.renderFormWithErrorHTML(w, r, template.HTML(template.HTMLEscapeString(msg)))
}

func (h *Handler) renderFormWithErrorHTML(w http.ResponseWriter, r *http.Request, msg template.HTML) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	data, err := h.newImportPageData(ctx, r)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "DB list courses", err, "A server error occurred.", "/")
		return
	}
	data.Error = msg
	templates.Render(w, r, "roster_import", data)
}
