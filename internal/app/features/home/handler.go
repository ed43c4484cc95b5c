// internal/app/features/home/handler.go
package home

import (
	"context"
	"net/http"

	uierrors "github.com/dalemusser/coursefaces/internal/app/features/errors"
	coursestore "github.com/dalemusser/coursefaces/internal/app/store/courses"
	enrolmentstore "github.com/dalemusser/coursefaces/internal/app/store/enrolments"
	"github.com/dalemusser/coursefaces/internal/app/system/authz"
	"github.com/dalemusser/coursefaces/internal/app/system/htmlsanitize"
	"github.com/dalemusser/coursefaces/internal/app/system/timeouts"
	"github.com/dalemusser/coursefaces/internal/app/system/viewdata"
	"github.com/dalemusser/coursefaces/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler holds dependencies needed to serve the home page.
type Handler struct {
	DB     *mongo.Database
	ErrLog *uierrors.ErrorLogger
	Log    *zap.Logger
}

func NewHandler(db *mongo.Database, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		DB:     db,
		ErrLog: errLog,
		Log:    logger,
	}
}

type courseVM struct {
	ID   int64
	Name string
}

type homePageData struct {
	viewdata.BaseVM
	Courses    []courseVM
	HasCourses bool
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET / – landing                                                             |
*─────────────────────────────────────────────────────────────────────────────*/

// ServeRoot renders the landing page. Signed-in users see the courses whose
// roster they can open: admins and teachers see every active course,
// students the courses they are enrolled in.
func (h *Handler) ServeRoot(w http.ResponseWriter, r *http.Request) {
	data := homePageData{
		BaseVM: viewdata.NewBaseVM(r, "Welcome", "/"),
	}

	role, _, userID, signedIn := authz.UserCtx(r)
	if signedIn {
		ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
		defer cancel()

		courses, err := h.coursesFor(ctx, role, userID)
		if err != nil {
			h.ErrLog.LogServerError(w, r, "database error listing courses", err, "A database error occurred.", "/")
			return
		}
		for _, c := range courses {
			data.Courses = append(data.Courses, courseVM{
				ID:   c.ID,
				Name: htmlsanitize.Text(c.FullName),
			})
		}
		data.HasCourses = len(data.Courses) > 0
	}

	templates.Render(w, r, "home", data)
}

func (h *Handler) coursesFor(ctx context.Context, role string, userID int64) ([]models.Course, error) {
	courses := coursestore.New(h.DB)
	if role == "admin" || role == "teacher" {
		return courses.ListActive(ctx)
	}
	ids, err := enrolmentstore.New(h.DB).CourseIDsForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return courses.ListByIDs(ctx, ids)
}
