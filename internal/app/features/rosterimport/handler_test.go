package rosterimport_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	uierrors "github.com/dalemusser/coursefaces/internal/app/features/errors"
	"github.com/dalemusser/coursefaces/internal/app/features/rosterimport"
	enrolmentstore "github.com/dalemusser/coursefaces/internal/app/store/enrolments"
	groupstore "github.com/dalemusser/coursefaces/internal/app/store/groups"
	memberstore "github.com/dalemusser/coursefaces/internal/app/store/members"
	userstore "github.com/dalemusser/coursefaces/internal/app/store/users"
	"github.com/dalemusser/coursefaces/internal/domain/models"
	"github.com/dalemusser/coursefaces/internal/testutil"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) (*rosterimport.Handler, *testutil.Fixtures, *mongo.Database) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()
	h := rosterimport.NewHandler(db, uierrors.NewErrorLogger(logger), logger)
	return h, testutil.NewFixtures(t, db), db
}

// serve runs a handler and swallows template panics; template sets are not
// fully initialized under go test. Status codes written before rendering
// still land in the recorder.
func serve(handler http.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	func() {
		defer func() {
			_ = recover()
		}()
		handler(rec, req)
	}()
	return rec
}

// postCSV builds a multipart upload with the course id and CSV body.
func postCSV(t *testing.T, h *rosterimport.Handler, courseID, csvBody string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if err := mw.WriteField("course_id", courseID); err != nil {
		t.Fatalf("write field: %v", err)
	}
	fw, err := mw.CreateFormFile("roster", "roster.csv")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := fw.Write([]byte(csvBody)); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	mw.Close()

	req := httptest.NewRequest("POST", "/import", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req = testutil.WithUser(req, testutil.AdminUser())
	return serve(h.HandleImport, req)
}

func TestHandleImport_UnknownCourse(t *testing.T) {
	h, _, _ := newTestHandler(t)

	rec := postCSV(t, h, "999", "10,Ana,Mori,ana.mori@test.com\n")
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestHandleImport_WritesUsersEnrolmentsGroups(t *testing.T) {
	h, fixtures, db := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.CreateCourse(ctx, 1, "Biology 101", models.GroupModeVisible)

	csvBody := "User ID,First Name,Last Name,Email,Group\n" +
		"10,Ana,Mori,ana.mori@test.com,Team A\n" +
		"11,Ben,Young,ben.young@test.com,Team A\n" +
		"12,Zoé,Adams,zoe.adams@test.com\n"

	postCSV(t, h, "1", csvBody)

	users := userstore.New(db)
	u, found, err := users.GetByID(ctx, 10)
	if err != nil || !found {
		t.Fatalf("user 10 not imported: found=%v err=%v", found, err)
	}
	if u.FirstName != "Ana" || u.Email != "ana.mori@test.com" || u.Role != "student" {
		t.Errorf("unexpected imported user: %+v", u)
	}

	active, err := enrolmentstore.New(db).HasActive(ctx, 1, 12)
	if err != nil || !active {
		t.Errorf("expected user 12 enrolled: active=%v err=%v", active, err)
	}

	groups, err := groupstore.New(db).CourseGroups(ctx, 1)
	if err != nil {
		t.Fatalf("list groups: %v", err)
	}
	if len(groups) != 1 || groups[0].Name != "Team A" {
		t.Fatalf("expected one group Team A, got %+v", groups)
	}

	memberIDs, err := memberstore.New(db).UserIDs(ctx, groups[0].ID)
	if err != nil {
		t.Fatalf("list members: %v", err)
	}
	if len(memberIDs) != 2 || memberIDs[0] != 10 || memberIDs[1] != 11 {
		t.Errorf("expected members [10 11], got %v", memberIDs)
	}
}

func TestHandleImport_Idempotent(t *testing.T) {
	h, fixtures, db := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.CreateCourse(ctx, 1, "Biology 101", models.GroupModeVisible)

	csvBody := "10,Ana,Mori,ana.mori@test.com,Team A\n"
	postCSV(t, h, "1", csvBody)
	postCSV(t, h, "1", csvBody)

	groups, err := groupstore.New(db).CourseGroups(ctx, 1)
	if err != nil {
		t.Fatalf("list groups: %v", err)
	}
	if len(groups) != 1 {
		t.Errorf("expected one group after re-import, got %d", len(groups))
	}

	memberIDs, err := memberstore.New(db).UserIDs(ctx, groups[0].ID)
	if err != nil {
		t.Fatalf("list members: %v", err)
	}
	if len(memberIDs) != 1 {
		t.Errorf("expected one membership after re-import, got %d", len(memberIDs))
	}
}

func TestHandleImport_PreservesExistingRole(t *testing.T) {
	h, fixtures, db := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.CreateCourse(ctx, 1, "Biology 101", models.GroupModeVisible)
	fixtures.CreateUser(ctx, 10, "Ana", "Mori", "teacher")

	postCSV(t, h, "1", "10,Ana,Mori,ana.mori@test.com\n")

	u, found, err := userstore.New(db).GetByID(ctx, 10)
	if err != nil || !found {
		t.Fatalf("user 10 missing: found=%v err=%v", found, err)
	}
	if u.Role != "teacher" {
		t.Errorf("expected role teacher to survive import, got %q", u.Role)
	}
}

func TestHandleImport_BadRowsWriteNothing(t *testing.T) {
	h, fixtures, db := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.CreateCourse(ctx, 1, "Biology 101", models.GroupModeVisible)

	csvBody := "10,Ana,Mori,ana.mori@test.com\nabc,Ben,Young,ben.young@test.com\n"
	postCSV(t, h, "1", csvBody)

	_, found, err := userstore.New(db).GetByID(ctx, 10)
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if found {
		t.Error("expected rejected upload to write no users")
	}
}
