package testutil

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/dalemusser/coursefaces/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateCourse creates a test course with the given id, name, and group mode.
func (f *Fixtures) CreateCourse(ctx context.Context, id int64, name string, groupMode int) models.Course {
	f.t.Helper()

	now := time.Now().UTC()
	c := models.Course{
		ID:        id,
		FullName:  name,
		ShortName: name,
		GroupMode: groupMode,
		Status:    models.CourseActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := f.db.Collection("courses").InsertOne(ctx, c); err != nil {
		f.t.Fatalf("failed to create test course: %v", err)
	}
	return c
}

// CreateGrouping creates a test grouping in the given course.
func (f *Fixtures) CreateGrouping(ctx context.Context, id, courseID int64, name string, sortOrder int) models.Grouping {
	f.t.Helper()

	now := time.Now().UTC()
	gr := models.Grouping{
		ID:        id,
		CourseID:  courseID,
		Name:      name,
		NameCI:    text.Fold(name),
		SortOrder: sortOrder,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := f.db.Collection("groupings").InsertOne(ctx, gr); err != nil {
		f.t.Fatalf("failed to create test grouping: %v", err)
	}
	return gr
}

// CreateGroup creates a test group in the given course. groupingIDs may be
// nil for a group outside every grouping.
func (f *Fixtures) CreateGroup(ctx context.Context, id, courseID int64, name string, groupingIDs ...int64) models.Group {
	f.t.Helper()

	now := time.Now().UTC()
	g := models.Group{
		ID:          id,
		CourseID:    courseID,
		Name:        name,
		NameCI:      text.Fold(name),
		GroupingIDs: groupingIDs,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if _, err := f.db.Collection("groups").InsertOne(ctx, g); err != nil {
		f.t.Fatalf("failed to create test group: %v", err)
	}
	return g
}

// CreateUser creates a test user with an active status.
func (f *Fixtures) CreateUser(ctx context.Context, id int64, first, last, role string) models.User {
	f.t.Helper()

	now := time.Now().UTC()
	u := models.User{
		ID:          id,
		FirstName:   first,
		LastName:    last,
		FirstNameCI: text.Fold(first),
		LastNameCI:  text.Fold(last),
		Email:       text.Fold(first + "." + last + "@test.com"),
		Role:        role,
		Status:      models.EnrolmentActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if _, err := f.db.Collection("users").InsertOne(ctx, u); err != nil {
		f.t.Fatalf("failed to create test user: %v", err)
	}
	return u
}

// Enrol records an active enrolment for the user in the course.
func (f *Fixtures) Enrol(ctx context.Context, courseID, userID int64) {
	f.t.Helper()
	f.EnrolWithStatus(ctx, courseID, userID, models.EnrolmentActive)
}

// EnrolWithStatus records an enrolment with an explicit status.
func (f *Fixtures) EnrolWithStatus(ctx context.Context, courseID, userID int64, status string) {
	f.t.Helper()

	e := models.Enrolment{
		CourseID:  courseID,
		UserID:    userID,
		Status:    status,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := f.db.Collection("enrolments").InsertOne(ctx, e); err != nil {
		f.t.Fatalf("failed to create test enrolment: %v", err)
	}
}

// AddMember records the user's membership in the group.
func (f *Fixtures) AddMember(ctx context.Context, groupID, courseID, userID int64) {
	f.t.Helper()

	m := models.GroupMember{
		GroupID:   groupID,
		CourseID:  courseID,
		UserID:    userID,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := f.db.Collection("group_members").InsertOne(ctx, m); err != nil {
		f.t.Fatalf("failed to create test group membership: %v", err)
	}
}
