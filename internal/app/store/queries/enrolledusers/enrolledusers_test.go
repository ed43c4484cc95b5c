package enrolledusers_test

import (
	"testing"

	"github.com/dalemusser/coursefaces/internal/app/store/queries/enrolledusers"
	"github.com/dalemusser/coursefaces/internal/domain/models"
	"github.com/dalemusser/coursefaces/internal/testutil"
)

func TestList_CourseRoster(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.CreateCourse(ctx, 1, "Biology 101", models.GroupModeVisible)
	ana := fixtures.CreateUser(ctx, 10, "Ana", "Mori", "student")
	ben := fixtures.CreateUser(ctx, 11, "Ben", "Young", "student")
	outsider := fixtures.CreateUser(ctx, 12, "Cy", "Far", "student")
	fixtures.Enrol(ctx, 1, ana.ID)
	fixtures.Enrol(ctx, 1, ben.ID)
	fixtures.Enrol(ctx, 2, outsider.ID)

	users, err := enrolledusers.List(ctx, db, 1, 0)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
	if users[0].ID != ana.ID || users[1].ID != ben.ID {
		t.Errorf("unexpected roster order: %v, %v", users[0].ID, users[1].ID)
	}
}

func TestList_ExcludesSuspendedEnrolments(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	u := fixtures.CreateUser(ctx, 10, "Ana", "Mori", "student")
	fixtures.EnrolWithStatus(ctx, 1, u.ID, models.EnrolmentSuspended)

	users, err := enrolledusers.List(ctx, db, 1, 0)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(users) != 0 {
		t.Errorf("expected empty roster, got %d users", len(users))
	}
}

func TestList_GroupFilter(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.CreateGroup(ctx, 5, 1, "Red Team")
	ana := fixtures.CreateUser(ctx, 10, "Ana", "Mori", "student")
	ben := fixtures.CreateUser(ctx, 11, "Ben", "Young", "student")
	fixtures.Enrol(ctx, 1, ana.ID)
	fixtures.Enrol(ctx, 1, ben.ID)
	fixtures.AddMember(ctx, 5, 1, ana.ID)

	users, err := enrolledusers.List(ctx, db, 1, 5)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(users) != 1 || users[0].ID != ana.ID {
		t.Errorf("expected only Ana in the group roster, got %+v", users)
	}
}

func TestList_EmptyGroup(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.CreateGroup(ctx, 5, 1, "Empty Team")
	u := fixtures.CreateUser(ctx, 10, "Ana", "Mori", "student")
	fixtures.Enrol(ctx, 1, u.ID)

	users, err := enrolledusers.List(ctx, db, 1, 5)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(users) != 0 {
		t.Errorf("expected empty roster for empty group, got %d users", len(users))
	}
}
