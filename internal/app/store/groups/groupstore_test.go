package groupstore_test

import (
	"testing"

	groupstore "github.com/dalemusser/coursefaces/internal/app/store/groups"
	"github.com/dalemusser/coursefaces/internal/domain/models"
	"github.com/dalemusser/coursefaces/internal/testutil"
)

func TestStore_GroupByID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := groupstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.CreateCourse(ctx, 1, "Biology 101", models.GroupModeVisible)
	fixtures.CreateGroup(ctx, 10, 1, "Red Team")

	g, found, err := store.GroupByID(ctx, 10)
	if err != nil {
		t.Fatalf("GroupByID failed: %v", err)
	}
	if !found {
		t.Fatal("expected group 10 to be found")
	}
	if g.Name != "Red Team" || g.CourseID != 1 {
		t.Errorf("unexpected group: %+v", g)
	}
}

func TestStore_GroupByID_Missing(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := groupstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, found, err := store.GroupByID(ctx, 999)
	if err != nil {
		t.Fatalf("GroupByID failed: %v", err)
	}
	if found {
		t.Error("expected a miss for an unknown id")
	}
}

func TestStore_CourseGroups_SortedByFoldedName(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := groupstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.CreateGroup(ctx, 1, 1, "zebra")
	fixtures.CreateGroup(ctx, 2, 1, "Apple")
	fixtures.CreateGroup(ctx, 3, 2, "Other Course")

	groups, err := store.CourseGroups(ctx, 1)
	if err != nil {
		t.Fatalf("CourseGroups failed: %v", err)
	}
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if groups[0].Name != "Apple" || groups[1].Name != "zebra" {
		t.Errorf("unexpected order: %s, %s", groups[0].Name, groups[1].Name)
	}
}

func TestStore_GroupingGroups(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := groupstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.CreateGrouping(ctx, 100, 1, "Teams", 1)
	fixtures.CreateGroup(ctx, 1, 1, "Red", 100)
	fixtures.CreateGroup(ctx, 2, 1, "Loose")

	groups, err := store.GroupingGroups(ctx, 1, 100)
	if err != nil {
		t.Fatalf("GroupingGroups failed: %v", err)
	}
	if len(groups) != 1 || groups[0].ID != 1 {
		t.Errorf("expected only group 1, got %+v", groups)
	}
}
