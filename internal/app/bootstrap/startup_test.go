package bootstrap

import (
	"testing"

	"github.com/dalemusser/coursefaces/internal/domain/models"
	"github.com/dalemusser/coursefaces/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func testLogger() *zap.Logger {
	return zap.NewNop()
}

func TestEnsureAdmin_CreatesNew(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	deps := DBDeps{MongoDatabase: db}

	err := ensureAdmin(ctx, deps, "Admin@Test.com", "swordfish", testLogger())
	if err != nil {
		t.Fatalf("ensureAdmin failed: %v", err)
	}

	var user models.User
	err = db.Collection("users").FindOne(ctx, bson.M{"email": "admin@test.com"}).Decode(&user)
	if err != nil {
		t.Fatalf("failed to find created user: %v", err)
	}

	if user.Role != "admin" {
		t.Errorf("expected role 'admin', got %q", user.Role)
	}
	if user.Status != "active" {
		t.Errorf("expected status 'active', got %q", user.Status)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("swordfish")); err != nil {
		t.Error("expected password hash to match configured password")
	}
}

func TestEnsureAdmin_PromotesExisting(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	f := testutil.NewFixtures(t, db)
	f.CreateUser(ctx, 5, "Existing", "Teacher", "teacher")

	deps := DBDeps{MongoDatabase: db}

	err := ensureAdmin(ctx, deps, "existing.teacher@test.com", "", testLogger())
	if err != nil {
		t.Fatalf("ensureAdmin failed: %v", err)
	}

	var user models.User
	err = db.Collection("users").FindOne(ctx, bson.M{"_id": int64(5)}).Decode(&user)
	if err != nil {
		t.Fatalf("failed to find user: %v", err)
	}
	if user.Role != "admin" {
		t.Errorf("expected role 'admin', got %q", user.Role)
	}
}

func TestEnsureAdmin_AlreadyAdmin(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	f := testutil.NewFixtures(t, db)
	f.CreateUser(ctx, 7, "Site", "Admin", "admin")

	deps := DBDeps{MongoDatabase: db}

	if err := ensureAdmin(ctx, deps, "site.admin@test.com", "ignored", testLogger()); err != nil {
		t.Fatalf("ensureAdmin failed: %v", err)
	}

	var user models.User
	err := db.Collection("users").FindOne(ctx, bson.M{"_id": int64(7)}).Decode(&user)
	if err != nil {
		t.Fatalf("failed to find user: %v", err)
	}
	if user.Role != "admin" {
		t.Errorf("expected role 'admin', got %q", user.Role)
	}
	if user.PasswordHash != "" {
		t.Error("expected existing admin password to be untouched")
	}
}

func TestEnsureAdmin_IDsSlotAboveImportedUsers(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	f := testutil.NewFixtures(t, db)
	f.CreateUser(ctx, 200, "Imported", "Student", "student")
	f.CreateUser(ctx, 350, "Imported", "Teacher", "teacher")

	deps := DBDeps{MongoDatabase: db}

	if err := ensureAdmin(ctx, deps, "fresh.admin@test.com", "pw", testLogger()); err != nil {
		t.Fatalf("ensureAdmin failed: %v", err)
	}

	var user models.User
	err := db.Collection("users").FindOne(ctx, bson.M{"email": "fresh.admin@test.com"}).Decode(&user)
	if err != nil {
		t.Fatalf("failed to find created user: %v", err)
	}
	if user.ID != 351 {
		t.Errorf("expected id 351, got %d", user.ID)
	}
}
