package login_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	uierrors "github.com/dalemusser/coursefaces/internal/app/features/errors"
	"github.com/dalemusser/coursefaces/internal/app/features/login"
	userstore "github.com/dalemusser/coursefaces/internal/app/store/users"
	"github.com/dalemusser/coursefaces/internal/app/system/auth"
	"github.com/dalemusser/coursefaces/internal/domain/models"
	"github.com/dalemusser/coursefaces/internal/testutil"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func newTestHandler(t *testing.T) *login.Handler {
	t.Helper()
	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()
	if err := auth.InitSessionStore("0123456789abcdef0123456789abcdef", "coursefaces-test", "", false, logger); err != nil {
		t.Fatalf("init session store: %v", err)
	}
	return login.NewHandler(db, uierrors.NewErrorLogger(logger), logger)
}

func postForm(h *login.Handler, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	func() {
		defer func() {
			_ = recover()
		}()
		h.HandleLoginPost(rec, req)
	}()
	return rec
}

func seedUser(t *testing.T, h *login.Handler, email, password string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	ctx, cancel := testutil.TestContext()
	defer cancel()
	err = userstore.New(h.DB).Upsert(ctx, models.User{
		ID:           10,
		FirstName:    "Ana",
		LastName:     "Mori",
		Email:        email,
		Role:         "teacher",
		Status:       models.EnrolmentActive,
		PasswordHash: string(hash),
	})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
}

func TestHandleLoginPost_Success(t *testing.T) {
	h := newTestHandler(t)
	seedUser(t, h, "ana@example.com", "s3cret")

	rec := postForm(h, url.Values{
		"email":    {"ana@example.com"},
		"password": {"s3cret"},
	})

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/" {
		t.Errorf("expected redirect to /, got %q", loc)
	}
}

func TestHandleLoginPost_ReturnURL(t *testing.T) {
	h := newTestHandler(t)
	seedUser(t, h, "ana@example.com", "s3cret")

	rec := postForm(h, url.Values{
		"email":    {"ana@example.com"},
		"password": {"s3cret"},
		"return":   {"/faces/show?cid=1"},
	})

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/faces/show?cid=1" {
		t.Errorf("expected redirect to return URL, got %q", loc)
	}
}

func TestHandleLoginPost_ExternalReturnURLIgnored(t *testing.T) {
	h := newTestHandler(t)
	seedUser(t, h, "ana@example.com", "s3cret")

	rec := postForm(h, url.Values{
		"email":    {"ana@example.com"},
		"password": {"s3cret"},
		"return":   {"https://evil.example.com/"},
	})

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/" {
		t.Errorf("expected external return URL to be dropped, got %q", loc)
	}
}

func TestHandleLoginPost_WrongPassword(t *testing.T) {
	h := newTestHandler(t)
	seedUser(t, h, "ana@example.com", "s3cret")

	rec := postForm(h, url.Values{
		"email":    {"ana@example.com"},
		"password": {"wrong"},
	})

	if rec.Code == http.StatusSeeOther {
		t.Error("expected login to fail with a wrong password")
	}
}

func TestHandleLoginPost_UnknownUser(t *testing.T) {
	h := newTestHandler(t)

	rec := postForm(h, url.Values{
		"email":    {"nobody@example.com"},
		"password": {"whatever"},
	})

	if rec.Code == http.StatusSeeOther {
		t.Error("expected login to fail for an unknown user")
	}
}
