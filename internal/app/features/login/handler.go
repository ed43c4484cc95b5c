// internal/app/features/login/handler.go
package login

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	uierrors "github.com/dalemusser/coursefaces/internal/app/features/errors"
	userstore "github.com/dalemusser/coursefaces/internal/app/store/users"
	"github.com/dalemusser/coursefaces/internal/app/system/auth"
	"github.com/dalemusser/coursefaces/internal/app/system/authutil"
	"github.com/dalemusser/coursefaces/internal/app/system/timeouts"
	"github.com/dalemusser/coursefaces/internal/app/system/viewdata"
	"github.com/dalemusser/coursefaces/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

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

type loginFormData struct {
	viewdata.BaseVM
	Email     string
	ReturnURL string
	Error     string
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /login                                                                  |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeLogin(w http.ResponseWriter, r *http.Request) {
	ret := query.Get(r, "return")

	templates.Render(w, r, "login", loginFormData{
		BaseVM:    viewdata.NewBaseVM(r, "Login", "/"),
		ReturnURL: ret,
	})
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /login                                                                 |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) HandleLoginPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/login")
		return
	}

	email := strings.TrimSpace(r.FormValue("email"))
	password := r.FormValue("password")
	returnURL := r.FormValue("return")

	if email == "" || password == "" {
		h.renderFormWithError(w, r, "Please enter your email and password.", email, returnURL)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	u, found, err := userstore.New(h.DB).FindByEmail(ctx, email)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "DB find user", err, "A server error occurred.", "/login")
		return
	}
	if !found {
		h.renderFormWithError(w, r, "No account found for that email.", email, returnURL)
		return
	}
	if u.Status != "" && u.Status != models.EnrolmentActive {
		h.renderFormWithError(w, r, "This account is disabled.", email, returnURL)
		return
	}
	if u.PasswordHash == "" {
		h.renderFormWithError(w, r, "Password sign-in is not enabled for this account.", email, returnURL)
		return
	}
	if !authutil.CheckPassword(password, u.PasswordHash) {
		h.Log.Warn("login: bad password", zap.String("email", email))
		h.renderFormWithError(w, r, "Incorrect password.", email, returnURL)
		return
	}

	sessionUser := auth.SessionUser{
		ID:    strconv.FormatInt(u.ID, 10),
		Name:  u.FirstName + " " + u.LastName,
		Email: u.Email,
		Role:  u.Role,
	}
	if err := auth.SignIn(w, r, sessionUser); err != nil {
		h.ErrLog.LogServerError(w, r, "create session", err, "A server error occurred.", "/login")
		return
	}

	http.Redirect(w, r, safeReturnURL(returnURL), http.StatusSeeOther)
}

// safeReturnURL only honors local paths; anything else falls back to /.
func safeReturnURL(ret string) string {
	if strings.HasPrefix(ret, "/") && !strings.HasPrefix(ret, "//") {
		return ret
	}
	return "/"
}

func (h *Handler) renderFormWithError(w http.ResponseWriter, r *http.Request, msg, email, returnURL string) {
	templates.Render(w, r, "login", loginFormData{
		BaseVM:    viewdata.NewBaseVM(r, "Login", "/"),
		Email:     email,
		ReturnURL: returnURL,
		Error:     msg,
	})
}
