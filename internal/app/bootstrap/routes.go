// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	errorsfeature "github.com/dalemusser/coursefaces/internal/app/features/errors"
	facesfeature "github.com/dalemusser/coursefaces/internal/app/features/faces"
	healthfeature "github.com/dalemusser/coursefaces/internal/app/features/health"
	homefeature "github.com/dalemusser/coursefaces/internal/app/features/home"
	loginfeature "github.com/dalemusser/coursefaces/internal/app/features/login"
	logoutfeature "github.com/dalemusser/coursefaces/internal/app/features/logout"
	profilefeature "github.com/dalemusser/coursefaces/internal/app/features/profile"
	rosterimportfeature "github.com/dalemusser/coursefaces/internal/app/features/rosterimport"
	"github.com/dalemusser/coursefaces/internal/app/system/auth"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/csrf"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. CourseFaces initializes the template
// engine, applies session and CSRF middleware, and mounts the feature
// routers: home, login, logout, health, and the faces roster pages.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	if err := auth.InitSessionStore(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain, secure, logger); err != nil {
		logger.Error("session store init failed", zap.Error(err))
		return nil, err
	}

	// Initialize and boot the template engine once at startup.
	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	// Create error logger for handlers.
	errLog := errorsfeature.NewErrorLogger(logger)

	r := chi.NewRouter()

	// Global auth middleware: loads SessionUser into context if logged in.
	// This makes the current user available to all handlers via auth.CurrentUser(r).
	r.Use(auth.LoadSessionUser)
	r.Use(csrf.Protect([]byte(appCfg.SessionKey), csrf.Secure(secure), csrf.Path("/")))

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Static assets with pre-compressed file support (gzip/brotli)
	r.Handle("/static/*", fileserver.Handler("/static", "public"))

	// Public pages
	homeHandler := homefeature.NewHandler(deps.MongoDatabase, errLog, logger)
	r.Mount("/", homefeature.Routes(homeHandler))

	// Authentication
	loginHandler := loginfeature.NewHandler(deps.MongoDatabase, errLog, logger)
	r.Mount("/login", loginfeature.Routes(loginHandler))

	logoutHandler := logoutfeature.NewHandler(logger)
	r.Mount("/logout", logoutfeature.Routes(logoutHandler))

	// Error pages
	errorsHandler := errorsfeature.NewHandler()
	r.Get("/forbidden", errorsHandler.Forbidden)
	r.Get("/unauthorized", errorsHandler.Unauthorized)
	r.NotFound(errorsHandler.NotFound)

	// Course roster pages
	facesHandler := facesfeature.NewHandler(deps.MongoDatabase, errLog, logger)
	r.Mount("/faces", facesfeature.Routes(facesHandler))

	// Profiles: the user's own page and the cards roster faces link to
	profileHandler := profilefeature.NewHandler(deps.MongoDatabase, errLog, logger)
	r.Mount("/profile", profilefeature.Routes(profileHandler))
	r.Mount("/users", profilefeature.UserRoutes(profileHandler))

	// Roster CSV import (admin only)
	importHandler := rosterimportfeature.NewHandler(deps.MongoDatabase, errLog, logger)
	r.Mount("/import", rosterimportfeature.Routes(importHandler))

	return r, nil
}
