package http

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	httpSwagger "github.com/swaggo/http-swagger"

	"eventsync/internal/delivery/http/controllers"
	"eventsync/internal/delivery/http/helpers"
	"eventsync/internal/delivery/http/middleware"
	"eventsync/internal/domain"
)

// Pinger reports whether a backing store is reachable. *sql.DB satisfies it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Controllers groups the handlers mounted by NewRouter.
type Controllers struct {
	User      *controllers.UserController
	Event     *controllers.EventController
	Analytics *controllers.AnalyticsController
	Public    *controllers.PublicController
	Upload    *controllers.UploadController
}

// RouterConfig holds what the router needs besides the controllers.
type RouterConfig struct {
	Logger    *slog.Logger
	Verifier  domain.TokenVerifier
	UploadDir string
	DB        Pinger
}

// NewRouter initializes the HTTP router with all application routes
func NewRouter(cfg RouterConfig, c Controllers) *http.ServeMux {
	mux := http.NewServeMux()
	auth := middleware.RequireAuth(cfg.Verifier, cfg.Logger)
	admin := middleware.RequireRole(cfg.Verifier, cfg.Logger, domain.RoleAdmin)

	// Users
	mux.HandleFunc("POST /api/users/register", c.User.Register)
	mux.HandleFunc("POST /api/users/login", c.User.Login)
	mux.HandleFunc("GET /api/users", admin(c.User.List))
	mux.HandleFunc("GET /api/users/registered-events", auth(c.User.RegisteredEvents))
	mux.HandleFunc("PUT /api/users/update", auth(c.User.Update))

	// Events
	mux.HandleFunc("GET /api/events", auth(c.Event.List))
	mux.HandleFunc("GET /api/events/{id}", auth(c.Event.Get))
	mux.HandleFunc("POST /api/events", admin(c.Event.Create))
	mux.HandleFunc("PUT /api/events/{id}", admin(c.Event.Update))
	mux.HandleFunc("DELETE /api/events/{id}", admin(c.Event.Delete))
	mux.HandleFunc("POST /api/events/{id}/register", auth(c.Event.Register))
	mux.HandleFunc("DELETE /api/events/{id}/register", auth(c.Event.Unregister))

	// Analytics
	mux.HandleFunc("GET /api/analytics", c.Analytics.List)
	mux.HandleFunc("POST /api/analytics", admin(c.Analytics.Record))
	mux.HandleFunc("GET /api/analytics/summary", admin(c.Analytics.Summary))

	// Public forms
	mux.HandleFunc("POST /api/contact", c.Public.SubmitContact)
	mux.HandleFunc("POST /api/newsletter", c.Public.Subscribe)

	// Uploads
	mux.HandleFunc("POST /api/uploads", admin(c.Upload.Upload))
	mux.Handle("GET /uploads/", http.StripPrefix("/uploads/", noDirListing(http.FileServer(http.Dir(cfg.UploadDir)))))

	mux.HandleFunc("GET /healthz", healthz(cfg.DB, cfg.Logger))

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}

func noDirListing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "" || strings.HasSuffix(r.URL.Path, "/") {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "Not found")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func healthz(db Pinger, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if db != nil {
			if err := db.PingContext(r.Context()); err != nil {
				logger.ErrorContext(r.Context(), "health check failed", "err", err)
				helpers.WriteJSONError(w, http.StatusServiceUnavailable, helpers.ErrCodeInternalError, "database unavailable")
				return
			}
		}
		helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
