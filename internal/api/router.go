package api

import (
	"net/http"

	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/mealwise/mealplanner/internal/api/handler"
	"github.com/mealwise/mealplanner/internal/api/middleware"
	"github.com/mealwise/mealplanner/internal/core/domain"
	"github.com/mealwise/mealplanner/internal/core/ports"
)

// Deps are the services the router mounts.
type Deps struct {
	Sessions ports.SessionStore
	Wizards  ports.WizardService
	Meals    ports.MealService
	Admin    ports.AdminService
	Checks   map[string]handler.DependencyCheck
}

// Options tunes the HTTP surface.
type Options struct {
	ServiceKey   string
	PublicAPIKey string
	CORSOrigins  []string

	GenerateRatePerMinute int
	GenerateBurst         int
	LoginRatePerMinute    int
	LoginBurst            int

	// Sentry enables panic and error capture; sentry.Init must have run.
	Sentry bool
	// Registerer receives the HTTP metrics. Defaults to the global registry.
	Registerer prometheus.Registerer
	// Gatherer backs /metrics. Defaults to the global registry.
	Gatherer prometheus.Gatherer
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps, opts Options, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	if opts.Registerer == nil {
		opts.Registerer = prometheus.DefaultRegisterer
	}
	if opts.Gatherer == nil {
		opts.Gatherer = prometheus.DefaultGatherer
	}

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	if opts.Sentry {
		e.Use(sentryecho.New(sentryecho.Options{Repanic: true}))
	}
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(log))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: opts.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowHeaders: []string{
			echo.HeaderOrigin,
			echo.HeaderContentType,
			echo.HeaderAuthorization,
			middleware.HeaderPublicKey,
			middleware.HeaderServiceKey,
		},
	}))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  "mealplanner",
		Registerer: opts.Registerer,
		Skipper: func(c echo.Context) bool {
			// The change feed is long-lived; its latency is meaningless.
			return c.Path() == "/metrics" || c.Path() == "/api/admin/changes"
		},
	}))

	// --- Handlers ---
	wizardHandler := handler.NewWizardHandler(deps.Wizards)
	authHandler := handler.NewAuthHandler(deps.Sessions)
	profileHandler := handler.NewProfileHandler(deps.Sessions)
	mealHandler := handler.NewMealHandler(deps.Meals)
	adminHandler := handler.NewAdminHandler(deps.Admin, log)

	auth := middleware.Auth(deps.Sessions)
	generateLimit := middleware.IPRateLimit(opts.GenerateRatePerMinute, opts.GenerateBurst)
	loginLimit := middleware.IPRateLimit(opts.LoginRatePerMinute, opts.LoginBurst)

	api := e.Group("/api", middleware.PublicAPIKey(opts.PublicAPIKey, opts.ServiceKey))

	// --- Registration wizard ---
	reg := api.Group("/register/wizard")
	reg.POST("", wizardHandler.Start)
	reg.GET("/:id", wizardHandler.Get)
	reg.PATCH("/:id", wizardHandler.Update)
	reg.DELETE("/:id", wizardHandler.Abandon)
	reg.POST("/:id/next", wizardHandler.Next)
	reg.POST("/:id/back", wizardHandler.Back)
	reg.POST("/:id/submit", wizardHandler.Submit)
	reg.POST("/:id/resume", wizardHandler.Resume)

	// --- Auth ---
	api.POST("/auth/login", authHandler.Login, loginLimit)
	api.POST("/auth/logout", authHandler.Logout, auth)
	api.GET("/auth/session", authHandler.Session, auth)

	// --- Profile ---
	api.GET("/profile", profileHandler.Get, auth)
	api.PUT("/profile", profileHandler.Put, auth)

	// --- Generation ---
	optionalAuth := middleware.OptionalAuth(deps.Sessions)
	api.POST("/generate-meal", mealHandler.GenerateMeal, generateLimit, optionalAuth)
	api.POST("/generate-meal-plan", mealHandler.GeneratePlan, generateLimit, optionalAuth)
	api.POST("/generate-meal-image", mealHandler.GenerateImage, generateLimit, optionalAuth)

	// --- Admin ---
	schema := api.Group("/admin/schema", middleware.ServiceKey(opts.ServiceKey))
	schema.POST("/profile-columns", adminHandler.EnsureProfileColumns)
	schema.POST("/membership-column", adminHandler.EnsureMembershipColumn)

	admin := api.Group("/admin", auth, middleware.RBAC(domain.RoleAdmin))
	admin.GET("/stats", adminHandler.Stats)
	admin.GET("/users", adminHandler.Users)
	admin.GET("/changes", adminHandler.Changes)

	// --- Ops (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.Checks)

	e.GET("/health", healthHandler.Liveness)            // liveness
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: opts.Gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

// requestLogger writes one zerolog event per request.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogRemoteIP:  true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Error != nil || v.Status >= http.StatusInternalServerError {
				ev = log.Error().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Str("remote_ip", v.RemoteIP).
				Msg("request")
			return nil
		},
	})
}
