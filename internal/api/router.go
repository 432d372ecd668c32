package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"golang.org/x/time/rate"

	"github.com/coursehub/storefront/internal/api/handler"
	"github.com/coursehub/storefront/internal/api/middleware"
	"github.com/coursehub/storefront/internal/core/domain"
	"github.com/coursehub/storefront/internal/core/ports"
)

// Dependencies are the collaborators the HTTP layer is built from.
type Dependencies struct {
	Log       zerolog.Logger
	Auth      ports.AuthService
	Sessions  ports.SessionResolver
	Users     ports.UserService
	Referrals ports.ReferralService
	Visits    handler.VisitQueue
	Health    map[string]handler.Check

	// Metrics receives the HTTP request collectors. Nil means the default
	// Prometheus registry.
	Metrics prometheus.Registerer

	LoginPath      string
	LoginRateLimit float64 // requests per second per client IP on auth routes
	SecureCookies  bool
	EnableSwagger  bool
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(d.Log))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "storefront",
		Registerer: d.Metrics,
	}))
	e.Use(middleware.Auth(d.Auth))
	e.Use(middleware.Session(d.Sessions))

	guard := middleware.NewGuard(d.LoginPath, d.Log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(d.Auth, d.SecureCookies)
	accountHandler := handler.NewAccountHandler(d.Users, d.Auth)
	adminHandler := handler.NewAdminHandler(d.Users, d.Referrals)
	referralHandler := handler.NewReferralHandler(d.Referrals, d.Visits)
	healthHandler := handler.NewHealthHandler(d.Health)

	v1 := e.Group("/v1")

	// --- Auth routes ---
	auth := v1.Group("/auth")
	limited := loginRateLimiter(d.LoginRateLimit)
	auth.POST("/register", authHandler.Register, limited)
	auth.POST("/login", authHandler.Login, limited)
	auth.POST("/logout", authHandler.Logout, guard.RequireSession())
	auth.GET("/me", authHandler.Me)

	// --- My account ---
	me := v1.Group("/me")
	me.GET("/access", accountHandler.Access)
	me.PUT("/profile", accountHandler.UpdateProfile, guard.RequireSession(domain.CapEditProfile))
	me.PUT("/password", accountHandler.ChangePassword, guard.RequireSession(domain.CapEditProfile))

	// --- Admin panel ---
	admin := v1.Group("/admin", guard.RequireSession(domain.CapAccessAdminPanel))
	admin.GET("/users", adminHandler.ListUsers, guard.Require(domain.CapManageUsers))
	admin.PATCH("/users/:id/role", adminHandler.AssignRole, guard.Require(domain.CapManageUsers))
	admin.GET("/referral-codes", adminHandler.ListReferralCodes, guard.Require(domain.CapViewAllCommissions))

	// --- Marketer panel ---
	marketer := v1.Group("/marketer", guard.RequireSession(domain.CapAccessMarketerPanel))
	marketer.POST("/referral-codes", referralHandler.Create, guard.Require(domain.CapCreateReferralCodes))
	marketer.GET("/referral-codes", referralHandler.ListOwn, guard.Require(domain.CapViewOwnCommissions))

	// --- Public referral tracking ---
	v1.GET("/referrals/:code", referralHandler.Track)

	// --- Health probes and metrics (no auth required) ---
	e.GET("/health", healthHandler.Liveness)       // liveness  – is the process alive?
	e.GET("/health/ready", healthHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	if d.EnableSwagger {
		e.GET("/swagger/*", echoSwagger.WrapHandler)
	}

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
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			event := log.Info()
			if v.Error != nil || v.Status >= 500 {
				event = log.Error().Err(v.Error)
			}
			event.
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}

// loginRateLimiter throttles credential endpoints per client IP.
func loginRateLimiter(perSecond float64) echo.MiddlewareFunc {
	if perSecond <= 0 {
		perSecond = 5
	}
	store := echomiddleware.NewRateLimiterMemoryStoreWithConfig(echomiddleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(perSecond),
		Burst:     int(perSecond),
		ExpiresIn: 3 * time.Minute,
	})
	return echomiddleware.RateLimiter(store)
}
