package rest

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"club-auth/app/domain"
	"club-auth/app/port"
	"club-auth/app/rest/handlers"
	custommw "club-auth/app/rest/middleware"
	"club-auth/app/utils/metrics"
)

// RouterConfig holds router configuration
type RouterConfig struct {
	Logger          *slog.Logger
	SessionUsecase  port.SessionUsecase
	Gate            *custommw.NavigationGate
	Metrics         *metrics.Collector
	ReadinessProbes map[string]handlers.ReadinessProbe
	LoginPath       string
	EnableDebug     bool
}

// NewRouter creates and configures the Echo router
func NewRouter(config RouterConfig) *echo.Echo {
	e := echo.New()

	e.HideBanner = true
	e.Debug = config.EnableDebug

	// Create handlers
	authHandler := handlers.NewAuthHandler(config.SessionUsecase, config.Gate, config.Logger)
	viewHandler := handlers.NewViewHandler(config.SessionUsecase, config.Logger)
	healthHandler := handlers.NewHealthHandler(config.Logger, config.ReadinessProbes)

	// Global middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(custommw.DefaultCORS())
	e.Use(custommw.SecurityHeaders())

	// Health endpoints (no gate)
	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/ready", healthHandler.ReadinessCheck)

	// Metrics endpoint (if enabled)
	if config.Metrics != nil {
		e.GET("/metrics", echo.WrapHandler(config.Metrics.Handler()))
	}

	// Login entry point, where gate redirects land
	loginPath := config.LoginPath
	if loginPath == "" {
		loginPath = "/login"
	}
	e.GET(loginPath, authHandler.LoginPage)

	// API versioning
	v1 := e.Group("/v1")

	// Session endpoints (no gate: login must be reachable logged out, and
	// the session snapshot is how clients learn they are logged out)
	auth := v1.Group("/auth")
	auth.POST("/login", authHandler.Login)
	auth.POST("/logout", authHandler.Logout)
	auth.GET("/session", authHandler.GetSession)
	auth.PUT("/profile", authHandler.UpdateProfile)
	auth.PUT("/password", authHandler.ChangePassword)

	// Denied-view countdown controls
	auth.POST("/denied/logout", authHandler.DeniedLogoutNow)
	auth.DELETE("/denied", authHandler.DeniedDismiss)

	// Protected views, each gated on its role set
	v1.GET("/dashboard", viewHandler.Dashboard,
		config.Gate.RequireRoles())
	v1.GET("/admin", viewHandler.AdminPanel,
		config.Gate.RequireRoles(domain.RoleAdmin))
	v1.GET("/clubs/manage", viewHandler.ClubManagement,
		config.Gate.RequireRoles(domain.RoleClubLeader, domain.RoleClubViceLeader))

	return e
}
