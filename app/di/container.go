package di

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/labstack/echo/v4"

	"club-auth/app/config"
	"club-auth/app/driver/directory"
	"club-auth/app/driver/memstore"
	"club-auth/app/driver/postgres"
	"club-auth/app/gateway"
	"club-auth/app/port"
	"club-auth/app/rest"
	"club-auth/app/rest/handlers"
	custommw "club-auth/app/rest/middleware"
	"club-auth/app/usecase"
	"club-auth/app/utils/metrics"
)

// Container holds all dependencies for the application
type Container struct {
	Config *config.Config
	Logger *slog.Logger

	// Drivers
	DB          *postgres.DB
	RecordStore port.RecordStore
	Directory   port.IdentityDirectory

	// Gateways
	CredentialValidator port.CredentialValidator

	// Usecases
	SessionUsecase port.SessionUsecase

	// REST
	Gate    *custommw.NavigationGate
	Metrics *metrics.Collector

	recorder port.MetricsRecorder
}

// NewContainer creates and initializes a new dependency injection container.
// The Restore pass runs here, before any router exists, so the session has
// left its loading state by the time the first request can arrive.
func NewContainer(cfg *config.Config, logger *slog.Logger) (*Container, error) {
	container := &Container{
		Config: cfg,
		Logger: logger,
	}

	// Record store: postgres when configured, in-memory otherwise
	if cfg.DatabaseURL != "" {
		db, err := postgres.NewConnection(cfg.DatabaseURL, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		container.DB = db
		container.RecordStore = postgres.NewRecordStore(db.Pool(), logger)
	} else {
		logger.Info("no DATABASE_URL configured, using in-memory record store")
		container.RecordStore = memstore.New()
	}

	// Identity directory
	dir, err := directory.NewStatic(logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize identity directory: %w", err)
	}
	container.Directory = dir

	// Metrics
	if cfg.EnableMetrics {
		container.Metrics = metrics.NewCollector()
		container.recorder = container.Metrics
	} else {
		container.recorder = metrics.Noop{}
	}

	// Gateways
	container.CredentialValidator = gateway.NewCredentialGateway(container.Directory, logger)

	// Usecases
	sessions := usecase.NewSessionUseCase(
		container.CredentialValidator,
		container.RecordStore,
		container.recorder,
		logger,
		cfg.LoginDelay,
	)
	sessions.Restore(context.Background())
	container.SessionUsecase = sessions

	// Navigation gate
	container.Gate = custommw.NewNavigationGate(container.SessionUsecase, container.recorder, logger, custommw.GateConfig{
		LoginPath:         cfg.LoginPath,
		CountdownSeconds:  cfg.CountdownSeconds,
		CountdownInterval: cfg.CountdownInterval,
	})

	logger.Info("container initialized")
	return container, nil
}

// CreateRouter creates and returns a fully configured Echo router
func (c *Container) CreateRouter() *echo.Echo {
	probes := map[string]handlers.ReadinessProbe{}
	if c.DB != nil {
		probes["database"] = c.DB.HealthCheck
	}

	routerConfig := rest.RouterConfig{
		Logger:          c.Logger,
		SessionUsecase:  c.SessionUsecase,
		Gate:            c.Gate,
		Metrics:         c.Metrics,
		ReadinessProbes: probes,
		LoginPath:       c.Config.LoginPath,
		EnableDebug:     c.Config.LogLevel == "debug",
	}

	return rest.NewRouter(routerConfig)
}

// Close closes all resources
func (c *Container) Close() error {
	if c.Gate != nil {
		c.Gate.Dismiss()
	}
	if c.DB != nil {
		c.DB.Close()
	}

	c.Logger.Info("container closed")
	return nil
}
