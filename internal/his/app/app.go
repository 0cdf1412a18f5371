package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	httpapi "github.com/Killercavin/HealthInfoSystem/internal/his/http"
	"github.com/Killercavin/HealthInfoSystem/internal/his/service"
	"github.com/Killercavin/HealthInfoSystem/internal/his/store"
	"github.com/Killercavin/HealthInfoSystem/internal/his/store/drivers/sqlite"
	"github.com/Killercavin/HealthInfoSystem/pkg/slogx"
)

// BuildVersion is overridden at build time with -ldflags "-X ...app.BuildVersion=...".
var BuildVersion = "v0.1.0"

// Application encapsulates the service with all its dependencies.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db store.Store

	programService    *service.ProgramService
	clientService     *service.ClientService
	enrollmentService *service.EnrollmentService

	server *http.Server
	router *httpapi.Router
}

// NewLogger builds the process logger from cfg.
func NewLogger(cfg Config) *slog.Logger {
	return slogx.New(slogx.Config{
		Service:    "his",
		Version:    BuildVersion,
		Env:        cfg.Env,
		Level:      cfg.LogLevel,
		Format:     cfg.LogFormat,
		File:       cfg.LogFile,
		MaxSizeMB:  cfg.LogFileMaxSizeMB,
		MaxBackups: cfg.LogFileMaxBackups,
		MaxAgeDays: cfg.LogFileMaxAgeDays,
	})
}

// New creates a new Application instance with all dependencies initialized.
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg:    cfg,
		logger: NewLogger(cfg),
	}

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested.
func (app *Application) Run() error {
	app.logger.Info("his service starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down his service...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("his service stopped")
	return nil
}

// Handler returns the root HTTP handler.
func (app *Application) Handler() http.Handler {
	return app.router
}

// Migrate opens the configured database, applies pending migrations and
// returns the resulting schema version.
func Migrate(cfg Config, logger *slog.Logger) (uint, error) {
	db, err := openDatabase(cfg)
	if err != nil {
		return 0, err
	}
	defer db.Close()

	if err := db.ApplyMigrations(); err != nil {
		return 0, fmt.Errorf("failed to apply database migrations: %w", err)
	}

	version, dirty, err := db.SchemaVersion()
	if err != nil {
		return 0, err
	}
	if dirty {
		logger.Warn("database schema is dirty", "version", version)
	}

	logger.Info("database migrations applied successfully", "file", cfg.DatabaseFile, "version", version)
	return version, nil
}

func openDatabase(cfg Config) (*sqlite.Store, error) {
	if dir := filepath.Dir(cfg.DatabaseFile); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sqlite.NewStore(sqlite.DSN(cfg.DatabaseFile), cfg.DatabaseMaxConns)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return db, nil
}

// initDatabase initializes the database and applies migrations.
func (app *Application) initDatabase() error {
	db, err := openDatabase(app.cfg)
	if err != nil {
		return err
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully", "file", app.cfg.DatabaseFile)
	return nil
}

func (app *Application) initServices() {
	app.programService = &service.ProgramService{Store: app.db}
	app.clientService = &service.ClientService{Store: app.db}
	app.enrollmentService = &service.EnrollmentService{Store: app.db}
}

// initHTTP initializes the HTTP router and server.
func (app *Application) initHTTP() {
	static := httpapi.StaticFS(app.cfg.StaticDir)
	if app.cfg.StaticDir != "" {
		app.logger.Info("serving front end from disk", "dir", app.cfg.StaticDir)
	}

	limits := httpapi.RateLimits{
		Read:              app.cfg.ReadLimit,
		Write:             app.cfg.WriteLimit,
		TrustProxyHeaders: app.cfg.TrustProxyHeaders,
	}
	router := httpapi.NewRouter(BuildVersion, app.db, static, limits, app.logger)

	router.ProgramService = app.programService
	router.ClientService = app.clientService
	router.EnrollmentService = app.enrollmentService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
