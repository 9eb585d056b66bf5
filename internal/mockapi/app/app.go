package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/aussiebroadwan/riskconsole/internal/mockapi/http"
	"github.com/aussiebroadwan/riskconsole/internal/mockapi/service"
	"github.com/aussiebroadwan/riskconsole/internal/mockapi/store"
	"github.com/aussiebroadwan/riskconsole/internal/mockapi/store/drivers/sqlite"
	"github.com/aussiebroadwan/riskconsole/pkg/cryptox"
	"github.com/aussiebroadwan/riskconsole/pkg/httpx"
	"github.com/aussiebroadwan/riskconsole/pkg/jwtx"
	"github.com/aussiebroadwan/riskconsole/pkg/slogx"
	"github.com/jonboulle/clockwork"
)

// BuildVersion is overridden at build time via -ldflags.
var BuildVersion = "v0.1.0"

// Application is the development backend with all its dependencies.
type Application struct {
	cfg    Config
	logger *slog.Logger
	clock  clockwork.Clock

	db     store.Store
	signer jwtx.Signer
	keys   *jwtx.KeySet

	tokenService        *service.TokenService
	userService         *service.UserService
	catalogService      *service.CatalogService
	nameListService     *service.NameListService
	listDetailService   *service.ListDetailService
	moderationService   *service.ModerationService
	riskLogService      *service.RiskLogService
	housekeepingService *service.HousekeepingService

	server *http.Server
	router *httpapi.Router
}

// New creates an Application with its database migrated and the seed
// operator in place.
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg:   cfg,
		clock: clockwork.NewRealClock(),
		logger: slogx.New(slogx.Config{
			Service: "mockapi",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	cryptox.SetPepperPath(app.cfg.PepperFile)

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	signer, keys, err := InitSigningKey(app.cfg.SigningKeyFile, app.logger)
	if err != nil {
		_ = app.db.Close()
		return nil, fmt.Errorf("failed to initialize signing key: %w", err)
	}
	app.signer, app.keys = signer, keys

	app.initServices()
	if err := app.seed(context.Background()); err != nil {
		_ = app.db.Close()
		return nil, err
	}
	app.initHTTP()

	return app, nil
}

// Handler exposes the router, mainly for in-process tests.
func (app *Application) Handler() http.Handler { return app.router }

// Run starts the application and blocks until shutdown is requested.
func (app *Application) Run() error {
	app.housekeepingService.Start()

	app.logger.Info("mockapi starting", "addr", app.cfg.Addr, "prefix", app.cfg.Prefix, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		app.housekeepingService.Stop()
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

// Shutdown drains in-flight requests, stops housekeeping and closes the
// database.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down mockapi...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	app.housekeepingService.Stop()

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("mockapi stopped")
	return nil
}

func (app *Application) initDatabase() error {
	dsn := fmt.Sprintf(
		"file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)",
		app.cfg.DatabaseFile,
	)
	db, err := sqlite.NewStore(dsn)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully", "path", app.cfg.DatabaseFile)
	return nil
}

func (app *Application) initServices() {
	app.tokenService = &service.TokenService{
		Signer:     app.signer,
		Store:      app.db,
		Clock:      app.clock,
		Issuer:     app.cfg.Issuer,
		AccessTTL:  app.cfg.AccessTTL,
		RefreshTTL: app.cfg.RefreshTTL,
	}
	app.userService = &service.UserService{Store: app.db, Clock: app.clock}
	app.catalogService = &service.CatalogService{Store: app.db, Clock: app.clock}
	app.nameListService = &service.NameListService{Store: app.db, Clock: app.clock}
	app.listDetailService = &service.ListDetailService{Store: app.db, Clock: app.clock}
	app.moderationService = &service.ModerationService{Store: app.db, Clock: app.clock}
	app.riskLogService = &service.RiskLogService{Store: app.db}

	app.housekeepingService = service.NewHousekeepingService(
		app.db,
		app.logger,
		app.clock,
		app.cfg.HousekeepingInterval,
	)
}

// seed creates the configured operator on an empty database. Without a
// configured password one is generated and logged once.
func (app *Application) seed(ctx context.Context) error {
	if app.cfg.SeedUser == "" {
		return nil
	}

	password, generated := app.cfg.SeedPassword, false
	if password == "" {
		password, generated = cryptox.GeneratePassword(), true
	}

	created, err := app.userService.EnsureSeedUser(ctx, app.cfg.SeedUser, password)
	if err != nil {
		return fmt.Errorf("failed to create seed operator: %w", err)
	}
	if !created {
		return nil
	}

	identity := service.NormalizeIdentity(app.cfg.SeedUser)
	if generated {
		app.logger.Warn("seed operator created with a generated password", "identity", identity, "password", password)
		return nil
	}
	app.logger.Info("seed operator created", "identity", identity)
	return nil
}

func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.cfg.Prefix,
		app.keys,
		jwtx.NewCommonEdDSA(app.keys, app.cfg.Issuer, nil),
		BuildVersion,
		app.db,
		app.logger,
		httpx.NewRegistry(),
	)

	router.CookieSecure = app.cfg.CookieSecure
	router.RateLimits = app.cfg.RateLimits
	router.TokenService = app.tokenService
	router.UserService = app.userService
	router.CatalogService = app.catalogService
	router.NameListService = app.nameListService
	router.ListDetailService = app.listDetailService
	router.ModerationService = app.moderationService
	router.RiskLogService = app.riskLogService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              app.cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
