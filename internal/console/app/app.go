// Package app wires the console: configuration, the API client, the session
// provider and the cookie jar that keeps the refresh cookie between runs.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	cookiejar "github.com/juju/persistent-cookiejar"

	"github.com/aussiebroadwan/riskconsole/internal/console/session"
	"github.com/aussiebroadwan/riskconsole/pkg/consoleapi"
	"github.com/aussiebroadwan/riskconsole/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags.
	BuildVersion = "v0.1.0"
)

// Application holds the console's long-lived dependencies.
type Application struct {
	cfg    Config
	logger *slog.Logger

	jar     *cookiejar.Jar
	client  *consoleapi.Client
	session *session.Provider
}

// New creates the client and session for cfg. The session is bound to the
// client but not yet restored; call Boot.
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "riskconsole",
			Version: BuildVersion,
			Env:     "cli",
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
			Output:  os.Stderr,
		}),
	}

	jar, err := OpenCookieJar(cfg.StateDir)
	if err != nil {
		return nil, fmt.Errorf("failed to open cookie jar: %w", err)
	}
	app.jar = jar

	app.client = consoleapi.NewClient(cfg.BaseURL, cfg.Prefix,
		consoleapi.WithTimeout(cfg.Timeout),
		consoleapi.WithCookieJar(jar),
		consoleapi.WithLogger(app.logger),
		consoleapi.WithMockAuth(cfg.MockAuth),
		consoleapi.WithMockRiskLogs(cfg.MockRiskLogs),
	)

	app.session = session.New(app.client, app.logger)
	app.session.Bind()

	return app, nil
}

// Boot restores the session from the saved refresh cookie.
func (app *Application) Boot(ctx context.Context) session.Snapshot {
	ctx = slogx.WithContext(ctx, app.logger)
	snap := app.session.Boot(ctx)
	if snap.User != nil {
		app.logger.DebugContext(ctx, "session restored", "identity", snap.User.Identity)
	}
	return snap
}

func (app *Application) Client() *consoleapi.Client { return app.client }

func (app *Application) Session() *session.Provider { return app.session }

func (app *Application) Logger() *slog.Logger { return app.logger }

func (app *Application) Config() Config { return app.cfg }

// Close persists the cookies of the run.
func (app *Application) Close() error {
	if err := app.jar.Save(); err != nil {
		app.logger.Error("failed to save cookies", "error", err)
		return err
	}
	return nil
}
