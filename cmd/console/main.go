package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/aussiebroadwan/riskconsole/internal/console/app"
	"github.com/aussiebroadwan/riskconsole/internal/console/cli"
)

func main() {
	cfg := app.LoadConfig()

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("failed to initialize console: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	runner := &cli.Runner{
		Client:  application.Client(),
		Session: application.Session(),
		Boot:    application.Boot,
	}
	code := runner.Run(ctx, os.Args[1:])

	stop()
	if err := application.Close(); err != nil && code == 0 {
		code = 1
	}
	os.Exit(code)
}
