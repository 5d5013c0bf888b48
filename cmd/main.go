package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/dospunk/WUOG-In-Philosophy-Checker/internal/services"
	"github.com/dospunk/WUOG-In-Philosophy-Checker/internal/shared"
	"github.com/urfave/cli/v3"
)

func main() {
	logger := shared.NewLogger(nil)

	config := shared.DefaultConfig()
	if _, err := os.Stat("config.toml"); err == nil {
		if loadedConfig, err := shared.LoadConfig("config.toml"); err == nil {
			config = loadedConfig
		}
	}

	httpClient := &http.Client{
		Timeout: time.Duration(config.Billboard.TimeoutSeconds) * time.Second,
	}
	source := services.NewBillboardService(config.Billboard.BaseURL, httpClient, config.Billboard.RequestsPerMinute)

	runner := NewRunner(RunnerOpts{
		Config: config,
		Source: source,
		Logger: logger,
	})

	app := &cli.Command{
		Name:     "philosophy",
		Usage:    "Check whether an artist has ever charted on Billboard",
		Version:  "0.3.0",
		Commands: runner.register(),
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		if errors.Is(err, shared.ErrSourceUnavailable) {
			logger.Fatalf("billboard unreachable: %v", err)
		}
		logger.Fatalf("application error: %v", err)
	}
}
