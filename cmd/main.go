package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/desertthunder/mvx/internal/services"
	"github.com/desertthunder/mvx/internal/session"
	"github.com/desertthunder/mvx/internal/shared"
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

	var store *session.Store
	var auth *session.Auth

	if db, err := shared.NewDatabase(config.Database.Path); err != nil {
		logger.Warnf("session store unavailable, continuing anonymously: %v", err)
	} else {
		shared.ConfigureDatabase(db, config.Database.MaxOpenConns, config.Database.MaxIdleConns)
		if store, err = session.NewStore(db); err != nil {
			logger.Warnf("session store unavailable, continuing anonymously: %v", err)
			store = nil
		} else if auth, err = session.NewAuth(store, logger); err != nil {
			logger.Warnf("auth unavailable: %v", err)
			auth = nil
		}
	}

	timeout := time.Duration(config.API.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	httpClient := &http.Client{Timeout: timeout}

	var reader services.SessionReader
	if store != nil {
		reader = store
	}

	apiService := services.NewAPIService(services.APIOpts{
		BaseURL:    config.API.BaseURL,
		Client:     httpClient,
		Session:    reader,
		RatePerSec: config.API.RateLimitPerSec,
		Logger:     logger,
	})
	movieService := services.NewMovieService(apiService, logger)

	runner := NewRunner(RunnerOpts{
		Config:     config,
		Catalog:    movieService,
		API:        apiService,
		Auth:       auth,
		Store:      store,
		HTTPClient: httpClient,
		Logger:     logger,
	})

	app := &cli.Command{
		Name:     "mvx",
		Usage:    "Browse, search and inspect movies from the terminal",
		Version:  "0.3.0",
		Commands: runner.register(),
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		logger.Fatalf("application error: %v", err)
	}
}
