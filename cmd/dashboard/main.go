package main

import (
	"fmt"
	"os"

	"github.com/cruisebase/cruisebase/internal/api"
	"github.com/cruisebase/cruisebase/internal/cache"
	"github.com/cruisebase/cruisebase/internal/config"
	"github.com/cruisebase/cruisebase/internal/dashboard"
	"github.com/cruisebase/cruisebase/internal/logger"
	"github.com/cruisebase/cruisebase/internal/session"
)

var version = "dev" // Will be set during build with -ldflags

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger.Init(cfg.Logging.Level, cfg.Logging.Format)
	log := logger.GetLogger()

	store := session.NewStore(session.DefaultBackend())
	client := api.New(cfg.API.BaseURL, store)

	cacheStore, err := cache.Open(cfg.Cache.Path)
	if err != nil {
		log.Warn().Err(err).Msg("Local cache unavailable - continuing without it")
		cacheStore = nil
	}

	srv, err := dashboard.New(cfg, client, store, cacheStore, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create dashboard server")
	}

	log.Info().Str("version", version).Msg("Starting CruiseBase dashboard...")

	if err := srv.Start(); err != nil {
		log.Fatal().Err(err).Msg("Dashboard server failed")
	}
}
