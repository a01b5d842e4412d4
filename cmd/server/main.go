package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-gated-site/internal/config"
	"github.com/MKhiriev/go-gated-site/internal/handler"
	"github.com/MKhiriev/go-gated-site/internal/logger"
	"github.com/MKhiriev/go-gated-site/internal/server"
	"github.com/MKhiriev/go-gated-site/internal/service"
	"github.com/MKhiriev/go-gated-site/internal/store"
	"github.com/MKhiriev/go-gated-site/internal/workers"
	"github.com/MKhiriev/go-gated-site/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("go-gated-site", "").Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	log := logger.NewLogger("go-gated-site", cfg.App.LogLevel)
	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Str("db_driver", cfg.Storage.DB.Driver).
		Str("session_backend", cfg.Session.Backend).
		Dur("session_max_age", cfg.Session.MaxAge).
		Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	services, err := service.NewServices(storages, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	backgroundWorkers := workers.NewWorkers(
		workers.NewSessionSweeper(services.SessionService, cfg.Session.CleanupInterval, log),
	)

	srv, err := server.NewServer(handlers, backgroundWorkers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
