package main

import (
	"context"
	"os"

	"github.com/MKhiriev/go-toml-selector/internal/config"
	"github.com/MKhiriev/go-toml-selector/internal/events"
	"github.com/MKhiriev/go-toml-selector/internal/handler"
	"github.com/MKhiriev/go-toml-selector/internal/logger"
	"github.com/MKhiriev/go-toml-selector/internal/node"
	"github.com/MKhiriev/go-toml-selector/internal/resolver"
	"github.com/MKhiriev/go-toml-selector/internal/server"
	"github.com/MKhiriev/go-toml-selector/internal/service"
	"github.com/MKhiriev/go-toml-selector/internal/store"
	"github.com/MKhiriev/go-toml-selector/internal/workers"
	"github.com/MKhiriev/go-toml-selector/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	log := logger.NewLogger("selector-server")
	for _, line := range build.Lines() {
		log.Info().Msg(line)
	}

	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	storages, err := store.NewStorages(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	notifier := events.NewNotifier(log)
	registry, err := node.NewDefaultRegistry(node.Deps{
		Static:    store.NewStaticSource(config.SourceKindStatic, store.DefaultProfiles()),
		TOML:      storages.Source,
		Publisher: notifier,
		Session:   resolver.NewSession(storages.NodeCache),
	}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating node registry")
	}

	services, err := service.NewServices(storages, registry, cfg, build, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, notifier, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log,
		cancel,
		notifier.Close,
		func() {
			if err := storages.Close(); err != nil {
				log.Err(err).Msg("error closing storages")
			}
		},
	)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	go workers.NewWorkers(cfg, storages, notifier, log).Run(ctx)

	srv.RunServer()
}
