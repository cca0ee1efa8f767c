package main

import (
	"context"
	"fmt"

	"github.com/privyhq/privy/internal/config"
	httpHandler "github.com/privyhq/privy/internal/handler/http"
	"github.com/privyhq/privy/internal/logger"
	"github.com/privyhq/privy/internal/server"
	"github.com/privyhq/privy/internal/service"
	"github.com/privyhq/privy/internal/store"
	"github.com/privyhq/privy/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("privy-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	services := service.NewServices(storages, cfg, log)
	background := workers.NewWorkers(storages, cfg.Workers, log)

	version := cfg.App.Version
	if version == "" {
		version = buildVersion
	}
	handler := httpHandler.NewHandler(services, version, log)

	srv, err := server.NewServer(handler, background, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
