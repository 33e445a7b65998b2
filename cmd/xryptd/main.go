package main

import (
	"context"
	"fmt"

	"github.com/eddieoz/openxrypt/internal/config"
	"github.com/eddieoz/openxrypt/internal/crypto"
	"github.com/eddieoz/openxrypt/internal/guard"
	handler "github.com/eddieoz/openxrypt/internal/handler/http"
	"github.com/eddieoz/openxrypt/internal/logger"
	"github.com/eddieoz/openxrypt/internal/server"
	"github.com/eddieoz/openxrypt/internal/service"
	"github.com/eddieoz/openxrypt/internal/store"
	"github.com/eddieoz/openxrypt/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("xryptd")
	cfg, err := config.GetConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	if cfg.App.Version == "" {
		cfg.App.Version = buildVersion
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := store.NewConnectSQLite(ctx, cfg.Storage.KeyringPath, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to keyring database")
	}
	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error migrating keyring database")
	}

	keys := store.NewKeyRing(db, log)
	services := service.NewServices(keys, crypto.NewEngine(), guard.New(), log)

	results := workers.NewResults()
	scanWorker := workers.NewScanWorker(ctx, services.ScanService, results.Sink(), cfg.Workers.MutationQueueSize, log)
	workers.NewWorkers(scanWorker).Run()

	handlers := handler.NewHandler(services, scanWorker, results, cfg.App.Version, log)

	srv, err := server.NewServer(handlers.Init(), cfg.Server, log, func() {
		cancel()
		if err := keys.Close(); err != nil {
			log.Err(err).Msg("error closing keyring store")
		}
	})
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
