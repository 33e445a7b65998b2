package main

import (
	"context"
	"fmt"

	"github.com/eddieoz/openxrypt/internal/adapter"
	"github.com/eddieoz/openxrypt/internal/config"
	"github.com/eddieoz/openxrypt/internal/logger"
	"github.com/eddieoz/openxrypt/internal/tui"
	"github.com/eddieoz/openxrypt/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("xrypt-popup")
	cfg, err := config.GetPopupConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	client, err := adapter.NewHTTPControlClient(cfg.Popup, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create control-channel client")
	}

	ui, err := tui.New(client, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	if err = ui.Run(context.Background(), buildInfo); err != nil {
		log.Fatal().Err(err).Msg("popup run error")
	}
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
