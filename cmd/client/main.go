package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-bank-shell/internal/client"
	"github.com/MKhiriev/go-bank-shell/internal/config"
	"github.com/MKhiriev/go-bank-shell/internal/logger"
	"github.com/MKhiriev/go-bank-shell/internal/service"
	"github.com/MKhiriev/go-bank-shell/internal/tui"
	"github.com/MKhiriev/go-bank-shell/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	bootstrap := logger.NewLogger("bank-client", os.Stderr)
	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		bootstrap.Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("bank-client", cfg.Log.File, cfg.Log.Level)

	services, err := service.NewClientServices(cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create client services")
	}

	ui, err := tui.New(services, *cfg, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = app.Run(ctx); err != nil {
		log.Error().Err(err).Msg("client run error")
		stop()
		os.Exit(1)
	}
}

func printBuildInfo() {
	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
