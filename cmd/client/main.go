package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-quiz-timer/internal/adapter"
	"github.com/MKhiriev/go-quiz-timer/internal/client"
	"github.com/MKhiriev/go-quiz-timer/internal/config"
	"github.com/MKhiriev/go-quiz-timer/internal/logger"
	"github.com/MKhiriev/go-quiz-timer/internal/service"
	"github.com/MKhiriev/go-quiz-timer/internal/store"
	"github.com/MKhiriev/go-quiz-timer/internal/tui"
	"github.com/MKhiriev/go-quiz-timer/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(buildInfo)

	cfg, err := config.GetClientConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewClientLogger("quiz-client", cfg.Log.File)
	log.Debug().Any("config", cfg).Msg("received configs")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	authority, err := adapter.NewHTTPAuthorityAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create authority adapter")
	}

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer storages.Close()

	services := service.NewClientServices(storages, authority, cfg.Workers, log)
	ui := tui.New(services.SessionClient, buildInfo, log)

	var app client.Client = client.NewApp(services, ui, log)
	if err = app.Run(ctx); err != nil {
		log.Err(err).Msg("client run error")
		fmt.Fprintf(os.Stderr, "client run error: %v\n", err)
		os.Exit(1)
	}
}
