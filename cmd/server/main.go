package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-post-keeper/internal/config"
	"github.com/MKhiriev/go-post-keeper/internal/handler"
	"github.com/MKhiriev/go-post-keeper/internal/logger"
	"github.com/MKhiriev/go-post-keeper/internal/mailer"
	"github.com/MKhiriev/go-post-keeper/internal/server"
	"github.com/MKhiriev/go-post-keeper/internal/service"
	"github.com/MKhiriev/go-post-keeper/internal/store"
	"github.com/MKhiriev/go-post-keeper/internal/workers"
	"github.com/MKhiriev/go-post-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("post-server", "info").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("post-server", cfg.App.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	sender, err := mailer.NewSender(cfg.Mail, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating mail sender")
	}
	mailWorker := workers.NewMailWorker(sender, cfg.Mail.QueueSize, log)

	services, err := service.NewServices(store.NewStorages(db, log), mailWorker, *cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, workers.NewWorkers(mailWorker), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(ctx); err != nil {
		log.Err(err).Msg("server stopped with error")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion)
	fmt.Printf("Build date: %s\n", info.BuildDate)
	fmt.Printf("Build commit: %s\n", info.BuildCommit)
}
