package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-post-keeper/internal/adapter"
	"github.com/MKhiriev/go-post-keeper/internal/client"
	"github.com/MKhiriev/go-post-keeper/internal/config"
	"github.com/MKhiriev/go-post-keeper/internal/logger"
)

func main() {
	cfg, args, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, "error getting configs:", err)
		os.Exit(2)
	}

	log := logger.NewConsoleLogger("post-client", cfg.LogLevel)

	api, err := adapter.NewHTTPAPIClient(*cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating api client")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	if err = client.NewApp(api, os.Stdout, log).Run(ctx, args); err != nil {
		log.Error().Err(err).Msg("command failed")
		stop()
		os.Exit(1)
	}
}
