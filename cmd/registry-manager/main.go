package main

import (
	"context"
	"errors"
	"flag"
	"os"

	"github.com/MKhiriev/go-registry-manager/internal/client"
	"github.com/MKhiriev/go-registry-manager/internal/config"
	"github.com/MKhiriev/go-registry-manager/internal/logger"
	"github.com/MKhiriev/go-registry-manager/models"
	"github.com/rs/zerolog"
)

const role = "registry-manager"

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	bootLog := logger.NewLogger(role, os.Stderr, zerolog.InfoLevel)

	cfg, err := config.GetStructuredConfig()
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		bootLog.Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger(role, cfg.Log.File, cfg.Log.Level)
	log.Info().
		Object("build", models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)).
		Msg("starting registry manager")
	log.Debug().
		Bool("connection_string_set", cfg.Registry.ConnectionString != "").
		Str("api_version", cfg.Registry.APIVersion).
		Dur("request_timeout", cfg.Registry.RequestTimeout).
		Dur("token_ttl", cfg.Registry.TokenTTL).
		Int("retry_count", cfg.Registry.RetryCount).
		Dur("retry_wait", cfg.Registry.RetryWait).
		Msg("received configs")

	app := client.NewApp(cfg.Registry, os.Stdin, os.Stdout, log)
	if err = app.Run(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("registry manager run error")
	}

	log.Info().Msg("registry manager stopped")
}
