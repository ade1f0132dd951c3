package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/MKhiriev/go-registry-manager/internal/client"
	"github.com/MKhiriev/go-registry-manager/internal/config"
	"github.com/MKhiriev/go-registry-manager/internal/logger"
	"github.com/MKhiriev/go-registry-manager/models"
	"github.com/rs/zerolog"
)

const role = "device-client"

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
		Msg("starting device client")
	log.Debug().
		Bool("connection_string_set", cfg.Device.ConnectionString != "").
		Str("sensor_id", cfg.Device.SensorID).
		Dur("token_ttl", cfg.Device.TokenTTL).
		Str("api_version", cfg.Registry.APIVersion).
		Msg("received configs")

	app := client.NewDeviceApp(cfg.Registry, cfg.Device, os.Stdout, log)
	if err = app.Run(context.Background()); err != nil {
		log.Error().Err(err).Msg("device client run error")
		_, _ = fmt.Fprintf(os.Stderr, "Device client failed: %s\n", err)
		os.Exit(1)
	}

	log.Info().Msg("device client stopped")
}
