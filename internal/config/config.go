// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// Defaults applied before any other configuration source.
const (
	DefaultAPIVersion     = "2021-04-12"
	DefaultRequestTimeout = 30 * time.Second
	DefaultTokenTTL       = time.Hour
	DefaultRetryWait      = 500 * time.Millisecond
	DefaultLogLevel       = "info"
	DefaultLogFile        = "registry-manager.log"
	DefaultDeviceTokenTTL = 10 * time.Minute
	DefaultSensorID       = "home"

	// MaxRetryCount bounds Registry.RetryCount.
	MaxRetryCount = 10
)

// StructuredConfig is the top-level configuration container for the
// registry manager. It aggregates all sub-configurations and is populated by
// merging defaults, environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Registry holds the credential and transport settings for the IoT Hub
	// identity registry.
	Registry Registry `envPrefix:"REGISTRY_"`

	// Device holds the device identity used by the device client. The
	// registry manager ignores it.
	Device Device `envPrefix:"DEVICE_"`

	// Log holds log level and destination.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Registry holds connection settings for the device registry.
type Registry struct {
	// ConnectionString is the IoT Hub shared access policy connection string
	// ("HostName=...;SharedAccessKeyName=...;SharedAccessKey=...").
	// It is a secret and must never be logged.
	// Env: REGISTRY_CONNECTION_STRING
	ConnectionString string `env:"CONNECTION_STRING"`

	// APIVersion is the registry REST API version sent with every request.
	// Env: REGISTRY_API_VERSION
	APIVersion string `env:"API_VERSION"`

	// RequestTimeout bounds each HTTP attempt of a registry call.
	// Env: REGISTRY_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// TokenTTL is the lifetime of each generated shared access signature.
	// Env: REGISTRY_TOKEN_TTL
	TokenTTL time.Duration `env:"TOKEN_TTL"`

	// RetryCount is how many times a throttled or unavailable call is retried.
	// Zero disables retries.
	// Env: REGISTRY_RETRY_COUNT
	RetryCount int `env:"RETRY_COUNT"`

	// RetryWait is the initial back-off between retries.
	// Env: REGISTRY_RETRY_WAIT
	RetryWait time.Duration `env:"RETRY_WAIT"`
}

// Device configures the device client. Transport settings (API version,
// timeout, retries) are shared with [Registry].
type Device struct {
	// ConnectionString is a device-scoped connection string
	// ("HostName=...;DeviceId=...;SharedAccessKey=..."). It is a secret.
	// Env: DEVICE_CONNECTION_STRING
	ConnectionString string `env:"CONNECTION_STRING"`

	// TokenTTL is the lifetime of each device shared access signature.
	// Env: DEVICE_TOKEN_TTL
	TokenTTL time.Duration `env:"TOKEN_TTL"`

	// SensorID is reported in the telemetry payload.
	// Env: DEVICE_SENSOR_ID
	SensorID string `env:"SENSOR_ID"`
}

// Log configures the client logger.
type Log struct {
	// Level is a zerolog level name (trace, debug, info, warn, error).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`

	// File is the log file path. Relative paths are resolved next to the
	// executable.
	// Env: LOG_FILE
	File string `env:"FILE"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  0. Built-in defaults
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Registry: Registry{
			APIVersion:     DefaultAPIVersion,
			RequestTimeout: DefaultRequestTimeout,
			TokenTTL:       DefaultTokenTTL,
			RetryWait:      DefaultRetryWait,
		},
		Device: Device{
			TokenTTL: DefaultDeviceTokenTTL,
			SensorID: DefaultSensorID,
		},
		Log: Log{
			Level: DefaultLogLevel,
			File:  DefaultLogFile,
		},
	}
}
