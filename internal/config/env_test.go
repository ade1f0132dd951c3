// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"REGISTRY_CONNECTION_STRING": "HostName=hub.azure-devices.net;SharedAccessKeyName=iothubowner;SharedAccessKey=a2V5",
		"REGISTRY_API_VERSION":       "2021-04-12",
		"REGISTRY_REQUEST_TIMEOUT":   "10s",
		"REGISTRY_TOKEN_TTL":         "30m",
		"REGISTRY_RETRY_COUNT":       "3",
		"REGISTRY_RETRY_WAIT":        "250ms",

		"DEVICE_CONNECTION_STRING": "HostName=hub.azure-devices.net;DeviceId=sensor-01;SharedAccessKey=a2V5",
		"DEVICE_TOKEN_TTL":         "15m",
		"DEVICE_SENSOR_ID":         "garage",

		"LOG_LEVEL": "debug",
		"LOG_FILE":  "/var/log/registry.log",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.Equal(t, envVars["REGISTRY_CONNECTION_STRING"], cfg.Registry.ConnectionString)
	assert.Equal(t, "2021-04-12", cfg.Registry.APIVersion)
	assert.Equal(t, 10*time.Second, cfg.Registry.RequestTimeout)
	assert.Equal(t, 30*time.Minute, cfg.Registry.TokenTTL)
	assert.Equal(t, 3, cfg.Registry.RetryCount)
	assert.Equal(t, 250*time.Millisecond, cfg.Registry.RetryWait)
	assert.Equal(t, envVars["DEVICE_CONNECTION_STRING"], cfg.Device.ConnectionString)
	assert.Equal(t, 15*time.Minute, cfg.Device.TokenTTL)
	assert.Equal(t, "garage", cfg.Device.SensorID)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/var/log/registry.log", cfg.Log.File)
}

func TestParseEnv_EmptyEnv(t *testing.T) {
	// Arrange
	clearEnvVars(t)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, StructuredConfig{}, *cfg)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"REGISTRY_TOKEN_TTL": "invalid_duration",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "env")
}

func TestParseEnv_DurationFormats(t *testing.T) {
	tests := []struct {
		name     string
		envValue string
		expected time.Duration
	}{
		{"hours", "2h", 2 * time.Hour},
		{"minutes", "45m", 45 * time.Minute},
		{"seconds", "30s", 30 * time.Second},
		{"combined", "1h30m", 90 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			setEnvVars(t, map[string]string{
				"REGISTRY_REQUEST_TIMEOUT": tt.envValue,
			})

			// Act
			cfg := &StructuredConfig{}
			err := parseEnv(cfg)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg.Registry.RequestTimeout)
		})
	}
}

// Helpers

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	keys := []string{
		"CONFIG",
		"REGISTRY_CONNECTION_STRING",
		"REGISTRY_API_VERSION",
		"REGISTRY_REQUEST_TIMEOUT",
		"REGISTRY_TOKEN_TTL",
		"REGISTRY_RETRY_COUNT",
		"REGISTRY_RETRY_WAIT",
		"DEVICE_CONNECTION_STRING",
		"DEVICE_TOKEN_TTL",
		"DEVICE_SENSOR_ID",
		"LOG_LEVEL",
		"LOG_FILE",
	}
	for _, k := range keys {
		// t.Setenv restores the previous value after the test; an empty value
		// is treated as unset by caarlos0/env for non-required fields.
		t.Setenv(k, "")
	}
}
