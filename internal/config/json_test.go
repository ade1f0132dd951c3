package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	jsonBody := `{
		"registry": {
			"connection_string": "HostName=hub.azure-devices.net;SharedAccessKeyName=iothubowner;SharedAccessKey=a2V5",
			"api_version": "2021-04-12",
			"request_timeout": "20s",
			"token_ttl": "45m",
			"retry_count": 2,
			"retry_wait": "1s"
		},
		"device": {
			"connection_string": "HostName=hub.azure-devices.net;DeviceId=sensor-01;SharedAccessKey=a2V5",
			"token_ttl": "5m",
			"sensor_id": "attic"
		},
		"log": {
			"level": "warn",
			"file": "/var/log/registry.log"
		}
	}`
	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, "HostName=hub.azure-devices.net;SharedAccessKeyName=iothubowner;SharedAccessKey=a2V5", cfg.Registry.ConnectionString)
	assert.Equal(t, "2021-04-12", cfg.Registry.APIVersion)
	assert.Equal(t, 20*time.Second, cfg.Registry.RequestTimeout)
	assert.Equal(t, 45*time.Minute, cfg.Registry.TokenTTL)
	assert.Equal(t, 2, cfg.Registry.RetryCount)
	assert.Equal(t, time.Second, cfg.Registry.RetryWait)
	assert.Equal(t, "HostName=hub.azure-devices.net;DeviceId=sensor-01;SharedAccessKey=a2V5", cfg.Device.ConnectionString)
	assert.Equal(t, 5*time.Minute, cfg.Device.TokenTTL)
	assert.Equal(t, "attic", cfg.Device.SensorID)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "/var/log/registry.log", cfg.Log.File)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	// Act
	cfg, err := parseJSON("definitely-does-not-exist.json")

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(p, []byte(`{ this is not json }`), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "bad_duration.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"registry": {"token_ttl": "not-a-duration"}}`), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_NumericDuration(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "numeric.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"registry": {"request_timeout": 1500000000}}`), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 1500*time.Millisecond, cfg.Registry.RequestTimeout)
}

func TestParseJSON_EmptyObject(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "empty.json")
	require.NoError(t, os.WriteFile(p, []byte(`{}`), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, StructuredConfig{}, *cfg)
}
