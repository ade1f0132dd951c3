package config

import (
	"flag"
	"fmt"
	"os"
	"time"
)

// parseFlags parses the command-line arguments (without the program name).
//
// Flags:
//
//	-s/-connection-string IoT Hub connection string
//	-api-version registry REST API version
//	-request-timeout per-call timeout (e.g., "30s", "1m")
//	-token-ttl shared access signature lifetime (e.g., "1h")
//	-retry-count retries for throttled or unavailable calls
//	-retry-wait initial back-off between retries
//	-device-connection-string device connection string for the device client
//	-device-token-ttl device shared access signature lifetime
//	-sensor-id sensor id reported by the device client
//	-log-level log level (trace, debug, info, warn, error)
//	-log-file log file path
//	-c/-config json file path with configs
//
// Returns flag.ErrHelp (wrapped) when -h or -help is given.
func parseFlags(args []string) (*StructuredConfig, error) {
	var connectionString string
	var apiVersion string
	var requestTimeout time.Duration
	var tokenTTL time.Duration
	var retryCount int
	var retryWait time.Duration
	var deviceConnectionString string
	var deviceTokenTTL time.Duration
	var sensorID string
	var logLevel string
	var logFile string
	var jsonConfigPath string

	fs := flag.NewFlagSet("registry-manager", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	fs.StringVar(&connectionString, "s", "", "IoT Hub connection string")
	fs.StringVar(&connectionString, "connection-string", "", "IoT Hub connection string (alias)")
	fs.StringVar(&apiVersion, "api-version", "", "Registry REST API version")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&tokenTTL, "token-ttl", 0, "Shared access signature lifetime (e.g., 1h)")
	fs.IntVar(&retryCount, "retry-count", 0, "Retries for throttled or unavailable calls")
	fs.DurationVar(&retryWait, "retry-wait", 0, "Initial back-off between retries (e.g., 500ms)")
	fs.StringVar(&deviceConnectionString, "device-connection-string", "", "Device connection string")
	fs.DurationVar(&deviceTokenTTL, "device-token-ttl", 0, "Device shared access signature lifetime (e.g., 10m)")
	fs.StringVar(&sensorID, "sensor-id", "", "Sensor id reported in telemetry")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		Registry: Registry{
			ConnectionString: connectionString,
			APIVersion:       apiVersion,
			RequestTimeout:   requestTimeout,
			TokenTTL:         tokenTTL,
			RetryCount:       retryCount,
			RetryWait:        retryWait,
		},
		Device: Device{
			ConnectionString: deviceConnectionString,
			TokenTTL:         deviceTokenTTL,
			SensorID:         sensorID,
		},
		Log: Log{
			Level: logLevel,
			File:  logFile,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
