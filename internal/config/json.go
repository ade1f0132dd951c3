package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] for the JSON file source.
type StructuredJSONConfig struct {
	Registry struct {
		ConnectionString string   `json:"connection_string"`
		APIVersion       string   `json:"api_version"`
		RequestTimeout   Duration `json:"request_timeout"`
		TokenTTL         Duration `json:"token_ttl"`
		RetryCount       int      `json:"retry_count"`
		RetryWait        Duration `json:"retry_wait"`
	} `json:"registry,omitempty"`
	Device struct {
		ConnectionString string   `json:"connection_string"`
		TokenTTL         Duration `json:"token_ttl"`
		SensorID         string   `json:"sensor_id"`
	} `json:"device,omitempty"`
	Log struct {
		Level string `json:"level"`
		File  string `json:"file"`
	} `json:"log,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Registry: Registry{
			ConnectionString: jsonCfg.Registry.ConnectionString,
			APIVersion:       jsonCfg.Registry.APIVersion,
			RequestTimeout:   time.Duration(jsonCfg.Registry.RequestTimeout),
			TokenTTL:         time.Duration(jsonCfg.Registry.TokenTTL),
			RetryCount:       jsonCfg.Registry.RetryCount,
			RetryWait:        time.Duration(jsonCfg.Registry.RetryWait),
		},
		Device: Device{
			ConnectionString: jsonCfg.Device.ConnectionString,
			TokenTTL:         time.Duration(jsonCfg.Device.TokenTTL),
			SensorID:         jsonCfg.Device.SensorID,
		},
		Log: Log{
			Level: jsonCfg.Log.Level,
			File:  jsonCfg.Log.File,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
