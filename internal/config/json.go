package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with snake_case JSON keys
// and string durations.
type StructuredJSONConfig struct {
	App struct {
		ServerVersion int    `json:"server_version"`
		ServerID      string `json:"server_id"`
		Product       string `json:"product"`
		BaseClientURI string `json:"base_client_uri"`
		AnalyticsID   string `json:"analytics_id"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Redis struct {
			URL    string `json:"url"`
			Prefix string `json:"prefix"`
		} `json:"redis,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		GRPCAddress    string   `json:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Geo struct {
		Enabled    bool     `json:"enabled"`
		URLPrefix  string   `json:"url_prefix"`
		URLSuffix  string   `json:"url_suffix"`
		Timeout    Duration `json:"timeout"`
		IPOverride string   `json:"ip_override"`
	} `json:"geo,omitempty"`

	Workers struct {
		PollInterval  Duration `json:"poll_interval"`
		PollBatchSize int      `json:"poll_batch_size"`
	} `json:"workers,omitempty"`
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
		App: App{
			ServerVersion: jsonCfg.App.ServerVersion,
			ServerID:      jsonCfg.App.ServerID,
			Product:       jsonCfg.App.Product,
			BaseClientURI: jsonCfg.App.BaseClientURI,
			AnalyticsID:   jsonCfg.App.AnalyticsID,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
			Redis: Redis{
				URL:    jsonCfg.Storage.Redis.URL,
				Prefix: jsonCfg.Storage.Redis.Prefix,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			GRPCAddress:    jsonCfg.Server.GRPCAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Geo: Geo{
			Enabled:    jsonCfg.Geo.Enabled,
			URLPrefix:  jsonCfg.Geo.URLPrefix,
			URLSuffix:  jsonCfg.Geo.URLSuffix,
			Timeout:    time.Duration(jsonCfg.Geo.Timeout),
			IPOverride: jsonCfg.Geo.IPOverride,
		},
		Workers: Workers{
			PollInterval:  time.Duration(jsonCfg.Workers.PollInterval),
			PollBatchSize: jsonCfg.Workers.PollBatchSize,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
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
