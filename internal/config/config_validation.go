// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

const (
	defaultServerVersion  = 1
	defaultProduct        = "Channel-Elements-Web-Client-Server"
	defaultRequestTimeout = 30 * time.Second
	defaultGeoTimeout     = 5 * time.Second
	defaultPollInterval   = time.Minute
	defaultPollBatchSize  = 50
)

// defaults returns the values merged underneath every loaded configuration.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			ServerVersion: defaultServerVersion,
			Product:       defaultProduct,
		},
		Server: Server{
			RequestTimeout: defaultRequestTimeout,
		},
		Geo: Geo{
			Timeout: defaultGeoTimeout,
		},
		Workers: Workers{
			PollInterval:  defaultPollInterval,
			PollBatchSize: defaultPollBatchSize,
		},
	}
}

// validate checks that the final merged [StructuredConfig] can start a
// server.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.Geo.Enabled && cfg.Geo.URLPrefix == "" {
		return ErrInvalidGeoConfigs
	}

	if cfg.Workers.PollInterval <= 0 || cfg.Workers.PollBatchSize <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
