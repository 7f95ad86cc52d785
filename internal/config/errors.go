package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates a missing database DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates a missing HTTP listen address.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidGeoConfigs indicates geolocation is enabled without a
	// provider URL prefix.
	ErrInvalidGeoConfigs = errors.New("invalid geo configuration")
	// ErrInvalidWorkerConfigs indicates a non-positive poll interval or
	// batch size.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
