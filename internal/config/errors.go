package config

import "errors"

// Validation errors returned when a configuration group is incomplete or
// invalid.
var (
	// ErrInvalidConfig is the fallback for failures outside any group.
	ErrInvalidConfig = errors.New("invalid configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, a negative token duration).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidSourceConfigs indicates an unknown source kind or a TOML
	// source without a path.
	ErrInvalidSourceConfigs = errors.New("invalid source configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates an invalid listen address or timeout.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, a malformed server URL or missing request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
