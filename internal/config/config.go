// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-toml-selector binaries. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line
// flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
//   - validate: rules checked by go-playground/validator after merging.
type StructuredConfig struct {
	// App holds application-level settings: admin token parameters and the
	// application version.
	App App `envPrefix:"APP_"`

	// Source selects where section data comes from.
	Source Source `envPrefix:"SOURCE_"`

	// Storage holds the optional relational database used for the node cache.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds settings for outbound clients: the selector server and
	// the ComfyUI instance workflows are queued on.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for background workers.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// TokenSignKey is the HMAC key used to sign and verify admin tokens.
	// An empty key leaves the reload route unauthenticated.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long an admin token remains valid.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION" validate:"gte=0"`

	// HashKey signs query responses with HMAC-SHA256 in the HashSHA256
	// header. Empty disables signing.
	// Env: APP_HASH_KEY
	HashKey string `env:"HASH_KEY"`

	// Version is exposed via the /api/version/ endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Source kinds.
const (
	SourceKindTOML   = "toml"
	SourceKindStatic = "static"
)

// Source selects the backing section source.
type Source struct {
	// Kind is either "toml" (a file on disk) or "static" (the bundled
	// profile table).
	// Env: SOURCE_KIND
	Kind string `env:"KIND" validate:"oneof=toml static"`

	// Path is the TOML file location, used when Kind is "toml".
	// Env: SOURCE_PATH
	Path string `env:"PATH" validate:"required_if=Kind toml"`
}

// Storage groups the configuration for storage backends.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the node cache database.
type DB struct {
	// DSN selects the driver by scheme: "postgres://" or "postgresql://"
	// opens PostgreSQL, "file:" or a plain path opens SQLite. Empty keeps
	// the node cache in memory.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds network and timeout settings for the inbound HTTP server.
type Server struct {
	// HTTPAddress is the TCP address the HTTP server listens on, in
	// "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS" validate:"required,hostname_port"`

	// RequestTimeout bounds a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" validate:"gte=0"`
}

// Adapter holds outbound client settings.
type Adapter struct {
	// HTTPAddress is the base URL of a running selector server.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS" validate:"omitempty,url"`

	// RequestTimeout bounds a single outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" validate:"gte=0"`

	// Token is the admin token sent with reload requests.
	// Env: ADAPTER_TOKEN
	Token string `env:"TOKEN"`

	// ComfyHost and ComfyPort locate the ComfyUI instance.
	// Env: ADAPTER_COMFY_HOST, ADAPTER_COMFY_PORT
	ComfyHost string `env:"COMFY_HOST"`
	ComfyPort int    `env:"COMFY_PORT" validate:"gte=0,lte=65535"`
}

// Workers holds configuration for background workers.
type Workers struct {
	// WatchSource enables the file watcher on the TOML source.
	// Env: WORKERS_WATCH_SOURCE
	WatchSource bool `env:"WATCH_SOURCE"`

	// Debounce coalesces bursts of file events.
	// Env: WORKERS_DEBOUNCE
	Debounce time.Duration `env:"DEBOUNCE" validate:"gte=0"`
}

// Defaults applied to fields no source has set.
const (
	DefaultSourcePath      = "config.toml"
	DefaultHTTPAddress     = "localhost:8080"
	DefaultAdapterAddress  = "http://localhost:8080"
	DefaultRequestTimeout  = 30 * time.Second
	DefaultTokenIssuer     = "go-toml-selector"
	DefaultTokenDuration   = 24 * time.Hour
	DefaultDebounce        = 200 * time.Millisecond
	DefaultComfyHost       = "127.0.0.1"
	DefaultComfyPort       = 8188
	DefaultAppVersion      = "dev"
	DefaultAdapterTimeout  = 10 * time.Second
	defaultSourceKindValue = SourceKindTOML
)

// GetStructuredConfig loads, merges, and validates the server configuration.
// Sources are consulted in the following priority order (an earlier source
// wins for every field it sets):
//  1. Environment variables
//  2. Command-line flags taken from args
//  3. JSON file (path resolved from sources 1 and 2)
//
// Fields no source sets receive the package defaults.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
