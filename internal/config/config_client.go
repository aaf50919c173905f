package config

import (
	"fmt"
	"time"
)

// ClientSource selects the section source the CLI resolves locally.
type ClientSource struct {
	Kind string
	Path string
}

// ClientAdapter holds network settings used by the CLI transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the selector server.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound requests.
	RequestTimeout time.Duration
	// Token is sent as a bearer token on reload requests.
	Token string
	// ComfyHost and ComfyPort locate the ComfyUI instance for `apply`.
	ComfyHost string
	ComfyPort int
}

// ClientApp holds the token settings the CLI uses to mint admin tokens.
type ClientApp struct {
	TokenSignKey  string
	TokenIssuer   string
	TokenDuration time.Duration

	// HashKey verifies the HashSHA256 header of server responses.
	HashKey string
}

// ClientConfig is the top-level CLI configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Source  ClientSource
	Adapter ClientAdapter
}

// GetClientConfig builds and validates the CLI config view. Unlike
// [GetStructuredConfig] it does not parse process flags: the CLI owns its
// own flag set and passes the JSON path it received, if any.
func GetClientConfig(jsonPath string) (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withJSONFile(jsonPath).
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			TokenSignKey:  cfg.App.TokenSignKey,
			TokenIssuer:   cfg.App.TokenIssuer,
			TokenDuration: cfg.App.TokenDuration,
			HashKey:       cfg.App.HashKey,
		},
		Source: ClientSource{
			Kind: cfg.Source.Kind,
			Path: cfg.Source.Path,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			Token:          cfg.Adapter.Token,
			ComfyHost:      cfg.Adapter.ComfyHost,
			ComfyPort:      cfg.Adapter.ComfyPort,
		},
	}

	return clientCfg, clientCfg.validate()
}
