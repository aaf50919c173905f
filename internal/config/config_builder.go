package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

type configBuilder struct {
	configs  []*StructuredConfig
	jsonPath string
	err      error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 4),
	}
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occurred during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}
	config.applyDefaults()

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg, err := parseEnv[StructuredConfig]()
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags(args []string) *configBuilder {
	flagsCfg, err := ParseFlags(args)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, flagsCfg)
	return b
}

// withJSONFile pins the JSON path regardless of what earlier sources said.
func (b *configBuilder) withJSONFile(path string) *configBuilder {
	b.jsonPath = path
	return b.withJSON()
}

func (b *configBuilder) withJSON() *configBuilder {
	jsonPath := b.jsonPath
	if jsonPath == "" {
		for _, cfg := range b.configs {
			if cfg.JSONFilePath != "" {
				jsonPath = cfg.JSONFilePath
				break
			}
		}
	}

	if jsonPath == "" {
		return b
	}

	jsonCfg, err := parseJSON(jsonPath)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	jsonCfg.JSONFilePath = jsonPath
	b.configs = append(b.configs, jsonCfg)

	return b
}

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Source.Kind == "" {
		cfg.Source.Kind = defaultSourceKindValue
	}
	if cfg.Source.Kind == SourceKindTOML && cfg.Source.Path == "" {
		cfg.Source.Path = DefaultSourcePath
	}
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = DefaultTokenIssuer
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = DefaultTokenDuration
	}
	if cfg.App.Version == "" {
		cfg.App.Version = DefaultAppVersion
	}
	if cfg.Adapter.HTTPAddress == "" {
		cfg.Adapter.HTTPAddress = DefaultAdapterAddress
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = DefaultAdapterTimeout
	}
	if cfg.Adapter.ComfyHost == "" {
		cfg.Adapter.ComfyHost = DefaultComfyHost
	}
	if cfg.Adapter.ComfyPort == 0 {
		cfg.Adapter.ComfyPort = DefaultComfyPort
	}
	if cfg.Workers.Debounce == 0 {
		cfg.Workers.Debounce = DefaultDebounce
	}
}
