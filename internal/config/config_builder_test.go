package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

func TestBuild_EmptyBuilderAppliesDefaults(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)

	assert.Equal(t, SourceKindTOML, cfg.Source.Kind)
	assert.Equal(t, DefaultSourcePath, cfg.Source.Path)
	assert.Equal(t, DefaultHTTPAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, DefaultRequestTimeout, cfg.Server.RequestTimeout)
	assert.Equal(t, DefaultTokenIssuer, cfg.App.TokenIssuer)
	assert.Equal(t, DefaultTokenDuration, cfg.App.TokenDuration)
	assert.Equal(t, DefaultAppVersion, cfg.App.Version)
	assert.Equal(t, DefaultAdapterAddress, cfg.Adapter.HTTPAddress)
	assert.Equal(t, DefaultComfyPort, cfg.Adapter.ComfyPort)
	assert.Equal(t, DefaultDebounce, cfg.Workers.Debounce)
	assert.Empty(t, cfg.Storage.DB.DSN)
	assert.False(t, cfg.Workers.WatchSource)
}

func TestBuild_StaticSourceKeepsEmptyPath(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{Source: Source{Kind: SourceKindStatic}})

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, SourceKindStatic, cfg.Source.Kind)
	assert.Empty(t, cfg.Source.Path)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBuild_EarlierSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Server: Server{HTTPAddress: "127.0.0.1:1000"}},
		&StructuredConfig{
			Server:  Server{HTTPAddress: "127.0.0.1:2000", RequestTimeout: 3 * time.Second},
			Storage: Storage{DB: DB{DSN: "file:second.db"}},
		},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:1000", cfg.Server.HTTPAddress)
	assert.Equal(t, 3*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "file:second.db", cfg.Storage.DB.DSN)
}

func TestBuild_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *StructuredConfig
		wantErr error
	}{
		{
			name:    "unknown source kind",
			cfg:     &StructuredConfig{Source: Source{Kind: "yaml"}},
			wantErr: ErrInvalidSourceConfigs,
		},
		{
			name:    "malformed listen address",
			cfg:     &StructuredConfig{Server: Server{HTTPAddress: "not an address"}},
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "malformed adapter url",
			cfg:     &StructuredConfig{Adapter: Adapter{HTTPAddress: "::::"}},
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name:    "negative token duration",
			cfg:     &StructuredConfig{App: App{TokenDuration: -time.Second}},
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "comfy port out of range",
			cfg:     &StructuredConfig{Adapter: Adapter{ComfyPort: 70000}},
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name:    "negative debounce",
			cfg:     &StructuredConfig{Workers: Workers{Debounce: -time.Millisecond}},
			wantErr: ErrInvalidWorkerConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newConfigBuilder()
			b.configs = append(b.configs, tt.cfg)

			cfg, err := b.build()
			assert.Nil(t, cfg)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoPathIsNoop(t *testing.T) {
	b := newConfigBuilder().withJSON()
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

func TestWithJSON_PathFromEarlierSource(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"storage": map[string]any{"db": map[string]any{"dsn": "file:json.db"}},
	})

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "file:json.db", b.configs[1].Storage.DB.DSN)
}

func TestWithJSON_MissingFileRecordsError(t *testing.T) {
	b := newConfigBuilder().withJSONFile(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, b.err)

	_, err := b.build()
	assert.Error(t, err)
}

// ── GetStructuredConfig ───────────────────────────────────────────────────────

func TestGetStructuredConfig_FlagsOverJSON(t *testing.T) {
	setEnvVars(t, nil)
	path := writeTempJSONConfig(t, map[string]any{
		"server": map[string]any{"http_address": "127.0.0.1:7000", "request_timeout": "12s"},
		"source": map[string]any{"kind": "toml", "path": "from-json.toml"},
	})

	cfg, err := GetStructuredConfig([]string{"-c", path, "-s", "from-flags.toml"})
	require.NoError(t, err)

	assert.Equal(t, "from-flags.toml", cfg.Source.Path)
	assert.Equal(t, "127.0.0.1:7000", cfg.Server.HTTPAddress)
	assert.Equal(t, 12*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, path, cfg.JSONFilePath)
}

func TestGetStructuredConfig_EnvOverFlags(t *testing.T) {
	setEnvVars(t, map[string]string{"SERVER_ADDRESS": "127.0.0.1:6000"})

	cfg, err := GetStructuredConfig([]string{"-a", "127.0.0.1:5000"})
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:6000", cfg.Server.HTTPAddress)
}

func TestGetStructuredConfig_BadFlag(t *testing.T) {
	setEnvVars(t, nil)

	_, err := GetStructuredConfig([]string{"-nope"})
	assert.Error(t, err)
}

// ── GetClientConfig ───────────────────────────────────────────────────────────

func TestGetClientConfig_Defaults(t *testing.T) {
	setEnvVars(t, nil)

	cfg, err := GetClientConfig("")
	require.NoError(t, err)

	assert.Equal(t, DefaultAdapterAddress, cfg.Adapter.HTTPAddress)
	assert.Equal(t, DefaultAdapterTimeout, cfg.Adapter.RequestTimeout)
	assert.Equal(t, DefaultComfyHost, cfg.Adapter.ComfyHost)
	assert.Equal(t, ClientSource{Kind: SourceKindTOML, Path: DefaultSourcePath}, cfg.Source)
}

func TestGetClientConfig_FromEnvAndJSON(t *testing.T) {
	setEnvVars(t, map[string]string{"ADAPTER_TOKEN": "env-token"})
	path := writeTempJSONConfig(t, map[string]any{
		"adapter": map[string]any{
			"http_address": "http://remote:8080",
			"token":        "json-token",
			"comfy_port":   9188,
		},
		"app": map[string]any{"token_sign_key": "sign"},
	})

	cfg, err := GetClientConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "env-token", cfg.Adapter.Token)
	assert.Equal(t, "http://remote:8080", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 9188, cfg.Adapter.ComfyPort)
	assert.Equal(t, "sign", cfg.App.TokenSignKey)
}

func TestGetClientConfig_InvalidJSON(t *testing.T) {
	setEnvVars(t, nil)
	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0o600))

	cfg, err := GetClientConfig(path)
	assert.Nil(t, cfg)
	assert.Error(t, err)
}
