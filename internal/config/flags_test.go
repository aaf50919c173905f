package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{name: "empty address", addr: NetAddress{}, expected: ""},
		{name: "localhost with port", addr: NetAddress{Host: "localhost", Port: 8080}, expected: "localhost:8080"},
		{name: "IP address with port", addr: NetAddress{Host: "127.0.0.1", Port: 9090}, expected: "127.0.0.1:9090"},
		{name: "only port no host", addr: NetAddress{Port: 8080}, expected: ":8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		errorMsg     string
		expectedAddr NetAddress
	}{
		{name: "valid localhost", input: "localhost:8080", expectedAddr: NetAddress{Host: "localhost", Port: 8080}},
		{name: "valid IPv4", input: "127.0.0.1:9090", expectedAddr: NetAddress{Host: "127.0.0.1", Port: 9090}},
		{name: "empty host", input: ":8188", expectedAddr: NetAddress{Port: 8188}},
		{name: "missing colon", input: "localhost8080", errorMsg: "need address in a form `host:port`"},
		{name: "port zero", input: "localhost:0", errorMsg: "port number must be between 1 and 65535"},
		{name: "port too large", input: "localhost:70000", errorMsg: "port number must be between 1 and 65535"},
		{name: "hostname rejected", input: "example.com:80", errorMsg: "incorrect IP-address provided"},
		{name: "port not a number", input: "localhost:http", errorMsg: "invalid syntax"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)

			if tt.errorMsg != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
				assert.Equal(t, NetAddress{}, addr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expectedAddr, addr)
		})
	}
}

func TestParseFlags_AllFlags(t *testing.T) {
	cfg, err := ParseFlags([]string{
		"-a", "127.0.0.1:9000",
		"-config", "cfg.json",
		"-k", "static",
		"-s", "players.toml",
		"-d", "file:cache.db",
		"-request-timeout", "45s",
		"-token-sign-key", "k",
		"-token-issuer", "iss",
		"-token-duration", "90m",
		"-watch",
		"-debounce", "500ms",
	})
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.Server.HTTPAddress)
	assert.Equal(t, 45*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "cfg.json", cfg.JSONFilePath)
	assert.Equal(t, Source{Kind: "static", Path: "players.toml"}, cfg.Source)
	assert.Equal(t, "file:cache.db", cfg.Storage.DB.DSN)
	assert.Equal(t, App{TokenSignKey: "k", TokenIssuer: "iss", TokenDuration: 90 * time.Minute}, cfg.App)
	assert.Equal(t, Workers{WatchSource: true, Debounce: 500 * time.Millisecond}, cfg.Workers)
}

func TestParseFlags_NoArgs(t *testing.T) {
	cfg, err := ParseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_ShortConfigAlias(t *testing.T) {
	cfg, err := ParseFlags([]string{"-c", "short.json"})
	require.NoError(t, err)
	assert.Equal(t, "short.json", cfg.JSONFilePath)
}

func TestParseFlags_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "unknown flag", args: []string{"-unknown"}},
		{name: "bad address", args: []string{"-a", "nowhere"}},
		{name: "bad duration", args: []string{"-request-timeout", "later"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseFlags(tt.args)
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), "error parsing flags")
		})
	}
}
