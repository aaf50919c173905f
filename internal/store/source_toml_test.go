package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-toml-selector/internal/logger"
	"github.com/MKhiriev/go-toml-selector/models"
)

const sampleTOML = `
title = "top-level scalars are not sections"

[player_1]
numero = 7
jujuba = "doce"
animal = "gato"

[donald]
leao = "rei"
software = "go"
nested = { a = 1 }
tags = ["x", "y"]

[mixed]
zeta = 1
alpha = 2.5
mid = true

[empty]
`

func writeTOML(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestTOMLFileSource_LoadKeepsDocumentOrder(t *testing.T) {
	src := NewTOMLFileSource(writeTOML(t, sampleTOML), logger.Nop())

	got, err := src.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"player_1", "donald", "mixed", "empty"}, got.Names())

	player, ok := got.Lookup("player_1")
	require.True(t, ok)
	assert.Equal(t, []string{"numero", "jujuba", "animal"}, player.Keys())
	numero, _ := player.Get("numero")
	assert.Equal(t, models.IntValue(7), numero)

	mixed, _ := got.Lookup("mixed")
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, mixed.Keys())
	assert.Equal(t, []models.Value{models.IntValue(1), models.FloatValue(2.5), models.BoolValue(true)}, mixed.Values())
}

func TestTOMLFileSource_DropsNonScalarFields(t *testing.T) {
	src := NewTOMLFileSource(writeTOML(t, sampleTOML), logger.Nop())

	got, err := src.Load(context.Background())
	require.NoError(t, err)

	donald, ok := got.Lookup("donald")
	require.True(t, ok)
	assert.Equal(t, []string{"leao", "software"}, donald.Keys())

	empty, ok := got.Lookup("empty")
	require.True(t, ok)
	assert.True(t, empty.IsEmpty())
}

func TestTOMLFileSource_MissingFile(t *testing.T) {
	src := NewTOMLFileSource(filepath.Join(t.TempDir(), "absent.toml"), logger.Nop())

	_, err := src.Load(context.Background())
	assert.ErrorIs(t, err, ErrSourceNotFound)

	version, ok := src.Version(context.Background())
	assert.False(t, ok)
	assert.Empty(t, version)
}

func TestTOMLFileSource_Malformed(t *testing.T) {
	src := NewTOMLFileSource(writeTOML(t, "[broken\nkey = "), logger.Nop())

	_, err := src.Load(context.Background())
	assert.ErrorIs(t, err, ErrSourceMalformed)
}

func TestTOMLFileSource_CancelledContext(t *testing.T) {
	src := NewTOMLFileSource(writeTOML(t, sampleTOML), logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := src.Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestTOMLFileSource_ReadsFreshOnEveryLoad(t *testing.T) {
	path := writeTOML(t, "[a]\nx = 1\n")
	src := NewTOMLFileSource(path, logger.Nop())

	first, err := src.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, first.Names())

	require.NoError(t, os.WriteFile(path, []byte("[b]\ny = 2\n[c]\n"), 0o600))

	second, err := src.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "c"}, second.Names())
}

func TestTOMLFileSource_VersionFollowsModTime(t *testing.T) {
	path := writeTOML(t, "[a]\nx = 1\n")
	src := NewTOMLFileSource(path, logger.Nop())

	base := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	require.NoError(t, os.Chtimes(path, base, base))
	v1, ok := src.Version(context.Background())
	require.True(t, ok)

	v1again, _ := src.Version(context.Background())
	assert.Equal(t, v1, v1again)

	later := base.Add(time.Second)
	require.NoError(t, os.Chtimes(path, later, later))
	v2, ok := src.Version(context.Background())
	require.True(t, ok)
	assert.NotEqual(t, v1, v2)
}

func TestTOMLFileSource_Name(t *testing.T) {
	src := NewTOMLFileSource("/etc/players.toml", logger.Nop())
	assert.Equal(t, "toml:/etc/players.toml", src.Name())
	assert.Equal(t, "/etc/players.toml", src.Path())
}

func TestDecodeTOML_ArrayOfTablesIsNotASection(t *testing.T) {
	got, err := DecodeTOML([]byte("[[runs]]\nid = 1\n\n[real]\nk = \"v\"\n"), logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, []string{"real"}, got.Names())
}

func TestDecodeTOML_Empty(t *testing.T) {
	got, err := DecodeTOML(nil, logger.Nop())
	require.NoError(t, err)
	assert.True(t, got.IsEmpty())
}
