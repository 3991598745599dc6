package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0644))
	return dir
}

func TestLoad(t *testing.T) {
	dir := writeConfig(t, `
scan:
  algorithm: sha512
  match: "*.csv"
  exclude: "*.bak"
  recurse: false
manifest: checks/dirsum.manifest.yaml
verbose: true
`)

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "sha512", cfg.Scan.Algorithm)
	assert.Equal(t, "*.csv", cfg.Scan.Match)
	assert.Equal(t, "*.bak", cfg.Scan.Exclude)
	require.NotNil(t, cfg.Scan.Recurse)
	assert.False(t, *cfg.Scan.Recurse)
	assert.Equal(t, "checks/dirsum.manifest.yaml", cfg.Manifest)
	assert.True(t, cfg.Verbose)
}

func TestLoad_PartialConfig(t *testing.T) {
	dir := writeConfig(t, "scan:\n  algorithm: md5\n")

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "md5", cfg.Scan.Algorithm)
	assert.Empty(t, cfg.Scan.Match)
	assert.Nil(t, cfg.Scan.Recurse, "unset recurse stays nil so flags can distinguish it from false")
	assert.False(t, cfg.Verbose)
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(t.TempDir())
	assert.True(t, errors.Is(err, ErrConfigNotFound))
}

func TestLoad_Invalid(t *testing.T) {
	dir := writeConfig(t, "scan: [not, a, mapping")

	_, err := Load(dir)
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrConfigNotFound))
}
