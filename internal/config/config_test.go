package config

import (
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func TestDefault(t *testing.T) {
	cfg := Default("camera")
	assert.Equal(t, "camera", cfg.Window.Title)
	assert.Equal(t, 1280, cfg.Window.Width)
	assert.Equal(t, 720, cfg.Window.Height)
	assert.Equal(t, "assets", cfg.Assets.Root)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.NoError(t, cfg.Validate())
}

func TestLoadOverlaysBase(t *testing.T) {
	path := writeConfig(t, `
window:
  width: 640
assets:
  watch: true
log:
  level: debug
  format: json
`)
	cfg, err := Load(path, Default("camera"))
	require.NoError(t, err)

	assert.Equal(t, "camera", cfg.Window.Title)
	assert.Equal(t, 640, cfg.Window.Width)
	assert.Equal(t, 720, cfg.Window.Height)
	assert.True(t, cfg.Assets.Watch)
	assert.Equal(t, "assets", cfg.Assets.Root)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), Default("x"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load(writeConfig(t, "window: [1, 2"), Default("x"))
	assert.ErrorContains(t, err, "config: unmarshal")

	_, err = Load(writeConfig(t, "window:\n  height: 0\n"), Default("x"))
	assert.ErrorContains(t, err, "window size 1280x0 must be positive")
}

func TestParseFlagsOverrideFile(t *testing.T) {
	path := writeConfig(t, "debug: true\nlog:\n  level: warn\n")

	cfg, err := Parse(newFlagSet(), []string{"-config", path, "-log-level", "error"}, Default("x"))
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Log.Level)
	assert.True(t, cfg.Debug, "unset -debug keeps the file value")

	cfg, err = Parse(newFlagSet(), []string{"-config", path, "-debug=false"}, Default("x"))
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.False(t, cfg.Debug)
}

func TestParseNoArgs(t *testing.T) {
	cfg, err := Parse(newFlagSet(), nil, Default("x"))
	require.NoError(t, err)
	assert.Equal(t, Default("x"), cfg)
}

func TestParseBadFlag(t *testing.T) {
	_, err := Parse(newFlagSet(), []string{"-nope"}, Default("x"))
	assert.Error(t, err)
}
