package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_MissingFileUsesDefaults(t *testing.T) {
	dir := t.TempDir()
	cfg, err := New(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, cfg.Dir)
	assert.Empty(t, cfg.Root)
	assert.False(t, cfg.Quiet)
	assert.False(t, cfg.Debug)
	assert.NotNil(t, cfg.Logger)
}

func TestNew_ReadsConfigFile(t *testing.T) {
	dir := t.TempDir()
	data := "root: /srv/project\nquiet: true\ndebug: true\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFile), []byte(data), 0o644))

	cfg, err := New(dir)
	require.NoError(t, err)
	assert.Equal(t, "/srv/project", cfg.Root)
	assert.True(t, cfg.Quiet)
	assert.True(t, cfg.Debug)
}

func TestNew_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFile), []byte("quiet: [unclosed\n"), 0o644))

	_, err := New(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse ")
}

func TestDefaultConfigDir_XDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	assert.Equal(t, filepath.Join("/xdg", AppName), DefaultConfigDir())
}

func TestSetLogOutput(t *testing.T) {
	var buf bytes.Buffer

	cfg := &Config{}
	cfg.SetLogOutput(&buf)
	cfg.Logger.Debug("hidden")
	assert.Empty(t, buf.String())

	cfg.Debug = true
	cfg.SetLogOutput(&buf)
	cfg.Logger.Debug("visible", "path", "x.csv")
	assert.Contains(t, buf.String(), "msg=visible")
	assert.Contains(t, buf.String(), "path=x.csv")
}

func TestLog_NeverNil(t *testing.T) {
	var nilCfg *Config
	assert.NotNil(t, nilCfg.Log())
	assert.NotNil(t, (&Config{}).Log())

	cfg := &Config{Debug: true}
	cfg.SetLogOutput(&bytes.Buffer{})
	assert.Same(t, cfg.Logger, cfg.Log())
}
