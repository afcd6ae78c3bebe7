// Package config handles the XDG configuration directory and the optional
// config.yaml inside it.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// AppName is the application directory name.
	AppName = "todocsv"

	// ConfigFile is the optional settings filename inside the config directory.
	ConfigFile = "config.yaml"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// File is the on-disk shape of config.yaml.
type File struct {
	// Root is the default project root for path and create --title.
	Root  string `yaml:"root"`
	Quiet bool   `yaml:"quiet"`
	Debug bool   `yaml:"debug"`
}

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string

	// Root overrides project root detection when non-empty.
	Root string

	// Debug enables debug logging.
	Debug bool

	// Quiet suppresses informational output.
	Quiet bool

	// Logger receives debug logs. Never nil after New.
	Logger *slog.Logger
}

// New creates a Config for the default or specified config directory and
// applies config.yaml from it when present.
// If configDir is empty, uses XDG_CONFIG_HOME/todocsv or $HOME/.config/todocsv.
func New(configDir string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}
	cfg := &Config{
		Dir:    dir,
		Logger: discardLogger,
	}

	f, err := LoadFile(cfg.FilePath())
	if err != nil {
		return nil, err
	}
	cfg.Root = f.Root
	cfg.Quiet = f.Quiet
	cfg.Debug = f.Debug
	return cfg, nil
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// FilePath returns the path to config.yaml.
func (c *Config) FilePath() string {
	return filepath.Join(c.Dir, ConfigFile)
}

// LoadFile parses a config file. A missing file yields zero values.
func LoadFile(path string) (File, error) {
	var f File
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return f, nil
	}
	if err != nil {
		return f, fmt.Errorf("read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return f, fmt.Errorf("parse %s: %w", path, err)
	}
	return f, nil
}

// Log returns the configured logger, or one that discards everything.
func (c *Config) Log() *slog.Logger {
	if c == nil || c.Logger == nil {
		return discardLogger
	}
	return c.Logger
}

// SetLogOutput routes debug logs to w when Debug is set and discards them
// otherwise.
func (c *Config) SetLogOutput(w io.Writer) {
	if !c.Debug {
		c.Logger = discardLogger
		return
	}
	c.Logger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
