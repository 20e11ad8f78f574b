package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const maxDuration = 24*time.Hour - time.Second

type Config struct {
	DefaultDuration time.Duration `yaml:"default_duration"`
	AutoStop        bool          `yaml:"auto_stop"`
	Bell            bool          `yaml:"bell"`
	History         HistoryConfig `yaml:"history"`
	Log             LogConfig     `yaml:"log"`
}

type HistoryConfig struct {
	Path  string `yaml:"path"`
	Limit int    `yaml:"limit"`
}

type LogConfig struct {
	File  string `yaml:"file"`
	Level string `yaml:"level"`
}

func DefaultConfig() *Config {
	dir, err := Dir()
	if err != nil {
		dir = "."
	}
	return &Config{
		DefaultDuration: 5 * time.Minute,
		AutoStop:        true,
		Bell:            true,
		History: HistoryConfig{
			Path:  filepath.Join(dir, "history.db"),
			Limit: 50,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Dir is the directory holding the config file and history database.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".countdown_tui"), nil
}

// DefaultPath is where Load looks when no path is given.
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads the file at path over the defaults. A missing file is not an
// error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path, creating the parent directory.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func (c *Config) Validate() error {
	if c.DefaultDuration < 0 || c.DefaultDuration > maxDuration {
		return fmt.Errorf("default_duration %s out of range [0, %s]", c.DefaultDuration, maxDuration)
	}
	if c.History.Limit <= 0 {
		return fmt.Errorf("history.limit must be positive, got %d", c.History.Limit)
	}
	if _, err := parseLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}

// Logger builds the application logger. The terminal belongs to the UI,
// so output goes to Log.File or nowhere. The returned closer releases the
// file.
func (c *Config) Logger() (*slog.Logger, io.Closer, error) {
	level, err := parseLevel(c.Log.Level)
	if err != nil {
		return nil, nil, err
	}
	if c.Log.File == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), io.NopCloser(nil), nil
	}

	f, err := os.OpenFile(c.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level})), f, nil
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("unknown log level %q", s)
}
