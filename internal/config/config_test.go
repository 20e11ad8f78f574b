package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 5*time.Minute, cfg.DefaultDuration)
	assert.True(t, cfg.AutoStop)
	assert.True(t, cfg.Bell)
	assert.Equal(t, 50, cfg.History.Limit)
	assert.Equal(t, "history.db", filepath.Base(cfg.History.Path))
}

func TestLoadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
default_duration: 1h30m
auto_stop: false
history:
  limit: 7
log:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 90*time.Minute, cfg.DefaultDuration)
	assert.False(t, cfg.AutoStop)
	assert.True(t, cfg.Bell)
	assert.Equal(t, 7, cfg.History.Limit)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "negative duration", data: "default_duration: -5s\n"},
		{name: "too long", data: "default_duration: 25h\n"},
		{name: "zero limit", data: "history:\n  limit: 0\n"},
		{name: "bad level", data: "log:\n  level: loud\n"},
		{name: "malformed", data: "default_duration: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.data), 0o644))

			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")
	cfg := DefaultConfig()
	cfg.DefaultDuration = 42 * time.Second
	cfg.Bell = false

	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoggerWritesToFile(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Log.File = filepath.Join(t.TempDir(), "countdown.log")
	cfg.Log.Level = "warn"

	logger, closer, err := cfg.Logger()
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("shown", "remaining", 3)
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(cfg.Log.File)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hidden")
	assert.Contains(t, string(data), "remaining=3")
}

func TestLoggerWithoutFileDiscards(t *testing.T) {
	logger, closer, err := DefaultConfig().Logger()
	require.NoError(t, err)
	logger.Error("nowhere")
	assert.NoError(t, closer.Close())
}
