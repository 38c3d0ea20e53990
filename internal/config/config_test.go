package config

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"WORKDAY_STORE", "WORKDAY_FILE", "WORKDAY_DB", "WORKDAY_LOG_FILE", "WORKDAY_LOG_LEVEL", "WORKDAY_TICK"} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("WORKDAY_TICK", "1s")

	cfg := Load()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, BackendJSON, cfg.Backend)
	assert.Equal(t, "tracker_config.json", filepath.Base(cfg.FilePath))
	assert.Equal(t, "workday.db", filepath.Base(cfg.DBPath))
	assert.Equal(t, time.Second, cfg.Tick)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("WORKDAY_STORE", "SQLite")
	t.Setenv("WORKDAY_DB", "/tmp/x.db")
	t.Setenv("WORKDAY_LOG_LEVEL", "debug")
	t.Setenv("WORKDAY_TICK", "250ms")

	cfg := Load()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, BackendSQLite, cfg.Backend)
	assert.Equal(t, "/tmp/x.db", cfg.DBPath)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, 250*time.Millisecond, cfg.Tick)
}

func TestLoadBadValuesFallBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("WORKDAY_LOG_LEVEL", "loud")
	t.Setenv("WORKDAY_TICK", "often")

	cfg := Load()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, time.Second, cfg.Tick)
}

func TestLoadDefersValidation(t *testing.T) {
	clearEnv(t)
	t.Setenv("WORKDAY_STORE", "redis")

	cfg := Load()
	assert.Equal(t, "redis", cfg.Backend)
	assert.Error(t, cfg.Validate())

	cfg.Backend = BackendJSON
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{name: "json", cfg: Config{Backend: BackendJSON, FilePath: "a.json", Tick: time.Second}},
		{name: "sqlite", cfg: Config{Backend: BackendSQLite, DBPath: "a.db", Tick: time.Second}},
		{name: "unknown backend", cfg: Config{Backend: "yaml", Tick: time.Second}, wantErr: true},
		{name: "empty file", cfg: Config{Backend: BackendJSON, Tick: time.Second}, wantErr: true},
		{name: "empty db", cfg: Config{Backend: BackendSQLite, Tick: time.Second}, wantErr: true},
		{name: "zero tick", cfg: Config{Backend: BackendJSON, FilePath: "a.json"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoggerTagsSession(t *testing.T) {
	var buf bytes.Buffer
	NewLogger(&buf, slog.LevelInfo).Info("hello", "k", 1)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "hello", rec["msg"])
	assert.Len(t, rec["session"], 36)
}

func TestOpenLogger(t *testing.T) {
	cfg := Config{LogPath: filepath.Join(t.TempDir(), "logs", "workday.log"), LogLevel: slog.LevelWarn}
	logger, closer, err := cfg.OpenLogger()
	require.NoError(t, err)
	defer closer.Close()

	logger.Info("dropped")
	assert.False(t, logger.Enabled(t.Context(), slog.LevelInfo))
	assert.True(t, logger.Enabled(t.Context(), slog.LevelWarn))
}
