package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "0.0.0.0", cfg.Server.Host)
	require.Equal(t, 8080, cfg.Server.Port)
	require.Equal(t, "fplan.db", cfg.DB.Path)
	require.Equal(t, "info", cfg.Log.Level)
	require.True(t, cfg.Auth.Enabled)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("FPLAN_SERVER_HOST", "127.0.0.1")
	t.Setenv("FPLAN_SERVER_PORT", "9090")
	t.Setenv("FPLAN_DB_PATH", "/tmp/test.db")
	t.Setenv("FPLAN_LOG_LEVEL", "debug")
	t.Setenv("FPLAN_AUTH_ENABLED", "false")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "127.0.0.1", cfg.Server.Host)
	require.Equal(t, 9090, cfg.Server.Port)
	require.Equal(t, "/tmp/test.db", cfg.DB.Path)
	require.Equal(t, "debug", cfg.Log.Level)
	require.False(t, cfg.Auth.Enabled)
}

func TestLoad_InvalidPort(t *testing.T) {
	t.Setenv("FPLAN_SERVER_PORT", "not-a-port")

	_, err := Load()
	require.Error(t, err)
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := []byte("server:\n  port: 3000\ndb:\n  path: custom.db\nlog:\n  level: warn\n")
	require.NoError(t, os.WriteFile(path, data, 0o600))
	t.Setenv("FPLAN_CONFIG_PATH", path)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 3000, cfg.Server.Port)
	require.Equal(t, "custom.db", cfg.DB.Path)
	require.Equal(t, "warn", cfg.Log.Level)

	// Env still wins over the file
	t.Setenv("FPLAN_SERVER_PORT", "4000")
	cfg, err = Load()
	require.NoError(t, err)
	require.Equal(t, 4000, cfg.Server.Port)
}

func TestLoad_MissingFile(t *testing.T) {
	t.Setenv("FPLAN_CONFIG_PATH", "/does/not/exist.yaml")

	_, err := Load()
	require.Error(t, err)
}
