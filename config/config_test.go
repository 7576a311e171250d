package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/datarhei/sitesrv/config/vars"

	"github.com/stretchr/testify/require"
)

func TestConfigDefaults(t *testing.T) {
	cfg := New()

	require.Equal(t, "localhost", cfg.Host)
	require.Equal(t, 3000, cfg.Port)
	require.Equal(t, "server.log", cfg.LogFile)
	require.Equal(t, "public", cfg.PublicDir)
	require.Equal(t, "info", cfg.Log.Level)
	require.Equal(t, "console", cfg.Log.Format)
	require.Equal(t, false, cfg.Debug.AutoMaxProcs)
	require.Equal(t, "", cfg.Debug.AgentAddress)
	require.NotEmpty(t, cfg.Name)

	require.Equal(t, "localhost:3000", cfg.Address())
}

func TestConfigMerge(t *testing.T) {
	dir := t.TempDir()

	t.Setenv("HOST", "127.0.0.1")
	t.Setenv("PORT", "8080")
	t.Setenv("LOG_FILE", filepath.Join(dir, "access.log"))
	t.Setenv("PUBLIC_DIR", dir)
	t.Setenv("SITESRV_LOG_LEVEL", "DEBUG")

	cfg := New()
	cfg.Merge()
	cfg.Validate(true)

	require.Equal(t, false, cfg.HasErrors())

	require.Equal(t, "127.0.0.1", cfg.Host)
	require.Equal(t, 8080, cfg.Port)
	require.Equal(t, filepath.Join(dir, "access.log"), cfg.LogFile)
	require.Equal(t, dir, cfg.PublicDir)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, "127.0.0.1:8080", cfg.Address())

	require.ElementsMatch(t, []string{"host", "port", "log_file", "public_dir", "log.level"}, cfg.Overrides())
}

func TestConfigInvalidPort(t *testing.T) {
	cfg := New()
	cfg.PublicDir = t.TempDir()
	cfg.Port = 123456

	cfg.Validate(true)

	require.Equal(t, true, cfg.HasErrors())
}

func TestConfigIPv6Address(t *testing.T) {
	cfg := New()

	cfg.Host = "::1"
	cfg.Port = 0

	require.Equal(t, "[::1]:0", cfg.Address())
}

func TestConfigMissingPublicDir(t *testing.T) {
	cfg := New()
	cfg.PublicDir = filepath.Join(t.TempDir(), "nonexistent")

	cfg.Validate(true)

	require.Equal(t, false, cfg.HasErrors())

	warnings := []string{}
	cfg.Messages(func(level string, v vars.Variable, message string) {
		if level == "warn" {
			warnings = append(warnings, v.Name)
		}
	})

	require.Equal(t, []string{"public_dir"}, warnings)
}

func TestConfigPublicDirIsFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "index.html")
	require.NoError(t, os.WriteFile(file, []byte("hello"), 0644))

	cfg := New()
	cfg.PublicDir = file

	cfg.Validate(true)

	require.Equal(t, false, cfg.HasErrors())
}
