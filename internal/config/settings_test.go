package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func clearSettingsEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"WEBCHAN_LOG_FILE", "WEBCHAN_LOG_MAX_SIZE", "WEBCHAN_LOG_MAX_BACKUPS",
		"WEBCHAN_LOG_MAX_AGE", "DEBUG", "NO_COLOR",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadSettings(t *testing.T) {
	t.Run("returns defaults when file does not exist", func(t *testing.T) {
		clearSettingsEnv(t)

		s, err := LoadSettings(filepath.Join(t.TempDir(), "missing.yaml"))
		require.NoError(t, err)
		require.Equal(t, 1, s.LogMaxSize)
		require.Equal(t, 2, s.LogMaxBackups)
		require.Equal(t, 30, s.LogMaxAge)
		require.Equal(t, ColorAuto, s.Color)
		require.False(t, s.Debug)
	})

	t.Run("reads yaml file", func(t *testing.T) {
		clearSettingsEnv(t)

		path := filepath.Join(t.TempDir(), "config.yaml")
		content := "log_file: /tmp/wc.log\nlog_max_size: 5\ndebug: true\ncolor: never\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0600))

		s, err := LoadSettings(path)
		require.NoError(t, err)
		require.Equal(t, "/tmp/wc.log", s.LogFile)
		require.Equal(t, 5, s.LogMaxSize)
		require.Equal(t, 2, s.LogMaxBackups)
		require.True(t, s.Debug)
		require.Equal(t, ColorNever, s.Color)
	})

	t.Run("environment overrides file", func(t *testing.T) {
		clearSettingsEnv(t)
		t.Setenv("WEBCHAN_LOG_FILE", "/var/tmp/override.log")
		t.Setenv("WEBCHAN_LOG_MAX_SIZE", "9")
		t.Setenv("NO_COLOR", "1")

		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("log_file: /tmp/wc.log\ncolor: always\n"), 0600))

		s, err := LoadSettings(path)
		require.NoError(t, err)
		require.Equal(t, "/var/tmp/override.log", s.LogFile)
		require.Equal(t, 9, s.LogMaxSize)
		require.Equal(t, ColorNever, s.Color)
	})

	t.Run("ignores malformed numeric environment values", func(t *testing.T) {
		clearSettingsEnv(t)
		t.Setenv("WEBCHAN_LOG_MAX_AGE", "soon")

		s, err := LoadSettings("")
		require.NoError(t, err)
		require.Equal(t, 30, s.LogMaxAge)
	})

	t.Run("rejects malformed yaml", func(t *testing.T) {
		clearSettingsEnv(t)

		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("log_max_size: [1, 2\n"), 0600))

		_, err := LoadSettings(path)
		require.Error(t, err)
		require.Contains(t, err.Error(), "failed to parse config")
	})

	t.Run("rejects unknown color mode", func(t *testing.T) {
		clearSettingsEnv(t)

		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("color: rainbow\n"), 0600))

		_, err := LoadSettings(path)
		require.Error(t, err)
		require.Contains(t, err.Error(), "invalid color setting")
	})
}

func TestSettingsPath(t *testing.T) {
	t.Setenv("WEBCHAN_CONFIG", "/etc/webchan.yaml")
	require.Equal(t, "/etc/webchan.yaml", SettingsPath())
}
