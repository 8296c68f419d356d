package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Color modes accepted by the color setting
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Settings holds user-level settings for logging and terminal output.
// Settings never affect the naming convention itself.
type Settings struct {
	LogFile       string `yaml:"log_file"`
	LogMaxSize    int    `yaml:"log_max_size"`
	LogMaxBackups int    `yaml:"log_max_backups"`
	LogMaxAge     int    `yaml:"log_max_age"`
	Debug         bool   `yaml:"debug"`
	Color         string `yaml:"color"`
}

// DefaultSettings returns the settings used when no config file exists
func DefaultSettings() Settings {
	return Settings{
		LogFile:       defaultLogFile(),
		LogMaxSize:    1,
		LogMaxBackups: 2,
		LogMaxAge:     30,
		Color:         ColorAuto,
	}
}

// SettingsPath returns the config file location.
// If WEBCHAN_CONFIG is set, uses that path.
// Otherwise, uses ~/.config/webchan/config.yaml
func SettingsPath() string {
	if p := os.Getenv("WEBCHAN_CONFIG"); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "webchan", "config.yaml")
}

// LoadSettings reads settings from path, then applies environment overrides.
// A missing file yields the defaults.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return Settings{}, fmt.Errorf("failed to read config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, &s); err != nil {
				return Settings{}, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
		}
	}

	s.applyEnv()

	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate checks setting values
func (s Settings) Validate() error {
	switch s.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("invalid color setting %q (expected auto, always or never)", s.Color)
	}
	if s.LogMaxSize < 0 || s.LogMaxBackups < 0 || s.LogMaxAge < 0 {
		return fmt.Errorf("log rotation settings must not be negative")
	}
	return nil
}

func (s *Settings) applyEnv() {
	if v := os.Getenv("WEBCHAN_LOG_FILE"); v != "" {
		s.LogFile = v
	}
	if n, ok := envInt("WEBCHAN_LOG_MAX_SIZE"); ok && n > 0 {
		s.LogMaxSize = n
	}
	if n, ok := envInt("WEBCHAN_LOG_MAX_BACKUPS"); ok && n >= 0 {
		s.LogMaxBackups = n
	}
	if n, ok := envInt("WEBCHAN_LOG_MAX_AGE"); ok && n > 0 {
		s.LogMaxAge = n
	}
	if os.Getenv("DEBUG") != "" {
		s.Debug = true
	}
	if os.Getenv("NO_COLOR") != "" {
		s.Color = ColorNever
	}
	s.Color = strings.ToLower(strings.TrimSpace(s.Color))
	if s.Color == "" {
		s.Color = ColorAuto
	}
}

func envInt(key string) (int, bool) {
	v := os.Getenv(key)
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}

func defaultLogFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "webchan.log"
	}
	return filepath.Join(home, ".webchan", "logs", "webchan.log")
}
