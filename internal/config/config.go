// Package config loads and validates the tracker configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/Veraticus/finance-tracker/internal/common"
	"github.com/spf13/viper"
)

// Viper keys.
const (
	KeyCurrency     = "ui.currency"
	KeyTheme        = "ui.theme"
	KeyLogLevel     = "logging.level"
	KeyLogFormat    = "logging.format"
	KeyLogFile      = "logging.file"
	KeyImportFiles  = "import.files"
	DefaultCurrency = "₹"
	DefaultTheme    = "default"
)

var (
	validLevels  = []string{"debug", "info", "warn", "error"}
	validFormats = []string{"console", "json"}
	validThemes  = []string{"default", "catppuccin-mocha"}
)

// Config is the resolved configuration for a tracker session.
type Config struct {
	Currency    string
	Theme       string
	LogLevel    string
	LogFormat   string
	LogFile     string
	ImportFiles []string
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyCurrency, DefaultCurrency)
	v.SetDefault(KeyTheme, DefaultTheme)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "console")
}

// Load reads the configuration from v. Precedence is the usual viper order:
// flags, TRACKER_ env vars, config file, defaults.
func Load(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Currency:  strings.TrimSpace(v.GetString(KeyCurrency)),
		Theme:     strings.TrimSpace(v.GetString(KeyTheme)),
		LogLevel:  strings.ToLower(strings.TrimSpace(v.GetString(KeyLogLevel))),
		LogFormat: strings.ToLower(strings.TrimSpace(v.GetString(KeyLogFormat))),
		LogFile:   ExpandPath(strings.TrimSpace(v.GetString(KeyLogFile))),
	}

	for _, path := range v.GetStringSlice(KeyImportFiles) {
		if path = strings.TrimSpace(path); path != "" {
			cfg.ImportFiles = append(cfg.ImportFiles, ExpandPath(path))
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every field and reports all problems at once.
func (c *Config) Validate() error {
	var problems []string

	if c.Currency == "" {
		problems = append(problems, "currency symbol cannot be empty")
	} else if utf8.RuneCountInString(c.Currency) > 4 {
		problems = append(problems, fmt.Sprintf("currency symbol %q is too long: at most 4 characters", c.Currency))
	}

	if !contains(validThemes, c.Theme) {
		problems = append(problems, fmt.Sprintf("invalid theme '%s': must be one of %v", c.Theme, validThemes))
	}
	if !contains(validLevels, c.LogLevel) {
		problems = append(problems, fmt.Sprintf("invalid log level '%s': must be one of %v", c.LogLevel, validLevels))
	}
	if !contains(validFormats, c.LogFormat) {
		problems = append(problems, fmt.Sprintf("invalid log format '%s': must be one of %v", c.LogFormat, validFormats))
	}

	if c.LogFile != "" {
		dir := filepath.Dir(c.LogFile)
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			problems = append(problems, fmt.Sprintf("log file directory does not exist: %s", dir))
		}
	}

	for _, path := range c.ImportFiles {
		info, err := os.Stat(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			problems = append(problems, fmt.Sprintf("import file does not exist: %s", path))
		case err != nil:
			problems = append(problems, fmt.Sprintf("cannot read import file %s: %v", path, err))
		case info.IsDir():
			problems = append(problems, fmt.Sprintf("import path is a directory: %s", path))
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w:\n- %s", common.ErrInvalidConfig, strings.Join(problems, "\n- "))
	}
	return nil
}

// ExpandPath expands a leading ~ and $VAR references in a file path.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}

	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
		}
	}

	return os.ExpandEnv(path)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
