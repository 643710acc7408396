package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Veraticus/finance-tracker/internal/common"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newViper() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	return v
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(newViper())
	require.NoError(t, err)

	assert.Equal(t, DefaultCurrency, cfg.Currency)
	assert.Equal(t, DefaultTheme, cfg.Theme)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "console", cfg.LogFormat)
	assert.Empty(t, cfg.LogFile)
	assert.Empty(t, cfg.ImportFiles)
}

func TestLoad_Overrides(t *testing.T) {
	dir := t.TempDir()
	statement := filepath.Join(dir, "checking.ofx")
	require.NoError(t, os.WriteFile(statement, []byte("OFXHEADER:100"), 0o600))

	v := newViper()
	v.Set(KeyCurrency, " $ ")
	v.Set(KeyTheme, "catppuccin-mocha")
	v.Set(KeyLogLevel, "DEBUG")
	v.Set(KeyLogFormat, "json")
	v.Set(KeyLogFile, filepath.Join(dir, "tracker.log"))
	v.Set(KeyImportFiles, []string{statement, "  "})

	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, "$", cfg.Currency)
	assert.Equal(t, "catppuccin-mocha", cfg.Theme)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, filepath.Join(dir, "tracker.log"), cfg.LogFile)
	assert.Equal(t, []string{statement}, cfg.ImportFiles)
}

func TestValidate(t *testing.T) {
	dir := t.TempDir()

	valid := func() Config {
		return Config{
			Currency:  "₹",
			Theme:     "default",
			LogLevel:  "info",
			LogFormat: "console",
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantMsg string
	}{
		{
			name:   "valid",
			mutate: func(*Config) {},
		},
		{
			name:    "empty currency",
			mutate:  func(c *Config) { c.Currency = "" },
			wantMsg: "currency symbol cannot be empty",
		},
		{
			name:    "long currency",
			mutate:  func(c *Config) { c.Currency = "RUPEE" },
			wantMsg: "too long",
		},
		{
			name:    "unknown theme",
			mutate:  func(c *Config) { c.Theme = "neon" },
			wantMsg: "invalid theme 'neon'",
		},
		{
			name:    "unknown level",
			mutate:  func(c *Config) { c.LogLevel = "trace" },
			wantMsg: "invalid log level 'trace'",
		},
		{
			name:    "unknown format",
			mutate:  func(c *Config) { c.LogFormat = "xml" },
			wantMsg: "invalid log format 'xml'",
		},
		{
			name:    "missing log dir",
			mutate:  func(c *Config) { c.LogFile = filepath.Join(dir, "nope", "tracker.log") },
			wantMsg: "log file directory does not exist",
		},
		{
			name:    "missing import",
			mutate:  func(c *Config) { c.ImportFiles = []string{filepath.Join(dir, "missing.ofx")} },
			wantMsg: "import file does not exist",
		},
		{
			name:    "import is directory",
			mutate:  func(c *Config) { c.ImportFiles = []string{dir} },
			wantMsg: "import path is a directory",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, common.ErrInvalidConfig)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestValidate_ReportsAllProblems(t *testing.T) {
	cfg := Config{Theme: "neon", LogLevel: "loud", LogFormat: "xml"}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "currency symbol cannot be empty")
	assert.Contains(t, err.Error(), "invalid theme")
	assert.Contains(t, err.Error(), "invalid log level")
	assert.Contains(t, err.Error(), "invalid log format")
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	t.Setenv("TRACKER_TEST_DIR", "/var/data")

	tests := []struct {
		in   string
		want string
	}{
		{in: "", want: ""},
		{in: "~", want: home},
		{in: "~/statements/a.ofx", want: filepath.Join(home, "statements/a.ofx")},
		{in: "$TRACKER_TEST_DIR/a.ofx", want: "/var/data/a.ofx"},
		{in: "/abs/path.ofx", want: "/abs/path.ofx"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandPath(tt.in))
		})
	}
}
