// Package config loads the picker configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix is prepended to every variable, e.g. PICKER_PORT
const EnvPrefix = "PICKER"

type Config struct {
	// Host is the address the HTTP server binds to.
	Host string `envconfig:"HOST" default:"0.0.0.0"`
	Port string `envconfig:"PORT" default:"3000"`

	DatabasePath string `envconfig:"DATABASE_PATH" default:"./picker.db"`

	SlackBotToken      string `envconfig:"SLACK_BOT_TOKEN"`
	SlackSigningSecret string `envconfig:"SLACK_SIGNING_SECRET"`

	// PresetsFile is a YAML list of {label, start, end} seeded into new channels.
	// Empty means the built-in defaults.
	PresetsFile string `envconfig:"PRESETS_FILE"`

	// ReportInvalidInput turns unparsable typed dates into an InvalidDate error.
	// When false they are dropped silently and the selection is left as it was.
	ReportInvalidInput bool `envconfig:"REPORT_INVALID_INPUT" default:"true"`

	// SessionTTL is how long an untouched picker keeps its selection. Zero disables expiry.
	SessionTTL time.Duration `envconfig:"SESSION_TTL" default:"12h"`

	// MaxRangeDays caps the span of a JSON classify request. Zero disables the cap.
	MaxRangeDays int `envconfig:"MAX_RANGE_DAYS" default:"3660"`

	// CORSAllowedOrigins lists the origins allowed to call the JSON API
	CORSAllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`

	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`

	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"json"`
}

// Load reads envFile when it exists and then the process environment
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	cfg := &Config{}
	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	if cfg.MaxRangeDays < 0 {
		return nil, fmt.Errorf("%s_MAX_RANGE_DAYS must not be negative", EnvPrefix)
	}

	if cfg.SessionTTL < 0 {
		return nil, fmt.Errorf("%s_SESSION_TTL must not be negative", EnvPrefix)
	}

	return cfg, nil
}

// Addr is the listen address of the HTTP server
func (c *Config) Addr() string {
	return c.Host + ":" + c.Port
}
