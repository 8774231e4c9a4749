// Package config loads the service configuration from environment variables.
//
// Variables use the PERU_HOLIDAYS_ prefix. The first underscore after the prefix
// separates the section from the key:
//
//	PERU_HOLIDAYS_SERVER_PORT=3000          -> server.port
//	PERU_HOLIDAYS_SCRAPER_SOURCE_URL=...    -> scraper.source_url
//	PERU_HOLIDAYS_LOG_LEVEL=debug           -> log.level
//
// A .env file in the working directory is loaded first when present.
// Unset keys keep the values from Default.
package config

import (
	"fmt"
	"strings"
	"time"
	_ "time/tzdata" // time zones resolve in minimal containers

	"github.com/cristianbgp/peruvian-holidays/internal/scraper"
	"github.com/go-playground/validator/v10"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix shared by every configuration variable.
const EnvPrefix = "PERU_HOLIDAYS_"

// Config is the root configuration object.
type Config struct {
	Server  ServerConfig  `koanf:"server" validate:"required"`
	Scraper ScraperConfig `koanf:"scraper" validate:"required"`
	Log     LogConfig     `koanf:"log" validate:"required"`
	Time    TimeConfig    `koanf:"time" validate:"required"`
}

// ServerConfig groups settings for the HTTP server.
type ServerConfig struct {
	Port               string        `koanf:"port" validate:"required,numeric"`
	ReadTimeout        time.Duration `koanf:"read_timeout" validate:"required,gt=0"`
	WriteTimeout       time.Duration `koanf:"write_timeout" validate:"required,gt=0"`
	IdleTimeout        time.Duration `koanf:"idle_timeout" validate:"required,gt=0"`
	CORSAllowedOrigins []string      `koanf:"cors_allowed_origins" validate:"required,min=1"`
}

// ScraperConfig controls the upstream fetch.
type ScraperConfig struct {
	SourceURL string        `koanf:"source_url" validate:"required,url"`
	Timeout   time.Duration `koanf:"timeout" validate:"required,gt=0"`
	UserAgent string        `koanf:"user_agent" validate:"required"`
}

// LogConfig controls log verbosity and rendering.
type LogConfig struct {
	Level  string `koanf:"level" validate:"required,oneof=debug info warn error"`
	Format string `koanf:"format" validate:"required,oneof=json console"`
}

// TimeConfig sets the time zone used to resolve holiday dates and "today".
type TimeConfig struct {
	Location string `koanf:"location" validate:"required"`
}

// Default returns the configuration used when no variables are set.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:               "8080",
			ReadTimeout:        10 * time.Second,
			WriteTimeout:       30 * time.Second,
			IdleTimeout:        60 * time.Second,
			CORSAllowedOrigins: []string{"*"},
		},
		Scraper: ScraperConfig{
			SourceURL: scraper.FeriadosURL,
			Timeout:   scraper.Timeout,
			UserAgent: scraper.UserAgent,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
		Time: TimeConfig{
			Location: "America/Lima",
		},
	}
}

// Load reads configuration from the process environment.
func Load() (*Config, error) {
	return load(env.ProviderWithValue(EnvPrefix, ".", envValue))
}

func load(provider koanf.Provider) (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(provider, nil); err != nil {
		return nil, fmt.Errorf("loading env variables: %w", err)
	}

	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks struct constraints and that the time zone exists.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("validating config: %w", err)
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// Location loads the configured time zone.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Time.Location)
	if err != nil {
		return nil, fmt.Errorf("loading time zone %q: %w", c.Time.Location, err)
	}
	return loc, nil
}

// listKeys hold comma-separated values.
var listKeys = map[string]bool{
	"server.cors_allowed_origins": true,
}

// envValue maps a variable to its koanf key, splitting list values on commas.
func envValue(name, value string) (string, interface{}) {
	key := envKey(name)
	if !listKeys[key] {
		return key, value
	}

	items := make([]string, 0)
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			items = append(items, part)
		}
	}
	return key, items
}

// envKey maps PERU_HOLIDAYS_SERVER_READ_TIMEOUT to server.read_timeout.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.Replace(key, "_", ".", 1)
}
