// Package config reads the storefront configuration from environment variables,
// optionally seeded from a .env file in the working directory.
package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"
)

// Config is the storefront service configuration, read from the environment.
type Config struct {
	Server    ServerConfig
	Timeouts  TimeoutConfig
	Search    SearchConfig
	Inventory InventoryConfig
	Logging   LoggingConfig
	App       AppConfig
}

// ServerConfig controls the HTTP listener and the per-client API limiter.
type ServerConfig struct {
	Port         int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"10s"`

	// RateLimit caps API requests per second per client IP; 0 disables limiting
	RateLimit float64 `env:"SERVER_RATE_LIMIT" envDefault:"0"`
	RateBurst int     `env:"SERVER_RATE_BURST" envDefault:"20"`
}

// TimeoutConfig holds timeout settings for search operations.
type TimeoutConfig struct {
	GlobalSearch time.Duration `env:"TIMEOUT_GLOBAL_SEARCH" envDefault:"5s"`
	PerSource    time.Duration `env:"TIMEOUT_PER_SOURCE" envDefault:"2s"`
}

// SearchConfig holds result caching, retry and paging settings.
type SearchConfig struct {
	// CacheTTL is how long a fetched result set is reused; 0 disables caching
	CacheTTL time.Duration `env:"SEARCH_CACHE_TTL" envDefault:"5m"`

	// RetryMaxAttempts is the number of fetch attempts per source, including the first
	RetryMaxAttempts int `env:"SEARCH_RETRY_MAX_ATTEMPTS" envDefault:"2"`

	DefaultPageSize int `env:"SEARCH_PAGE_SIZE_DEFAULT" envDefault:"10"`
	MaxPageSize     int `env:"SEARCH_PAGE_SIZE_MAX" envDefault:"50"`

	// SortLocale is the BCP 47 tag used to collate names
	SortLocale string `env:"SEARCH_SORT_LOCALE" envDefault:"en-IN"`
}

// InventoryConfig holds settings for the mock inventory sources.
type InventoryConfig struct {
	// RateLimit caps fetches per second per source; 0 disables limiting
	RateLimit float64 `env:"INVENTORY_RATE_LIMIT" envDefault:"0"`
	RateBurst int     `env:"INVENTORY_RATE_BURST" envDefault:"5"`

	// Latency simulates a partner round trip on every fetch
	Latency time.Duration `env:"INVENTORY_LATENCY" envDefault:"0s"`
}

// LoggingConfig holds the log level and output format.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// AppConfig names the deployment environment.
type AppConfig struct {
	Env string `env:"APP_ENV" envDefault:"development"`
}

// Load parses and validates the configuration. A missing .env file is not an error.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("no .env file loaded")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// MustLoad is Load for binaries that cannot start without configuration.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"json", "console"}
	appEnvs    = []string{"development", "staging", "production"}
)

// validate returns the first rule cfg breaks.
func validate(cfg *Config) error {
	srv, to := cfg.Server, cfg.Timeouts

	switch {
	case srv.Port < 1 || srv.Port > 65535:
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", srv.Port)
	case srv.ReadTimeout <= 0:
		return errors.New("SERVER_READ_TIMEOUT must be positive")
	case srv.WriteTimeout <= 0:
		return errors.New("SERVER_WRITE_TIMEOUT must be positive")
	case srv.RateLimit < 0:
		return errors.New("SERVER_RATE_LIMIT must not be negative")
	case srv.RateBurst < 1:
		return fmt.Errorf("SERVER_RATE_BURST must be at least 1, got %d", srv.RateBurst)
	case to.GlobalSearch <= 0:
		return errors.New("TIMEOUT_GLOBAL_SEARCH must be positive")
	case to.PerSource <= 0:
		return errors.New("TIMEOUT_PER_SOURCE must be positive")
	case to.PerSource >= to.GlobalSearch:
		return fmt.Errorf("TIMEOUT_PER_SOURCE (%s) should be less than TIMEOUT_GLOBAL_SEARCH (%s)",
			to.PerSource, to.GlobalSearch)
	}

	if err := validateSearch(cfg.Search); err != nil {
		return err
	}
	if err := validateInventory(cfg.Inventory); err != nil {
		return err
	}

	if err := oneOf("LOG_LEVEL", cfg.Logging.Level, logLevels); err != nil {
		return err
	}
	if err := oneOf("LOG_FORMAT", cfg.Logging.Format, logFormats); err != nil {
		return err
	}
	return oneOf("APP_ENV", cfg.App.Env, appEnvs)
}

func oneOf(name, value string, allowed []string) error {
	if slices.Contains(allowed, value) {
		return nil
	}
	return fmt.Errorf("%s must be one of: %s; got %q", name, strings.Join(allowed, ", "), value)
}

func validateSearch(s SearchConfig) error {
	if s.CacheTTL < 0 {
		return fmt.Errorf("SEARCH_CACHE_TTL must not be negative")
	}
	if s.RetryMaxAttempts < 1 || s.RetryMaxAttempts > 5 {
		return fmt.Errorf("SEARCH_RETRY_MAX_ATTEMPTS must be between 1 and 5, got %d", s.RetryMaxAttempts)
	}
	if s.MaxPageSize < 1 || s.MaxPageSize > 200 {
		return fmt.Errorf("SEARCH_PAGE_SIZE_MAX must be between 1 and 200, got %d", s.MaxPageSize)
	}
	if s.DefaultPageSize < 1 || s.DefaultPageSize > s.MaxPageSize {
		return fmt.Errorf("SEARCH_PAGE_SIZE_DEFAULT must be between 1 and SEARCH_PAGE_SIZE_MAX (%d), got %d",
			s.MaxPageSize, s.DefaultPageSize)
	}
	if _, err := language.Parse(s.SortLocale); err != nil {
		return fmt.Errorf("SEARCH_SORT_LOCALE %q is not a valid language tag: %w", s.SortLocale, err)
	}
	return nil
}

func validateInventory(i InventoryConfig) error {
	if i.RateLimit < 0 {
		return fmt.Errorf("INVENTORY_RATE_LIMIT must not be negative")
	}
	if i.RateBurst < 1 {
		return fmt.Errorf("INVENTORY_RATE_BURST must be at least 1, got %d", i.RateBurst)
	}
	if i.Latency < 0 {
		return fmt.Errorf("INVENTORY_LATENCY must not be negative")
	}
	return nil
}

// Locale returns the parsed sort locale, falling back to English.
func (s SearchConfig) Locale() language.Tag {
	tag, err := language.Parse(s.SortLocale)
	if err != nil {
		return language.English
	}
	return tag
}

// IsDevelopment reports whether APP_ENV is development.
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction reports whether APP_ENV is production.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
