package config

import (
	"fmt"
	"os"
	"time"
	_ "time/tzdata"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	DataSource DataSource `yaml:"data_source"`
	Forecast   Forecast   `yaml:"forecast"`
	Market     Market     `yaml:"market"`
	Display    Display    `yaml:"display"`
	Log        Log        `yaml:"log"`
	Proxy      string     `yaml:"proxy"`
}

type DataSource struct {
	Provider string        `yaml:"provider" default:"yahoo" validate:"oneof=yahoo financego alpaca"`
	Days     int           `yaml:"days" default:"60" validate:"gte=2,lte=60"`
	Interval time.Duration `yaml:"interval" default:"5m" validate:"gte=1m"`
	Timeout  time.Duration `yaml:"timeout" default:"30s" validate:"gt=0"`
	BaseURL  string        `yaml:"base_url" validate:"omitempty,url"`
	Alpaca   Alpaca        `yaml:"alpaca"`
}

type Alpaca struct {
	APIKey    string `yaml:"api_key"`
	APISecret string `yaml:"api_secret"`
	BaseURL   string `yaml:"base_url" validate:"omitempty,url"`
	Feed      string `yaml:"feed" default:"iex" validate:"oneof=iex sip"`
}

type Forecast struct {
	Simulations int `yaml:"simulations" default:"20000" validate:"gte=1"`
	// Seed fixes the random stream; 0 draws a fresh seed per run.
	Seed uint64 `yaml:"seed"`
	// IncludeSeedChange keeps the zero change of the first day in the
	// mean/std estimate.
	IncludeSeedChange *bool `yaml:"include_seed_change" default:"true"`
}

type Market struct {
	SessionCloseCron string `yaml:"session_close_cron" default:"0 16 * * 1-5" validate:"required"`
	// Timezone overrides the exchange timezone reported by the provider.
	Timezone string `yaml:"timezone"`
}

type Display struct {
	Format string `yaml:"format" default:"text" validate:"oneof=text json"`
	Width  int    `yaml:"width" default:"60" validate:"gte=10"`
	Height int    `yaml:"height" default:"20" validate:"gte=5"`
}

type Log struct {
	Level  string `yaml:"level" default:"info" validate:"oneof=trace debug info warn error fatal panic disabled"`
	Format string `yaml:"format" default:"console" validate:"oneof=console json"`
}

// DefaultPath is the configuration file read when none is named explicitly.
// NEXTVWAP_CONFIG overrides it.
func DefaultPath() string {
	if v := os.Getenv("NEXTVWAP_CONFIG"); v != "" {
		return v
	}
	return "configs/config.yaml"
}

// Load starts from the struct-tag defaults, reads an optional YAML file on
// top, loads a .env file if present, then applies environment overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := defaults.Set(cfg); err != nil {
		return nil, fmt.Errorf("apply defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if len(data) > 0 {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config: %w", err)
			}
		}
	}

	_ = godotenv.Load()

	// Environment variable overrides
	if v := os.Getenv("NEXTVWAP_PROVIDER"); v != "" {
		cfg.DataSource.Provider = v
	}
	if v := os.Getenv("NEXTVWAP_SIMULATIONS"); v != "" {
		var n int
		if _, err := fmt.Sscanf(v, "%d", &n); err == nil {
			cfg.Forecast.Simulations = n
		}
	}
	if v := os.Getenv("NEXTVWAP_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("NEXTVWAP_TIMEZONE"); v != "" {
		cfg.Market.Timezone = v
	}
	if v := os.Getenv("ALPACA_API_KEY"); v != "" {
		cfg.DataSource.Alpaca.APIKey = v
	}
	if v := os.Getenv("ALPACA_SECRET_KEY"); v != "" {
		cfg.DataSource.Alpaca.APISecret = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// A file may set include_seed_change to null.
	if cfg.Forecast.IncludeSeedChange == nil {
		t := true
		cfg.Forecast.IncludeSeedChange = &t
	}

	return cfg, nil
}

var validate = validator.New()

// Validate checks field constraints and provider-specific requirements.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if c.DataSource.Provider == "alpaca" {
		if c.DataSource.Alpaca.APIKey == "" || c.DataSource.Alpaca.APISecret == "" {
			return fmt.Errorf("data_source.alpaca api_key and api_secret are required for the alpaca provider")
		}
	}
	if c.DataSource.Interval%time.Minute != 0 {
		return fmt.Errorf("data_source.interval must be a whole number of minutes, got %s", c.DataSource.Interval)
	}
	if c.Market.Timezone != "" {
		if _, err := time.LoadLocation(c.Market.Timezone); err != nil {
			return fmt.Errorf("market.timezone: %w", err)
		}
	}
	return nil
}

// IncludeSeedChange reports the effective include_seed_change setting.
func (c *Config) IncludeSeedChange() bool {
	return c.Forecast.IncludeSeedChange == nil || *c.Forecast.IncludeSeedChange
}

// Location returns the configured exchange timezone, or nil to use the
// provider's.
func (c *Config) Location() *time.Location {
	if c.Market.Timezone == "" {
		return nil
	}
	loc, err := time.LoadLocation(c.Market.Timezone)
	if err != nil {
		return nil
	}
	return loc
}
