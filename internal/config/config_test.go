package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeTempFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write temp config: %v", err)
	}
	return path
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"NEXTVWAP_PROVIDER", "NEXTVWAP_SIMULATIONS", "NEXTVWAP_LOG_LEVEL", "NEXTVWAP_TIMEZONE", "ALPACA_API_KEY", "ALPACA_SECRET_KEY"} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.DataSource.Provider != "yahoo" {
		t.Errorf("Provider = %q, want yahoo", cfg.DataSource.Provider)
	}
	if cfg.DataSource.Days != 60 {
		t.Errorf("Days = %d, want 60", cfg.DataSource.Days)
	}
	if cfg.DataSource.Interval != 5*time.Minute {
		t.Errorf("Interval = %v, want 5m", cfg.DataSource.Interval)
	}
	if cfg.Forecast.Simulations != 20000 {
		t.Errorf("Simulations = %d, want 20000", cfg.Forecast.Simulations)
	}
	if !cfg.IncludeSeedChange() {
		t.Error("IncludeSeedChange should default to true")
	}
	if cfg.Market.SessionCloseCron != "0 16 * * 1-5" {
		t.Errorf("SessionCloseCron = %q", cfg.Market.SessionCloseCron)
	}
	if cfg.Location() != nil {
		t.Errorf("Location = %v, want nil", cfg.Location())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoad_File(t *testing.T) {
	clearEnv(t)
	path := writeTempFile(t, `
data_source:
  provider: financego
  interval: 15m
forecast:
  simulations: 5000
  seed: 42
  include_seed_change: false
market:
  timezone: America/New_York
display:
  format: json
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.DataSource.Provider != "financego" {
		t.Errorf("Provider = %q, want financego", cfg.DataSource.Provider)
	}
	if cfg.DataSource.Interval != 15*time.Minute {
		t.Errorf("Interval = %v, want 15m", cfg.DataSource.Interval)
	}
	if cfg.DataSource.Days != 60 {
		t.Errorf("Days = %d, want default 60", cfg.DataSource.Days)
	}
	if cfg.Forecast.Simulations != 5000 || cfg.Forecast.Seed != 42 {
		t.Errorf("Forecast = %+v", cfg.Forecast)
	}
	if cfg.IncludeSeedChange() {
		t.Error("IncludeSeedChange should be false")
	}
	if cfg.Display.Format != "json" {
		t.Errorf("Display.Format = %q, want json", cfg.Display.Format)
	}
	if loc := cfg.Location(); loc == nil || loc.String() != "America/New_York" {
		t.Errorf("Location = %v", loc)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("NEXTVWAP_PROVIDER", "alpaca")
	t.Setenv("NEXTVWAP_SIMULATIONS", "1234")
	t.Setenv("ALPACA_API_KEY", "key")
	t.Setenv("ALPACA_SECRET_KEY", "secret")

	cfg, err := Load(writeTempFile(t, "data_source:\n  provider: yahoo\n"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.DataSource.Provider != "alpaca" {
		t.Errorf("Provider = %q, want alpaca", cfg.DataSource.Provider)
	}
	if cfg.Forecast.Simulations != 1234 {
		t.Errorf("Simulations = %d, want 1234", cfg.Forecast.Simulations)
	}
	if cfg.DataSource.Alpaca.APIKey != "key" || cfg.DataSource.Alpaca.APISecret != "secret" {
		t.Errorf("Alpaca = %+v", cfg.DataSource.Alpaca)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	clearEnv(t)
	if _, err := Load(writeTempFile(t, "data_source: [unterminated")); err == nil {
		t.Error("expected parse error")
	}
}

func TestValidate(t *testing.T) {
	clearEnv(t)
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"unknown provider", func(c *Config) { c.DataSource.Provider = "bloomberg" }, "Provider"},
		{"zero simulations", func(c *Config) { c.Forecast.Simulations = 0 }, "Simulations"},
		{"too many days", func(c *Config) { c.DataSource.Days = 90 }, "Days"},
		{"alpaca without keys", func(c *Config) { c.DataSource.Provider = "alpaca" }, "api_key"},
		{"fractional interval", func(c *Config) { c.DataSource.Interval = 90 * time.Second }, "whole number of minutes"},
		{"bad timezone", func(c *Config) { c.Market.Timezone = "Mars/Olympus" }, "market.timezone"},
		{"bad format", func(c *Config) { c.Display.Format = "xml" }, "Format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load("")
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			tt.mutate(cfg)
			err = cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("NEXTVWAP_CONFIG", "")
	if got := DefaultPath(); got != "configs/config.yaml" {
		t.Errorf("DefaultPath() = %q, want configs/config.yaml", got)
	}
	t.Setenv("NEXTVWAP_CONFIG", "/etc/nextvwap.yaml")
	if got := DefaultPath(); got != "/etc/nextvwap.yaml" {
		t.Errorf("DefaultPath() = %q, want /etc/nextvwap.yaml", got)
	}
}
