// Package config loads and saves the zeni TOML configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all zeni configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Forecast   ForecastConfig   `toml:"forecast"`
	Appearance AppearanceConfig `toml:"appearance"`
}

// GeneralConfig holds profile-level preferences.
type GeneralConfig struct {
	Currency            string  `toml:"currency"` // ISO code, display only
	DataDir             string  `toml:"data_dir,omitempty"`
	MonthlyIncomeTarget float64 `toml:"monthly_income_target"`
	AnnualRaiseRate     float64 `toml:"annual_raise_rate"` // percent per year
}

// ForecastConfig holds projection defaults. Both values are starting
// points the user can override per invocation.
type ForecastConfig struct {
	DefaultYears        int     `toml:"default_years"`
	DefaultAnnualReturn float64 `toml:"default_annual_return"` // percent
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			Currency:            "JPY",
			MonthlyIncomeTarget: 300_000,
		},
		Forecast: ForecastConfig{
			DefaultYears:        10,
			DefaultAnnualReturn: 3,
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "zeni")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "zeni")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// Exists reports whether a config file is present.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}

// DataDir returns the ledger data directory: the configured one when
// set, otherwise the XDG data home.
func DataDir(cfg Config) string {
	if cfg.General.DataDir != "" {
		return cfg.General.DataDir
	}
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "zeni")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "zeni")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(Path())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config file, creating the directory as needed.
func Save(cfg Config) error {
	if err := os.MkdirAll(Dir(), 0o750); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(Path(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	defer func() { _ = f.Close() }()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return nil
}
