package config

import (
	"os"
	"path/filepath"
	"testing"
)

func withTempConfigHome(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	return dir
}

func TestLoadReturnsDefaultsWhenAbsent(t *testing.T) {
	withTempConfigHome(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.General.Currency != "JPY" {
		t.Errorf("currency = %q, want JPY", cfg.General.Currency)
	}
	if cfg.Forecast.DefaultYears != 10 {
		t.Errorf("default years = %d, want 10", cfg.Forecast.DefaultYears)
	}
	if Exists() {
		t.Error("Exists() = true with no file on disk")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	withTempConfigHome(t)

	cfg := DefaultConfig()
	cfg.General.Currency = "USD"
	cfg.General.MonthlyIncomeTarget = 5000
	cfg.Forecast.DefaultAnnualReturn = 7.5
	cfg.Appearance.Theme = "catppuccin-mocha"

	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !Exists() {
		t.Fatal("config file missing after Save")
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.General.Currency != "USD" {
		t.Errorf("currency = %q, want USD", got.General.Currency)
	}
	if got.General.MonthlyIncomeTarget != 5000 {
		t.Errorf("income target = %v, want 5000", got.General.MonthlyIncomeTarget)
	}
	if got.Forecast.DefaultAnnualReturn != 7.5 {
		t.Errorf("default return = %v, want 7.5", got.Forecast.DefaultAnnualReturn)
	}
	if got.Appearance.Theme != "catppuccin-mocha" {
		t.Errorf("theme = %q", got.Appearance.Theme)
	}
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	dir := withTempConfigHome(t)

	path := filepath.Join(dir, "zeni", "config.toml")
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("general = not toml ["), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(); err == nil {
		t.Fatal("Load accepted malformed TOML")
	}
}

func TestDataDirPrecedence(t *testing.T) {
	withTempConfigHome(t)
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg-data")

	cfg := DefaultConfig()
	if got := DataDir(cfg); got != filepath.Join("/tmp/xdg-data", "zeni") {
		t.Errorf("DataDir = %q", got)
	}

	cfg.General.DataDir = "/custom/path"
	if got := DataDir(cfg); got != "/custom/path" {
		t.Errorf("configured DataDir = %q, want /custom/path", got)
	}
}
