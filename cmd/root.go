package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/zenigata-dev/zeni/internal/cli"
	"github.com/zenigata-dev/zeni/internal/config"
	"github.com/zenigata-dev/zeni/internal/store"
)

var (
	flagDataDir string
	flagQuiet   bool
)

var rootCmd = &cobra.Command{
	Use:   "zeni",
	Short: "Personal finance tracker CLI",
	Long:  "Track your holdings, income, and expenses; project where your money is going.",
	RunE:  runDashboard,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDataDir, "data-dir", "d", "", "Data directory (default: XDG data home)")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")
}

// openStore opens the ledger database, resolving the data directory
// from the flag or the config file.
func openStore() (*store.Store, config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, cfg, err
	}

	dir := flagDataDir
	if dir == "" {
		dir = config.DataDir(cfg)
	}

	st, err := store.Open(filepath.Join(dir, "zeni.db"))
	if err != nil {
		return nil, cfg, fmt.Errorf("opening ledger at %s: %w", dir, err)
	}
	return st, cfg, nil
}

// warnf prints a warning to stderr unless --quiet is set.
func warnf(format string, args ...any) {
	if flagQuiet {
		return
	}
	fmt.Fprintln(os.Stderr, cli.RenderWarning(fmt.Sprintf(format, args...)))
}

// parseAmount parses a money amount argument.
func parseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q", s)
	}
	return d, nil
}

// parseDateFlag parses a --date value, defaulting to today when empty.
func parseDateFlag(s string) (time.Time, error) {
	if s == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, want YYYY-MM-DD", s)
	}
	return d, nil
}
