package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/zenigata-dev/zeni/internal/config"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	reader := bufio.NewReader(os.Stdin)

	// Load existing config or defaults
	cfg, _ := config.Load()

	fmt.Println()
	fmt.Println("  Welcome to zeni!")
	fmt.Println()

	// 1. Currency
	fmt.Println("  1. Display currency")
	fmt.Printf("     ISO code used for all amounts. Current: %s\n", cfg.General.Currency)
	fmt.Print("     > ")
	currency, _ := reader.ReadString('\n')
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if currency != "" {
		cfg.General.Currency = currency
	}
	fmt.Println()

	// 2. Monthly income target
	fmt.Println("  2. Monthly income target")
	fmt.Printf("     Current: %.0f\n", cfg.General.MonthlyIncomeTarget)
	fmt.Print("     > ")
	target, _ := reader.ReadString('\n')
	target = strings.TrimSpace(target)
	if target != "" {
		v, err := strconv.ParseFloat(target, 64)
		if err != nil {
			return fmt.Errorf("invalid income target %q", target)
		}
		cfg.General.MonthlyIncomeTarget = v
	}
	fmt.Println()

	// 3. Default forecast horizon
	fmt.Println("  3. Default forecast horizon")
	fmt.Println("     (1) 5 years")
	fmt.Println("     (2) 10 years [default]")
	fmt.Println("     (3) 20 years")
	fmt.Println("     (4) 30 years")
	fmt.Print("     > ")
	choice, _ := reader.ReadString('\n')
	switch strings.TrimSpace(choice) {
	case "1":
		cfg.Forecast.DefaultYears = 5
	case "3":
		cfg.Forecast.DefaultYears = 20
	case "4":
		cfg.Forecast.DefaultYears = 30
	default:
		cfg.Forecast.DefaultYears = 10
	}
	fmt.Println()

	// 4. Theme
	fmt.Println("  4. Color theme")
	fmt.Println("     (1) Flexoki Dark [default]")
	fmt.Println("     (2) Catppuccin Mocha")
	fmt.Print("     > ")
	themeChoice, _ := reader.ReadString('\n')
	switch strings.TrimSpace(themeChoice) {
	case "2":
		cfg.Appearance.Theme = "catppuccin-mocha"
	default:
		cfg.Appearance.Theme = "flexoki-dark"
	}
	fmt.Println()

	if err := config.Save(cfg); err != nil {
		return err
	}
	fmt.Printf("  Saved %s\n", config.Path())

	// 5. Demo data
	fmt.Println()
	fmt.Print("  Seed six months of demo history? [y/N] > ")
	demo, _ := reader.ReadString('\n')
	if strings.EqualFold(strings.TrimSpace(demo), "y") {
		st, _, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()
		if _, err := seedDemoHistory(st, time.Now()); err != nil {
			return err
		}
		fmt.Println("  Done. Try: zeni dashboard")
	}

	return nil
}
