package cmd

import (
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/zenigata-dev/zeni/internal/model"
	"github.com/zenigata-dev/zeni/internal/store"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed six months of demo history",
	Long: `Write a demo monthly history so a fresh install has something to
show. Months already present are overwritten.`,
	RunE: runSeed,
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

// Demo dataset: ~1.5% net-worth growth per month on a 5M base with a
// steady 100K contribution.
const (
	seedMonths       = 6
	seedNetWorth     = 5_000_000
	seedCash         = 1_500_000
	seedIncome       = 450_000
	seedLivingCost   = 280_000
	seedContribution = 100_000
)

func runSeed(_ *cobra.Command, _ []string) error {
	st, _, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	n, err := seedDemoHistory(st, time.Now())
	if err != nil {
		return err
	}
	fmt.Printf("  Seeded %d months of demo history\n", n)
	return nil
}

func seedDemoHistory(st *store.Store, now time.Time) (int, error) {
	for i := seedMonths - 1; i >= 0; i-- {
		date := now.AddDate(0, -i, 0)
		elapsed := seedMonths - i

		growth := float64(elapsed) * 0.015
		netWorth := math.Round(seedNetWorth*(1+growth) + seedContribution*float64(elapsed)*12)
		cash := math.Round(seedCash * (1 + growth*0.3))

		state := model.MonthlyState{
			Month:               date.Format("2006-01"),
			NetWorth:            decimal.NewFromFloat(netWorth),
			Cash:                decimal.NewFromFloat(cash),
			Invested:            decimal.NewFromFloat(netWorth - cash),
			MonthlyIncome:       decimal.NewFromInt(seedIncome),
			MonthlyLivingCost:   decimal.NewFromInt(seedLivingCost),
			MonthlyContribution: decimal.NewFromInt(seedContribution),
		}
		if err := st.UpsertMonthlyState(&state); err != nil {
			return 0, fmt.Errorf("seeding %s: %w", state.Month, err)
		}
	}
	return seedMonths, nil
}
