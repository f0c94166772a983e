package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/zenigata-dev/zeni/internal/cli"
	"github.com/zenigata-dev/zeni/internal/dashboard"
	"github.com/zenigata-dev/zeni/internal/metrics"
	"github.com/zenigata-dev/zeni/internal/model"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show the KPI dashboard",
	RunE:  runDashboard,
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}

// directionWindow is how many recent monthly states feed the trend
// classification.
const directionWindow = 6

func runDashboard(_ *cobra.Command, _ []string) error {
	st, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	cur := cfg.General.Currency

	kpi, err := dashboard.Refresh(st, time.Now(), func(e error) {
		warnf("snapshot skipped: %v", e)
	})
	if err != nil {
		return err
	}

	history, err := st.RecentMonthlyStates(directionWindow)
	if err != nil {
		return err
	}
	dir := metrics.ClassifyDirection(history)

	holdings, err := st.AllHoldings()
	if err != nil {
		return err
	}
	total := metrics.TotalValue(holdings)

	fmt.Println()
	fmt.Println(cli.RenderTitle("ZENI DASHBOARD"))
	fmt.Println()

	fmt.Print(cli.RenderTable(cli.Table{
		Title:   fmt.Sprintf("Direction: %s", dir.Label),
		Headers: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Total assets", cli.FormatMoney(total, cur)},
			{"Net worth change", cli.FormatSignedMoney(kpi.NetWorthChange, cur)},
			{"---"},
			{"Monthly balance", cli.FormatSignedMoney(kpi.MonthlyBalance, cur)},
			{"Monthly expenses", cli.FormatMoney(kpi.MonthlyExpenses, cur)},
			{"Savings rate", cli.FormatPercent(kpi.SavingsRateDisplay)},
			{"Liquidity", cli.FormatPercent(kpi.LiquidityRatio)},
		},
	}))
	fmt.Println()

	rows := make([][]string, 0, len(model.Categories))
	for _, c := range model.Categories {
		amount := kpi.AssetAllocation[c]
		if amount.IsZero() {
			continue
		}
		share := 0.0
		if total.Sign() > 0 {
			share = amount.Div(total).InexactFloat64()
		}
		rows = append(rows, []string{
			c.Label(),
			cli.FormatMoney(amount, cur),
			cli.RenderAllocationBar(share, 20),
			cli.FormatPercent(share * 100),
		})
	}
	if len(rows) > 0 {
		fmt.Print(cli.RenderTable(cli.Table{
			Title:   "Allocation",
			Headers: []string{"Category", "Value", "", "Share"},
			Rows:    rows,
		}))
	} else {
		fmt.Println(cli.RenderMuted("  No holdings yet. Add one with: zeni assets add"))
	}

	return nil
}
