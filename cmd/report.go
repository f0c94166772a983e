package cmd

import (
	"fmt"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/zenigata-dev/zeni/internal/dashboard"
	"github.com/zenigata-dev/zeni/internal/metrics"
	"github.com/zenigata-dev/zeni/internal/report"
)

var reportRaw bool

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Render the monthly markdown report",
	RunE:  runReport,
}

func init() {
	reportCmd.Flags().BoolVar(&reportRaw, "raw", false, "Print raw markdown instead of rendering")
	rootCmd.AddCommand(reportCmd)
}

func runReport(_ *cobra.Command, _ []string) error {
	st, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	now := time.Now()
	kpi, err := dashboard.Refresh(st, now, func(e error) {
		warnf("snapshot skipped: %v", e)
	})
	if err != nil {
		return err
	}

	holdings, err := st.AllHoldings()
	if err != nil {
		return err
	}
	history, err := st.RecentMonthlyStates(directionWindow)
	if err != nil {
		return err
	}
	plans, err := st.AllPlans()
	if err != nil {
		return err
	}

	forecast := metrics.Forecast(
		metrics.TotalValue(holdings).InexactFloat64(),
		metrics.TotalMonthlyContribution(plans),
		metrics.WeightedAverageReturn(plans),
		cfg.Forecast.DefaultYears,
	)

	md, err := report.Build(report.Data{
		GeneratedAt: now,
		Month:       now.Format("2006-01"),
		Currency:    cfg.General.Currency,
		Holdings:    holdings,
		KPI:         kpi,
		Direction:   metrics.ClassifyDirection(history),
		History:     history,
		Forecast:    forecast,
	})
	if err != nil {
		return err
	}

	if reportRaw {
		fmt.Print(md)
		return nil
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return fmt.Errorf("initializing renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return fmt.Errorf("rendering report: %w", err)
	}
	fmt.Print(out)
	return nil
}
