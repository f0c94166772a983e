package cmd

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/zenigata-dev/zeni/internal/cli"
	"github.com/zenigata-dev/zeni/internal/metrics"
)

var (
	forecastYears  int
	forecastReturn float64
)

var forecastCmd = &cobra.Command{
	Use:   "forecast",
	Short: "Forecast asset growth from your investment plans",
	Long: `Simulate month-by-month growth using the plans' total contribution
and their contribution-weighted average return.`,
	RunE: runForecast,
}

func init() {
	forecastCmd.Flags().IntVarP(&forecastYears, "years", "y", 0, "Horizon in years (default from config)")
	forecastCmd.Flags().Float64VarP(&forecastReturn, "return", "r", 0, "Override the weighted annual return")
	rootCmd.AddCommand(forecastCmd)
}

func runForecast(cmd *cobra.Command, _ []string) error {
	st, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	plans, err := st.AllPlans()
	if err != nil {
		return err
	}
	holdings, err := st.AllHoldings()
	if err != nil {
		return err
	}

	years := forecastYears
	if years == 0 {
		years = cfg.Forecast.DefaultYears
	}
	annualReturn := metrics.WeightedAverageReturn(plans)
	if cmd.Flags().Changed("return") {
		annualReturn = forecastReturn
	}
	monthly := metrics.TotalMonthlyContribution(plans)
	current := metrics.TotalValue(holdings).InexactFloat64()

	points := metrics.Forecast(current, monthly, annualReturn, years)
	cur := cfg.General.Currency

	values := make([]float64, 0, len(points))
	rows := make([][]string, 0, len(points))
	for _, p := range points {
		values = append(values, float64(p.TotalAssets))
		rows = append(rows, []string{
			p.Label,
			cli.FormatMoney(decimal.NewFromInt(p.TotalAssets), cur),
			cli.FormatCompact(decimal.NewFromInt(p.TotalAssets)),
		})
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("FORECAST  %dy at %s, %s/mo",
		years, cli.FormatPercent(annualReturn),
		cli.FormatCompact(decimal.NewFromFloat(monthly)))))
	fmt.Println()
	fmt.Printf("  %s\n\n", cli.RenderSparkline(values))
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Horizon", "Projected", ""},
		Rows:    rows,
	}))
	return nil
}
