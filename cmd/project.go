package cmd

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/zenigata-dev/zeni/internal/cli"
	"github.com/zenigata-dev/zeni/internal/metrics"
)

var (
	projectYears   int
	projectReturn  float64
	projectMonthly string
	projectTarget  int
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Project compound growth year by year",
	Long: `Project asset growth from the current total value. The monthly
contribution and expected return default to your investment plans and
can be overridden per run.`,
	RunE: runProject,
}

func init() {
	projectCmd.Flags().IntVarP(&projectYears, "years", "y", 0, "Horizon in years (default from config)")
	projectCmd.Flags().Float64VarP(&projectReturn, "return", "r", 0, "Annual return in percent (default from plans)")
	projectCmd.Flags().StringVarP(&projectMonthly, "monthly", "m", "", "Monthly contribution (default from plans)")
	projectCmd.Flags().IntVar(&projectTarget, "year", 0, "Show a single year instead of the full table")
	rootCmd.AddCommand(projectCmd)
}

func runProject(cmd *cobra.Command, _ []string) error {
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

	years := projectYears
	if years == 0 {
		years = cfg.Forecast.DefaultYears
	}

	annualReturn := metrics.WeightedAverageReturn(plans)
	if cmd.Flags().Changed("return") {
		annualReturn = projectReturn
	} else if annualReturn == 0 {
		annualReturn = cfg.Forecast.DefaultAnnualReturn
	}

	monthly := metrics.TotalMonthlyContribution(plans)
	if projectMonthly != "" {
		m, err := parseAmount(projectMonthly)
		if err != nil {
			return err
		}
		monthly = m.InexactFloat64()
	}

	current := metrics.TotalValue(holdings).InexactFloat64()
	cur := cfg.General.Currency

	if projectTarget > 0 {
		p, ok := metrics.ProjectionAt(current, monthly, annualReturn, projectTarget)
		if !ok {
			return fmt.Errorf("invalid target year %d", projectTarget)
		}
		fmt.Printf("  Year %d: %s (%s contributed, %s growth)\n",
			p.Year,
			cli.FormatMoney(decimal.NewFromInt(p.TotalValue), cur),
			cli.FormatMoney(decimal.NewFromInt(p.Contributions), cur),
			cli.FormatMoney(decimal.NewFromInt(p.Growth), cur))
		return nil
	}

	points := metrics.Project(current, monthly, annualReturn, years)

	rows := make([][]string, 0, len(points))
	for _, p := range points {
		rows = append(rows, []string{
			fmt.Sprintf("%d", p.Year),
			cli.FormatMoney(decimal.NewFromInt(p.TotalValue), cur),
			cli.FormatMoney(decimal.NewFromInt(p.Contributions), cur),
			cli.FormatMoney(decimal.NewFromInt(p.Growth), cur),
		})
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("PROJECTION  %dy at %s", years, cli.FormatPercent(annualReturn))))
	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Year", "Total", "Contributed", "Growth"},
		Rows:    rows,
	}))
	return nil
}
