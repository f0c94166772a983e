package cmd

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/zenigata-dev/zeni/internal/cli"
	"github.com/zenigata-dev/zeni/internal/metrics"
	"github.com/zenigata-dev/zeni/internal/model"
)

var scenariosCmd = &cobra.Command{
	Use:   "scenarios",
	Short: "Compare saved what-if scenarios",
	RunE:  runScenariosList,
}

var (
	scenarioName     string
	scenarioYears    int
	scenarioReturn   float64
	scenarioInvest   string
	scenarioSpending string
	scenarioGrowth   float64
	scenarioIncome   string
)

var scenariosAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Save a what-if scenario",
	RunE:  runScenariosAdd,
}

var scenariosRmCmd = &cobra.Command{
	Use:   "rm <name>",
	Short: "Remove a scenario",
	Args:  cobra.ExactArgs(1),
	RunE:  runScenariosRm,
}

var scenariosRunCmd = &cobra.Command{
	Use:   "run <name>",
	Short: "Project a single scenario year by year",
	Args:  cobra.ExactArgs(1),
	RunE:  runScenariosRun,
}

func init() {
	scenariosAddCmd.Flags().StringVarP(&scenarioName, "name", "n", "", "Scenario name")
	scenariosAddCmd.Flags().IntVarP(&scenarioYears, "years", "y", 10, "Horizon in years")
	scenariosAddCmd.Flags().Float64VarP(&scenarioReturn, "return", "r", 3, "Expected annual return in percent")
	scenariosAddCmd.Flags().StringVarP(&scenarioInvest, "invest", "i", "0", "Monthly investment")
	scenariosAddCmd.Flags().StringVarP(&scenarioSpending, "spending", "s", "0", "Monthly spending")
	scenariosAddCmd.Flags().Float64VarP(&scenarioGrowth, "income-growth", "g", 0, "Income growth in percent per year")
	scenariosAddCmd.Flags().StringVar(&scenarioIncome, "income", "0", "Baseline monthly income")
	_ = scenariosAddCmd.MarkFlagRequired("name")

	scenariosCmd.AddCommand(scenariosAddCmd)
	scenariosCmd.AddCommand(scenariosRmCmd)
	scenariosCmd.AddCommand(scenariosRunCmd)
	rootCmd.AddCommand(scenariosCmd)
}

func runScenariosList(_ *cobra.Command, _ []string) error {
	st, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	scenarios, err := st.AllScenarios()
	if err != nil {
		return err
	}
	if len(scenarios) == 0 {
		fmt.Println("\n  No scenarios saved. Add one with: zeni scenarios add")
		return nil
	}

	cur := cfg.General.Currency
	rows := make([][]string, 0, len(scenarios))
	for _, sc := range scenarios {
		final := "—"
		if p, ok := metrics.ProjectionAt(
			sc.CurrentNetWorth.InexactFloat64(),
			sc.MonthlyInvestment.InexactFloat64(),
			sc.ExpectedReturn,
			sc.Years,
		); ok {
			final = cli.FormatMoney(decimal.NewFromInt(p.TotalValue), cur)
		}
		rows = append(rows, []string{
			sc.Name,
			fmt.Sprintf("%dy", sc.Years),
			cli.FormatPercent(sc.ExpectedReturn),
			cli.FormatMoney(sc.MonthlyInvestment, cur),
			final,
		})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Scenarios",
		Headers: []string{"Name", "Horizon", "Return", "Monthly", "Projected"},
		Rows:    rows,
	}))
	return nil
}

func runScenariosAdd(_ *cobra.Command, _ []string) error {
	invest, err := parseAmount(scenarioInvest)
	if err != nil {
		return err
	}
	spending, err := parseAmount(scenarioSpending)
	if err != nil {
		return err
	}
	income, err := parseAmount(scenarioIncome)
	if err != nil {
		return err
	}
	if scenarioYears <= 0 {
		return fmt.Errorf("horizon must be positive, got %d", scenarioYears)
	}

	st, _, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	// The scenario pins today's net worth so later reruns stay comparable.
	holdings, err := st.AllHoldings()
	if err != nil {
		return err
	}

	sc := model.Scenario{
		Name:              scenarioName,
		Years:             scenarioYears,
		ExpectedReturn:    scenarioReturn,
		MonthlyInvestment: invest,
		MonthlySpending:   spending,
		IncomeGrowth:      scenarioGrowth,
		BaselineIncome:    income,
		CurrentNetWorth:   metrics.TotalValue(holdings),
	}
	if err := st.SaveScenario(&sc); err != nil {
		return err
	}
	fmt.Printf("  Saved scenario %q\n", sc.Name)
	return nil
}

func findScenario(scenarios []model.Scenario, name string) (model.Scenario, bool) {
	for _, sc := range scenarios {
		if sc.Name == name {
			return sc, true
		}
	}
	return model.Scenario{}, false
}

func runScenariosRm(_ *cobra.Command, args []string) error {
	st, _, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	scenarios, err := st.AllScenarios()
	if err != nil {
		return err
	}
	sc, ok := findScenario(scenarios, args[0])
	if !ok {
		return fmt.Errorf("no scenario named %q", args[0])
	}
	if err := st.DeleteScenario(sc.ID); err != nil {
		return err
	}
	fmt.Printf("  Removed scenario %q\n", sc.Name)
	return nil
}

func runScenariosRun(_ *cobra.Command, args []string) error {
	st, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	scenarios, err := st.AllScenarios()
	if err != nil {
		return err
	}
	sc, ok := findScenario(scenarios, args[0])
	if !ok {
		return fmt.Errorf("no scenario named %q", args[0])
	}

	points := metrics.Project(
		sc.CurrentNetWorth.InexactFloat64(),
		sc.MonthlyInvestment.InexactFloat64(),
		sc.ExpectedReturn,
		sc.Years,
	)

	cur := cfg.General.Currency
	rows := make([][]string, 0, len(points))
	for _, p := range points {
		// Income grows by the annual raise; the surplus after spending
		// and investing is what the projection does not capture.
		income := sc.BaselineIncome.InexactFloat64()
		for y := 0; y < p.Year; y++ {
			income *= 1 + sc.IncomeGrowth/100
		}
		surplus := decimal.NewFromFloat(income).Sub(sc.MonthlySpending).Sub(sc.MonthlyInvestment)
		rows = append(rows, []string{
			fmt.Sprintf("%d", p.Year),
			cli.FormatMoney(decimal.NewFromInt(p.TotalValue), cur),
			cli.FormatMoney(decimal.NewFromFloat(income).Round(0), cur),
			cli.FormatSignedMoney(surplus.Round(0), cur),
		})
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("SCENARIO  %s", sc.Name)))
	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Year", "Invested Assets", "Monthly Income", "Monthly Surplus"},
		Rows:    rows,
	}))
	return nil
}
