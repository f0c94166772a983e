package cmd

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/zenigata-dev/zeni/internal/cli"
	"github.com/zenigata-dev/zeni/internal/metrics"
	"github.com/zenigata-dev/zeni/internal/model"
)

var monthlyCmd = &cobra.Command{
	Use:   "monthly",
	Short: "Show the monthly history",
	RunE:  runMonthlyList,
}

var monthlyCloseCmd = &cobra.Command{
	Use:   "close",
	Short: "Aggregate the current month into the history",
	Long: `Aggregate holdings, income, and expenses for the current calendar
month into a monthly record. Running it again replaces the record for
the same month, so closing late or twice is safe.`,
	RunE: runMonthlyClose,
}

func init() {
	monthlyCmd.AddCommand(monthlyCloseCmd)
	rootCmd.AddCommand(monthlyCmd)
}

func runMonthlyList(_ *cobra.Command, _ []string) error {
	st, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	states, err := st.AllMonthlyStates()
	if err != nil {
		return err
	}
	if len(states) == 0 {
		fmt.Println("\n  No monthly history yet. Close a month with: zeni monthly close")
		return nil
	}

	dir := metrics.ClassifyDirection(tail(states, directionWindow))

	cur := cfg.General.Currency
	rows := make([][]string, 0, len(states))
	for _, s := range states {
		rows = append(rows, []string{
			s.Month,
			cli.FormatMoney(s.NetWorth, cur),
			cli.FormatMoney(s.Cash, cur),
			cli.FormatMoney(s.Invested, cur),
			cli.FormatMoney(s.MonthlyIncome, cur),
			cli.FormatMoney(s.MonthlyLivingCost, cur),
		})
	}

	values := make([]float64, 0, len(states))
	for _, s := range states {
		values = append(values, s.NetWorth.InexactFloat64())
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("MONTHLY HISTORY  %s", dir.Label)))
	fmt.Println()
	fmt.Printf("  Net worth  %s\n\n", cli.RenderSparkline(values))
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Month", "Net Worth", "Cash", "Invested", "Income", "Living Cost"},
		Rows:    rows,
	}))
	return nil
}

func runMonthlyClose(_ *cobra.Command, _ []string) error {
	st, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	holdings, err := st.AllHoldings()
	if err != nil {
		return err
	}
	totals := metrics.CategoryTotals(holdings)
	netWorth := metrics.TotalValue(holdings)
	cash := totals[model.CategoryDeposit]
	invested := netWorth.Sub(cash)

	start, end := currentMonthBounds()
	incomes, err := st.IncomesInRange(start, end)
	if err != nil {
		return err
	}
	expenses, err := st.ExpensesInRange(start, end)
	if err != nil {
		return err
	}

	income := decimal.Zero
	for _, in := range incomes {
		income = income.Add(in.Amount)
	}
	livingCost := decimal.Zero
	for _, e := range expenses {
		livingCost = livingCost.Add(e.Amount)
	}

	plans, err := st.AllPlans()
	if err != nil {
		return err
	}
	contribution := decimal.NewFromFloat(metrics.TotalMonthlyContribution(plans))

	state := model.MonthlyState{
		Month:               time.Now().Format("2006-01"),
		NetWorth:            netWorth,
		Cash:                cash,
		Invested:            invested,
		MonthlyIncome:       income,
		MonthlyLivingCost:   livingCost,
		MonthlyContribution: contribution,
	}
	if err := st.UpsertMonthlyState(&state); err != nil {
		return err
	}

	cur := cfg.General.Currency
	fmt.Printf("  Closed %s: net worth %s, income %s, living cost %s\n",
		state.Month,
		cli.FormatMoney(netWorth, cur),
		cli.FormatMoney(income, cur),
		cli.FormatMoney(livingCost, cur))
	return nil
}

// tail returns the last n elements of states.
func tail(states []model.MonthlyState, n int) []model.MonthlyState {
	if len(states) <= n {
		return states
	}
	return states[len(states)-n:]
}
