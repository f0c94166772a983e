package cmd

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/zenigata-dev/zeni/internal/cli"
	"github.com/zenigata-dev/zeni/internal/model"
)

var incomeCmd = &cobra.Command{
	Use:   "income",
	Short: "List this month's income entries",
	RunE:  runIncomeList,
}

var (
	incomeAmount string
	incomeSource string
	incomeDate   string
)

var incomeAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record an income entry",
	RunE:  runIncomeAdd,
}

var incomeRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Remove an income entry",
	Args:  cobra.ExactArgs(1),
	RunE:  runIncomeRm,
}

func init() {
	incomeAddCmd.Flags().StringVarP(&incomeAmount, "amount", "a", "", "Amount")
	incomeAddCmd.Flags().StringVarP(&incomeSource, "source", "s", "", "Source (salary, side job, dividend)")
	incomeAddCmd.Flags().StringVar(&incomeDate, "date", "", "Date (YYYY-MM-DD, default today)")
	_ = incomeAddCmd.MarkFlagRequired("amount")

	incomeCmd.AddCommand(incomeAddCmd)
	incomeCmd.AddCommand(incomeRmCmd)
	rootCmd.AddCommand(incomeCmd)
}

func runIncomeList(_ *cobra.Command, _ []string) error {
	st, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	start, end := currentMonthBounds()
	incomes, err := st.IncomesInRange(start, end)
	if err != nil {
		return err
	}
	if len(incomes) == 0 {
		fmt.Println("\n  No income recorded this month.")
		return nil
	}

	cur := cfg.General.Currency
	total := decimal.Zero
	rows := make([][]string, 0, len(incomes)+2)
	for _, in := range incomes {
		total = total.Add(in.Amount)
		rows = append(rows, []string{
			shortID(in.ID),
			in.Date.Format("2006-01-02"),
			in.Source,
			cli.FormatMoney(in.Amount, cur),
		})
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{"", "", "Total", cli.FormatMoney(total, cur)})

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   fmt.Sprintf("Income — %s", start.Format("2006-01")),
		Headers: []string{"ID", "Date", "Source", "Amount"},
		Rows:    rows,
	}))
	return nil
}

func runIncomeAdd(_ *cobra.Command, _ []string) error {
	amount, err := parseAmount(incomeAmount)
	if err != nil {
		return err
	}
	date, err := parseDateFlag(incomeDate)
	if err != nil {
		return err
	}

	st, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	in := model.Income{Source: incomeSource, Amount: amount, Date: date}
	if err := st.AddIncome(&in); err != nil {
		return err
	}
	fmt.Printf("  Recorded %s income on %s\n",
		cli.FormatMoney(amount, cfg.General.Currency), date.Format("2006-01-02"))
	return nil
}

func runIncomeRm(_ *cobra.Command, args []string) error {
	st, _, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	start, end := currentMonthBounds()
	incomes, err := st.IncomesInRange(start, end)
	if err != nil {
		return err
	}
	id := ""
	for _, in := range incomes {
		if in.ID == args[0] || shortID(in.ID) == args[0] {
			id = in.ID
			break
		}
	}
	if id == "" {
		return fmt.Errorf("no income entry %q in the current month", args[0])
	}

	if err := st.DeleteIncome(id); err != nil {
		return err
	}
	fmt.Printf("  Removed %s\n", shortID(id))
	return nil
}

// currentMonthBounds returns the first and last day of the current
// calendar month.
func currentMonthBounds() (time.Time, time.Time) {
	now := time.Now()
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, -1)
}
