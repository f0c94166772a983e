package cmd

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/zenigata-dev/zeni/internal/cli"
	"github.com/zenigata-dev/zeni/internal/model"
)

var expensesCmd = &cobra.Command{
	Use:   "expenses",
	Short: "List this month's expenses",
	RunE:  runExpensesList,
}

var (
	expenseAmount   string
	expenseCategory string
	expenseType     string
	expenseMemo     string
	expenseDate     string
)

var expensesAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record an expense",
	RunE:  runExpensesAdd,
}

var expensesRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Remove an expense",
	Args:  cobra.ExactArgs(1),
	RunE:  runExpensesRm,
}

func init() {
	expensesAddCmd.Flags().StringVarP(&expenseAmount, "amount", "a", "", "Amount")
	expensesAddCmd.Flags().StringVarP(&expenseCategory, "category", "c", "", "Category (rent, food, utilities, ...)")
	expensesAddCmd.Flags().StringVarP(&expenseType, "type", "t", "variable", "fixed or variable")
	expensesAddCmd.Flags().StringVar(&expenseMemo, "memo", "", "Free-form note")
	expensesAddCmd.Flags().StringVar(&expenseDate, "date", "", "Date (YYYY-MM-DD, default today)")
	_ = expensesAddCmd.MarkFlagRequired("amount")

	expensesCmd.AddCommand(expensesAddCmd)
	expensesCmd.AddCommand(expensesRmCmd)
	rootCmd.AddCommand(expensesCmd)
}

func runExpensesList(_ *cobra.Command, _ []string) error {
	st, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	start, end := currentMonthBounds()
	expenses, err := st.ExpensesInRange(start, end)
	if err != nil {
		return err
	}
	if len(expenses) == 0 {
		fmt.Println("\n  No expenses recorded this month.")
		return nil
	}

	cur := cfg.General.Currency
	total := decimal.Zero
	fixed := decimal.Zero
	rows := make([][]string, 0, len(expenses)+3)
	for _, e := range expenses {
		total = total.Add(e.Amount)
		if e.Type == model.ExpenseFixed {
			fixed = fixed.Add(e.Amount)
		}
		rows = append(rows, []string{
			shortID(e.ID),
			e.Date.Format("2006-01-02"),
			e.Category,
			string(e.Type),
			cli.FormatMoney(e.Amount, cur),
		})
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{"", "", "Fixed", "", cli.FormatMoney(fixed, cur)})
	rows = append(rows, []string{"", "", "Total", "", cli.FormatMoney(total, cur)})

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   fmt.Sprintf("Expenses — %s", start.Format("2006-01")),
		Headers: []string{"ID", "Date", "Category", "Type", "Amount"},
		Rows:    rows,
	}))
	return nil
}

func runExpensesAdd(_ *cobra.Command, _ []string) error {
	amount, err := parseAmount(expenseAmount)
	if err != nil {
		return err
	}
	date, err := parseDateFlag(expenseDate)
	if err != nil {
		return err
	}

	etype := model.ExpenseType(expenseType)
	if etype != model.ExpenseFixed && etype != model.ExpenseVariable {
		return fmt.Errorf("invalid expense type %q, want fixed or variable", expenseType)
	}

	st, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	e := model.Expense{
		Type:     etype,
		Category: expenseCategory,
		Amount:   amount,
		Date:     date,
		Memo:     expenseMemo,
	}
	if err := st.AddExpense(&e); err != nil {
		return err
	}
	fmt.Printf("  Recorded %s expense on %s\n",
		cli.FormatMoney(amount, cfg.General.Currency), date.Format("2006-01-02"))
	return nil
}

func runExpensesRm(_ *cobra.Command, args []string) error {
	st, _, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	start, end := currentMonthBounds()
	expenses, err := st.ExpensesInRange(start, end)
	if err != nil {
		return err
	}
	id := ""
	for _, e := range expenses {
		if e.ID == args[0] || shortID(e.ID) == args[0] {
			id = e.ID
			break
		}
	}
	if id == "" {
		return fmt.Errorf("no expense %q in the current month", args[0])
	}

	if err := st.DeleteExpense(id); err != nil {
		return err
	}
	fmt.Printf("  Removed %s\n", shortID(id))
	return nil
}
