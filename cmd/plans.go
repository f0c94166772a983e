package cmd

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/zenigata-dev/zeni/internal/cli"
	"github.com/zenigata-dev/zeni/internal/metrics"
	"github.com/zenigata-dev/zeni/internal/model"
)

var plansCmd = &cobra.Command{
	Use:   "plans",
	Short: "List investment plans",
	RunE:  runPlansList,
}

var (
	planName     string
	planCategory string
	planMonthly  string
	planReturn   float64
)

var plansAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add an investment plan",
	RunE:  runPlansAdd,
}

var plansRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Remove an investment plan",
	Args:  cobra.ExactArgs(1),
	RunE:  runPlansRm,
}

func init() {
	plansAddCmd.Flags().StringVarP(&planName, "name", "n", "", "Plan name")
	plansAddCmd.Flags().StringVarP(&planCategory, "category", "c", "fund", "Target asset category")
	plansAddCmd.Flags().StringVarP(&planMonthly, "monthly", "m", "", "Monthly contribution")
	plansAddCmd.Flags().Float64VarP(&planReturn, "return", "r", 0, "Expected annual return in percent")
	_ = plansAddCmd.MarkFlagRequired("name")
	_ = plansAddCmd.MarkFlagRequired("monthly")

	plansCmd.AddCommand(plansAddCmd)
	plansCmd.AddCommand(plansRmCmd)
	rootCmd.AddCommand(plansCmd)
}

func runPlansList(_ *cobra.Command, _ []string) error {
	st, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	plans, err := st.AllPlans()
	if err != nil {
		return err
	}
	if len(plans) == 0 {
		fmt.Println("\n  No investment plans. Add one with: zeni plans add")
		return nil
	}

	cur := cfg.General.Currency
	rows := make([][]string, 0, len(plans)+2)
	for _, p := range plans {
		ret := "—"
		if p.ExpectedReturn != nil {
			ret = cli.FormatPercent(*p.ExpectedReturn)
		}
		rows = append(rows, []string{
			shortID(p.ID),
			p.Name,
			p.AssetCategory.Label(),
			cli.FormatMoney(p.MonthlyAmount, cur),
			ret,
		})
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{
		"", "Total", "",
		cli.FormatMoney(decimal.NewFromFloat(metrics.TotalMonthlyContribution(plans)), cur),
		cli.FormatPercent(metrics.WeightedAverageReturn(plans)),
	})

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Investment Plans",
		Headers: []string{"ID", "Name", "Category", "Monthly", "Return"},
		Rows:    rows,
	}))
	return nil
}

func runPlansAdd(cmd *cobra.Command, _ []string) error {
	cat, ok := model.ParseCategory(planCategory)
	if !ok {
		return fmt.Errorf("unknown category %q", planCategory)
	}
	monthly, err := parseAmount(planMonthly)
	if err != nil {
		return err
	}

	p := model.InvestmentPlan{
		Name:          planName,
		AssetCategory: cat,
		MonthlyAmount: monthly,
	}
	if cmd.Flags().Changed("return") {
		r := planReturn
		p.ExpectedReturn = &r
	}

	st, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.SavePlan(&p); err != nil {
		return err
	}
	fmt.Printf("  Added plan %q: %s per month\n",
		p.Name, cli.FormatMoney(monthly, cfg.General.Currency))
	return nil
}

func runPlansRm(_ *cobra.Command, args []string) error {
	st, _, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	plans, err := st.AllPlans()
	if err != nil {
		return err
	}
	id := ""
	for _, p := range plans {
		if p.ID == args[0] || shortID(p.ID) == args[0] {
			id = p.ID
			break
		}
	}
	if id == "" {
		return fmt.Errorf("no plan with id %q", args[0])
	}

	if err := st.DeletePlan(id); err != nil {
		return err
	}
	fmt.Printf("  Removed %s\n", shortID(id))
	return nil
}
