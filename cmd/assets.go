package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zenigata-dev/zeni/internal/cli"
	"github.com/zenigata-dev/zeni/internal/metrics"
	"github.com/zenigata-dev/zeni/internal/model"
)

var assetsCmd = &cobra.Command{
	Use:   "assets",
	Short: "List holdings with current valuations",
	RunE:  runAssetsList,
}

var (
	assetCategory    string
	assetName        string
	assetInstitution string
	assetTicker      string
	assetSymbol      string
	assetCurrency    string
	assetBalance     string
	assetQuantity    string
	assetPrice       string
	assetValue       string
)

var assetsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a holding",
	Long: `Add a holding. The category decides which flags apply:

  deposit        --name --institution --balance
  stock          --ticker --name --quantity --price [--currency]
  fund           --name --quantity --price
  crypto         --symbol --quantity --price
  employeeEquity --name --quantity --price

Any category accepts --value to pin the market value directly; it
overrides quantity times price until cleared.`,
	RunE: runAssetsAdd,
}

var assetsRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Remove a holding",
	Args:  cobra.ExactArgs(1),
	RunE:  runAssetsRm,
}

func init() {
	assetsAddCmd.Flags().StringVarP(&assetCategory, "category", "c", "", "deposit, stock, fund, crypto, or employeeEquity")
	assetsAddCmd.Flags().StringVarP(&assetName, "name", "n", "", "Account, stock, fund, or company name")
	assetsAddCmd.Flags().StringVar(&assetInstitution, "institution", "", "Bank or broker name")
	assetsAddCmd.Flags().StringVar(&assetTicker, "ticker", "", "Stock ticker")
	assetsAddCmd.Flags().StringVar(&assetSymbol, "symbol", "", "Crypto symbol")
	assetsAddCmd.Flags().StringVar(&assetCurrency, "currency", "", "Display currency for a stock")
	assetsAddCmd.Flags().StringVar(&assetBalance, "balance", "", "Deposit balance")
	assetsAddCmd.Flags().StringVar(&assetQuantity, "quantity", "", "Shares or units held")
	assetsAddCmd.Flags().StringVar(&assetPrice, "price", "", "Average unit price")
	assetsAddCmd.Flags().StringVar(&assetValue, "value", "", "Market-value override")
	_ = assetsAddCmd.MarkFlagRequired("category")

	assetsCmd.AddCommand(assetsAddCmd)
	assetsCmd.AddCommand(assetsRmCmd)
	rootCmd.AddCommand(assetsCmd)
}

func runAssetsList(_ *cobra.Command, _ []string) error {
	st, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	holdings, err := st.AllHoldings()
	if err != nil {
		return err
	}
	if len(holdings) == 0 {
		fmt.Println("\n  No holdings yet. Add one with: zeni assets add")
		return nil
	}

	cur := cfg.General.Currency
	rows := make([][]string, 0, len(holdings)+2)
	for _, h := range holdings {
		gain := "—"
		if g, ok := metrics.UnrealizedGain(h); ok {
			gain = cli.FormatSignedMoney(g, cur)
		}
		rows = append(rows, []string{
			shortID(h.ID),
			metrics.DisplayName(h),
			h.Category.Label(),
			cli.FormatMoney(metrics.Valuate(h), cur),
			gain,
		})
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{"", "Total", "", cli.FormatMoney(metrics.TotalValue(holdings), cur), ""})

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Holdings",
		Headers: []string{"ID", "Name", "Category", "Value", "Unrealized"},
		Rows:    rows,
	}))
	return nil
}

func runAssetsAdd(_ *cobra.Command, _ []string) error {
	cat, ok := model.ParseCategory(assetCategory)
	if !ok {
		return fmt.Errorf("unknown category %q", assetCategory)
	}

	h := model.Holding{Category: cat}

	switch cat {
	case model.CategoryDeposit:
		if assetName == "" || assetBalance == "" {
			return fmt.Errorf("a deposit needs --name and --balance")
		}
		h.AccountName = assetName
		h.Institution = assetInstitution
		balance, err := parseAmount(assetBalance)
		if err != nil {
			return err
		}
		h.Balance = balance
	case model.CategoryStock:
		if assetTicker == "" || assetQuantity == "" {
			return fmt.Errorf("a stock needs --ticker and --quantity")
		}
		h.Ticker = assetTicker
		h.StockName = assetName
		h.Currency = assetCurrency
		shares, err := parseAmount(assetQuantity)
		if err != nil {
			return err
		}
		h.Shares = shares
	case model.CategoryFund:
		if assetName == "" || assetQuantity == "" {
			return fmt.Errorf("a fund needs --name and --quantity")
		}
		h.FundName = assetName
		qty, err := parseAmount(assetQuantity)
		if err != nil {
			return err
		}
		h.Quantity = qty
	case model.CategoryCrypto:
		if assetSymbol == "" || assetQuantity == "" {
			return fmt.Errorf("a crypto holding needs --symbol and --quantity")
		}
		h.Symbol = assetSymbol
		qty, err := parseAmount(assetQuantity)
		if err != nil {
			return err
		}
		h.Quantity = qty
	case model.CategoryEmployeeEquity:
		if assetName == "" || assetQuantity == "" {
			return fmt.Errorf("employee equity needs --name and --quantity")
		}
		h.CompanyName = assetName
		units, err := parseAmount(assetQuantity)
		if err != nil {
			return err
		}
		h.Units = units
	}

	if assetPrice != "" {
		price, err := parseAmount(assetPrice)
		if err != nil {
			return err
		}
		h.AveragePrice = price
	}
	if assetValue != "" {
		value, err := parseAmount(assetValue)
		if err != nil {
			return err
		}
		h.CurrentValue = &value
	}

	st, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.SaveHolding(&h); err != nil {
		return err
	}

	fmt.Printf("  Added %s (%s) valued at %s\n",
		metrics.DisplayName(h), cat.Label(),
		cli.FormatMoney(metrics.Valuate(h), cfg.General.Currency))
	return nil
}

func runAssetsRm(_ *cobra.Command, args []string) error {
	st, _, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	id, err := resolveHoldingID(st, args[0])
	if err != nil {
		return err
	}
	if err := st.DeleteHolding(id); err != nil {
		return err
	}
	fmt.Printf("  Removed %s\n", shortID(id))
	return nil
}

// shortID trims a UUID to its first segment for table display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// resolveHoldingID accepts a full id or the 8-char short form shown in
// listings.
func resolveHoldingID(st holdingLister, arg string) (string, error) {
	holdings, err := st.AllHoldings()
	if err != nil {
		return "", err
	}
	for _, h := range holdings {
		if h.ID == arg || shortID(h.ID) == arg {
			return h.ID, nil
		}
	}
	return "", fmt.Errorf("no holding with id %q", arg)
}

type holdingLister interface {
	AllHoldings() ([]model.Holding, error)
}
