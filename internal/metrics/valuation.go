// Package metrics implements the pure calculation core: holding
// valuation, derived ratios, direction classification, and
// compound-growth projections. Every function takes plain values,
// performs no I/O, and is total over its numeric domain.
package metrics

import (
	"github.com/shopspring/decimal"

	"github.com/zenigata-dev/zeni/internal/model"
)

// Valuate returns the current monetary value of a holding. A market-value
// override wins when present; otherwise quantity times average unit cost.
// Deposits report their balance directly. Missing optional fields
// contribute zero, so valuation never fails.
func Valuate(h model.Holding) decimal.Decimal {
	switch h.Category {
	case model.CategoryDeposit:
		return h.Balance
	case model.CategoryStock:
		if h.CurrentValue != nil {
			return *h.CurrentValue
		}
		return h.Shares.Mul(h.AveragePrice)
	case model.CategoryFund:
		if h.CurrentValue != nil {
			return *h.CurrentValue
		}
		return h.Quantity.Mul(h.AveragePrice)
	case model.CategoryCrypto:
		if h.CurrentValue != nil {
			return *h.CurrentValue
		}
		return h.Quantity.Mul(h.AveragePrice)
	case model.CategoryEmployeeEquity:
		if h.CurrentValue != nil {
			return *h.CurrentValue
		}
		return h.Units.Mul(h.AveragePrice)
	}
	return decimal.Zero
}

// CategoryTotals sums valuations per category. Every known category is
// present in the result, zero when no holdings fall under it.
func CategoryTotals(holdings []model.Holding) map[model.Category]decimal.Decimal {
	totals := make(map[model.Category]decimal.Decimal, len(model.Categories))
	for _, c := range model.Categories {
		totals[c] = decimal.Zero
	}
	for _, h := range holdings {
		totals[h.Category] = totals[h.Category].Add(Valuate(h))
	}
	return totals
}

// TotalValue sums valuations over all holdings. It always equals the sum
// of CategoryTotals values for the same input.
func TotalValue(holdings []model.Holding) decimal.Decimal {
	total := decimal.Zero
	for _, h := range holdings {
		total = total.Add(Valuate(h))
	}
	return total
}

// UnrealizedGain returns the override value minus cost basis. The second
// return is false when no override was entered or the holding has no
// cost basis to compare against (deposits, funds/crypto without an
// average price).
func UnrealizedGain(h model.Holding) (decimal.Decimal, bool) {
	if h.CurrentValue == nil {
		return decimal.Zero, false
	}
	switch h.Category {
	case model.CategoryStock:
		return h.CurrentValue.Sub(h.Shares.Mul(h.AveragePrice)), true
	case model.CategoryFund, model.CategoryCrypto:
		if h.AveragePrice.IsZero() {
			return decimal.Zero, false
		}
		return h.CurrentValue.Sub(h.Quantity.Mul(h.AveragePrice)), true
	case model.CategoryEmployeeEquity:
		return h.CurrentValue.Sub(h.Units.Mul(h.AveragePrice)), true
	}
	return decimal.Zero, false
}

// DisplayName returns a best-effort human label for a holding, with a
// category-specific fallback. Never used in arithmetic.
func DisplayName(h model.Holding) string {
	switch h.Category {
	case model.CategoryDeposit:
		if h.AccountName != "" {
			return h.AccountName
		}
		if h.Institution != "" {
			return h.Institution
		}
		return "Deposit"
	case model.CategoryStock:
		if h.StockName != "" {
			return h.StockName
		}
		if h.Ticker != "" {
			return h.Ticker
		}
		return "Stock"
	case model.CategoryFund:
		if h.FundName != "" {
			return h.FundName
		}
		return "Fund"
	case model.CategoryCrypto:
		if h.Symbol != "" {
			return h.Symbol
		}
		return "Crypto"
	case model.CategoryEmployeeEquity:
		if h.CompanyName != "" {
			return h.CompanyName
		}
		return "Employee Equity"
	}
	return "Asset"
}
