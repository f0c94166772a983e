// Package model defines domain types for zeni ledgers and metrics.
package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Category identifies the kind of a holding.
type Category string

const (
	CategoryDeposit        Category = "deposit"
	CategoryStock          Category = "stock"
	CategoryFund           Category = "fund"
	CategoryCrypto         Category = "crypto"
	CategoryEmployeeEquity Category = "employeeEquity"
)

// Categories lists every known category in display order.
var Categories = []Category{
	CategoryDeposit,
	CategoryStock,
	CategoryFund,
	CategoryCrypto,
	CategoryEmployeeEquity,
}

// Label returns the human-readable category name.
func (c Category) Label() string {
	switch c {
	case CategoryDeposit:
		return "Deposit"
	case CategoryStock:
		return "Stock"
	case CategoryFund:
		return "Fund"
	case CategoryCrypto:
		return "Crypto"
	case CategoryEmployeeEquity:
		return "Employee Equity"
	}
	return string(c)
}

// ParseCategory maps a user-entered category string to a Category.
func ParseCategory(s string) (Category, bool) {
	for _, c := range Categories {
		if string(c) == s {
			return c, true
		}
	}
	return "", false
}

// Holding is a single asset record. Category decides which fields carry
// meaning; the rest stay at their zero value. Valuation dispatches
// exhaustively on Category (see internal/metrics).
type Holding struct {
	ID       string
	Category Category

	// Deposit: the balance is the authoritative value.
	AccountName string
	Institution string
	Balance     decimal.Decimal

	// Stock.
	Ticker    string
	StockName string
	Shares    decimal.Decimal
	Currency  string // display tag only, never converted

	// Fund.
	FundName string

	// Crypto.
	Symbol string

	// Employee equity: units are shares or rights.
	CompanyName string
	Units       decimal.Decimal

	// Fund and crypto quantity.
	Quantity decimal.Decimal

	// Average unit cost; strike price for employee equity.
	AveragePrice decimal.Decimal

	// Market-value override. When set it wins over quantity x price.
	CurrentValue *decimal.Decimal

	CreatedAt time.Time
	UpdatedAt time.Time
}
