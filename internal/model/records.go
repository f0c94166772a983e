package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExpenseType splits expenses into fixed and variable cost buckets.
type ExpenseType string

const (
	ExpenseFixed    ExpenseType = "fixed"
	ExpenseVariable ExpenseType = "variable"
)

// Income is a single income entry (salary, side job, dividend).
type Income struct {
	ID        string
	Source    string
	Amount    decimal.Decimal
	Date      time.Time
	CreatedAt time.Time
}

// Expense is a single expense entry.
type Expense struct {
	ID        string
	Type      ExpenseType
	Category  string
	Amount    decimal.Decimal
	Date      time.Time
	Memo      string
	CreatedAt time.Time
}

// MonthlyState is the aggregated financial summary for one calendar month.
// Month is the unique key, formatted "2006-01"; writes go through an
// upsert so there is at most one record per month.
type MonthlyState struct {
	ID                  string
	Month               string
	NetWorth            decimal.Decimal
	Cash                decimal.Decimal
	Invested            decimal.Decimal
	MonthlyIncome       decimal.Decimal
	MonthlyLivingCost   decimal.Decimal
	MonthlyContribution decimal.Decimal
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// DailySnapshot is a dated point-in-time valuation of all holdings.
// Date is the unique key, formatted "2006-01-02"; at most one snapshot
// exists per day and snapshots are never mutated after creation.
type DailySnapshot struct {
	ID          string
	Date        string
	TotalAssets decimal.Decimal
	CashRatio   float64 // deposit share of total, in percent
	Breakdown   map[Category]decimal.Decimal
	DailyChange decimal.Decimal // vs the immediately preceding snapshot by date
	CreatedAt   time.Time
}

// InvestmentPlan is a named monthly contribution with an expected
// annual return. ExpectedReturn is nil when the user left it blank;
// the forecast treats that as zero.
type InvestmentPlan struct {
	ID             string
	Name           string
	AssetCategory  Category
	MonthlyAmount  decimal.Decimal
	ExpectedReturn *float64 // percent per year
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Scenario is a saved what-if projection input set.
type Scenario struct {
	ID                string
	Name              string
	Years             int
	ExpectedReturn    float64 // percent per year
	MonthlyInvestment decimal.Decimal
	MonthlySpending   decimal.Decimal
	IncomeGrowth      float64 // percent per year
	BaselineIncome    decimal.Decimal
	CurrentNetWorth   decimal.Decimal
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// KPIData is the dashboard metric bundle for one point in time.
type KPIData struct {
	NetWorthChange     decimal.Decimal // latest snapshot total minus oldest
	MonthlyBalance     decimal.Decimal // income minus expenses for the month
	SavingsRate        float64         // percent, unclamped
	SavingsRateDisplay float64         // percent, clamped [0,100] for display
	LiquidityRatio     float64         // percent of total held as deposits
	MonthlyExpenses    decimal.Decimal
	AssetAllocation    map[Category]decimal.Decimal
}
