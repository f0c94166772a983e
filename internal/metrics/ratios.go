package metrics

import "math"

// SavingsRate returns (income - expenses) / income as a percentage,
// unclamped: overspending yields a negative rate, which the direction
// classifier depends on. Returns 0 when income is zero or negative.
func SavingsRate(income, expenses float64) float64 {
	if income <= 0 {
		return 0
	}
	return (income - expenses) / income * 100
}

// SavingsRateDisplay is the clamped [0,100] variant for UI surfaces.
func SavingsRateDisplay(income, expenses float64) float64 {
	r := SavingsRate(income, expenses)
	if r < 0 {
		return 0
	}
	if r > 100 {
		return 100
	}
	return r
}

// CashRunway returns how many whole months the cash balance covers at
// the given monthly expense level. Returns 0 when monthlyExpenses is
// zero or negative.
func CashRunway(cash, monthlyExpenses float64) int {
	if monthlyExpenses <= 0 {
		return 0
	}
	return int(math.Floor(cash / monthlyExpenses))
}

// PercentChange returns the relative change from oldValue to newValue as
// a percentage. A change from zero reports 100 when the new value is
// positive and 0 otherwise, so callers still see the direction without
// a divide-by-zero.
func PercentChange(oldValue, newValue float64) float64 {
	if oldValue == 0 {
		if newValue > 0 {
			return 100
		}
		return 0
	}
	return (newValue - oldValue) / oldValue * 100
}

// LiquidityRatio returns the deposit share of total value as a
// percentage, 0 when the total is zero or negative.
func LiquidityRatio(depositTotal, total float64) float64 {
	if total <= 0 {
		return 0
	}
	return depositTotal / total * 100
}
