package metrics

import (
	"math"
	"testing"
)

func TestSavingsRate(t *testing.T) {
	tests := []struct {
		name             string
		income, expenses float64
		want             float64
	}{
		{"zero income", 0, 100000, 0},
		{"negative income", -500, 0, 0},
		{"no expenses", 1000, 0, 100},
		{"half saved", 300000, 150000, 50},
		{"overspending goes negative", 1000, 1500, -50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SavingsRate(tt.income, tt.expenses); got != tt.want {
				t.Fatalf("SavingsRate(%v, %v) = %v, want %v", tt.income, tt.expenses, got, tt.want)
			}
		})
	}
}

func TestSavingsRateDisplayClamps(t *testing.T) {
	if got := SavingsRateDisplay(1000, 1500); got != 0 {
		t.Errorf("overspending should clamp to 0, got %v", got)
	}
	if got := SavingsRateDisplay(1000, 0); got != 100 {
		t.Errorf("full savings = %v, want 100", got)
	}
	if got := SavingsRateDisplay(300000, 150000); got != 50 {
		t.Errorf("mid-range value should pass through, got %v", got)
	}
}

func TestCashRunway(t *testing.T) {
	tests := []struct {
		name                  string
		cash, monthlyExpenses float64
		want                  int
	}{
		{"zero expenses", 500000, 0, 0},
		{"negative expenses", 500000, -1, 0},
		{"exact months", 300000, 100000, 3},
		{"floors partial month", 350000, 100000, 3},
		{"no cash", 0, 100000, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CashRunway(tt.cash, tt.monthlyExpenses); got != tt.want {
				t.Fatalf("CashRunway(%v, %v) = %d, want %d", tt.cash, tt.monthlyExpenses, got, tt.want)
			}
		})
	}
}

func TestPercentChange(t *testing.T) {
	tests := []struct {
		name       string
		oldV, newV float64
		want       float64
	}{
		{"from zero to positive", 0, 50, 100},
		{"from zero to zero", 0, 0, 0},
		{"from zero to negative", 0, -10, 0},
		{"increase", 100, 150, 50},
		{"decrease", 200, 150, -25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PercentChange(tt.oldV, tt.newV)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Fatalf("PercentChange(%v, %v) = %v, want %v", tt.oldV, tt.newV, got, tt.want)
			}
		})
	}
}

func TestLiquidityRatio(t *testing.T) {
	if got := LiquidityRatio(500, 0); got != 0 {
		t.Errorf("zero total should yield 0, got %v", got)
	}
	if got := LiquidityRatio(250, 1000); got != 25 {
		t.Errorf("LiquidityRatio(250, 1000) = %v, want 25", got)
	}
}
