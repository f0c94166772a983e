package metrics

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/zenigata-dev/zeni/internal/model"
)

func plan(amount int64, expectedReturn *float64) model.InvestmentPlan {
	return model.InvestmentPlan{
		MonthlyAmount:  decimal.NewFromInt(amount),
		ExpectedReturn: expectedReturn,
	}
}

func f(v float64) *float64 { return &v }

func TestWeightedAverageReturn(t *testing.T) {
	tests := []struct {
		name  string
		plans []model.InvestmentPlan
		want  float64
	}{
		{"no plans", nil, 0},
		{"all zero amounts", []model.InvestmentPlan{plan(0, f(5)), plan(0, f(10))}, 0},
		{"single plan", []model.InvestmentPlan{plan(100, f(5))}, 5},
		{"weighted mix", []model.InvestmentPlan{plan(100, f(5)), plan(300, f(10))}, 8.75},
		{"missing return counts as zero", []model.InvestmentPlan{plan(100, nil), plan(100, f(10))}, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WeightedAverageReturn(tt.plans)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Fatalf("WeightedAverageReturn() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTotalMonthlyContribution(t *testing.T) {
	plans := []model.InvestmentPlan{plan(30_000, f(5)), plan(70_000, nil)}
	if got := TotalMonthlyContribution(plans); got != 100_000 {
		t.Fatalf("TotalMonthlyContribution = %v, want 100000", got)
	}
}

func TestForecastRecordingRule(t *testing.T) {
	points := Forecast(1_000_000, 50_000, 5, 3)

	wantMonths := []int{0, 1, 6, 12, 24, 36}
	if len(points) != len(wantMonths) {
		t.Fatalf("got %d points, want %d", len(points), len(wantMonths))
	}
	for i, p := range points {
		if p.Month != wantMonths[i] {
			t.Errorf("point %d month = %d, want %d", i, p.Month, wantMonths[i])
		}
	}
	if points[3].Year != 1 || points[5].Year != 3 {
		t.Errorf("year fields = %d/%d, want 1/3", points[3].Year, points[5].Year)
	}
}

func TestForecastMonthlyCompounding(t *testing.T) {
	// One month: contribute first, then apply the monthly return.
	points := Forecast(1_000_000, 50_000, 12, 1)

	month1 := points[1]
	want := int64(math.Round((1_000_000 + 50_000) * 1.01))
	if month1.TotalAssets != want {
		t.Fatalf("month-1 total = %d, want %d", month1.TotalAssets, want)
	}
}

func TestForecastZeroHorizon(t *testing.T) {
	points := Forecast(750_000, 10_000, 5, 0)
	if len(points) != 1 {
		t.Fatalf("got %d points, want only the starting point", len(points))
	}
	if points[0].TotalAssets != 750_000 || points[0].Label != "now" {
		t.Fatalf("starting point = %+v", points[0])
	}
}

func TestForecastZeroRateIsLinear(t *testing.T) {
	points := Forecast(100_000, 10_000, 0, 1)
	final := points[len(points)-1]
	if final.TotalAssets != 100_000+10_000*12 {
		t.Fatalf("final total = %d, want %d", final.TotalAssets, 100_000+10_000*12)
	}
}
