package metrics

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/zenigata-dev/zeni/internal/model"
)

func state(month string, netWorth, cash, income, livingCost int64) model.MonthlyState {
	return model.MonthlyState{
		Month:             month,
		NetWorth:          decimal.NewFromInt(netWorth),
		Cash:              decimal.NewFromInt(cash),
		MonthlyIncome:     decimal.NewFromInt(income),
		MonthlyLivingCost: decimal.NewFromInt(livingCost),
	}
}

func TestClassifyDirectionNeedsTwoPoints(t *testing.T) {
	for _, history := range [][]model.MonthlyState{
		nil,
		{state("2026-08", 5_000_000, 1_000_000, 400_000, 250_000)},
	} {
		d := ClassifyDirection(history)
		if d.Status != DirectionFlat {
			t.Errorf("short history status = %q, want flat", d.Status)
		}
		if d.Label != "Getting Started" {
			t.Errorf("short history label = %q, want Getting Started", d.Label)
		}
	}
}

func TestClassifyDirection(t *testing.T) {
	tests := []struct {
		name    string
		history []model.MonthlyState
		want    DirectionStatus
	}{
		{
			// +10% net worth, savings rate 15%, runway well above 3.
			name: "rising net worth with healthy savings",
			history: []model.MonthlyState{
				state("2026-03", 5_000_000, 1_500_000, 400_000, 340_000),
				state("2026-05", 5_200_000, 1_500_000, 400_000, 340_000),
				state("2026-08", 5_500_000, 1_500_000, 400_000, 340_000),
			},
			want: DirectionGrowth,
		},
		{
			// -10% net worth and spending above income.
			name: "falling net worth with negative savings",
			history: []model.MonthlyState{
				state("2026-05", 5_000_000, 1_200_000, 300_000, 315_000),
				state("2026-08", 4_500_000, 1_200_000, 300_000, 315_000),
			},
			want: DirectionRisk,
		},
		{
			// Modest growth and near-break-even savings keep the growth
			// branch quiet; the runway check decides.
			name: "thin cash runway flags risk",
			history: []model.MonthlyState{
				state("2026-05", 5_000_000, 500_000, 310_000, 300_000),
				state("2026-08", 5_100_000, 500_000, 310_000, 300_000),
			},
			want: DirectionRisk,
		},
		{
			// Checks run in order, so strong growth with healthy savings
			// wins even though the runway is under 3 months.
			name: "growth outranks thin runway",
			history: []model.MonthlyState{
				state("2026-05", 5_000_000, 500_000, 400_000, 300_000),
				state("2026-08", 5_500_000, 500_000, 400_000, 300_000),
			},
			want: DirectionGrowth,
		},
		{
			// Growth rate exactly 5 fails the strict > 5 check; nothing
			// trips the risk thresholds either.
			name: "boundary growth rate stays flat",
			history: []model.MonthlyState{
				state("2026-05", 5_000_000, 2_000_000, 400_000, 320_000),
				state("2026-08", 5_250_000, 2_000_000, 400_000, 320_000),
			},
			want: DirectionFlat,
		},
		{
			// Savings rate exactly 0 does not trip the < 0 risk check.
			name: "break-even savings stays flat",
			history: []model.MonthlyState{
				state("2026-05", 5_000_000, 2_000_000, 300_000, 300_000),
				state("2026-08", 5_100_000, 2_000_000, 300_000, 300_000),
			},
			want: DirectionFlat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := ClassifyDirection(tt.history)
			if d.Status != tt.want {
				t.Fatalf("status = %q, want %q", d.Status, tt.want)
			}
		})
	}
}

func TestClassifyDirectionUsesOldestAndLatest(t *testing.T) {
	// The middle point collapses; only the endpoints decide the rate.
	history := []model.MonthlyState{
		state("2026-03", 5_000_000, 2_000_000, 400_000, 300_000),
		state("2026-05", 1_000_000, 2_000_000, 400_000, 300_000),
		state("2026-08", 5_600_000, 2_000_000, 400_000, 300_000),
	}
	if d := ClassifyDirection(history); d.Status != DirectionGrowth {
		t.Fatalf("status = %q, want growth", d.Status)
	}
}
