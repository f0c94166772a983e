package metrics

import (
	"fmt"
	"math"

	"github.com/zenigata-dev/zeni/internal/model"
)

// ForecastPoint is one recorded step of a month-granularity forecast.
type ForecastPoint struct {
	Month       int // months elapsed
	Year        int
	TotalAssets int64
	Label       string
}

// Forecast simulates asset growth month by month: the contribution is
// added at the start of each month and the monthly return applied at
// the end. To bound output size only months 1 and 6 and every 12th
// month are recorded, after the always-emitted month-0 point. This is
// the fine-granularity counterpart to Project, which steps by year.
func Forecast(currentAssets, monthlyContribution, annualReturnPercent float64, years int) []ForecastPoint {
	monthlyRate := annualReturnPercent / 100 / 12
	months := years * 12

	points := []ForecastPoint{{
		Month:       0,
		Year:        0,
		TotalAssets: int64(math.Round(currentAssets)),
		Label:       "now",
	}}

	assets := currentAssets
	for month := 1; month <= months; month++ {
		assets += monthlyContribution
		assets *= 1 + monthlyRate

		if month%12 == 0 || month == 1 || month == 6 {
			year := month / 12
			points = append(points, ForecastPoint{
				Month:       month,
				Year:        year,
				TotalAssets: int64(math.Round(assets)),
				Label:       forecastLabel(year, month%12),
			})
		}
	}

	return points
}

func forecastLabel(years, months int) string {
	if months == 0 {
		return fmt.Sprintf("%dy", years)
	}
	if years == 0 {
		return fmt.Sprintf("%dm", months)
	}
	return fmt.Sprintf("%dy %dm", years, months)
}

// WeightedAverageReturn averages plan expected returns weighted by each
// plan's monthly contribution. Plans without an expected return weigh
// in at zero. Returns 0 when the plans contribute nothing in total.
// The value is advisory; callers may override it before projecting.
func WeightedAverageReturn(plans []model.InvestmentPlan) float64 {
	var total, weighted float64
	for _, p := range plans {
		amount := p.MonthlyAmount.InexactFloat64()
		total += amount
		if p.ExpectedReturn != nil {
			weighted += amount * *p.ExpectedReturn
		}
	}
	if total == 0 {
		return 0
	}
	return weighted / total
}

// TotalMonthlyContribution sums the monthly amounts across plans.
func TotalMonthlyContribution(plans []model.InvestmentPlan) float64 {
	var total float64
	for _, p := range plans {
		total += p.MonthlyAmount.InexactFloat64()
	}
	return total
}
