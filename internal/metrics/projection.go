package metrics

import "math"

// ProjectionPoint is one emitted step of a compound-growth projection.
// Monetary fields are rounded to whole currency units at emission;
// intermediate math runs at full float precision.
type ProjectionPoint struct {
	Year          int
	TotalValue    int64
	Contributions int64
	Growth        int64
}

// Project runs a year-granularity compound-interest projection:
//
//	FV = PV*(1+r)^n + PMT*((1+r)^n - 1)/r
//
// with r the monthly rate (annual percent / 12 / 100) and n the months
// elapsed. The year-0 point is always emitted first, so a horizon of 0
// returns exactly one point. A zero rate degenerates to linear
// accumulation, guarding the annuity division. Negative contributions
// and rates are computed through as-is.
func Project(currentValue, monthlyContribution, annualReturnPercent float64, years int) []ProjectionPoint {
	monthlyRate := annualReturnPercent / 12 / 100

	points := make([]ProjectionPoint, 0, years+1)
	points = append(points, ProjectionPoint{
		Year:       0,
		TotalValue: int64(math.Round(currentValue)),
	})

	for year := 1; year <= years; year++ {
		months := float64(year * 12)
		contributions := monthlyContribution * months

		var futureValue float64
		if monthlyRate == 0 {
			futureValue = currentValue + contributions
		} else {
			factor := math.Pow(1+monthlyRate, months)
			futureValue = currentValue*factor + monthlyContribution*((factor-1)/monthlyRate)
		}

		points = append(points, ProjectionPoint{
			Year:          year,
			TotalValue:    int64(math.Round(futureValue)),
			Contributions: int64(math.Round(contributions)),
			Growth:        int64(math.Round(futureValue - currentValue - contributions)),
		})
	}

	return points
}

// ProjectionAt returns the projected point for a single target year.
// The second return is false for a negative target.
func ProjectionAt(currentValue, monthlyContribution, annualReturnPercent float64, targetYear int) (ProjectionPoint, bool) {
	if targetYear < 0 {
		return ProjectionPoint{}, false
	}
	points := Project(currentValue, monthlyContribution, annualReturnPercent, targetYear)
	return points[len(points)-1], true
}
