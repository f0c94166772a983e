package metrics

import (
	"fmt"

	"github.com/zenigata-dev/zeni/internal/model"
)

// DirectionStatus classifies the recent financial trend.
type DirectionStatus string

const (
	DirectionGrowth DirectionStatus = "growth"
	DirectionFlat   DirectionStatus = "flat"
	DirectionRisk   DirectionStatus = "risk"
)

// Direction is the result of classifying a window of monthly states.
type Direction struct {
	Status      DirectionStatus
	Label       string
	Description string
}

// ClassifyDirection classifies the trend over a window of monthly
// states ordered oldest to newest.
//
// With fewer than two points the result is a neutral "Getting Started".
// Otherwise the checks run in this exact order, first match wins:
//
//  1. growth: net-worth growth rate > 5% and savings rate > 10%
//  2. risk:   growth rate < -5%, or savings rate < 0, or cash runway < 3 months
//  3. flat:   everything else
//
// The savings rate is the unclamped variant; risk detection needs the
// negative range.
func ClassifyDirection(history []model.MonthlyState) Direction {
	if len(history) < 2 {
		return Direction{
			Status:      DirectionFlat,
			Label:       "Getting Started",
			Description: "Add more data to see your direction.",
		}
	}

	oldest := history[0]
	latest := history[len(history)-1]
	window := fmt.Sprintf("Based on the last %d months.", len(history))

	growthRate := PercentChange(oldest.NetWorth.InexactFloat64(), latest.NetWorth.InexactFloat64())
	savingsRate := SavingsRate(latest.MonthlyIncome.InexactFloat64(), latest.MonthlyLivingCost.InexactFloat64())
	runway := CashRunway(latest.Cash.InexactFloat64(), latest.MonthlyLivingCost.InexactFloat64())

	if growthRate > 5 && savingsRate > 10 {
		return Direction{Status: DirectionGrowth, Label: "Stable Growth", Description: window}
	}
	if growthRate < -5 || savingsRate < 0 || runway < 3 {
		return Direction{Status: DirectionRisk, Label: "At Risk", Description: window}
	}
	return Direction{Status: DirectionFlat, Label: "Flat", Description: window}
}
