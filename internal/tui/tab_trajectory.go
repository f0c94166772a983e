package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/zenigata-dev/zeni/internal/cli"
	"github.com/zenigata-dev/zeni/internal/metrics"
	"github.com/zenigata-dev/zeni/internal/tui/components"
	"github.com/zenigata-dev/zeni/internal/tui/theme"
)

func (a App) renderTrajectory(width int) string {
	t := theme.Active
	d := a.data

	muted := lipgloss.NewStyle().Foreground(t.TextMuted)
	inner := components.CardInnerWidth(width)

	// Net worth history
	var history string
	if len(d.History) == 0 {
		history = muted.Render("No monthly history yet. Close a month with: zeni monthly close")
	} else {
		labels := make([]string, 0, len(d.History))
		values := make([]float64, 0, len(d.History))
		rendered := make([]string, 0, len(d.History))
		for _, s := range d.History {
			labels = append(labels, s.Month)
			values = append(values, s.NetWorth.InexactFloat64())
			rendered = append(rendered, cli.FormatMoney(s.NetWorth, a.currency))
		}
		history = components.BarChart(labels, values, rendered, inner, t.Blue)
	}
	historyCard := components.ContentCard("Net Worth by Month", history, width)

	// 30-day snapshot sparkline
	var daily string
	if len(d.Snapshots) == 0 {
		daily = muted.Render("No snapshots yet. The dashboard records one per day.")
	} else {
		values := make([]float64, 0, len(d.Snapshots))
		for _, s := range d.Snapshots {
			values = append(values, s.TotalAssets.InexactFloat64())
		}
		latest := d.Snapshots[len(d.Snapshots)-1]
		daily = components.Sparkline(values, t.Accent) + "\n" +
			muted.Render("Last 30 days, latest ") +
			lipgloss.NewStyle().Foreground(t.TextPrimary).
				Render(cli.FormatMoney(latest.TotalAssets, a.currency))
	}
	dailyCard := components.ContentCard("Daily Total Assets", daily, width)

	// Plan-driven forecast
	var outlook string
	if len(d.Plans) == 0 {
		outlook = muted.Render("No investment plans. Add one with: zeni plans add")
	} else {
		points := metrics.Forecast(
			metrics.TotalValue(d.Holdings).InexactFloat64(),
			metrics.TotalMonthlyContribution(d.Plans),
			metrics.WeightedAverageReturn(d.Plans),
			a.years,
		)

		labels := make([]string, 0, len(points))
		values := make([]float64, 0, len(points))
		rendered := make([]string, 0, len(points))
		for _, p := range points {
			labels = append(labels, p.Label)
			values = append(values, float64(p.TotalAssets))
			rendered = append(rendered, cli.FormatMoney(decimal.NewFromInt(p.TotalAssets), a.currency))
		}
		outlook = components.BarChart(labels, values, rendered, inner, t.Green)
	}
	outlookCard := components.ContentCard("Outlook", outlook, width)

	return strings.Join([]string{historyCard, dailyCard, outlookCard}, "\n")
}
