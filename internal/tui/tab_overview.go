package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/zenigata-dev/zeni/internal/cli"
	"github.com/zenigata-dev/zeni/internal/metrics"
	"github.com/zenigata-dev/zeni/internal/model"
	"github.com/zenigata-dev/zeni/internal/tui/components"
	"github.com/zenigata-dev/zeni/internal/tui/theme"
)

func (a App) renderOverview(width int) string {
	t := theme.Active
	d := a.data

	total := metrics.TotalValue(d.Holdings)

	dailyDelta := ""
	if n := len(d.Snapshots); n > 0 {
		dailyDelta = cli.FormatSignedMoney(d.Snapshots[n-1].DailyChange, a.currency) + " today"
	}

	cards := []struct{ Label, Value, Delta string }{
		{"Total Assets", cli.FormatMoney(total, a.currency), dailyDelta},
		{"Net Worth Change", cli.FormatSignedMoney(d.KPI.NetWorthChange, a.currency), "since first snapshot"},
		{"Monthly Balance", cli.FormatSignedMoney(d.KPI.MonthlyBalance, a.currency), "this month"},
		{"Savings Rate", cli.FormatPercent(d.KPI.SavingsRateDisplay), ""},
	}
	top := components.MetricCardRow(cards, width)

	// Direction card
	var dirColor lipgloss.Color
	switch d.Direction.Status {
	case metrics.DirectionGrowth:
		dirColor = t.Green
	case metrics.DirectionRisk:
		dirColor = t.Red
	default:
		dirColor = t.Yellow
	}
	dirBody := lipgloss.NewStyle().Foreground(dirColor).Bold(true).Render(d.Direction.Label) +
		"\n" + lipgloss.NewStyle().Foreground(t.TextMuted).Render(d.Direction.Description)

	liquidityBody := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true).
		Render(cli.FormatPercent(d.KPI.LiquidityRatio)) +
		"\n" + lipgloss.NewStyle().Foreground(t.TextMuted).
		Render("of assets held as deposits")

	halves := components.LayoutRow(width, 2)
	mid := components.CardRow([]string{
		components.ContentCard("Direction", dirBody, halves[0]),
		components.ContentCard("Liquidity", liquidityBody, halves[1]),
	})

	// Allocation card
	labels := make([]string, 0, len(model.Categories))
	values := make([]float64, 0, len(model.Categories))
	rendered := make([]string, 0, len(model.Categories))
	for _, c := range model.Categories {
		amount := d.KPI.AssetAllocation[c]
		if amount.IsZero() {
			continue
		}
		labels = append(labels, c.Label())
		values = append(values, amount.InexactFloat64())
		rendered = append(rendered, cli.FormatMoney(amount, a.currency))
	}

	var allocation string
	if len(values) > 0 {
		chart := components.BarChart(labels, values, rendered, components.CardInnerWidth(width), t.Accent)
		allocation = components.ContentCard("Allocation", chart, width)
	} else {
		empty := lipgloss.NewStyle().Foreground(t.TextMuted).
			Render("No holdings yet. Add one with: zeni assets add")
		allocation = components.ContentCard("Allocation", empty, width)
	}

	warn := ""
	if d.SnapshotWarn != nil {
		warn = "\n" + lipgloss.NewStyle().Foreground(t.Orange).
			Render(" Snapshot skipped: "+d.SnapshotWarn.Error())
	}

	return top + "\n" + mid + "\n" + allocation + warn
}
