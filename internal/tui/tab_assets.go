package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/zenigata-dev/zeni/internal/cli"
	"github.com/zenigata-dev/zeni/internal/metrics"
	"github.com/zenigata-dev/zeni/internal/model"
	"github.com/zenigata-dev/zeni/internal/tui/components"
	"github.com/zenigata-dev/zeni/internal/tui/theme"
)

func (a App) renderAssets(width int) string {
	t := theme.Active
	d := a.data

	if len(d.Holdings) == 0 {
		empty := lipgloss.NewStyle().Foreground(t.TextMuted).
			Render("No holdings yet. Add one with: zeni assets add")
		return components.ContentCard("Holdings", empty, width)
	}

	nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	catStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)
	gainStyle := lipgloss.NewStyle().Foreground(t.Green)
	lossStyle := lipgloss.NewStyle().Foreground(t.Red)

	inner := components.CardInnerWidth(width)

	var cards []string
	for _, c := range model.Categories {
		var rows []string
		for _, h := range d.Holdings {
			if h.Category != c {
				continue
			}

			value := cli.FormatMoney(metrics.Valuate(h), a.currency)
			gain := ""
			if g, ok := metrics.UnrealizedGain(h); ok {
				s := cli.FormatSignedMoney(g, a.currency)
				if g.Sign() < 0 {
					gain = lossStyle.Render(s)
				} else {
					gain = gainStyle.Render(s)
				}
			}

			left := nameStyle.Render(metrics.DisplayName(h))
			right := valueStyle.Render(value)
			if gain != "" {
				right += catStyle.Render("  ") + gain
			}

			pad := inner - lipgloss.Width(left) - lipgloss.Width(right)
			if pad < 1 {
				pad = 1
			}
			rows = append(rows, left+strings.Repeat(" ", pad)+right)
		}
		if len(rows) == 0 {
			continue
		}

		subtotal := d.KPI.AssetAllocation[c]
		title := fmt.Sprintf("%s — %s", c.Label(), cli.FormatMoney(subtotal, a.currency))
		cards = append(cards, components.ContentCard(title, strings.Join(rows, "\n"), width))
	}

	totalLine := lipgloss.NewStyle().Foreground(t.Accent).Bold(true).
		Render(" Total  " + cli.FormatMoney(metrics.TotalValue(d.Holdings), a.currency))

	return strings.Join(cards, "\n") + "\n" + totalLine + "\n"
}
