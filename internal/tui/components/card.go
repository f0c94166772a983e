// Package components provides reusable TUI widgets for the zeni dashboard.
package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/zenigata-dev/zeni/internal/tui/theme"
)

// minCardWidth keeps cards legible when the layout squeezes them.
const minCardWidth = 10

func clampWidth(w int) int {
	if w < minCardWidth {
		return minCardWidth
	}
	return w
}

// cardFrame is the rounded-border frame shared by all cards.
// outerWidth is the total rendered width including the border.
func cardFrame(outerWidth int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Active.Border).
		Width(clampWidth(outerWidth - 2)).
		Padding(0, 1)
}

// LayoutRow distributes totalWidth into n widths that sum to exactly totalWidth.
// First items absorb the remainder from integer division.
func LayoutRow(totalWidth, n int) []int {
	if n <= 0 {
		return nil
	}
	base := totalWidth / n
	remainder := totalWidth % n
	widths := make([]int, n)
	for i := range widths {
		widths[i] = base
		if i < remainder {
			widths[i]++
		}
	}
	return widths
}

// deltaStyle picks the tint for a metric delta from its leading sign.
// The money formatters prefix changes with "+" or "-"; unsigned
// annotations like "this month" stay dim.
func deltaStyle(delta string) lipgloss.Style {
	t := theme.Active
	switch {
	case strings.HasPrefix(delta, "+"):
		return lipgloss.NewStyle().Foreground(t.Green)
	case strings.HasPrefix(delta, "-"):
		return lipgloss.NewStyle().Foreground(t.Red)
	}
	return lipgloss.NewStyle().Foreground(t.TextDim)
}

// MetricCard renders a small card with a label, a headline value, and an
// optional delta line tinted by its sign.
func MetricCard(label, value, delta string, outerWidth int) string {
	t := theme.Active

	content := lipgloss.NewStyle().Foreground(t.TextMuted).Render(label) + "\n" +
		lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true).Render(value)
	if delta != "" {
		content += "\n" + deltaStyle(delta).Render(delta)
	}
	return cardFrame(outerWidth).Render(content)
}

// MetricCardRow renders a row of metric cards side by side.
// totalWidth is the full row width; cards sum to exactly that.
func MetricCardRow(cards []struct{ Label, Value, Delta string }, totalWidth int) string {
	if len(cards) == 0 {
		return ""
	}

	widths := LayoutRow(totalWidth, len(cards))

	var rendered []string
	for i, c := range cards {
		rendered = append(rendered, MetricCard(c.Label, c.Value, c.Delta, widths[i]))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

// ContentCard renders a bordered content card with an optional title.
func ContentCard(title, body string, outerWidth int) string {
	content := ""
	if title != "" {
		content = lipgloss.NewStyle().
			Foreground(theme.Active.TextMuted).
			Bold(true).
			Render(title) + "\n"
	}
	content += body

	return cardFrame(outerWidth).Render(content)
}

// CardRow joins pre-rendered card strings horizontally.
func CardRow(cards []string) string {
	if len(cards) == 0 {
		return ""
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

// CardInnerWidth returns the usable text width inside a ContentCard
// given its outer width (subtracts border + padding).
func CardInnerWidth(outerWidth int) int {
	return clampWidth(outerWidth - 4)
}
