package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/zenigata-dev/zeni/internal/tui/theme"
)

// Sparkline renders a unicode sparkline from values.
func Sparkline(values []float64, color lipgloss.Color) string {
	if len(values) == 0 {
		return ""
	}

	blocks := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	peak := values[0]
	for _, v := range values[1:] {
		if v > peak {
			peak = v
		}
	}
	if peak == 0 {
		peak = 1
	}

	style := lipgloss.NewStyle().Foreground(color)

	var buf strings.Builder
	buf.Grow(len(values) * 4) // UTF-8 block chars are up to 3 bytes
	for _, v := range values {
		idx := int(v / peak * float64(len(blocks)-1))
		if idx >= len(blocks) {
			idx = len(blocks) - 1
		}
		if idx < 0 {
			idx = 0
		}
		buf.WriteRune(blocks[idx])
	}

	return style.Render(buf.String())
}

// BarChart renders labeled horizontal bars scaled to the largest value.
// Each row is "label  bar  value"; width bounds the bar segment.
func BarChart(labels []string, values []float64, rendered []string, width int, color lipgloss.Color) string {
	if len(values) == 0 || len(labels) != len(values) {
		return ""
	}
	t := theme.Active

	peak := 0.0
	labelW := 0
	valueW := 0
	for i, v := range values {
		if v > peak {
			peak = v
		}
		if len(labels[i]) > labelW {
			labelW = len(labels[i])
		}
		if i < len(rendered) && lipgloss.Width(rendered[i]) > valueW {
			valueW = lipgloss.Width(rendered[i])
		}
	}
	if peak == 0 {
		peak = 1
	}

	barW := width - labelW - valueW - 4
	if barW < 5 {
		barW = 5
	}

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	barStyle := lipgloss.NewStyle().Foreground(color)
	fillStyle := lipgloss.NewStyle().Foreground(t.SurfaceHover)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)

	var b strings.Builder
	for i, v := range values {
		filled := int(v / peak * float64(barW))
		if filled > barW {
			filled = barW
		}
		if filled < 0 {
			filled = 0
		}

		value := ""
		if i < len(rendered) {
			value = rendered[i]
		}

		b.WriteString(labelStyle.Render(fmt.Sprintf("%-*s", labelW, labels[i])))
		b.WriteString("  ")
		b.WriteString(barStyle.Render(strings.Repeat("█", filled)))
		b.WriteString(fillStyle.Render(strings.Repeat("░", barW-filled)))
		b.WriteString("  ")
		b.WriteString(valueStyle.Render(value))
		if i < len(values)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
