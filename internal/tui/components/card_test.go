package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestLayoutRow(t *testing.T) {
	tests := []struct {
		name  string
		total int
		n     int
		want  []int
	}{
		{"even split", 80, 4, []int{20, 20, 20, 20}},
		{"remainder goes to first items", 82, 4, []int{21, 21, 20, 20}},
		{"single column", 50, 1, []int{50}},
		{"zero columns", 50, 0, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LayoutRow(tt.total, tt.n)
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			sum := 0
			for i, w := range got {
				if w != tt.want[i] {
					t.Fatalf("got %v, want %v", got, tt.want)
				}
				sum += w
			}
			if tt.n > 0 && sum != tt.total {
				t.Errorf("widths sum to %d, want %d", sum, tt.total)
			}
		})
	}
}

func TestCardInnerWidth(t *testing.T) {
	if got := CardInnerWidth(40); got != 36 {
		t.Errorf("CardInnerWidth(40) = %d, want 36", got)
	}
	// Narrow cards clamp instead of going unusably thin.
	if got := CardInnerWidth(8); got != minCardWidth {
		t.Errorf("CardInnerWidth(8) = %d, want %d", got, minCardWidth)
	}
}

func TestMetricCardContent(t *testing.T) {
	card := MetricCard("Total Assets", "¥5,000,000", "+¥100,000 today", 30)
	for _, want := range []string{"Total Assets", "¥5,000,000", "+¥100,000 today"} {
		if !strings.Contains(card, want) {
			t.Errorf("card missing %q\n%s", want, card)
		}
	}

	// Without a delta the card stays two lines tall inside the border.
	short := MetricCard("Savings Rate", "33.3%", "", 30)
	if lipgloss.Height(short) >= lipgloss.Height(card) {
		t.Errorf("delta-less card height %d, want less than %d",
			lipgloss.Height(short), lipgloss.Height(card))
	}
}

func TestMetricCardRowWidth(t *testing.T) {
	cards := []struct{ Label, Value, Delta string }{
		{"Total Assets", "¥5,000,000", ""},
		{"Net Worth Change", "+¥500,000", ""},
		{"Monthly Balance", "+¥160,000", ""},
		{"Savings Rate", "33.3%", ""},
	}
	row := MetricCardRow(cards, 100)
	if got := lipgloss.Width(row); got != 100 {
		t.Errorf("row width = %d, want 100", got)
	}

	if MetricCardRow(nil, 100) != "" {
		t.Error("empty card list must render nothing")
	}
}
