// Package report builds the monthly markdown report.
package report

import (
	"fmt"
	"strings"
	"text/template"
	"time"

	"github.com/shopspring/decimal"

	"github.com/zenigata-dev/zeni/internal/cli"
	"github.com/zenigata-dev/zeni/internal/metrics"
	"github.com/zenigata-dev/zeni/internal/model"
)

// Data carries everything the report template needs, pre-computed by
// the caller so the template stays free of logic.
type Data struct {
	GeneratedAt time.Time
	Month       string // "2006-01"
	Currency    string

	Holdings  []model.Holding
	KPI       model.KPIData
	Direction metrics.Direction
	History   []model.MonthlyState // oldest first
	Forecast  []metrics.ForecastPoint
}

type reportRow struct {
	Name     string
	Category string
	Value    string
	Gain     string
}

type reportView struct {
	Month       string
	GeneratedAt string
	Status      string
	StatusLabel string
	Description string

	TotalAssets    string
	NetWorthChange string
	MonthlyBalance string
	SavingsRate    string
	Liquidity      string
	Expenses       string

	Holdings   []reportRow
	Allocation []reportRow
	Forecast   []reportRow
}

const reportTemplate = `# Monthly Report — {{.Month}}

*Generated {{.GeneratedAt}}*

## Direction: {{.StatusLabel}}

{{.Description}}

## Key Figures

| Metric | Value |
|---|---|
| Total assets | {{.TotalAssets}} |
| Net worth change | {{.NetWorthChange}} |
| Monthly balance | {{.MonthlyBalance}} |
| Savings rate | {{.SavingsRate}} |
| Liquidity | {{.Liquidity}} |
| Monthly expenses | {{.Expenses}} |
{{if .Holdings}}
## Holdings

| Holding | Category | Value | Unrealized |
|---|---|---|---|
{{range .Holdings}}| {{.Name}} | {{.Category}} | {{.Value}} | {{.Gain}} |
{{end}}{{end}}{{if .Allocation}}
## Allocation

| Category | Value | Share |
|---|---|---|
{{range .Allocation}}| {{.Category}} | {{.Value}} | {{.Gain}} |
{{end}}{{end}}{{if .Forecast}}
## Outlook

| Horizon | Projected Assets |
|---|---|
{{range .Forecast}}| {{.Name}} | {{.Value}} |
{{end}}{{end}}`

var tmpl = template.Must(template.New("report").Parse(reportTemplate))

// Build renders the markdown report for d.
func Build(d Data) (string, error) {
	v := reportView{
		Month:       d.Month,
		GeneratedAt: d.GeneratedAt.Format("2006-01-02"),
		Status:      string(d.Direction.Status),
		StatusLabel: d.Direction.Label,
		Description: d.Direction.Description,

		TotalAssets:    cli.FormatMoney(metrics.TotalValue(d.Holdings), d.Currency),
		NetWorthChange: cli.FormatSignedMoney(d.KPI.NetWorthChange, d.Currency),
		MonthlyBalance: cli.FormatSignedMoney(d.KPI.MonthlyBalance, d.Currency),
		SavingsRate:    cli.FormatPercent(d.KPI.SavingsRateDisplay),
		Liquidity:      cli.FormatPercent(d.KPI.LiquidityRatio),
		Expenses:       cli.FormatMoney(d.KPI.MonthlyExpenses, d.Currency),
	}

	for _, h := range d.Holdings {
		row := reportRow{
			Name:     metrics.DisplayName(h),
			Category: h.Category.Label(),
			Value:    cli.FormatMoney(metrics.Valuate(h), d.Currency),
			Gain:     "—",
		}
		if gain, ok := metrics.UnrealizedGain(h); ok {
			row.Gain = cli.FormatSignedMoney(gain, d.Currency)
		}
		v.Holdings = append(v.Holdings, row)
	}

	total := metrics.TotalValue(d.Holdings)
	for _, c := range model.Categories {
		amount := d.KPI.AssetAllocation[c]
		if amount.IsZero() {
			continue
		}
		share := 0.0
		if total.Sign() > 0 {
			share = amount.Div(total).InexactFloat64() * 100
		}
		v.Allocation = append(v.Allocation, reportRow{
			Category: c.Label(),
			Value:    cli.FormatMoney(amount, d.Currency),
			Gain:     cli.FormatPercent(share),
		})
	}

	for _, p := range d.Forecast {
		v.Forecast = append(v.Forecast, reportRow{
			Name:  p.Label,
			Value: cli.FormatMoney(decimal.NewFromInt(p.TotalAssets), d.Currency),
		})
	}

	var b strings.Builder
	if err := tmpl.Execute(&b, v); err != nil {
		return "", fmt.Errorf("rendering report: %w", err)
	}
	return b.String(), nil
}
