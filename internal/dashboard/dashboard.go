// Package dashboard orchestrates daily snapshots and the KPI bundle
// over an injected persistence port.
package dashboard

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/zenigata-dev/zeni/internal/metrics"
	"github.com/zenigata-dev/zeni/internal/model"
)

const dateLayout = "2006-01-02"

// Store is the persistence surface the orchestrator needs.
// *store.Store satisfies it; tests inject a fake.
type Store interface {
	AllHoldings() ([]model.Holding, error)
	SnapshotByDate(date string) (*model.DailySnapshot, error)
	LatestSnapshot() (*model.DailySnapshot, error)
	LatestSnapshotBefore(date string) (*model.DailySnapshot, error)
	OldestSnapshot() (*model.DailySnapshot, error)
	CreateSnapshot(model.DailySnapshot) (string, error)
	IncomesInRange(start, end time.Time) ([]model.Income, error)
	ExpensesInRange(start, end time.Time) ([]model.Expense, error)
}

// EnsureSnapshot guarantees a valuation snapshot exists for now's date
// and returns its id. When one already exists it is returned untouched,
// so repeated calls within a day are no-ops. The store's insert is
// atomic per date, which keeps concurrent callers from duplicating it.
func EnsureSnapshot(st Store, now time.Time) (string, error) {
	today := now.Format(dateLayout)

	existing, err := st.SnapshotByDate(today)
	if err != nil {
		return "", fmt.Errorf("checking snapshot for %s: %w", today, err)
	}
	if existing != nil {
		return existing.ID, nil
	}

	holdings, err := st.AllHoldings()
	if err != nil {
		return "", fmt.Errorf("loading holdings: %w", err)
	}

	breakdown := metrics.CategoryTotals(holdings)
	total := metrics.TotalValue(holdings)
	cashRatio := metrics.LiquidityRatio(
		breakdown[model.CategoryDeposit].InexactFloat64(),
		total.InexactFloat64(),
	)

	// Day-over-day delta against the most recent prior snapshot.
	dailyChange := decimal.Zero
	prior, err := st.LatestSnapshotBefore(today)
	if err != nil {
		return "", fmt.Errorf("loading prior snapshot: %w", err)
	}
	if prior != nil {
		dailyChange = total.Sub(prior.TotalAssets)
	}

	return st.CreateSnapshot(model.DailySnapshot{
		Date:        today,
		TotalAssets: total,
		CashRatio:   cashRatio,
		Breakdown:   breakdown,
		DailyChange: dailyChange,
	})
}

// ComputeKPI builds the KPI bundle for the calendar month containing
// asOf. The sub-computations are independent of each other.
func ComputeKPI(st Store, asOf time.Time) (model.KPIData, error) {
	var kpi model.KPIData

	latest, err := st.LatestSnapshot()
	if err != nil {
		return kpi, fmt.Errorf("loading latest snapshot: %w", err)
	}
	oldest, err := st.OldestSnapshot()
	if err != nil {
		return kpi, fmt.Errorf("loading oldest snapshot: %w", err)
	}
	kpi.NetWorthChange = decimal.Zero
	if latest != nil && oldest != nil {
		kpi.NetWorthChange = latest.TotalAssets.Sub(oldest.TotalAssets)
	}

	start, end := monthBounds(asOf)
	incomes, err := st.IncomesInRange(start, end)
	if err != nil {
		return kpi, fmt.Errorf("loading incomes: %w", err)
	}
	expenses, err := st.ExpensesInRange(start, end)
	if err != nil {
		return kpi, fmt.Errorf("loading expenses: %w", err)
	}

	incomeTotal := decimal.Zero
	for _, in := range incomes {
		incomeTotal = incomeTotal.Add(in.Amount)
	}
	expenseTotal := decimal.Zero
	for _, e := range expenses {
		expenseTotal = expenseTotal.Add(e.Amount)
	}

	kpi.MonthlyBalance = incomeTotal.Sub(expenseTotal)
	kpi.MonthlyExpenses = expenseTotal
	kpi.SavingsRate = metrics.SavingsRate(incomeTotal.InexactFloat64(), expenseTotal.InexactFloat64())
	kpi.SavingsRateDisplay = metrics.SavingsRateDisplay(incomeTotal.InexactFloat64(), expenseTotal.InexactFloat64())

	holdings, err := st.AllHoldings()
	if err != nil {
		return kpi, fmt.Errorf("loading holdings: %w", err)
	}
	kpi.AssetAllocation = metrics.CategoryTotals(holdings)
	kpi.LiquidityRatio = metrics.LiquidityRatio(
		kpi.AssetAllocation[model.CategoryDeposit].InexactFloat64(),
		metrics.TotalValue(holdings).InexactFloat64(),
	)

	return kpi, nil
}

// Refresh is the dashboard-load entry point: it makes sure today's
// snapshot exists, then computes the KPI bundle. A snapshot failure is
// non-fatal; it is reported through warn and the KPIs are computed
// from whatever data is present.
func Refresh(st Store, now time.Time, warn func(error)) (model.KPIData, error) {
	if _, err := EnsureSnapshot(st, now); err != nil && warn != nil {
		warn(err)
	}
	return ComputeKPI(st, now)
}

// monthBounds returns the first and last day of the calendar month
// containing t, at day granularity.
func monthBounds(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	end := start.AddDate(0, 1, -1)
	return start, end
}
