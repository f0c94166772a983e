package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/zenigata-dev/zeni/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "zeni.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func mustDay(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("parse date %q: %v", s, err)
	}
	return d
}

func TestHoldingRoundTrip(t *testing.T) {
	s := openTestStore(t)

	cv := decimal.NewFromInt(300000)
	h := model.Holding{
		Category:     model.CategoryStock,
		Ticker:       "7203",
		StockName:    "Toyota",
		Shares:       decimal.NewFromInt(100),
		AveragePrice: decimal.RequireFromString("2530.5"),
		CurrentValue: &cv,
		Currency:     "JPY",
	}
	if err := s.SaveHolding(&h); err != nil {
		t.Fatalf("SaveHolding: %v", err)
	}
	if h.ID == "" {
		t.Fatal("SaveHolding did not assign an id")
	}

	deposit := model.Holding{
		Category:    model.CategoryDeposit,
		AccountName: "Main Checking",
		Balance:     decimal.NewFromInt(1500000),
	}
	if err := s.SaveHolding(&deposit); err != nil {
		t.Fatalf("SaveHolding deposit: %v", err)
	}

	all, err := s.AllHoldings()
	if err != nil {
		t.Fatalf("AllHoldings: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("got %d holdings, want 2", len(all))
	}

	stocks, err := s.HoldingsByCategory(model.CategoryStock)
	if err != nil {
		t.Fatalf("HoldingsByCategory: %v", err)
	}
	if len(stocks) != 1 {
		t.Fatalf("got %d stocks, want 1", len(stocks))
	}
	got := stocks[0]
	if got.CurrentValue == nil || !got.CurrentValue.Equal(cv) {
		t.Errorf("current value = %v, want %s", got.CurrentValue, cv)
	}
	if !got.AveragePrice.Equal(decimal.RequireFromString("2530.5")) {
		t.Errorf("average price = %s, want 2530.5", got.AveragePrice)
	}

	// A holding saved without an override reads back with a nil override.
	noOverride := model.Holding{Category: model.CategoryFund, FundName: "Index", Quantity: decimal.NewFromInt(3)}
	if err := s.SaveHolding(&noOverride); err != nil {
		t.Fatalf("SaveHolding fund: %v", err)
	}
	funds, err := s.HoldingsByCategory(model.CategoryFund)
	if err != nil {
		t.Fatalf("HoldingsByCategory fund: %v", err)
	}
	if funds[0].CurrentValue != nil {
		t.Error("fund read back with unexpected current-value override")
	}

	if err := s.DeleteHolding(h.ID); err != nil {
		t.Fatalf("DeleteHolding: %v", err)
	}
	all, _ = s.AllHoldings()
	if len(all) != 2 {
		t.Fatalf("after delete got %d holdings, want 2", len(all))
	}
}

func TestEntriesInRange(t *testing.T) {
	s := openTestStore(t)

	add := func(day string, amount int64) {
		in := model.Income{Source: "salary", Amount: decimal.NewFromInt(amount), Date: mustDay(t, day)}
		if err := s.AddIncome(&in); err != nil {
			t.Fatalf("AddIncome: %v", err)
		}
	}
	add("2026-07-31", 1)
	add("2026-08-01", 2)
	add("2026-08-25", 3)
	add("2026-09-01", 4)

	incomes, err := s.IncomesInRange(mustDay(t, "2026-08-01"), mustDay(t, "2026-08-31"))
	if err != nil {
		t.Fatalf("IncomesInRange: %v", err)
	}
	if len(incomes) != 2 {
		t.Fatalf("got %d incomes, want 2", len(incomes))
	}
	if !incomes[0].Amount.Equal(decimal.NewFromInt(2)) || !incomes[1].Amount.Equal(decimal.NewFromInt(3)) {
		t.Errorf("range returned wrong entries: %s, %s", incomes[0].Amount, incomes[1].Amount)
	}

	e := model.Expense{Type: model.ExpenseFixed, Category: "housing", Amount: decimal.NewFromInt(90000), Date: mustDay(t, "2026-08-05")}
	if err := s.AddExpense(&e); err != nil {
		t.Fatalf("AddExpense: %v", err)
	}
	expenses, err := s.ExpensesInRange(mustDay(t, "2026-08-01"), mustDay(t, "2026-08-31"))
	if err != nil {
		t.Fatalf("ExpensesInRange: %v", err)
	}
	if len(expenses) != 1 || expenses[0].Category != "housing" {
		t.Fatalf("expenses = %+v", expenses)
	}
}

func TestCreateSnapshotIdempotentPerDate(t *testing.T) {
	s := openTestStore(t)

	snap := model.DailySnapshot{
		Date:        "2026-08-31",
		TotalAssets: decimal.NewFromInt(5_000_000),
		CashRatio:   30,
		Breakdown: map[model.Category]decimal.Decimal{
			model.CategoryDeposit: decimal.NewFromInt(1_500_000),
			model.CategoryStock:   decimal.NewFromInt(3_500_000),
		},
		DailyChange: decimal.NewFromInt(12_000),
	}

	id1, err := s.CreateSnapshot(snap)
	if err != nil {
		t.Fatalf("CreateSnapshot: %v", err)
	}

	// Second write for the same date must not create a duplicate and
	// must hand back the first record's id.
	snap.TotalAssets = decimal.NewFromInt(9_999_999)
	id2, err := s.CreateSnapshot(snap)
	if err != nil {
		t.Fatalf("CreateSnapshot second call: %v", err)
	}
	if id1 != id2 {
		t.Fatalf("ids differ: %s vs %s", id1, id2)
	}

	got, err := s.SnapshotByDate("2026-08-31")
	if err != nil {
		t.Fatalf("SnapshotByDate: %v", err)
	}
	if got == nil {
		t.Fatal("snapshot not found")
	}
	if !got.TotalAssets.Equal(decimal.NewFromInt(5_000_000)) {
		t.Errorf("existing snapshot was mutated: total = %s", got.TotalAssets)
	}
	if !got.Breakdown[model.CategoryDeposit].Equal(decimal.NewFromInt(1_500_000)) {
		t.Errorf("deposit breakdown = %s", got.Breakdown[model.CategoryDeposit])
	}
	if got.Breakdown[model.CategoryFund].IsZero() == false {
		t.Errorf("missing breakdown category should read back zero")
	}
}

func TestSnapshotOrdering(t *testing.T) {
	s := openTestStore(t)

	// Insert out of date order; lookups go by date, not insertion order.
	for _, d := range []struct {
		date  string
		total int64
	}{
		{"2026-08-20", 200},
		{"2026-08-10", 100},
		{"2026-08-30", 300},
	} {
		_, err := s.CreateSnapshot(model.DailySnapshot{
			Date:        d.date,
			TotalAssets: decimal.NewFromInt(d.total),
			DailyChange: decimal.Zero,
		})
		if err != nil {
			t.Fatalf("CreateSnapshot %s: %v", d.date, err)
		}
	}

	latest, err := s.LatestSnapshot()
	if err != nil || latest == nil {
		t.Fatalf("LatestSnapshot: %v %v", latest, err)
	}
	if latest.Date != "2026-08-30" {
		t.Errorf("latest = %s, want 2026-08-30", latest.Date)
	}

	oldest, err := s.OldestSnapshot()
	if err != nil || oldest == nil {
		t.Fatalf("OldestSnapshot: %v %v", oldest, err)
	}
	if oldest.Date != "2026-08-10" {
		t.Errorf("oldest = %s, want 2026-08-10", oldest.Date)
	}

	snaps, err := s.SnapshotsInRange("2026-08-01", "2026-08-31")
	if err != nil {
		t.Fatalf("SnapshotsInRange: %v", err)
	}
	if len(snaps) != 3 {
		t.Fatalf("got %d snapshots, want 3", len(snaps))
	}
	for i := 1; i < len(snaps); i++ {
		if snaps[i-1].Date > snaps[i].Date {
			t.Fatalf("range not date-ascending: %s before %s", snaps[i-1].Date, snaps[i].Date)
		}
	}

	if missing, err := s.SnapshotByDate("2025-01-01"); err != nil || missing != nil {
		t.Fatalf("absent date: got %v, %v", missing, err)
	}
}

func TestUpsertMonthlyState(t *testing.T) {
	s := openTestStore(t)

	st := model.MonthlyState{
		Month:             "2026-08",
		NetWorth:          decimal.NewFromInt(5_000_000),
		Cash:              decimal.NewFromInt(1_500_000),
		Invested:          decimal.NewFromInt(3_500_000),
		MonthlyIncome:     decimal.NewFromInt(450_000),
		MonthlyLivingCost: decimal.NewFromInt(280_000),
	}
	if err := s.UpsertMonthlyState(&st); err != nil {
		t.Fatalf("UpsertMonthlyState: %v", err)
	}

	// Overwrite, not duplicate.
	st2 := st
	st2.ID = ""
	st2.NetWorth = decimal.NewFromInt(5_200_000)
	if err := s.UpsertMonthlyState(&st2); err != nil {
		t.Fatalf("UpsertMonthlyState overwrite: %v", err)
	}

	all, err := s.AllMonthlyStates()
	if err != nil {
		t.Fatalf("AllMonthlyStates: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("got %d states for one month, want 1", len(all))
	}
	if !all[0].NetWorth.Equal(decimal.NewFromInt(5_200_000)) {
		t.Errorf("net worth = %s, want overwritten 5200000", all[0].NetWorth)
	}

	got, err := s.MonthlyStateByMonth("2026-08")
	if err != nil || got == nil {
		t.Fatalf("MonthlyStateByMonth: %v %v", got, err)
	}
	if missing, err := s.MonthlyStateByMonth("2020-01"); err != nil || missing != nil {
		t.Fatalf("absent month: got %v, %v", missing, err)
	}
}

func TestRecentMonthlyStatesOrder(t *testing.T) {
	s := openTestStore(t)

	for _, m := range []string{"2026-03", "2026-05", "2026-04", "2026-06"} {
		st := model.MonthlyState{Month: m, NetWorth: decimal.NewFromInt(1)}
		if err := s.UpsertMonthlyState(&st); err != nil {
			t.Fatalf("UpsertMonthlyState %s: %v", m, err)
		}
	}

	recent, err := s.RecentMonthlyStates(3)
	if err != nil {
		t.Fatalf("RecentMonthlyStates: %v", err)
	}
	want := []string{"2026-04", "2026-05", "2026-06"}
	if len(recent) != len(want) {
		t.Fatalf("got %d states, want %d", len(recent), len(want))
	}
	for i, m := range want {
		if recent[i].Month != m {
			t.Errorf("recent[%d] = %s, want %s", i, recent[i].Month, m)
		}
	}

	latest, err := s.LatestMonthlyState()
	if err != nil || latest == nil || latest.Month != "2026-06" {
		t.Fatalf("LatestMonthlyState = %v, %v", latest, err)
	}
}

func TestPlanRoundTrip(t *testing.T) {
	s := openTestStore(t)

	ret := 5.5
	p := model.InvestmentPlan{
		Name:           "NISA index",
		AssetCategory:  model.CategoryFund,
		MonthlyAmount:  decimal.NewFromInt(50_000),
		ExpectedReturn: &ret,
	}
	if err := s.SavePlan(&p); err != nil {
		t.Fatalf("SavePlan: %v", err)
	}
	noReturn := model.InvestmentPlan{
		Name:          "Savings",
		AssetCategory: model.CategoryDeposit,
		MonthlyAmount: decimal.NewFromInt(30_000),
	}
	if err := s.SavePlan(&noReturn); err != nil {
		t.Fatalf("SavePlan: %v", err)
	}

	plans, err := s.AllPlans()
	if err != nil {
		t.Fatalf("AllPlans: %v", err)
	}
	if len(plans) != 2 {
		t.Fatalf("got %d plans, want 2", len(plans))
	}
	if plans[0].ExpectedReturn == nil || *plans[0].ExpectedReturn != 5.5 {
		t.Errorf("expected return = %v, want 5.5", plans[0].ExpectedReturn)
	}
	if plans[1].ExpectedReturn != nil {
		t.Errorf("blank expected return should read back nil, got %v", *plans[1].ExpectedReturn)
	}

	if err := s.DeletePlan(p.ID); err != nil {
		t.Fatalf("DeletePlan: %v", err)
	}
	plans, _ = s.AllPlans()
	if len(plans) != 1 {
		t.Fatalf("after delete got %d plans, want 1", len(plans))
	}
}

func TestScenarioRoundTrip(t *testing.T) {
	s := openTestStore(t)

	sc := model.Scenario{
		Name:              "FIRE at 50",
		Years:             15,
		ExpectedReturn:    6,
		MonthlyInvestment: decimal.NewFromInt(120_000),
		MonthlySpending:   decimal.NewFromInt(220_000),
		IncomeGrowth:      2,
		BaselineIncome:    decimal.NewFromInt(420_000),
		CurrentNetWorth:   decimal.NewFromInt(8_000_000),
	}
	if err := s.SaveScenario(&sc); err != nil {
		t.Fatalf("SaveScenario: %v", err)
	}

	scenarios, err := s.AllScenarios()
	if err != nil {
		t.Fatalf("AllScenarios: %v", err)
	}
	if len(scenarios) != 1 {
		t.Fatalf("got %d scenarios, want 1", len(scenarios))
	}
	got := scenarios[0]
	if got.Years != 15 || got.ExpectedReturn != 6 {
		t.Errorf("scenario fields = %+v", got)
	}
	if !got.MonthlyInvestment.Equal(decimal.NewFromInt(120_000)) {
		t.Errorf("monthly investment = %s", got.MonthlyInvestment)
	}

	if err := s.DeleteScenario(sc.ID); err != nil {
		t.Fatalf("DeleteScenario: %v", err)
	}
	scenarios, _ = s.AllScenarios()
	if len(scenarios) != 0 {
		t.Fatal("scenario not deleted")
	}
}
