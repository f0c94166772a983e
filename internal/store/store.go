// Package store provides the SQLite-backed ledger database.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/zenigata-dev/zeni/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

const dateLayout = "2006-01-02"

// Store wraps the ledger database. All monetary columns hold canonical
// decimal strings; REAL is used only for percentages.
type Store struct {
	db *sql.DB
}

// Open opens or creates the ledger database at the given path.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening ledger db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the ledger database.
func (s *Store) Close() error {
	return s.db.Close()
}

func nowRFC3339() string {
	return time.Now().UTC().Format(time.RFC3339)
}

func parseDec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

func parseNullDec(ns sql.NullString) decimal.Decimal {
	if !ns.Valid || ns.String == "" {
		return decimal.Zero
	}
	return parseDec(ns.String)
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339, s)
	return t
}

// ---------- Holdings ----------

// SaveHolding inserts or fully replaces a holding. A missing id is
// assigned; timestamps are maintained here.
func (s *Store) SaveHolding(h *model.Holding) error {
	now := time.Now().UTC()
	if h.ID == "" {
		h.ID = uuid.NewString()
		h.CreatedAt = now
	}
	h.UpdatedAt = now

	var currentValue any
	if h.CurrentValue != nil {
		currentValue = h.CurrentValue.String()
	}

	_, err := s.db.Exec(`INSERT OR REPLACE INTO holdings
		(id, category, account_name, institution, balance, ticker, stock_name,
		 shares, currency, fund_name, symbol, company_name, units, quantity,
		 average_price, current_value, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		h.ID, string(h.Category), h.AccountName, h.Institution, h.Balance.String(),
		h.Ticker, h.StockName, h.Shares.String(), h.Currency, h.FundName,
		h.Symbol, h.CompanyName, h.Units.String(), h.Quantity.String(),
		h.AveragePrice.String(), currentValue,
		h.CreatedAt.Format(time.RFC3339), h.UpdatedAt.Format(time.RFC3339),
	)
	return err
}

const holdingColumns = `id, category, account_name, institution, balance, ticker,
	stock_name, shares, currency, fund_name, symbol, company_name, units,
	quantity, average_price, current_value, created_at, updated_at`

func scanHolding(rows *sql.Rows) (model.Holding, error) {
	var h model.Holding
	var category, createdAt, updatedAt string
	var accountName, institution, balance, ticker, stockName, shares,
		currency, fundName, symbol, companyName, units, quantity,
		averagePrice, currentValue sql.NullString

	err := rows.Scan(&h.ID, &category, &accountName, &institution, &balance,
		&ticker, &stockName, &shares, &currency, &fundName, &symbol,
		&companyName, &units, &quantity, &averagePrice, &currentValue,
		&createdAt, &updatedAt)
	if err != nil {
		return h, err
	}

	h.Category = model.Category(category)
	h.AccountName = accountName.String
	h.Institution = institution.String
	h.Balance = parseNullDec(balance)
	h.Ticker = ticker.String
	h.StockName = stockName.String
	h.Shares = parseNullDec(shares)
	h.Currency = currency.String
	h.FundName = fundName.String
	h.Symbol = symbol.String
	h.CompanyName = companyName.String
	h.Units = parseNullDec(units)
	h.Quantity = parseNullDec(quantity)
	h.AveragePrice = parseNullDec(averagePrice)
	if currentValue.Valid && currentValue.String != "" {
		cv := parseDec(currentValue.String)
		h.CurrentValue = &cv
	}
	h.CreatedAt = parseTime(createdAt)
	h.UpdatedAt = parseTime(updatedAt)
	return h, nil
}

func (s *Store) queryHoldings(query string, args ...any) ([]model.Holding, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var holdings []model.Holding
	for rows.Next() {
		h, err := scanHolding(rows)
		if err != nil {
			return nil, err
		}
		holdings = append(holdings, h)
	}
	return holdings, rows.Err()
}

// AllHoldings returns every holding, oldest first.
func (s *Store) AllHoldings() ([]model.Holding, error) {
	return s.queryHoldings(`SELECT ` + holdingColumns + ` FROM holdings ORDER BY created_at`)
}

// HoldingsByCategory returns the holdings in one category, oldest first.
func (s *Store) HoldingsByCategory(c model.Category) ([]model.Holding, error) {
	return s.queryHoldings(`SELECT `+holdingColumns+` FROM holdings WHERE category = ? ORDER BY created_at`, string(c))
}

// DeleteHolding removes a holding by id.
func (s *Store) DeleteHolding(id string) error {
	_, err := s.db.Exec("DELETE FROM holdings WHERE id = ?", id)
	return err
}

// ---------- Incomes ----------

// AddIncome inserts an income entry, assigning an id if missing.
func (s *Store) AddIncome(in *model.Income) error {
	if in.ID == "" {
		in.ID = uuid.NewString()
	}
	if in.CreatedAt.IsZero() {
		in.CreatedAt = time.Now().UTC()
	}
	_, err := s.db.Exec(`INSERT INTO incomes (id, source, amount, date, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		in.ID, in.Source, in.Amount.String(), in.Date.Format(dateLayout),
		in.CreatedAt.Format(time.RFC3339))
	return err
}

// IncomesInRange returns income entries with start <= date <= end,
// date-ascending. Dates compare at day granularity.
func (s *Store) IncomesInRange(start, end time.Time) ([]model.Income, error) {
	rows, err := s.db.Query(`SELECT id, source, amount, date, created_at
		FROM incomes WHERE date >= ? AND date <= ? ORDER BY date`,
		start.Format(dateLayout), end.Format(dateLayout))
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var incomes []model.Income
	for rows.Next() {
		var in model.Income
		var amount, date, createdAt string
		if err := rows.Scan(&in.ID, &in.Source, &amount, &date, &createdAt); err != nil {
			return nil, err
		}
		in.Amount = parseDec(amount)
		in.Date, _ = time.Parse(dateLayout, date)
		in.CreatedAt = parseTime(createdAt)
		incomes = append(incomes, in)
	}
	return incomes, rows.Err()
}

// DeleteIncome removes an income entry by id.
func (s *Store) DeleteIncome(id string) error {
	_, err := s.db.Exec("DELETE FROM incomes WHERE id = ?", id)
	return err
}

// ---------- Expenses ----------

// AddExpense inserts an expense entry, assigning an id if missing.
func (s *Store) AddExpense(e *model.Expense) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	_, err := s.db.Exec(`INSERT INTO expenses (id, type, category, amount, date, memo, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.ID, string(e.Type), e.Category, e.Amount.String(),
		e.Date.Format(dateLayout), e.Memo, e.CreatedAt.Format(time.RFC3339))
	return err
}

// ExpensesInRange returns expense entries with start <= date <= end,
// date-ascending.
func (s *Store) ExpensesInRange(start, end time.Time) ([]model.Expense, error) {
	rows, err := s.db.Query(`SELECT id, type, category, amount, date, memo, created_at
		FROM expenses WHERE date >= ? AND date <= ? ORDER BY date`,
		start.Format(dateLayout), end.Format(dateLayout))
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var expenses []model.Expense
	for rows.Next() {
		var e model.Expense
		var typ, amount, date string
		var memo sql.NullString
		var createdAt string
		if err := rows.Scan(&e.ID, &typ, &e.Category, &amount, &date, &memo, &createdAt); err != nil {
			return nil, err
		}
		e.Type = model.ExpenseType(typ)
		e.Amount = parseDec(amount)
		e.Date, _ = time.Parse(dateLayout, date)
		e.Memo = memo.String
		e.CreatedAt = parseTime(createdAt)
		expenses = append(expenses, e)
	}
	return expenses, rows.Err()
}

// DeleteExpense removes an expense entry by id.
func (s *Store) DeleteExpense(id string) error {
	_, err := s.db.Exec("DELETE FROM expenses WHERE id = ?", id)
	return err
}

// ---------- Daily snapshots ----------

// CreateSnapshot inserts a snapshot keyed by its date. The insert is
// atomic per date: if a snapshot already exists for that date the call
// is a no-op and the existing record's id is returned, so concurrent
// writers cannot produce duplicates.
func (s *Store) CreateSnapshot(snap model.DailySnapshot) (string, error) {
	id := uuid.NewString()
	breakdown := func(c model.Category) string {
		if v, ok := snap.Breakdown[c]; ok {
			return v.String()
		}
		return "0"
	}

	res, err := s.db.Exec(`INSERT INTO daily_snapshots
		(id, date, total_assets, cash_ratio, deposit_total, stock_total,
		 fund_total, crypto_total, equity_total, daily_change, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(date) DO NOTHING`,
		id, snap.Date, snap.TotalAssets.String(), snap.CashRatio,
		breakdown(model.CategoryDeposit), breakdown(model.CategoryStock),
		breakdown(model.CategoryFund), breakdown(model.CategoryCrypto),
		breakdown(model.CategoryEmployeeEquity),
		snap.DailyChange.String(), nowRFC3339(),
	)
	if err != nil {
		return "", err
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		existing, err := s.SnapshotByDate(snap.Date)
		if err != nil {
			return "", err
		}
		if existing != nil {
			return existing.ID, nil
		}
	}
	return id, nil
}

const snapshotColumns = `id, date, total_assets, cash_ratio, deposit_total,
	stock_total, fund_total, crypto_total, equity_total, daily_change, created_at`

func scanSnapshot(scan func(dest ...any) error) (model.DailySnapshot, error) {
	var snap model.DailySnapshot
	var totalAssets, depositTotal, stockTotal, fundTotal, cryptoTotal,
		equityTotal, dailyChange, createdAt string

	err := scan(&snap.ID, &snap.Date, &totalAssets, &snap.CashRatio,
		&depositTotal, &stockTotal, &fundTotal, &cryptoTotal, &equityTotal,
		&dailyChange, &createdAt)
	if err != nil {
		return snap, err
	}

	snap.TotalAssets = parseDec(totalAssets)
	snap.Breakdown = map[model.Category]decimal.Decimal{
		model.CategoryDeposit:        parseDec(depositTotal),
		model.CategoryStock:          parseDec(stockTotal),
		model.CategoryFund:           parseDec(fundTotal),
		model.CategoryCrypto:         parseDec(cryptoTotal),
		model.CategoryEmployeeEquity: parseDec(equityTotal),
	}
	snap.DailyChange = parseDec(dailyChange)
	snap.CreatedAt = parseTime(createdAt)
	return snap, nil
}

func (s *Store) querySnapshot(query string, args ...any) (*model.DailySnapshot, error) {
	row := s.db.QueryRow(query, args...)
	snap, err := scanSnapshot(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &snap, nil
}

// SnapshotByDate returns the snapshot for an exact date, or nil.
func (s *Store) SnapshotByDate(date string) (*model.DailySnapshot, error) {
	return s.querySnapshot(`SELECT `+snapshotColumns+` FROM daily_snapshots WHERE date = ?`, date)
}

// LatestSnapshot returns the most recent snapshot by date, or nil.
func (s *Store) LatestSnapshot() (*model.DailySnapshot, error) {
	return s.querySnapshot(`SELECT ` + snapshotColumns + ` FROM daily_snapshots ORDER BY date DESC LIMIT 1`)
}

// OldestSnapshot returns the earliest snapshot by date, or nil.
func (s *Store) OldestSnapshot() (*model.DailySnapshot, error) {
	return s.querySnapshot(`SELECT ` + snapshotColumns + ` FROM daily_snapshots ORDER BY date LIMIT 1`)
}

// LatestSnapshotBefore returns the most recent snapshot strictly before
// date, or nil.
func (s *Store) LatestSnapshotBefore(date string) (*model.DailySnapshot, error) {
	return s.querySnapshot(`SELECT `+snapshotColumns+` FROM daily_snapshots
		WHERE date < ? ORDER BY date DESC LIMIT 1`, date)
}

// SnapshotsInRange returns snapshots with startDate <= date <= endDate,
// date-ascending.
func (s *Store) SnapshotsInRange(startDate, endDate string) ([]model.DailySnapshot, error) {
	rows, err := s.db.Query(`SELECT `+snapshotColumns+` FROM daily_snapshots
		WHERE date >= ? AND date <= ? ORDER BY date`, startDate, endDate)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var snaps []model.DailySnapshot
	for rows.Next() {
		snap, err := scanSnapshot(rows.Scan)
		if err != nil {
			return nil, err
		}
		snaps = append(snaps, snap)
	}
	return snaps, rows.Err()
}

// ---------- Monthly states ----------

// UpsertMonthlyState creates or fully replaces the state for its month.
// The upsert is a single atomic statement keyed on the unique month
// column; created_at survives replacement.
func (s *Store) UpsertMonthlyState(st *model.MonthlyState) error {
	if st.ID == "" {
		st.ID = uuid.NewString()
	}
	now := nowRFC3339()

	_, err := s.db.Exec(`INSERT INTO monthly_states
		(id, month, net_worth, cash, invested, income_monthly,
		 living_cost_monthly, invest_contribution, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(month) DO UPDATE SET
			net_worth = excluded.net_worth,
			cash = excluded.cash,
			invested = excluded.invested,
			income_monthly = excluded.income_monthly,
			living_cost_monthly = excluded.living_cost_monthly,
			invest_contribution = excluded.invest_contribution,
			updated_at = excluded.updated_at`,
		st.ID, st.Month, st.NetWorth.String(), st.Cash.String(),
		st.Invested.String(), st.MonthlyIncome.String(),
		st.MonthlyLivingCost.String(), st.MonthlyContribution.String(),
		now, now,
	)
	return err
}

const monthlyStateColumns = `id, month, net_worth, cash, invested,
	income_monthly, living_cost_monthly, invest_contribution, created_at, updated_at`

func scanMonthlyState(scan func(dest ...any) error) (model.MonthlyState, error) {
	var st model.MonthlyState
	var netWorth, cash, invested, income, livingCost, contribution,
		createdAt, updatedAt string

	err := scan(&st.ID, &st.Month, &netWorth, &cash, &invested, &income,
		&livingCost, &contribution, &createdAt, &updatedAt)
	if err != nil {
		return st, err
	}

	st.NetWorth = parseDec(netWorth)
	st.Cash = parseDec(cash)
	st.Invested = parseDec(invested)
	st.MonthlyIncome = parseDec(income)
	st.MonthlyLivingCost = parseDec(livingCost)
	st.MonthlyContribution = parseDec(contribution)
	st.CreatedAt = parseTime(createdAt)
	st.UpdatedAt = parseTime(updatedAt)
	return st, nil
}

// MonthlyStateByMonth returns the state for a month key, or nil.
func (s *Store) MonthlyStateByMonth(month string) (*model.MonthlyState, error) {
	row := s.db.QueryRow(`SELECT `+monthlyStateColumns+` FROM monthly_states WHERE month = ?`, month)
	st, err := scanMonthlyState(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &st, nil
}

func (s *Store) queryMonthlyStates(query string, args ...any) ([]model.MonthlyState, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var states []model.MonthlyState
	for rows.Next() {
		st, err := scanMonthlyState(rows.Scan)
		if err != nil {
			return nil, err
		}
		states = append(states, st)
	}
	return states, rows.Err()
}

// AllMonthlyStates returns every monthly state, month-ascending.
func (s *Store) AllMonthlyStates() ([]model.MonthlyState, error) {
	return s.queryMonthlyStates(`SELECT ` + monthlyStateColumns + ` FROM monthly_states ORDER BY month`)
}

// RecentMonthlyStates returns the last n states, month-ascending
// (oldest of the window first), the order ClassifyDirection expects.
func (s *Store) RecentMonthlyStates(n int) ([]model.MonthlyState, error) {
	states, err := s.queryMonthlyStates(
		`SELECT `+monthlyStateColumns+` FROM monthly_states ORDER BY month DESC LIMIT ?`, n)
	if err != nil {
		return nil, err
	}
	for i, j := 0, len(states)-1; i < j; i, j = i+1, j-1 {
		states[i], states[j] = states[j], states[i]
	}
	return states, nil
}

// LatestMonthlyState returns the most recent state by month, or nil.
func (s *Store) LatestMonthlyState() (*model.MonthlyState, error) {
	states, err := s.RecentMonthlyStates(1)
	if err != nil || len(states) == 0 {
		return nil, err
	}
	return &states[0], nil
}

// ---------- Investment plans ----------

// SavePlan inserts or fully replaces an investment plan.
func (s *Store) SavePlan(p *model.InvestmentPlan) error {
	now := time.Now().UTC()
	if p.ID == "" {
		p.ID = uuid.NewString()
		p.CreatedAt = now
	}
	p.UpdatedAt = now

	var expectedReturn any
	if p.ExpectedReturn != nil {
		expectedReturn = *p.ExpectedReturn
	}

	_, err := s.db.Exec(`INSERT OR REPLACE INTO investment_plans
		(id, name, asset_category, monthly_amount, expected_return, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Name, string(p.AssetCategory), p.MonthlyAmount.String(),
		expectedReturn, p.CreatedAt.Format(time.RFC3339), p.UpdatedAt.Format(time.RFC3339))
	return err
}

// AllPlans returns every investment plan, oldest first.
func (s *Store) AllPlans() ([]model.InvestmentPlan, error) {
	rows, err := s.db.Query(`SELECT id, name, asset_category, monthly_amount,
		expected_return, created_at, updated_at FROM investment_plans ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var plans []model.InvestmentPlan
	for rows.Next() {
		var p model.InvestmentPlan
		var category, amount, createdAt, updatedAt string
		var expectedReturn sql.NullFloat64
		if err := rows.Scan(&p.ID, &p.Name, &category, &amount, &expectedReturn, &createdAt, &updatedAt); err != nil {
			return nil, err
		}
		p.AssetCategory = model.Category(category)
		p.MonthlyAmount = parseDec(amount)
		if expectedReturn.Valid {
			v := expectedReturn.Float64
			p.ExpectedReturn = &v
		}
		p.CreatedAt = parseTime(createdAt)
		p.UpdatedAt = parseTime(updatedAt)
		plans = append(plans, p)
	}
	return plans, rows.Err()
}

// DeletePlan removes an investment plan by id.
func (s *Store) DeletePlan(id string) error {
	_, err := s.db.Exec("DELETE FROM investment_plans WHERE id = ?", id)
	return err
}

// ---------- Scenarios ----------

// SaveScenario inserts or fully replaces a scenario.
func (s *Store) SaveScenario(sc *model.Scenario) error {
	now := time.Now().UTC()
	if sc.ID == "" {
		sc.ID = uuid.NewString()
		sc.CreatedAt = now
	}
	sc.UpdatedAt = now

	_, err := s.db.Exec(`INSERT OR REPLACE INTO scenarios
		(id, name, years, expected_return, monthly_investment, monthly_spending,
		 income_growth, baseline_income, current_net_worth, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		sc.ID, sc.Name, sc.Years, sc.ExpectedReturn,
		sc.MonthlyInvestment.String(), sc.MonthlySpending.String(),
		sc.IncomeGrowth, sc.BaselineIncome.String(), sc.CurrentNetWorth.String(),
		sc.CreatedAt.Format(time.RFC3339), sc.UpdatedAt.Format(time.RFC3339))
	return err
}

// AllScenarios returns every scenario, oldest first.
func (s *Store) AllScenarios() ([]model.Scenario, error) {
	rows, err := s.db.Query(`SELECT id, name, years, expected_return,
		monthly_investment, monthly_spending, income_growth, baseline_income,
		current_net_worth, created_at, updated_at FROM scenarios ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var scenarios []model.Scenario
	for rows.Next() {
		var sc model.Scenario
		var investment, spending, income, netWorth, createdAt, updatedAt string
		if err := rows.Scan(&sc.ID, &sc.Name, &sc.Years, &sc.ExpectedReturn,
			&investment, &spending, &sc.IncomeGrowth, &income, &netWorth,
			&createdAt, &updatedAt); err != nil {
			return nil, err
		}
		sc.MonthlyInvestment = parseDec(investment)
		sc.MonthlySpending = parseDec(spending)
		sc.BaselineIncome = parseDec(income)
		sc.CurrentNetWorth = parseDec(netWorth)
		sc.CreatedAt = parseTime(createdAt)
		sc.UpdatedAt = parseTime(updatedAt)
		scenarios = append(scenarios, sc)
	}
	return scenarios, rows.Err()
}

// DeleteScenario removes a scenario by id.
func (s *Store) DeleteScenario(id string) error {
	_, err := s.db.Exec("DELETE FROM scenarios WHERE id = ?", id)
	return err
}
