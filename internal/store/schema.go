package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS holdings (
    id            TEXT PRIMARY KEY,
    category      TEXT NOT NULL,
    account_name  TEXT,
    institution   TEXT,
    balance       TEXT,
    ticker        TEXT,
    stock_name    TEXT,
    shares        TEXT,
    currency      TEXT,
    fund_name     TEXT,
    symbol        TEXT,
    company_name  TEXT,
    units         TEXT,
    quantity      TEXT,
    average_price TEXT,
    current_value TEXT,
    created_at    TEXT NOT NULL,
    updated_at    TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS incomes (
    id         TEXT PRIMARY KEY,
    source     TEXT NOT NULL,
    amount     TEXT NOT NULL,
    date       TEXT NOT NULL,
    created_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS expenses (
    id         TEXT PRIMARY KEY,
    type       TEXT NOT NULL,
    category   TEXT NOT NULL,
    amount     TEXT NOT NULL,
    date       TEXT NOT NULL,
    memo       TEXT,
    created_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS daily_snapshots (
    id            TEXT PRIMARY KEY,
    date          TEXT NOT NULL UNIQUE,
    total_assets  TEXT NOT NULL,
    cash_ratio    REAL NOT NULL,
    deposit_total TEXT NOT NULL,
    stock_total   TEXT NOT NULL,
    fund_total    TEXT NOT NULL,
    crypto_total  TEXT NOT NULL,
    equity_total  TEXT NOT NULL,
    daily_change  TEXT NOT NULL,
    created_at    TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS monthly_states (
    id                  TEXT PRIMARY KEY,
    month               TEXT NOT NULL UNIQUE,
    net_worth           TEXT NOT NULL,
    cash                TEXT NOT NULL,
    invested            TEXT NOT NULL,
    income_monthly      TEXT NOT NULL,
    living_cost_monthly TEXT NOT NULL,
    invest_contribution TEXT NOT NULL,
    created_at          TEXT NOT NULL,
    updated_at          TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS investment_plans (
    id              TEXT PRIMARY KEY,
    name            TEXT NOT NULL,
    asset_category  TEXT NOT NULL,
    monthly_amount  TEXT NOT NULL,
    expected_return REAL,
    created_at      TEXT NOT NULL,
    updated_at      TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS scenarios (
    id                 TEXT PRIMARY KEY,
    name               TEXT NOT NULL,
    years              INTEGER NOT NULL,
    expected_return    REAL NOT NULL,
    monthly_investment TEXT NOT NULL,
    monthly_spending   TEXT NOT NULL,
    income_growth      REAL NOT NULL,
    baseline_income    TEXT NOT NULL,
    current_net_worth  TEXT NOT NULL,
    created_at         TEXT NOT NULL,
    updated_at         TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_holdings_category ON holdings(category);
CREATE INDEX IF NOT EXISTS idx_incomes_date ON incomes(date);
CREATE INDEX IF NOT EXISTS idx_expenses_date ON expenses(date);
CREATE INDEX IF NOT EXISTS idx_snapshots_date ON daily_snapshots(date);
CREATE INDEX IF NOT EXISTS idx_monthly_states_month ON monthly_states(month);
`
