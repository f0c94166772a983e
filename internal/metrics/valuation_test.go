package metrics

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/zenigata-dev/zeni/internal/model"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func TestValuate(t *testing.T) {
	tests := []struct {
		name    string
		holding model.Holding
		want    string
	}{
		{
			name:    "deposit uses balance",
			holding: model.Holding{Category: model.CategoryDeposit, Balance: dec("1500000")},
			want:    "1500000",
		},
		{
			name:    "stock without override multiplies shares by average price",
			holding: model.Holding{Category: model.CategoryStock, Shares: dec("100"), AveragePrice: dec("2530.5")},
			want:    "253050",
		},
		{
			name: "stock override wins over shares and price",
			holding: model.Holding{
				Category: model.CategoryStock, Shares: dec("100"), AveragePrice: dec("2530.5"),
				CurrentValue: decPtr("300000"),
			},
			want: "300000",
		},
		{
			name:    "fund without average price values at zero",
			holding: model.Holding{Category: model.CategoryFund, Quantity: dec("12.5")},
			want:    "0",
		},
		{
			name:    "fund with quantity and price",
			holding: model.Holding{Category: model.CategoryFund, Quantity: dec("12.5"), AveragePrice: dec("10000")},
			want:    "125000",
		},
		{
			name:    "crypto with quantity and price",
			holding: model.Holding{Category: model.CategoryCrypto, Quantity: dec("0.05"), AveragePrice: dec("9000000")},
			want:    "450000",
		},
		{
			name: "crypto override wins",
			holding: model.Holding{
				Category: model.CategoryCrypto, Quantity: dec("0.05"), AveragePrice: dec("9000000"),
				CurrentValue: decPtr("500000"),
			},
			want: "500000",
		},
		{
			name:    "employee equity uses units times strike",
			holding: model.Holding{Category: model.CategoryEmployeeEquity, Units: dec("200"), AveragePrice: dec("1200")},
			want:    "240000",
		},
		{
			name:    "unknown category values at zero",
			holding: model.Holding{Category: "bond", Balance: dec("99")},
			want:    "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Valuate(tt.holding)
			if !got.Equal(dec(tt.want)) {
				t.Fatalf("Valuate() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestCategoryTotalsSumToTotalValue(t *testing.T) {
	holdings := []model.Holding{
		{Category: model.CategoryDeposit, Balance: dec("1000000")},
		{Category: model.CategoryDeposit, Balance: dec("250000.50")},
		{Category: model.CategoryStock, Shares: dec("10"), AveragePrice: dec("1500")},
		{Category: model.CategoryFund, Quantity: dec("3"), AveragePrice: dec("20000"), CurrentValue: decPtr("70000")},
	}

	totals := CategoryTotals(holdings)

	for _, c := range model.Categories {
		if _, ok := totals[c]; !ok {
			t.Errorf("CategoryTotals missing key %q", c)
		}
	}

	sum := decimal.Zero
	for _, v := range totals {
		sum = sum.Add(v)
	}
	if total := TotalValue(holdings); !sum.Equal(total) {
		t.Fatalf("sum of CategoryTotals = %s, TotalValue = %s", sum, total)
	}
	if want := dec("1335000.50"); !sum.Equal(want) {
		t.Fatalf("total = %s, want %s", sum, want)
	}
}

func TestCategoryTotalsEmptyInput(t *testing.T) {
	totals := CategoryTotals(nil)
	if len(totals) != len(model.Categories) {
		t.Fatalf("got %d keys, want %d", len(totals), len(model.Categories))
	}
	for c, v := range totals {
		if !v.IsZero() {
			t.Errorf("category %q = %s, want 0", c, v)
		}
	}
	if !TotalValue(nil).IsZero() {
		t.Error("TotalValue(nil) != 0")
	}
}

func TestUnrealizedGain(t *testing.T) {
	stock := model.Holding{
		Category: model.CategoryStock, Shares: dec("100"), AveragePrice: dec("2000"),
		CurrentValue: decPtr("250000"),
	}
	gain, ok := UnrealizedGain(stock)
	if !ok || !gain.Equal(dec("50000")) {
		t.Fatalf("stock gain = %s ok=%v, want 50000 true", gain, ok)
	}

	if _, ok := UnrealizedGain(model.Holding{Category: model.CategoryStock, Shares: dec("100"), AveragePrice: dec("2000")}); ok {
		t.Error("gain reported without an override")
	}

	fundNoPrice := model.Holding{Category: model.CategoryFund, Quantity: dec("5"), CurrentValue: decPtr("100")}
	if _, ok := UnrealizedGain(fundNoPrice); ok {
		t.Error("fund without average price has no cost basis, gain should be absent")
	}

	if _, ok := UnrealizedGain(model.Holding{Category: model.CategoryDeposit, Balance: dec("10"), CurrentValue: decPtr("20")}); ok {
		t.Error("deposits never report unrealized gain")
	}
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		name    string
		holding model.Holding
		want    string
	}{
		{"deposit account name", model.Holding{Category: model.CategoryDeposit, AccountName: "Main Checking"}, "Main Checking"},
		{"deposit falls back to institution", model.Holding{Category: model.CategoryDeposit, Institution: "MUFG"}, "MUFG"},
		{"deposit generic fallback", model.Holding{Category: model.CategoryDeposit}, "Deposit"},
		{"stock name preferred", model.Holding{Category: model.CategoryStock, StockName: "Apple", Ticker: "AAPL"}, "Apple"},
		{"stock ticker fallback", model.Holding{Category: model.CategoryStock, Ticker: "AAPL"}, "AAPL"},
		{"fund name", model.Holding{Category: model.CategoryFund, FundName: "eMAXIS Slim"}, "eMAXIS Slim"},
		{"crypto symbol", model.Holding{Category: model.CategoryCrypto, Symbol: "BTC"}, "BTC"},
		{"equity company", model.Holding{Category: model.CategoryEmployeeEquity, CompanyName: "Acme KK"}, "Acme KK"},
		{"equity fallback", model.Holding{Category: model.CategoryEmployeeEquity}, "Employee Equity"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DisplayName(tt.holding); got != tt.want {
				t.Fatalf("DisplayName() = %q, want %q", got, tt.want)
			}
		})
	}
}
