package report

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tradelog/analytics"
	"tradelog/journal"
)

func TestFormatCurrency(t *testing.T) {
	t.Parallel()

	tests := []struct {
		amount float64
		class  analytics.AccountClass
		want   string
	}{
		{1234.5, analytics.Standard, "$1,234.50"},
		{-1234.5, analytics.Standard, "-$1,234.50"},
		{0, analytics.Standard, "$0.00"},
		{1234567.89, analytics.Standard, "$1,234,567.89"},
		{999.99, analytics.Standard, "$999.99"},
		{1234.5, analytics.Cent, "1,234.50 USC"},
		{-20, analytics.Cent, "-20.00 USC"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatCurrency(tt.amount, tt.class))
	}
}

func TestFormatRiskReward(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "1 : 2.00", FormatRiskReward(1900, 1890, 1920))
	assert.Equal(t, "-", FormatRiskReward(1900, 0, 1920))
	assert.Equal(t, "-", FormatRiskReward(1900, 1900, 1920))
}

func TestFormatProfitFactor(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "2.40", FormatProfitFactor(2.4))
	assert.Equal(t, "∞", FormatProfitFactor(math.Inf(1)))
	assert.Equal(t, "0.00", FormatProfitFactor(0))
}

func TestFormatPips(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "+12.0", FormatPips(12))
	assert.Equal(t, "-3.5", FormatPips(-3.5))
	assert.Equal(t, "0.0", FormatPips(0))
}

func statsFixture() analytics.StatsResult {
	trades := []analytics.Trade{
		{Date: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), Result: 100},
		{Date: time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC), Result: -50},
		{Date: time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC), Result: 20},
	}
	return analytics.Stats(trades, 1000)
}

func TestPrintStats(t *testing.T) {
	t.Parallel()

	var buf strings.Builder
	PrintStats(&buf, "All Accounts", analytics.Standard, statsFixture())
	out := buf.String()

	assert.Contains(t, out, "All Accounts")
	assert.Contains(t, out, "Current:       $1,070.00")
	assert.Contains(t, out, "Net Result:    +$70.00")
	assert.Contains(t, out, "Growth:        +7.00%")
	assert.Contains(t, out, "Win Rate:      66.67%")
	assert.Contains(t, out, "Profit Factor: 2.40")
	assert.Contains(t, out, "Max Drawdown:  4.55%")
}

func TestPrintMonthly(t *testing.T) {
	t.Parallel()

	monthly := []analytics.MonthlyStat{
		{Period: "2024-01", Trades: 2, Result: 6, WinRate: 50},
		{Period: "2024-02", Trades: 1, Result: -4, WinRate: 0},
	}

	var buf strings.Builder
	PrintMonthly(&buf, monthly, analytics.Standard)
	out := buf.String()

	assert.Contains(t, out, "2024-01")
	assert.Contains(t, out, "+$6.00")
	assert.Contains(t, out, "-$4.00")

	buf.Reset()
	PrintMonthly(&buf, nil, analytics.Standard)
	assert.Contains(t, buf.String(), "No trades recorded.")
}

func TestPrintTrades(t *testing.T) {
	t.Parallel()

	accounts := map[string]journal.Account{
		"acc1": {ID: "acc1", Name: "Main", Class: analytics.Cent},
	}
	trades := []journal.Trade{
		{
			ID: "t1", AccountID: "acc1",
			Date: time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC),
			Pair: "XAUUSD", Dir: analytics.Buy, Lot: 0.1,
			Entry: 1900, Close: 1910, Pips: 100, Result: 1,
		},
		{
			ID: "t2", AccountID: "gone",
			Date: time.Date(2024, 4, 3, 0, 0, 0, 0, time.UTC),
			Pair: "XAUUSD", Dir: analytics.Sell, Lot: 0.2,
			Entry: 1905, // open trade
		},
	}

	var buf strings.Builder
	PrintTrades(&buf, trades, accounts)
	out := buf.String()

	assert.Contains(t, out, "Main")
	assert.Contains(t, out, "+100.0")
	assert.Contains(t, out, "+1.00 USC")
	// Open trade shows dashes for close and pips.
	assert.Contains(t, out, "2024-04-03")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Contains(t, lines[len(lines)-1], " - ")
}

func TestEquitySeries(t *testing.T) {
	t.Parallel()

	trades := []analytics.Trade{
		{Date: time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC), Result: -50},
		{Date: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), Result: 100},
	}

	s := Equity(trades, 1000)
	require.Len(t, s.Labels, 3)
	assert.Equal(t, []string{"Start", "03-01", "03-02"}, s.Labels)
	assert.Equal(t, []float64{1000, 1100, 1050}, s.Points)
}

func TestWinLossSeries(t *testing.T) {
	t.Parallel()

	trades := []analytics.Trade{
		{Result: 10}, {Result: 5}, {Result: -3}, {Result: 0},
	}
	assert.Equal(t, [3]int{2, 1, 1}, WinLossSeries(trades))
}
