package journal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tradelog/analytics"
)

func seedLedger(t *testing.T) *SQLiteLedger {
	t.Helper()

	l := newTestLedger(t)
	require.NoError(t, l.CreateAccount(testAccount("std1", analytics.Standard, 1000)))
	require.NoError(t, l.CreateAccount(testAccount("std2", analytics.Standard, 2500)))
	require.NoError(t, l.CreateAccount(testAccount("cent1", analytics.Cent, 300)))

	jan := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2024, 2, 12, 0, 0, 0, 0, time.UTC)
	mar := time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC)

	require.NoError(t, l.CreateTrade(testTrade("t1", "std1", jan, 100)))
	require.NoError(t, l.CreateTrade(testTrade("t2", "std2", feb, -40)))
	require.NoError(t, l.CreateTrade(testTrade("t3", "cent1", mar, 7)))
	require.NoError(t, l.CreateTrade(testTrade("t4", "std1", mar, 20)))
	return l
}

func tradeIDs(trades []Trade) []string {
	ids := make([]string, len(trades))
	for i, t := range trades {
		ids[i] = t.ID
	}
	return ids
}

func TestListTradesAll(t *testing.T) {
	t.Parallel()

	l := seedLedger(t)
	trades, err := l.ListTrades(Filter{})
	require.NoError(t, err)
	assert.Equal(t, []string{"t1", "t2", "t3", "t4"}, tradeIDs(trades))
}

func TestListTradesByAccount(t *testing.T) {
	t.Parallel()

	l := seedLedger(t)
	trades, err := l.ListTrades(Filter{AccountID: "std1"})
	require.NoError(t, err)
	assert.Equal(t, []string{"t1", "t4"}, tradeIDs(trades))
}

func TestListTradesByClass(t *testing.T) {
	t.Parallel()

	l := seedLedger(t)

	trades, err := l.ListTrades(Filter{Class: analytics.Standard})
	require.NoError(t, err)
	assert.Equal(t, []string{"t1", "t2", "t4"}, tradeIDs(trades))

	trades, err = l.ListTrades(Filter{Class: analytics.Cent})
	require.NoError(t, err)
	assert.Equal(t, []string{"t3"}, tradeIDs(trades))
}

func TestListTradesDateWindow(t *testing.T) {
	t.Parallel()

	l := seedLedger(t)
	trades, err := l.ListTrades(Filter{
		From: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"t2"}, tradeIDs(trades))
}

func TestListTradesLimit(t *testing.T) {
	t.Parallel()

	l := seedLedger(t)
	trades, err := l.ListTrades(Filter{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, trades, 2)
}

func TestListTradesTieBreakByInsertion(t *testing.T) {
	t.Parallel()

	l := newTestLedger(t)
	require.NoError(t, l.CreateAccount(testAccount("a1", analytics.Standard, 100)))

	d := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	for _, id := range []string{"z", "m", "a"} {
		require.NoError(t, l.CreateTrade(testTrade(id, "a1", d, 1)))
	}

	trades, err := l.ListTrades(Filter{})
	require.NoError(t, err)
	assert.Equal(t, []string{"z", "m", "a"}, tradeIDs(trades))
}

func TestInitialBalanceResolution(t *testing.T) {
	t.Parallel()

	l := seedLedger(t)

	sum, err := l.InitialBalance(Filter{})
	require.NoError(t, err)
	assert.InDelta(t, 3800, sum, 1e-9)

	sum, err = l.InitialBalance(Filter{Class: analytics.Standard})
	require.NoError(t, err)
	assert.InDelta(t, 3500, sum, 1e-9)

	sum, err = l.InitialBalance(Filter{AccountID: "cent1"})
	require.NoError(t, err)
	assert.InDelta(t, 300, sum, 1e-9)

	_, err = l.InitialBalance(Filter{AccountID: "ghost"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListTradesSkipsDanglingAccounts(t *testing.T) {
	t.Parallel()

	l := seedLedger(t)

	// Delete the account row directly, leaving its trades orphaned.
	_, err := l.db.Exec(`DELETE FROM accounts WHERE id = 'std1'`)
	require.NoError(t, err)

	trades, err := l.ListTrades(Filter{})
	require.NoError(t, err)
	assert.Equal(t, []string{"t2", "t3"}, tradeIDs(trades))
}

func TestInputsProjection(t *testing.T) {
	t.Parallel()

	d := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	tr := testTrade("t1", "a1", d, 55)
	tr.Stop = 1890
	tr.Target = 1930

	in := Inputs([]Trade{tr})
	require.Len(t, in, 1)
	assert.Equal(t, d, in[0].Date)
	assert.InDelta(t, 55, in[0].Result, 1e-9)
	assert.InDelta(t, 1890, in[0].Stop, 1e-9)
	assert.InDelta(t, 1930, in[0].Target, 1e-9)
}
