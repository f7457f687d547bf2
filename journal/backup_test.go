package journal

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tradelog/analytics"
)

func TestBackupRoundTrip(t *testing.T) {
	t.Parallel()

	src := seedLedger(t)
	require.NoError(t, src.SetPref(PrefUser, "sam"))

	path := filepath.Join(t.TempDir(), "backup.json")
	require.NoError(t, src.Export(path))

	dst := newTestLedger(t)
	require.NoError(t, dst.Import(path))

	accounts, err := dst.ListAccounts()
	require.NoError(t, err)
	assert.Len(t, accounts, 3)

	trades, err := dst.ListTrades(Filter{})
	require.NoError(t, err)
	assert.Equal(t, []string{"t1", "t2", "t3", "t4"}, tradeIDs(trades))

	got, err := dst.GetTrade("t1")
	require.NoError(t, err)
	assert.True(t, got.Date.Equal(time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)))
	assert.InDelta(t, 100, got.Result, 1e-9)

	user, err := dst.GetPref(PrefUser)
	require.NoError(t, err)
	assert.Equal(t, "sam", user)
}

func TestImportReplacesExistingState(t *testing.T) {
	t.Parallel()

	src := newTestLedger(t)
	require.NoError(t, src.CreateAccount(testAccount("only", analytics.Standard, 100)))

	path := filepath.Join(t.TempDir(), "backup.json")
	require.NoError(t, src.Export(path))

	dst := seedLedger(t)
	require.NoError(t, dst.Import(path))

	accounts, err := dst.ListAccounts()
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, "only", accounts[0].ID)

	trades, err := dst.ListTrades(Filter{})
	require.NoError(t, err)
	assert.Empty(t, trades)
}

func TestImportSanitises(t *testing.T) {
	t.Parallel()

	raw := `{
	  "accounts": [
	    {"name": "", "type": "Bogus", "initialBalance": -50},
	    {"id": "acc1", "name": "Main", "type": "Cent", "initialBalance": 200}
	  ],
	  "trades": [
	    {"id": "t1", "accountId": "acc1", "date": "not-a-date", "dir": "Sell", "lot": -2, "result": 5},
	    {"id": "t2", "accountId": "ghost", "date": "2024-01-05", "result": 9}
	  ]
	}`
	path := filepath.Join(t.TempDir(), "backup.json")
	require.NoError(t, os.WriteFile(path, []byte(raw), 0644))

	l := newTestLedger(t)
	require.NoError(t, l.Import(path))

	accounts, err := l.ListAccounts()
	require.NoError(t, err)
	require.Len(t, accounts, 2)
	for _, a := range accounts {
		assert.NotEmpty(t, a.ID)
		assert.NotEmpty(t, a.Name)
		assert.GreaterOrEqual(t, a.InitialBalance, 0.0)
		assert.Contains(t, []analytics.AccountClass{analytics.Standard, analytics.Cent}, a.Class)
	}

	// The dangling trade is dropped; the bad-date trade survives with a
	// zero date and a clamped lot.
	trades, err := l.ListTrades(Filter{})
	require.NoError(t, err)
	require.Len(t, trades, 1)
	assert.Equal(t, "t1", trades[0].ID)
	assert.True(t, trades[0].Date.IsZero())
	assert.Zero(t, trades[0].Lot)
	assert.Equal(t, analytics.Sell, trades[0].Dir)
	assert.Equal(t, "XAUUSD", trades[0].Pair)
}

func TestImportRejectsBadStructure(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	l := newTestLedger(t)

	noArrays := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(noArrays, []byte(`{"user":"sam"}`), 0644))
	assert.Error(t, l.Import(noArrays))

	notJSON := filepath.Join(dir, "garbage.json")
	require.NoError(t, os.WriteFile(notJSON, []byte(`not json at all`), 0644))
	assert.Error(t, l.Import(notJSON))

	assert.Error(t, l.Import(filepath.Join(dir, "missing.json")))
}
