// Package journal owns the trade ledger: accounts, trade records and the
// SQLite store behind them. It derives per-trade metrics on write via the
// analytics package and hands out snapshots for the statistics pass.
package journal

import (
	"errors"
	"time"

	"tradelog/analytics"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrNoAccount = errors.New("trade references no existing account")
)

// Account is one trading account the ledger tracks.
type Account struct {
	ID             string
	Name           string
	Class          analytics.AccountClass
	InitialBalance float64
	CreatedAt      time.Time
}

// Trade is one journaled trade. Optional numeric fields (Close, Stop,
// Target) use 0 as "not provided": an open trade has Close 0, and a 0 stop
// or target is never a real price for the journaled instrument.
type Trade struct {
	ID        string
	AccountID string
	Date      time.Time
	Pair      string
	Timeframe string
	Dir       analytics.Direction
	Lot       float64
	Entry     float64
	Close     float64
	Pips      float64
	Stop      float64
	Target    float64
	Result    float64

	// ManualResult marks Result as user-supplied rather than derived from
	// price movement.
	ManualResult bool

	Risk    float64
	Emotion string
	Notes   string
}

// Open reports whether the trade has no close price yet.
func (t *Trade) Open() bool {
	return t.Close == 0
}

// Derive fills the computed fields (pips, and the monetary result unless it
// was entered manually) from the trade's prices. Open trades contribute no
// movement.
func (t *Trade) Derive(class analytics.AccountClass) {
	if t.Open() {
		t.Pips = 0
		if !t.ManualResult {
			t.Result = 0
		}
		return
	}
	t.Pips = analytics.Pips(t.Dir, t.Entry, t.Close)
	if !t.ManualResult {
		t.Result = analytics.MonetaryResult(class, t.Dir, t.Entry, t.Close, t.Lot)
	}
}

// Inputs projects ledger trades onto the analytics engine's input shape.
func Inputs(trades []Trade) []analytics.Trade {
	out := make([]analytics.Trade, len(trades))
	for i, t := range trades {
		out[i] = analytics.Trade{
			Date:   t.Date,
			Result: t.Result,
			Entry:  t.Entry,
			Stop:   t.Stop,
			Target: t.Target,
		}
	}
	return out
}

// Ledger is the store the CLI and reports run against.
type Ledger interface {
	CreateAccount(Account) error
	UpdateAccount(Account) error
	DeleteAccount(id string) error
	GetAccount(id string) (Account, error)
	ListAccounts() ([]Account, error)

	CreateTrade(Trade) error
	UpdateTrade(Trade) error
	DeleteTrade(id string) error
	GetTrade(id string) (Trade, error)
	ListTrades(Filter) ([]Trade, error)
	InitialBalance(Filter) (float64, error)

	SetPref(key, value string) error
	GetPref(key string) (string, error)
	DeletePref(key string) error

	Close() error
}
