package journal

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"tradelog/analytics"
	"tradelog/pkg/id"
)

// Backup is the JSON snapshot of everything the ledger owns. Field names
// match what the journal has always exported, so old backup files keep
// importing.
type Backup struct {
	User     string          `json:"user,omitempty"`
	Accounts []accountBackup `json:"accounts"`
	Trades   []tradeBackup   `json:"trades"`
}

type accountBackup struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Type           string  `json:"type"`
	InitialBalance float64 `json:"initialBalance"`
	CreatedAt      string  `json:"createdAt"`
}

type tradeBackup struct {
	ID           string  `json:"id"`
	AccountID    string  `json:"accountId"`
	Date         string  `json:"date"` // "2006-01-02"
	Pair         string  `json:"pair"`
	Timeframe    string  `json:"tf"`
	Dir          string  `json:"dir"`
	Lot          float64 `json:"lot"`
	Entry        float64 `json:"entry"`
	Close        float64 `json:"close"`
	Pips         float64 `json:"pips"`
	Stop         float64 `json:"sl"`
	Target       float64 `json:"tp"`
	Result       float64 `json:"result"`
	ManualResult bool    `json:"isManualResult"`
	Risk         float64 `json:"risk"`
	Emotion      string  `json:"emotion"`
	Notes        string  `json:"notes"`
}

const dateLayout = "2006-01-02"

// Export writes the full ledger state to path as indented JSON.
func (l *SQLiteLedger) Export(path string) error {
	accounts, err := l.ListAccounts()
	if err != nil {
		return fmt.Errorf("list accounts: %w", err)
	}
	trades, err := l.allTrades()
	if err != nil {
		return fmt.Errorf("list trades: %w", err)
	}
	user, err := l.GetPref(PrefUser)
	if err != nil {
		return err
	}

	// Slices start non-nil so an empty ledger still exports [] and the
	// structure check on re-import passes.
	b := Backup{User: user, Accounts: []accountBackup{}, Trades: []tradeBackup{}}
	for _, a := range accounts {
		b.Accounts = append(b.Accounts, accountBackup{
			ID:             a.ID,
			Name:           a.Name,
			Type:           string(a.Class),
			InitialBalance: a.InitialBalance,
			CreatedAt:      a.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	for _, t := range trades {
		date := ""
		if !t.Date.IsZero() {
			date = t.Date.Format(dateLayout)
		}
		b.Trades = append(b.Trades, tradeBackup{
			ID:           t.ID,
			AccountID:    t.AccountID,
			Date:         date,
			Pair:         t.Pair,
			Timeframe:    t.Timeframe,
			Dir:          string(t.Dir),
			Lot:          t.Lot,
			Entry:        t.Entry,
			Close:        t.Close,
			Pips:         t.Pips,
			Stop:         t.Stop,
			Target:       t.Target,
			Result:       t.Result,
			ManualResult: t.ManualResult,
			Risk:         t.Risk,
			Emotion:      t.Emotion,
			Notes:        t.Notes,
		})
	}

	data, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal backup: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write backup: %w", err)
	}
	return nil
}

// Import replaces the whole ledger with the contents of a backup file.
// Records are sanitised the way loads always have been: missing IDs get
// fresh ones, negative lots and balances clamp to 0, unknown directions
// default to Buy and unparseable dates become the unknown bucket.
func (l *SQLiteLedger) Import(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read backup: %w", err)
	}

	var b Backup
	if err := json.Unmarshal(data, &b); err != nil {
		return fmt.Errorf("parse backup: %w", err)
	}
	if b.Accounts == nil || b.Trades == nil {
		return fmt.Errorf("invalid backup structure: accounts and trades are required")
	}

	tx, err := l.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"trades", "accounts"} {
		if _, err := tx.Exec(`DELETE FROM ` + table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	known := make(map[string]bool)
	for _, ab := range b.Accounts {
		a := sanitiseAccount(ab)
		known[a.ID] = true
		if _, err := tx.Exec(`
			INSERT INTO accounts (id, name, class, initial_balance, created_at)
			VALUES (?, ?, ?, ?, ?)`,
			a.ID, a.Name, string(a.Class), a.InitialBalance, a.CreatedAt,
		); err != nil {
			return fmt.Errorf("import account %q: %w", a.ID, err)
		}
	}

	for _, tb := range b.Trades {
		t := sanitiseTrade(tb)
		if !known[t.AccountID] {
			// Dangling trades are dropped here so the engine never sees them.
			l.log.Warn("skipping trade with unknown account")
			continue
		}
		if _, err := tx.Exec(`
			INSERT INTO trades (`+tradeColumns+`)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			t.ID, t.AccountID, t.Date, t.Pair, t.Timeframe, string(t.Dir), t.Lot,
			t.Entry, t.Close, t.Pips, t.Stop, t.Target, t.Result, t.ManualResult,
			t.Risk, t.Emotion, t.Notes,
		); err != nil {
			return fmt.Errorf("import trade %q: %w", t.ID, err)
		}
	}

	if b.User != "" {
		if _, err := tx.Exec(`
			INSERT INTO prefs (key, value) VALUES (?, ?)
			ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
			PrefUser, b.User,
		); err != nil {
			return fmt.Errorf("import user: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func (l *SQLiteLedger) allTrades() ([]Trade, error) {
	rows, err := l.db.Query(`SELECT ` + tradeColumns + ` FROM trades ORDER BY date ASC, rowid ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Trade
	for rows.Next() {
		t, err := scanTrade(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func sanitiseAccount(ab accountBackup) Account {
	a := Account{
		ID:             ab.ID,
		Name:           ab.Name,
		Class:          analytics.Standard,
		InitialBalance: ab.InitialBalance,
	}
	if a.ID == "" {
		a.ID = id.New("acc")
	}
	if a.Name == "" {
		a.Name = "Unnamed Account"
	}
	if ab.Type == string(analytics.Cent) {
		a.Class = analytics.Cent
	}
	if a.InitialBalance < 0 {
		a.InitialBalance = 0
	}
	a.CreatedAt, _ = time.Parse(time.RFC3339, ab.CreatedAt)
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}
	return a
}

func sanitiseTrade(tb tradeBackup) Trade {
	t := Trade{
		ID:           tb.ID,
		AccountID:    tb.AccountID,
		Pair:         tb.Pair,
		Timeframe:    tb.Timeframe,
		Dir:          analytics.Buy,
		Lot:          tb.Lot,
		Entry:        tb.Entry,
		Close:        tb.Close,
		Pips:         tb.Pips,
		Stop:         tb.Stop,
		Target:       tb.Target,
		Result:       tb.Result,
		ManualResult: tb.ManualResult,
		Risk:         tb.Risk,
		Emotion:      tb.Emotion,
		Notes:        tb.Notes,
	}
	if t.ID == "" {
		t.ID = id.New("tr")
	}
	if t.Pair == "" {
		t.Pair = "XAUUSD"
	}
	if tb.Dir == string(analytics.Sell) {
		t.Dir = analytics.Sell
	}
	if t.Lot < 0 {
		t.Lot = 0
	}
	// Unparseable dates stay zero and roll up under the unknown period.
	t.Date, _ = time.Parse(dateLayout, tb.Date)
	return t
}
