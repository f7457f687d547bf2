package journal

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
)

// SQLiteLedger is the single-file store behind the journal. One file per
// user; the CLI opens it per command.
type SQLiteLedger struct {
	db  *sql.DB
	log *zap.Logger
}

func OpenSQLite(path string, log *zap.Logger) (*SQLiteLedger, error) {
	if log == nil {
		log = zap.NewNop()
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %q: %w", path, err)
	}

	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	log.Debug("ledger opened", zap.String("path", path))
	return &SQLiteLedger{db: db, log: log}, nil
}

func (l *SQLiteLedger) CreateAccount(a Account) error {
	_, err := l.db.Exec(`
		INSERT INTO accounts (id, name, class, initial_balance, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		a.ID, a.Name, string(a.Class), a.InitialBalance, a.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert account: %w", err)
	}
	l.log.Debug("account created", zap.String("id", a.ID), zap.String("name", a.Name))
	return nil
}

func (l *SQLiteLedger) UpdateAccount(a Account) error {
	res, err := l.db.Exec(`
		UPDATE accounts SET name = ?, class = ?, initial_balance = ?
		WHERE id = ?`,
		a.Name, string(a.Class), a.InitialBalance, a.ID,
	)
	if err != nil {
		return fmt.Errorf("update account: %w", err)
	}
	return affected(res)
}

// DeleteAccount removes the account and every trade journaled against it.
func (l *SQLiteLedger) DeleteAccount(id string) error {
	tx, err := l.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(`DELETE FROM accounts WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete account: %w", err)
	}
	if err := affected(res); err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM trades WHERE account_id = ?`, id); err != nil {
		return fmt.Errorf("delete account trades: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	l.log.Debug("account deleted", zap.String("id", id))
	return nil
}

const tradeColumns = `id, account_id, date, pair, timeframe, dir, lot, entry, close,
	pips, stop, target, result, manual_result, risk, emotion, notes`

// CreateTrade inserts a trade. The referenced account must already exist;
// derived fields are expected to be filled (see Trade.Derive).
func (l *SQLiteLedger) CreateTrade(t Trade) error {
	if _, err := l.GetAccount(t.AccountID); err != nil {
		return ErrNoAccount
	}

	_, err := l.db.Exec(`
		INSERT INTO trades (`+tradeColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.AccountID, t.Date, t.Pair, t.Timeframe, string(t.Dir), t.Lot,
		t.Entry, t.Close, t.Pips, t.Stop, t.Target, t.Result, t.ManualResult,
		t.Risk, t.Emotion, t.Notes,
	)
	if err != nil {
		return fmt.Errorf("insert trade: %w", err)
	}
	l.log.Debug("trade created", zap.String("id", t.ID), zap.String("account", t.AccountID))
	return nil
}

// UpdateTrade replaces the stored record wholesale. Edits re-derive metrics
// before calling this, the same as a fresh insert.
func (l *SQLiteLedger) UpdateTrade(t Trade) error {
	res, err := l.db.Exec(`
		UPDATE trades SET account_id = ?, date = ?, pair = ?, timeframe = ?,
			dir = ?, lot = ?, entry = ?, close = ?, pips = ?, stop = ?,
			target = ?, result = ?, manual_result = ?, risk = ?, emotion = ?, notes = ?
		WHERE id = ?`,
		t.AccountID, t.Date, t.Pair, t.Timeframe, string(t.Dir), t.Lot,
		t.Entry, t.Close, t.Pips, t.Stop, t.Target, t.Result, t.ManualResult,
		t.Risk, t.Emotion, t.Notes, t.ID,
	)
	if err != nil {
		return fmt.Errorf("update trade: %w", err)
	}
	return affected(res)
}

func (l *SQLiteLedger) DeleteTrade(id string) error {
	res, err := l.db.Exec(`DELETE FROM trades WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete trade: %w", err)
	}
	return affected(res)
}

func (l *SQLiteLedger) SetPref(key, value string) error {
	_, err := l.db.Exec(`
		INSERT INTO prefs (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("set pref %q: %w", key, err)
	}
	return nil
}

// GetPref returns "" for a pref that was never set.
func (l *SQLiteLedger) GetPref(key string) (string, error) {
	var value string
	err := l.db.QueryRow(`SELECT value FROM prefs WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get pref %q: %w", key, err)
	}
	return value, nil
}

func (l *SQLiteLedger) DeletePref(key string) error {
	if _, err := l.db.Exec(`DELETE FROM prefs WHERE key = ?`, key); err != nil {
		return fmt.Errorf("delete pref %q: %w", key, err)
	}
	return nil
}

func (l *SQLiteLedger) Close() error {
	return l.db.Close()
}

func affected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
