package journal

import (
	"database/sql"
	"fmt"
	"time"

	"tradelog/analytics"
)

// Filter narrows trade queries the way the dashboard selectors do: by
// account, by account class, or by a date window. Zero values mean "all".
type Filter struct {
	AccountID string
	Class     analytics.AccountClass
	From, To  time.Time // half-open [From, To)
	Limit     int
}

// GetAccount returns a single account by ID.
func (l *SQLiteLedger) GetAccount(id string) (Account, error) {
	var a Account
	var class string

	row := l.db.QueryRow(`
		SELECT id, name, class, initial_balance, created_at
		FROM accounts
		WHERE id = ?`, id)

	err := row.Scan(&a.ID, &a.Name, &class, &a.InitialBalance, &a.CreatedAt)
	if err == sql.ErrNoRows {
		return Account{}, fmt.Errorf("account %q: %w", id, ErrNotFound)
	}
	if err != nil {
		return Account{}, err
	}
	a.Class = analytics.AccountClass(class)
	return a, nil
}

func (l *SQLiteLedger) ListAccounts() ([]Account, error) {
	rows, err := l.db.Query(`
		SELECT id, name, class, initial_balance, created_at
		FROM accounts
		ORDER BY created_at ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Account
	for rows.Next() {
		var a Account
		var class string
		if err := rows.Scan(&a.ID, &a.Name, &class, &a.InitialBalance, &a.CreatedAt); err != nil {
			return nil, err
		}
		a.Class = analytics.AccountClass(class)
		out = append(out, a)
	}
	return out, rows.Err()
}

// GetTrade returns a single trade record by ID.
func (l *SQLiteLedger) GetTrade(id string) (Trade, error) {
	row := l.db.QueryRow(`
		SELECT `+tradeColumns+`
		FROM trades
		WHERE id = ?`, id)

	t, err := scanTrade(row)
	if err == sql.ErrNoRows {
		return Trade{}, fmt.Errorf("trade %q: %w", id, ErrNotFound)
	}
	if err != nil {
		return Trade{}, err
	}
	return t, nil
}

// ListTrades returns trades matching the filter in date order, newest last.
// Trades referencing a deleted account are skipped: the inner join keeps
// dangling rows out of every downstream statistic.
func (l *SQLiteLedger) ListTrades(f Filter) ([]Trade, error) {
	query := `
		SELECT t.id, t.account_id, t.date, t.pair, t.timeframe, t.dir, t.lot,
			t.entry, t.close, t.pips, t.stop, t.target, t.result,
			t.manual_result, t.risk, t.emotion, t.notes
		FROM trades t
		JOIN accounts a ON a.id = t.account_id
		WHERE 1=1`
	var args []any

	if f.AccountID != "" {
		query += ` AND t.account_id = ?`
		args = append(args, f.AccountID)
	}
	if f.Class != "" {
		query += ` AND a.class = ?`
		args = append(args, string(f.Class))
	}
	if !f.From.IsZero() {
		query += ` AND t.date >= ?`
		args = append(args, f.From)
	}
	if !f.To.IsZero() {
		query += ` AND t.date < ?`
		args = append(args, f.To)
	}
	query += ` ORDER BY t.date ASC, t.rowid ASC`
	if f.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, f.Limit)
	}

	rows, err := l.db.Query(query, args...)
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

// InitialBalance resolves the starting balance for a filter: the matching
// account's own balance, or the sum over all accounts the filter keeps.
// This is the value the statistics pass is seeded with.
func (l *SQLiteLedger) InitialBalance(f Filter) (float64, error) {
	if f.AccountID != "" {
		a, err := l.GetAccount(f.AccountID)
		if err != nil {
			return 0, err
		}
		return a.InitialBalance, nil
	}

	query := `SELECT COALESCE(SUM(initial_balance), 0) FROM accounts`
	var args []any
	if f.Class != "" {
		query += ` WHERE class = ?`
		args = append(args, string(f.Class))
	}

	var sum float64
	if err := l.db.QueryRow(query, args...).Scan(&sum); err != nil {
		return 0, fmt.Errorf("sum initial balances: %w", err)
	}
	return sum, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTrade(s scanner) (Trade, error) {
	var t Trade
	var dir string
	err := s.Scan(
		&t.ID, &t.AccountID, &t.Date, &t.Pair, &t.Timeframe, &dir, &t.Lot,
		&t.Entry, &t.Close, &t.Pips, &t.Stop, &t.Target, &t.Result,
		&t.ManualResult, &t.Risk, &t.Emotion, &t.Notes,
	)
	t.Dir = analytics.Direction(dir)
	return t, err
}
