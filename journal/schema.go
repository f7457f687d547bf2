// journal/schema.go
package journal

const Schema = `
CREATE TABLE IF NOT EXISTS accounts (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	class TEXT NOT NULL,
	initial_balance REAL NOT NULL,
	created_at DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS trades (
	id TEXT PRIMARY KEY,
	account_id TEXT NOT NULL,
	date DATETIME NOT NULL,
	pair TEXT NOT NULL,
	timeframe TEXT NOT NULL,
	dir TEXT NOT NULL,
	lot REAL NOT NULL,
	entry REAL NOT NULL,
	close REAL NOT NULL,
	pips REAL NOT NULL,
	stop REAL NOT NULL,
	target REAL NOT NULL,
	result REAL NOT NULL,
	manual_result INTEGER NOT NULL,
	risk REAL NOT NULL,
	emotion TEXT NOT NULL,
	notes TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_trades_account ON trades(account_id);
CREATE INDEX IF NOT EXISTS idx_trades_date ON trades(date);

CREATE TABLE IF NOT EXISTS prefs (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
`
