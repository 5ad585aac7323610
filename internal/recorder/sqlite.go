package recorder

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/Ajnunezg/StockTraderSim/internal/arbitrage"
	_ "github.com/mattn/go-sqlite3"
)

// SQLiteRecorder persists trade logs to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS trades (
			id        INTEGER PRIMARY KEY AUTOINCREMENT,
			symbol    TEXT NOT NULL,
			day       TEXT NOT NULL,
			frequency TEXT NOT NULL,
			timestamp INTEGER NOT NULL,
			action    TEXT NOT NULL,
			price     TEXT NOT NULL,
			shares    TEXT NOT NULL,
			gain_loss TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_trades_symbol_day ON trades(symbol, day)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordTrades(symbol string, day time.Time, freq arbitrage.Frequency, trades []arbitrage.Trade) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO trades
		(symbol, day, frequency, timestamp, action, price, shares, gain_loss)
		VALUES (?,?,?,?,?,?,?,?)`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, t := range trades {
		_, err := stmt.Exec(
			symbol, day.Format("2006-01-02"), freq.String(),
			t.Time.Unix(), string(t.Action),
			t.Price.String(), t.Shares.String(), t.GainLoss.String(),
		)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("insert trade: %w", err)
		}
	}

	return tx.Commit()
}

func (r *SQLiteRecorder) Close() error {
	return r.db.Close()
}
