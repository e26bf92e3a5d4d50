package ledger

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"orders-report-service/internal/ports"
	"os"
	"path/filepath"
	"time"
)

// SQLite backed run ledger. This is the default store for single-host runs.
type SqliteRunLedger struct {
	DB *sql.DB
}

func NewSqliteRunLedger(db *sql.DB) *SqliteRunLedger {
	return &SqliteRunLedger{DB: db}
}

// OpenSqlite opens (or creates) the ledger database at path and ensures the
// runs table exists.
func OpenSqlite(path string) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("open ledger: create directory %q: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open ledger: open sqlite database %q: %w", path, err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("open ledger: verify sqlite connection to %q: %w", path, err)
	}

	if err := initSqliteSchema(db); err != nil {
		return nil, err
	}

	return db, nil
}

func initSqliteSchema(db *sql.DB) error {
	q := `
	CREATE TABLE IF NOT EXISTS runs (
		run_id        TEXT PRIMARY KEY,
		started_at    TEXT NOT NULL,
		finished_at   TEXT NOT NULL,
		order_rows    INTEGER NOT NULL,
		delivery_rows INTEGER NOT NULL,
		status        TEXT NOT NULL,
		reason        TEXT NOT NULL DEFAULT ''
	);
	`
	if _, err := db.Exec(q); err != nil {
		return fmt.Errorf("init ledger schema: %w", err)
	}
	return nil
}

// Record appends one run outcome.
func (l *SqliteRunLedger) Record(ctx context.Context, rec ports.RunRecord) error {
	if l.DB == nil {
		return errors.New("run ledger: db is nil")
	}
	if rec.RunID == "" {
		return errors.New("record run: run id is empty")
	}

	q := `
	INSERT OR REPLACE INTO runs (
		run_id,
		started_at,
		finished_at,
		order_rows,
		delivery_rows,
		status,
		reason
	)
	VALUES (?, ?, ?, ?, ?, ?, ?);
	`
	_, err := l.DB.ExecContext(ctx, q,
		rec.RunID,
		rec.StartedAt.UTC().Format(time.RFC3339),
		rec.FinishedAt.UTC().Format(time.RFC3339),
		rec.OrderRows,
		rec.DeliveryRows,
		rec.Status,
		rec.Reason,
	)
	if err != nil {
		return fmt.Errorf("record run %s: %w", rec.RunID, err)
	}

	return nil
}
