package ledger

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"orders-report-service/internal/ports"
	"time"
)

// SQLRunLedger is a postgres-backed run ledger for shared deployments where
// several hosts report into one ledger.
type SQLRunLedger struct {
	DB *sql.DB
}

func NewSQLRunLedger(db *sql.DB) *SQLRunLedger {
	return &SQLRunLedger{DB: db}
}

// OpenPostgres opens a postgres ledger connection via the pgx stdlib driver.
func OpenPostgres(databaseURL string) (*sql.DB, error) {
	db, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("open ledger: open postgres database: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("open ledger: verify postgres connection: %w", err)
	}

	return db, nil
}

// InitSchema creates the runs table. Run once per database (see cmd/ledgertool).
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	q := `
	CREATE TABLE IF NOT EXISTS runs (
		run_id        TEXT PRIMARY KEY,
		started_at    TIMESTAMPTZ NOT NULL,
		finished_at   TIMESTAMPTZ NOT NULL,
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
func (l *SQLRunLedger) Record(ctx context.Context, rec ports.RunRecord) error {
	if l.DB == nil {
		return errors.New("run ledger: db is nil")
	}
	if rec.RunID == "" {
		return errors.New("record run: run id is empty")
	}

	q := `
	INSERT INTO runs (
		run_id,
		started_at,
		finished_at,
		order_rows,
		delivery_rows,
		status,
		reason
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	ON CONFLICT (run_id) DO UPDATE
	SET finished_at = EXCLUDED.finished_at,
		order_rows = EXCLUDED.order_rows,
		delivery_rows = EXCLUDED.delivery_rows,
		status = EXCLUDED.status,
		reason = EXCLUDED.reason;
	`
	_, err := l.DB.ExecContext(ctx, q,
		rec.RunID,
		rec.StartedAt,
		rec.FinishedAt,
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
