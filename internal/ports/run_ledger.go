package ports

import (
	"context"
	"time"
)

// Run outcomes recorded in the ledger.
const (
	RunStatusOK      = "ok"
	RunStatusPartial = "partial"
	RunStatusFailed  = "failed"
)

// RunRecord is the durable outcome of one pull-transform-publish cycle.
// A partial status means local files exist but the spreadsheet was not updated.
type RunRecord struct {
	RunID        string
	StartedAt    time.Time
	FinishedAt   time.Time
	OrderRows    int
	DeliveryRows int
	Status       string
	Reason       string
}

// Port: a boundary for appending run outcomes to persistent storage.
type RunLedger interface {
	Record(ctx context.Context, rec RunRecord) error
}
