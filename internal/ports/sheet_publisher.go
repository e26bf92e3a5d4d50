package ports

import "context"

// Contract for publishing a rectangular table to a named sheet/tab.
// Implementations clear the destination range first so stale rows from a
// previous run never survive a shorter import.
type SheetPublisher interface {
	Publish(ctx context.Context, sheetName string, values [][]string) error
}
