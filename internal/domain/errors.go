package domain

import "fmt"

// DataShapeError reports source JSON missing a field the pipeline depends on.
// It is fatal: the run aborts before anything is published.
type DataShapeError struct {
	Entity string
	Field  string
}

func (e *DataShapeError) Error() string {
	return fmt.Sprintf("malformed %s: missing %s", e.Entity, e.Field)
}

// ItemNotFoundError reports an order line referencing an item id absent from
// the menu catalog. This signals catalog/order desync and requires manual
// intervention, so the flattener fails fast instead of dropping the line.
type ItemNotFoundError struct {
	OrderID string
	ItemID  string
}

func (e *ItemNotFoundError) Error() string {
	return fmt.Sprintf("order %s references unknown menu item %s", e.OrderID, e.ItemID)
}

// PartialPublishError marks a run whose local files were written but whose
// spreadsheet publish failed. Callers map it to a distinct exit status.
type PartialPublishError struct {
	Err error
}

func (e *PartialPublishError) Error() string {
	return fmt.Sprintf("local files written but spreadsheet publish failed: %v", e.Err)
}

func (e *PartialPublishError) Unwrap() error { return e.Err }
