package workbook

import (
	"context"
	"errors"
	"fmt"
	"orders-report-service/internal/platform/obs"
	"sync"

	"github.com/xuri/excelize/v2"
)

// Publisher implements ports.SheetPublisher by writing tabs into a local
// .xlsx workbook. It stands in for the remote spreadsheet when no Sheets
// credentials are configured, keeping offline runs publishable.
//
// The first publish of a run starts a fresh workbook so tabs from a previous
// run never linger.
type Publisher struct {
	mu      sync.Mutex
	path    string
	started bool
}

func NewPublisher(path string) (*Publisher, error) {
	if path == "" {
		return nil, errors.New("workbook path is empty")
	}
	return &Publisher{path: path}, nil
}

func (p *Publisher) Publish(ctx context.Context, sheetName string, values [][]string) (err error) {
	defer obs.Time(ctx, "workbook.Publish")(&err)

	if sheetName == "" {
		return errors.New("publish workbook: sheet name is empty")
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	var f *excelize.File
	if p.started {
		f, err = excelize.OpenFile(p.path)
		if err != nil {
			return fmt.Errorf("open workbook %q: %w", p.path, err)
		}
	} else {
		f = excelize.NewFile()
	}
	defer f.Close()

	idx, err := f.GetSheetIndex(sheetName)
	if err != nil {
		return fmt.Errorf("look up sheet %q: %w", sheetName, err)
	}
	if idx == -1 {
		if _, err := f.NewSheet(sheetName); err != nil {
			return fmt.Errorf("create sheet %q: %w", sheetName, err)
		}
	}

	for i, row := range values {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("compute cell for row %d: %w", i+1, err)
		}

		cells := make([]interface{}, len(row))
		for j, v := range row {
			cells[j] = v
		}
		if err := f.SetSheetRow(sheetName, cell, &cells); err != nil {
			return fmt.Errorf("write row %d to sheet %q: %w", i+1, sheetName, err)
		}
	}

	// Drop the default sheet so the workbook holds only published tabs.
	if !p.started && sheetName != "Sheet1" {
		_ = f.DeleteSheet("Sheet1")
	}

	if err := f.SaveAs(p.path); err != nil {
		return fmt.Errorf("save workbook %q: %w", p.path, err)
	}

	p.started = true
	return nil
}
