package csvout

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Writer implements ports.TableWriter, persisting each table as a CSV file
// (header row plus data rows) under Dir.
type Writer struct {
	Dir string
}

func NewWriter(dir string) (*Writer, error) {
	if dir == "" {
		return nil, errors.New("output directory is empty")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory %q: %w", dir, err)
	}
	return &Writer{Dir: dir}, nil
}

func (w *Writer) WriteTable(name string, table [][]string) error {
	path := filepath.Join(w.Dir, name+".csv")

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write table: create %q: %w", path, err)
	}

	cw := csv.NewWriter(f)
	if err := cw.WriteAll(table); err != nil {
		f.Close()
		return fmt.Errorf("write table: write rows to %q: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("write table: close %q: %w", path, err)
	}

	return nil
}
