package csvout

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteTable(t *testing.T) {
	dir := t.TempDir()

	w, err := NewWriter(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	table := [][]string{
		{"id", "name", "price"},
		{"ipa", "Hazy IPA", "15"},
		{"pils", "Pilsner, draft", "9"},
	}
	if err := w.WriteTable("menu_items", table); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	raw, err := os.ReadFile(filepath.Join(dir, "menu_items.csv"))
	if err != nil {
		t.Fatalf("read output: %v", err)
	}

	want := "id,name,price\nipa,Hazy IPA,15\npils,\"Pilsner, draft\",9\n"
	if string(raw) != want {
		t.Fatalf("csv output = %q, want %q", string(raw), want)
	}
}

func TestNewWriterCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")

	if _, err := NewWriter(dir); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		t.Fatalf("output directory not created: %v", err)
	}
}
