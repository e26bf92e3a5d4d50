package services

import (
	"orders-report-service/internal/domain"
	"testing"
	"time"
)

func TestFormatReport(t *testing.T) {
	loc := pacific(t)
	catalog := testCatalog(t)

	createdFri := time.Date(2020, 5, 8, 18, 30, 0, 0, loc)
	createdSat := time.Date(2020, 5, 9, 11, 0, 0, 0, loc)
	charge := int64(600)
	tip := int64(450)

	flat := []domain.FlatOrder{
		{
			ID:             "delivery",
			Created:        createdFri.UnixMilli(),
			Status:         "completed",
			Price:          4500,
			DeliveryType:   domain.DeliveryTypeDelivery,
			DeliveryTime:   createdSat.UnixMilli(),
			DeliveryCharge: &charge,
			Tip:            &tip,
			ItemCounts:     map[string]int{"Hazy IPA": 2},
		},
		{
			ID:           "pickup",
			Created:      createdSat.UnixMilli(),
			Status:       "open",
			Price:        900,
			DeliveryType: "takeout",
			ItemCounts:   map[string]int{"Pilsner": 1},
		},
		{
			ID:           "gone",
			Created:      createdSat.UnixMilli(),
			Status:       domain.StatusCanceled,
			DeliveryType: domain.DeliveryTypeDelivery,
			ItemCounts:   map[string]int{"Imperial Stout": 4},
		},
	}

	report := FormatReport(flat, catalog, loc)

	if len(report.Orders) != 2 {
		t.Fatalf("got %d rows, want 2 (canceled dropped)", len(report.Orders))
	}

	del := report.Orders[0]
	if !del.Created.Equal(createdFri) {
		t.Errorf("created = %v, want %v", del.Created, createdFri)
	}
	if del.Price != 45 || del.DeliveryCharge != 6 || del.Tip != 4.5 {
		t.Errorf("monetary scaling wrong: price=%v charge=%v tip=%v", del.Price, del.DeliveryCharge, del.Tip)
	}
	// Friday 18:30 under the new policy delivers the following Tuesday.
	if want := (domain.Date{Year: 2020, Month: time.May, Day: 12}); del.ExecutionDate != want {
		t.Errorf("execution date = %v, want %v", del.ExecutionDate, want)
	}

	pick := report.Orders[1]
	if pick.Tip != 0 || pick.DeliveryCharge != 0 {
		t.Errorf("missing tip/charge should zero-fill, got tip=%v charge=%v", pick.Tip, pick.DeliveryCharge)
	}
	if want := (domain.Date{Year: 2020, Month: time.May, Day: 9}); pick.ExecutionDate != want {
		t.Errorf("pickup execution date = %v, want %v", pick.ExecutionDate, want)
	}

	// The canceled order held the only Imperial Stout, and Old Seasonal was
	// never ordered; both columns prune away.
	want := []string{"Hazy IPA", "Pilsner"}
	if len(report.ItemNames) != len(want) {
		t.Fatalf("item columns = %v, want %v", report.ItemNames, want)
	}
	for i := range want {
		if report.ItemNames[i] != want[i] {
			t.Fatalf("item columns = %v, want %v", report.ItemNames, want)
		}
	}
}

func TestPruneItemColumnsIdempotent(t *testing.T) {
	orders := []domain.FormattedOrder{
		{ItemCounts: map[string]int{"A": 1}},
		{ItemCounts: map[string]int{"B": 0}},
	}

	once := PruneItemColumns([]string{"A", "B", "C"}, orders)
	twice := PruneItemColumns(once, orders)

	if len(once) != 1 || once[0] != "A" {
		t.Fatalf("pruned = %v, want [A]", once)
	}
	if len(twice) != len(once) || twice[0] != once[0] {
		t.Fatalf("second prune changed result: %v vs %v", twice, once)
	}
}

func TestFormatReportZeroFillsItemColumns(t *testing.T) {
	loc := pacific(t)
	catalog := testCatalog(t)

	flat := []domain.FlatOrder{
		{ID: "a", Created: time.Date(2020, 5, 5, 10, 0, 0, 0, loc).UnixMilli(), Status: "open", ItemCounts: map[string]int{"Hazy IPA": 2}},
		{ID: "b", Created: time.Date(2020, 5, 5, 11, 0, 0, 0, loc).UnixMilli(), Status: "open", ItemCounts: map[string]int{"Pilsner": 1}},
	}

	report := FormatReport(flat, catalog, loc)

	table := report.Table()
	if len(table) != 3 {
		t.Fatalf("table rows = %d, want 3", len(table))
	}
	// Row "a" never ordered a Pilsner; the rendered cell is 0, not blank.
	header := table[0]
	pilsnerCol := -1
	for i, h := range header {
		if h == "Pilsner" {
			pilsnerCol = i
		}
	}
	if pilsnerCol == -1 {
		t.Fatalf("Pilsner column missing from header %v", header)
	}
	if table[1][pilsnerCol] != "0" {
		t.Fatalf("unordered item cell = %q, want \"0\"", table[1][pilsnerCol])
	}
}
