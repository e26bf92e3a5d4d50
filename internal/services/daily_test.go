package services

import (
	"orders-report-service/internal/domain"
	"testing"
	"time"
)

func TestSelectDailyDeliveries(t *testing.T) {
	today := domain.Date{Year: 2020, Month: time.May, Day: 12}

	report := domain.Report{
		ItemNames: []string{"Hazy IPA", "Pilsner"},
		Orders: []domain.FormattedOrder{
			{
				ID:            "due-today",
				DeliveryType:  domain.DeliveryTypeDelivery,
				ExecutionDate: today,
				ItemCounts:    map[string]int{"Hazy IPA": 2},
			},
			{
				ID:            "due-later",
				DeliveryType:  domain.DeliveryTypeDelivery,
				ExecutionDate: domain.Date{Year: 2020, Month: time.May, Day: 13},
				ItemCounts:    map[string]int{"Pilsner": 3},
			},
			{
				ID:            "pickup-today",
				DeliveryType:  "takeout",
				ExecutionDate: today,
				ItemCounts:    map[string]int{"Pilsner": 1},
			},
		},
	}

	daily := SelectDailyDeliveries(report, today)

	if len(daily.Orders) != 1 {
		t.Fatalf("got %d orders, want 1", len(daily.Orders))
	}
	if daily.Orders[0].ID != "due-today" {
		t.Fatalf("selected order = %q, want %q", daily.Orders[0].ID, "due-today")
	}

	// Pilsner was only in tomorrow's delivery and today's pickup, so the
	// day's subset drops the column.
	if len(daily.ItemNames) != 1 || daily.ItemNames[0] != "Hazy IPA" {
		t.Fatalf("item columns = %v, want [Hazy IPA]", daily.ItemNames)
	}
}

func TestSelectDailyDeliveriesEmpty(t *testing.T) {
	today := domain.Date{Year: 2020, Month: time.May, Day: 12}

	daily := SelectDailyDeliveries(domain.Report{ItemNames: []string{"A"}}, today)
	if len(daily.Orders) != 0 {
		t.Fatalf("got %d orders, want 0", len(daily.Orders))
	}
	if len(daily.ItemNames) != 0 {
		t.Fatalf("item columns = %v, want none", daily.ItemNames)
	}

	// An empty day still renders a header row.
	table := daily.Table()
	if len(table) != 1 {
		t.Fatalf("table rows = %d, want header only", len(table))
	}
}
