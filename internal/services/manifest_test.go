package services

import (
	"orders-report-service/internal/domain"
	"testing"
	"time"
)

func dailyFixture(date domain.Date) domain.DailyDeliveries {
	return domain.DailyDeliveries{
		Date:      date,
		ItemNames: []string{"Hazy IPA", "Pilsner"},
		Orders: []domain.FormattedOrder{
			{
				FirstName:        "Ada",
				LastName:         "Lovelace",
				Phone:            "555-0100",
				Email:            "ada@example.com",
				AddressFormatted: "1 Main St, Oakland, CA",
				AddressApt:       "2B",
				ItemCounts:       map[string]int{"Hazy IPA": 2, "Pilsner": 3},
			},
		},
	}
}

func TestBuildManifestWeekday(t *testing.T) {
	// 2020-05-12 was a Tuesday.
	daily := dailyFixture(domain.Date{Year: 2020, Month: time.May, Day: 12})

	manifest, err := BuildManifest(daily, DefaultManifestWindow())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(manifest.Entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(manifest.Entries))
	}

	e := manifest.Entries[0]
	if e.Name != "Ada Lovelace" {
		t.Errorf("name = %q, want %q", e.Name, "Ada Lovelace")
	}
	if e.NumItems != 5 {
		t.Errorf("numItems = %d, want 5", e.NumItems)
	}
	if e.StartTime != "14:00" || e.EndTime != "18:00" {
		t.Errorf("window = %s-%s, want 14:00-18:00", e.StartTime, e.EndTime)
	}
	if e.ServiceTime != 10 {
		t.Errorf("serviceTime = %d, want 10", e.ServiceTime)
	}
}

func TestBuildManifestSaturdayStartsEarlier(t *testing.T) {
	// 2020-05-09 was a Saturday.
	daily := dailyFixture(domain.Date{Year: 2020, Month: time.May, Day: 9})

	manifest, err := BuildManifest(daily, DefaultManifestWindow())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	e := manifest.Entries[0]
	if e.StartTime != "12:00" || e.EndTime != "16:00" {
		t.Fatalf("window = %s-%s, want 12:00-16:00", e.StartTime, e.EndTime)
	}
}

func TestBuildManifestCountsOnlyKeptColumns(t *testing.T) {
	daily := dailyFixture(domain.Date{Year: 2020, Month: time.May, Day: 12})
	// Pilsner pruned from today's columns: its counts stop contributing.
	daily.ItemNames = []string{"Hazy IPA"}

	manifest, err := BuildManifest(daily, DefaultManifestWindow())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := manifest.Entries[0].NumItems; got != 2 {
		t.Fatalf("numItems = %d, want 2", got)
	}
}

func TestBuildManifestBadWindow(t *testing.T) {
	daily := dailyFixture(domain.Date{Year: 2020, Month: time.May, Day: 12})

	window := DefaultManifestWindow()
	window.WeekdayStart = "2pm"

	if _, err := BuildManifest(daily, window); err == nil {
		t.Fatal("expected error for unparseable start time")
	}
}
