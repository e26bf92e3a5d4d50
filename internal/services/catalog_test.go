package services

import (
	"errors"
	"orders-report-service/internal/domain"
	"testing"
)

func menuFixture() domain.RawMenu {
	return domain.RawMenu{
		Items: []domain.RawMenuItem{
			{ID: "ipa", Title: map[string]string{"en_US": "Hazy IPA"}, Price: 1500},
			{ID: "pils", Title: map[string]string{"en_US": "Pilsner"}, Price: 900},
			{ID: "stout", Title: map[string]string{"en_US": "Imperial Stout"}, Price: 1800},
			{ID: "retired", Title: map[string]string{"en_US": "Old Seasonal"}, Price: 1200},
		},
		Sections: []domain.RawMenuSection{
			{
				Children: []domain.RawSectionChild{
					{Title: map[string]string{"en_US": "6-Pack Cans"}, ItemIDs: []string{"ipa", "pils"}},
					{Title: map[string]string{"en_US": "Bottles"}},
				},
			},
			{
				Children: []domain.RawSectionChild{
					{Title: map[string]string{"en_US": "Specialty"}, ItemIDs: []string{"stout"}},
				},
			},
		},
	}
}

func TestBuildCatalogFormats(t *testing.T) {
	catalog, err := BuildCatalog(menuFixture())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		id         string
		wantFormat string
		wantPrice  float64
	}{
		// Cans section, priced above the cutoff: stays a pack.
		{"ipa", "4-Pack", 15},
		// Cans section, priced below the cutoff: sold as a single can.
		{"pils", "Single Can", 9},
		{"stout", "Specialty", 18},
		{"retired", domain.FormatArchived, 12},
	}

	for _, tc := range tests {
		item, ok := catalog.Lookup(tc.id)
		if !ok {
			t.Fatalf("item %q missing from catalog", tc.id)
		}
		if item.Format != tc.wantFormat {
			t.Errorf("%s: format = %q, want %q", tc.id, item.Format, tc.wantFormat)
		}
		if item.Price != tc.wantPrice {
			t.Errorf("%s: price = %v, want %v", tc.id, item.Price, tc.wantPrice)
		}
	}
}

func TestBuildCatalogLaterSectionWins(t *testing.T) {
	menu := menuFixture()
	menu.Sections = append(menu.Sections, domain.RawMenuSection{
		Children: []domain.RawSectionChild{
			{Title: map[string]string{"en_US": "Clearance"}, ItemIDs: []string{"stout"}},
		},
	})

	catalog, err := BuildCatalog(menu)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	item, _ := catalog.Lookup("stout")
	if item.Format != "Clearance" {
		t.Fatalf("format = %q, want %q", item.Format, "Clearance")
	}
}

func TestBuildCatalogItemNamesKeepMenuOrder(t *testing.T) {
	catalog, err := BuildCatalog(menuFixture())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"Hazy IPA", "Pilsner", "Imperial Stout", "Old Seasonal"}
	got := catalog.ItemNames()
	if len(got) != len(want) {
		t.Fatalf("got %d names, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("name[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestBuildCatalogMalformedMenu(t *testing.T) {
	menu := menuFixture()
	menu.Items[0].Title = map[string]string{"fr_FR": "IPA brumeuse"}

	_, err := BuildCatalog(menu)
	var shapeErr *domain.DataShapeError
	if !errors.As(err, &shapeErr) {
		t.Fatalf("expected DataShapeError, got %v", err)
	}

	menu = menuFixture()
	menu.Sections[0].Children[0].Title = nil

	_, err = BuildCatalog(menu)
	if !errors.As(err, &shapeErr) {
		t.Fatalf("expected DataShapeError for section title, got %v", err)
	}

	menu = menuFixture()
	menu.Items[0].Price = -100

	_, err = BuildCatalog(menu)
	if !errors.As(err, &shapeErr) {
		t.Fatalf("expected DataShapeError for negative price, got %v", err)
	}
}

func TestBuildCatalogAcceptsZeroPrice(t *testing.T) {
	// Free and placeholder items show up on real menus; they must not abort
	// the import.
	menu := menuFixture()
	menu.Items[1].Price = 0

	catalog, err := BuildCatalog(menu)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	item, ok := catalog.Lookup("pils")
	if !ok {
		t.Fatal("zero-price item missing from catalog")
	}
	if item.Price != 0 {
		t.Errorf("price = %v, want 0", item.Price)
	}
	// Zero is under the single-can cutoff, so the can reclassification
	// still applies.
	if item.Format != "Single Can" {
		t.Errorf("format = %q, want %q", item.Format, "Single Can")
	}
}
