package services

import (
	"orders-report-service/internal/domain"
	"strings"
)

// Item names and section titles come localized; the reports use US English.
const titleLocale = "en_US"

// Items in a can section cheaper than this are sold as single cans, not packs.
const singleCanPriceCutoffUSD = 12

// BuildCatalog turns the raw menu payload into the item catalog.
//
// Each item's format is the title of the last section listing it; items in no
// section are "archived". Format labels then go through two passes whose order
// matters: every "Cans" section label becomes "4-Pack" first, and only then
// are "4-Pack" items priced under the cutoff reclassified as "Single Can".
// Folding the passes into one conditional would misclassify true 4-packs
// priced near the cutoff.
func BuildCatalog(menu domain.RawMenu) (*domain.Catalog, error) {
	formats := make(map[string]string)
	for _, sec := range menu.Sections {
		for _, child := range sec.Children {
			if len(child.ItemIDs) == 0 {
				continue
			}
			title := child.Title[titleLocale]
			if title == "" {
				return nil, &domain.DataShapeError{Entity: "menu section", Field: "title." + titleLocale}
			}
			// Later sections win when an item appears in more than one.
			for _, id := range child.ItemIDs {
				formats[id] = title
			}
		}
	}

	items := make([]domain.MenuItem, 0, len(menu.Items))
	for _, raw := range menu.Items {
		if raw.ID == "" {
			return nil, &domain.DataShapeError{Entity: "menu item", Field: "id"}
		}
		name := raw.Title[titleLocale]
		if name == "" {
			return nil, &domain.DataShapeError{Entity: "menu item " + raw.ID, Field: "title." + titleLocale}
		}
		if raw.Price < 0 {
			return nil, &domain.DataShapeError{Entity: "menu item " + raw.ID, Field: "price"}
		}

		format, ok := formats[raw.ID]
		if !ok {
			format = domain.FormatArchived
		}
		items = append(items, domain.MenuItem{
			ID:     raw.ID,
			Name:   name,
			Price:  float64(raw.Price) / 100,
			Format: format,
		})
	}

	for i := range items {
		if strings.Contains(items[i].Format, "Cans") {
			items[i].Format = "4-Pack"
		}
	}
	for i := range items {
		if strings.Contains(items[i].Format, "4-Pack") && items[i].Price < singleCanPriceCutoffUSD {
			items[i].Format = "Single Can"
		}
	}

	return domain.NewCatalog(items), nil
}
