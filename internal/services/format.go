package services

import (
	"orders-report-service/internal/domain"
	"time"
)

// FormatReport cleans the flattened orders into the publishable report:
// timestamps converted from epoch milliseconds UTC to loc, monetary fields
// scaled from cents to dollars, missing tips and delivery charges
// zero-filled, canceled orders dropped, never-ordered item columns pruned,
// and the execution date attached to every row.
func FormatReport(orders []domain.FlatOrder, catalog *domain.Catalog, loc *time.Location) domain.Report {
	formatted := make([]domain.FormattedOrder, 0, len(orders))
	for _, o := range orders {
		if o.Status == domain.StatusCanceled {
			continue
		}

		f := domain.FormattedOrder{
			ID:      o.ID,
			Created: time.UnixMilli(o.Created).In(loc),
			Status:  o.Status,
			Price:   float64(o.Price) / 100,
			Comment: o.Comment,

			DeliveryType: o.DeliveryType,

			FirstName: o.FirstName,
			LastName:  o.LastName,
			Phone:     o.Phone,
			Email:     o.Email,

			AddressFormatted: o.AddressFormatted,
			AddressApt:       o.AddressApt,
			AddressEntrance:  o.AddressEntrance,
			AddressFloor:     o.AddressFloor,
			AddressOnArrival: o.AddressOnArrival,
			AddressComment:   o.AddressComment,
		}

		if o.DeliveryTime != 0 {
			f.DeliveryTime = time.UnixMilli(o.DeliveryTime).In(loc)
		}
		// Absent charge and tip render as 0, not blank.
		if o.DeliveryCharge != nil {
			f.DeliveryCharge = float64(*o.DeliveryCharge) / 100
		}
		if o.Tip != nil {
			f.Tip = float64(*o.Tip) / 100
		}

		counts := make(map[string]int, len(o.ItemCounts))
		for name, n := range o.ItemCounts {
			counts[name] = n
		}
		f.ItemCounts = counts

		f.ExecutionDate = ExecutionDate(f.Created, f.DeliveryType, loc)

		formatted = append(formatted, f)
	}

	return domain.Report{
		ItemNames: PruneItemColumns(catalog.ItemNames(), formatted),
		Orders:    formatted,
	}
}

// PruneItemColumns keeps only item columns ordered at least once across the
// given rows. Re-running it on an already-pruned column set is a no-op.
func PruneItemColumns(itemNames []string, orders []domain.FormattedOrder) []string {
	kept := make([]string, 0, len(itemNames))
	for _, name := range itemNames {
		total := 0
		for _, o := range orders {
			total += o.ItemCounts[name]
		}
		if total != 0 {
			kept = append(kept, name)
		}
	}
	return kept
}
