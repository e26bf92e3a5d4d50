package services

import (
	"orders-report-service/internal/domain"
)

// SelectDailyDeliveries filters the report to delivery orders scheduled for
// today. Today arrives as an explicit parameter so runs are reproducible.
//
// Item columns get pruned again: the day's subset may leave columns that were
// ordered sometime this week but not today.
func SelectDailyDeliveries(report domain.Report, today domain.Date) domain.DailyDeliveries {
	selected := make([]domain.FormattedOrder, 0, len(report.Orders))
	for _, o := range report.Orders {
		if o.DeliveryType != domain.DeliveryTypeDelivery {
			continue
		}
		if o.ExecutionDate != today {
			continue
		}
		selected = append(selected, o)
	}

	return domain.DailyDeliveries{
		Date:      today,
		ItemNames: PruneItemColumns(report.ItemNames, selected),
		Orders:    selected,
	}
}
