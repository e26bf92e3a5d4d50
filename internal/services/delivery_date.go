package services

import (
	"orders-report-service/internal/domain"
	"time"
)

// The schedule gained Tuesday deliveries on 2020-04-21. Orders created at or
// before this instant (Pacific) still follow the Wednesday-only schedule.
func policyCutoff(loc *time.Location) time.Time {
	return time.Date(2020, time.April, 17, 18, 0, 0, 0, loc)
}

// DeliveryDate resolves the scheduled delivery date for an order created at
// createdAt, evaluated in loc (the restaurant's zone).
//
// Both schedules share the shape: orders placed after the 18:00 cutoff push
// out an extra day, Friday-evening and weekend orders wait for the next
// delivery day (Wednesday under the old schedule, Tuesday under the new one),
// and everything else delivers next day.
func DeliveryDate(createdAt time.Time, loc *time.Location) domain.Date {
	c := createdAt.In(loc)
	wd := c.Weekday()
	h := c.Hour()

	var days int
	if !c.After(policyCutoff(loc)) {
		switch {
		case wd == time.Monday:
			days = 2
		case (wd == time.Tuesday || wd == time.Wednesday || wd == time.Thursday) && h >= 18:
			days = 2
		case wd == time.Friday && h >= 18:
			days = 5
		case wd == time.Saturday:
			days = 4
		case wd == time.Sunday:
			days = 3
		default:
			days = 1
		}
	} else {
		switch {
		case wd >= time.Monday && wd <= time.Thursday && h >= 18:
			days = 2
		case wd == time.Friday && h >= 18:
			days = 4
		case wd == time.Saturday:
			days = 3
		case wd == time.Sunday:
			days = 2
		default:
			days = 1
		}
	}

	return domain.DateOf(c.AddDate(0, 0, days))
}

// ExecutionDate is the delivery date for delivery orders and the creation
// date for everything else (pickups execute the day they are placed).
func ExecutionDate(createdAt time.Time, deliveryType string, loc *time.Location) domain.Date {
	if deliveryType == domain.DeliveryTypeDelivery {
		return DeliveryDate(createdAt, loc)
	}
	return domain.DateOf(createdAt.In(loc))
}
