package services

import (
	"fmt"
	"orders-report-service/internal/domain"
	"time"
)

const clockLayout = "15:04"

// ManifestWindow carries the routing service window. The values encode a
// business rule the dispatch side never wrote down (Saturday routes start
// earlier), so they are parameters rather than constants.
type ManifestWindow struct {
	WeekdayStart       string
	SaturdayStart      string
	Window             time.Duration
	ServiceTimeMinutes int
}

// DefaultManifestWindow returns the values the dispatch system has always used.
func DefaultManifestWindow() ManifestWindow {
	return ManifestWindow{
		WeekdayStart:       "14:00",
		SaturdayStart:      "12:00",
		Window:             4 * time.Hour,
		ServiceTimeMinutes: 10,
	}
}

// BuildManifest reduces today's deliveries to the per-stop records the
// routing system imports: contact, address parts, total item count, and the
// day's service window.
func BuildManifest(daily domain.DailyDeliveries, window ManifestWindow) (domain.Manifest, error) {
	startClock := window.WeekdayStart
	if daily.Date.Weekday() == time.Saturday {
		startClock = window.SaturdayStart
	}

	start, err := time.Parse(clockLayout, startClock)
	if err != nil {
		return domain.Manifest{}, fmt.Errorf("build manifest: parse start time %q: %w", startClock, err)
	}
	end := start.Add(window.Window)

	entries := make([]domain.ManifestEntry, 0, len(daily.Orders))
	for _, o := range daily.Orders {
		entries = append(entries, domain.ManifestEntry{
			Name:             fmt.Sprintf("%s %s", o.FirstName, o.LastName),
			Phone:            o.Phone,
			Email:            o.Email,
			AddressFormatted: o.AddressFormatted,
			AddressEntrance:  o.AddressEntrance,
			AddressFloor:     o.AddressFloor,
			AddressApt:       o.AddressApt,
			AddressComment:   o.AddressComment,
			AddressOnArrival: o.AddressOnArrival,
			NumItems:         o.NumItems(daily.ItemNames),
			StartTime:        start.Format(clockLayout),
			EndTime:          end.Format(clockLayout),
			ServiceTime:      window.ServiceTimeMinutes,
		})
	}

	return domain.Manifest{Entries: entries}, nil
}
