package domain

import (
	"fmt"
	"time"
)

// Date is a calendar date with no time-of-day component.
// Comparisons use ==; the zero value means "no date".
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf truncates t to a calendar date in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

func (d Date) IsZero() bool {
	return d == Date{}
}

func (d Date) Weekday() time.Weekday {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC).Weekday()
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}
