package scraper

import "time"

// InCurrentMonth reports whether date falls in the calendar month and year of
// now, as seen in now's location. The day is ignored.
func InCurrentMonth(date, now time.Time) bool {
	return date.Year() == now.Year() && date.Month() == now.Month()
}
