package utils

import "time"

const (
	MonthKeyLayout = "2006-01"
	DateLayout     = "2006-01-02"
)

// MonthKey returns the "YYYY-MM" key of the calendar month containing t.
func MonthKey(t time.Time) string {
	return t.Format(MonthKeyLayout)
}

// IsMonthKey reports whether s is a well-formed "YYYY-MM" month key.
func IsMonthKey(s string) bool {
	_, err := time.Parse(MonthKeyLayout, s)
	return err == nil
}

// DaysInMonth returns the number of days in the calendar month containing t.
func DaysInMonth(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location()).Day()
}

// DaysBetween returns the number of whole days from a to b, ignoring the
// time-of-day components. Negative when b is before a.
func DaysBetween(a, b time.Time) int {
	ad := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bd := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(bd.Sub(ad).Hours() / 24)
}
