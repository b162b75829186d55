package utils

import (
	"testing"
	"time"
)

func TestMonthKey(t *testing.T) {
	got := MonthKey(time.Date(2026, time.March, 7, 15, 30, 0, 0, time.UTC))
	if got != "2026-03" {
		t.Errorf("MonthKey() = %v, want 2026-03", got)
	}
}

func TestIsMonthKey(t *testing.T) {
	tests := []struct {
		name string
		key  string
		want bool
	}{
		{"valid key", "2026-03", true},
		{"valid December", "1999-12", true},
		{"month out of range", "2026-13", false},
		{"missing month", "2026", false},
		{"full date", "2026-03-01", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsMonthKey(tt.key); got != tt.want {
				t.Errorf("IsMonthKey(%q) = %v, want %v", tt.key, got, tt.want)
			}
		})
	}
}

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		want int
	}{
		{"January", time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC), 31},
		{"April", time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC), 30},
		{"February non-leap", time.Date(2026, time.February, 28, 0, 0, 0, 0, time.UTC), 28},
		{"February leap", time.Date(2028, time.February, 1, 0, 0, 0, 0, time.UTC), 29},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DaysInMonth(tt.date); got != tt.want {
				t.Errorf("DaysInMonth() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDaysBetween(t *testing.T) {
	a := time.Date(2026, time.March, 10, 23, 59, 0, 0, time.UTC)
	b := time.Date(2026, time.March, 15, 0, 1, 0, 0, time.UTC)
	if got := DaysBetween(a, b); got != 5 {
		t.Errorf("DaysBetween() = %v, want 5", got)
	}
	if got := DaysBetween(b, a); got != -5 {
		t.Errorf("DaysBetween() reversed = %v, want -5", got)
	}
	if got := DaysBetween(a, a); got != 0 {
		t.Errorf("DaysBetween() same day = %v, want 0", got)
	}
}
