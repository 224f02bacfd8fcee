package services

import (
	"testing"
	"time"
)

func TestWeekRangeStrings(t *testing.T) {
	// 2025-06-02 is a Monday, 2025-06-08 the Sunday closing that week.
	tests := []struct {
		name      string
		date      string
		wantStart string
		wantEnd   string
	}{
		{"monday maps to itself", "2025-06-02", "2025-06-02", "2025-06-08"},
		{"wednesday", "2025-06-04", "2025-06-02", "2025-06-08"},
		{"saturday", "2025-06-07", "2025-06-02", "2025-06-08"},
		{"sunday closes the week it ends", "2025-06-08", "2025-06-02", "2025-06-08"},
		{"next monday starts a new week", "2025-06-09", "2025-06-09", "2025-06-15"},
		{"week spanning a month boundary", "2025-07-31", "2025-07-28", "2025-08-03"},
		{"week spanning a year boundary", "2026-01-01", "2025-12-29", "2026-01-04"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref, err := time.Parse("2006-01-02", tt.date)
			if err != nil {
				t.Fatalf("bad test date %q: %v", tt.date, err)
			}

			start, end := WeekRangeStrings(ref)
			if start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("WeekRangeStrings(%s) = (%s, %s), want (%s, %s)",
					tt.date, start, end, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestWeekRangeBounds(t *testing.T) {
	ref := time.Date(2025, 6, 4, 15, 30, 45, 0, time.UTC)

	monday, sunday := WeekRange(ref)

	if monday.Hour() != 0 || monday.Minute() != 0 || monday.Second() != 0 {
		t.Errorf("monday not at midnight: %v", monday)
	}
	if sunday.Hour() != 23 || sunday.Minute() != 59 || sunday.Second() != 59 {
		t.Errorf("sunday not at end of day: %v", sunday)
	}
	if monday.Weekday() != time.Monday {
		t.Errorf("week starts on %v, want Monday", monday.Weekday())
	}
	if sunday.Weekday() != time.Sunday {
		t.Errorf("week ends on %v, want Sunday", sunday.Weekday())
	}
}

func TestMonthRangeStrings(t *testing.T) {
	tests := []struct {
		date      string
		wantStart string
		wantEnd   string
	}{
		{"2025-06-15", "2025-06-01", "2025-06-30"},
		{"2025-02-10", "2025-02-01", "2025-02-28"},
		{"2024-02-10", "2024-02-01", "2024-02-29"}, // leap year
		{"2025-12-31", "2025-12-01", "2025-12-31"},
	}

	for _, tt := range tests {
		ref, err := time.Parse("2006-01-02", tt.date)
		if err != nil {
			t.Fatalf("bad test date %q: %v", tt.date, err)
		}

		start, end := MonthRangeStrings(ref)
		if start != tt.wantStart || end != tt.wantEnd {
			t.Errorf("MonthRangeStrings(%s) = (%s, %s), want (%s, %s)",
				tt.date, start, end, tt.wantStart, tt.wantEnd)
		}
	}
}
