package services

import "time"

const dateLayout = "2006-01-02"

// WeekRange returns the Monday 00:00:00 and Sunday 23:59:59 bounding t's
// week. Sunday counts as day 7 of the week it ends, not day 0 of the next.
// Every caller that needs week boundaries goes through here.
func WeekRange(t time.Time) (monday, sunday time.Time) {
	day := int(t.Weekday())
	offset := 1 - day
	if day == 0 {
		offset = -6
	}

	monday = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location()).AddDate(0, 0, offset)
	sunday = monday.AddDate(0, 0, 6).Add(23*time.Hour + 59*time.Minute + 59*time.Second)
	return monday, sunday
}

// WeekRangeStrings returns the week bounds as yyyy-MM-dd strings, the form
// takings and weekly cost rows are keyed by.
func WeekRangeStrings(t time.Time) (weekStart, weekEnd string) {
	monday, sunday := WeekRange(t)
	return monday.Format(dateLayout), sunday.Format(dateLayout)
}

// MonthRange returns the first and last day of t's month.
func MonthRange(t time.Time) (first, last time.Time) {
	first = time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	last = first.AddDate(0, 1, -1).Add(23*time.Hour + 59*time.Minute + 59*time.Second)
	return first, last
}

// MonthRangeStrings returns the month bounds as yyyy-MM-dd strings.
func MonthRangeStrings(t time.Time) (monthStart, monthEnd string) {
	first, last := MonthRange(t)
	return first.Format(dateLayout), last.Format(dateLayout)
}
