package analytics

import (
	"fmt"
	"time"
)

var frenchMonths = [...]string{
	"janv.", "févr.", "mars", "avr.", "mai", "juin",
	"juil.", "août", "sept.", "oct.", "nov.", "déc.",
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return startOfDay(t).AddDate(0, 0, 1).Add(-time.Millisecond)
}

// startOfWeek returns the preceding Sunday at midnight.
func startOfWeek(t time.Time) time.Time {
	day := startOfDay(t)
	return day.AddDate(0, 0, -int(day.Weekday()))
}

func endOfWeek(t time.Time) time.Time {
	return startOfWeek(t).AddDate(0, 0, 7).Add(-time.Millisecond)
}

func startOfMonth(t time.Time) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, t.Location())
}

func endOfMonth(t time.Time) time.Time {
	return startOfMonth(t).AddDate(0, 1, 0).Add(-time.Millisecond)
}

// subMonths moves back n calendar months, clamping to the last day of the
// target month.
func subMonths(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	first := time.Date(y, m, 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location()).AddDate(0, -n, 0)
	last := endOfMonth(first).Day()
	if d > last {
		d = last
	}
	return time.Date(first.Year(), first.Month(), d, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// weekOfYear numbers Sunday-based weeks, week 1 being the one holding January 1st.
func weekOfYear(t time.Time) int {
	week := startOfWeek(t)
	nextYear := time.Date(t.Year()+1, time.January, 1, 0, 0, 0, 0, t.Location())
	if !nextYear.After(week.AddDate(0, 0, 6)) {
		return 1
	}
	jan1 := time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
	return (t.YearDay()-1+int(jan1.Weekday()))/7 + 1
}

func dayLabel(t time.Time) string {
	return fmt.Sprintf("%02d %s", t.Day(), frenchMonths[t.Month()-1])
}

func weekLabel(t time.Time) string {
	return fmt.Sprintf("Sem %d", weekOfYear(t))
}

func monthLabel(t time.Time) string {
	return frenchMonths[t.Month()-1]
}
