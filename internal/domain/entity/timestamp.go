package entity

import "time"

// TimestampLayout is the ISO-8601 form used for server generated timestamps.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Timestamp formats t in UTC with millisecond precision.
func Timestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// Now returns the current time as a timestamp string.
func Now() string {
	return Timestamp(time.Now())
}
