package model

import "time"

const (
	clockLayout     = "15:04:05"
	timestampLayout = "2006-01-02 15:04:05"
)

// ClockString formats the given time (seconds since the epoch) as "HH:MM:SS"
// in the local zone.
func ClockString(seconds float64) string {
	return FromSeconds(seconds).Format(clockLayout)
}

// TimestampString formats the given time as "YYYY-MM-DD HH:MM:SS" in the
// local zone.
func TimestampString(t time.Time) string {
	return t.Local().Format(timestampLayout)
}
