package pricing

import (
	"math"
	"time"
)

// Date returns midnight UTC of the given calendar day. Using it for
// Params dates keeps equal days equal as map keys.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// DaysBetween counts calendar days from start to end (negative if end is earlier).
func DaysBetween(start, end time.Time) int {
	s := Date(start.Year(), start.Month(), start.Day())
	e := Date(end.Year(), end.Month(), end.Day())
	return int(math.Round(e.Sub(s).Hours() / 24))
}

// YearFraction is the Actual/365 (Fixed) day count.
func YearFraction(start, end time.Time) float64 {
	return float64(DaysBetween(start, end)) / 365.0
}

// AddMonths moves t by n calendar months, clamping to the last day of the
// target month (Jan 31 + 1M = Feb 28/29) instead of overflowing into the next.
func AddMonths(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	total := int(m) - 1 + n
	y += total / 12
	mm := total % 12
	if mm < 0 {
		mm += 12
		y--
	}
	month := time.Month(mm + 1)
	if last := daysIn(y, month); d > last {
		d = last
	}
	return time.Date(y, month, d, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
