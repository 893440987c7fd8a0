package analytics

import "time"

// DayOf reduces t to its calendar day, pinned to UTC midnight. Every date
// comparison in this package goes through DayOf so that a whole snapshot is
// judged against a single day-granularity "now". Pinning to UTC matters:
// stored due dates carry UTC midnight while the wall clock is local, and
// comparing the two directly would shift items across day boundaries. Civil
// days in UTC are always 24h, so DST transition days cannot skew counts
// either.
func DayOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns whole calendar days from a's day to b's day, negative
// when b falls before a. Mixed locations are fine: only the calendar dates
// count.
func DaysBetween(a, b time.Time) int {
	return int(DayOf(b).Sub(DayOf(a)).Hours() / 24)
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
