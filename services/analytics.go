package services

import (
	"time"
)

// ResolveListenWindow turns a range selector into an inclusive
// [start, end] window for listen queries.
//
// When month (1-12) and year are both supplied the window is that full
// calendar month in local time, the last day computed as day 0 of the
// following month. Otherwise the window ends today at 23:59:59.999 and
// starts 0/6/29/89 days earlier at 00:00:00.000 for today/7d/30d/90d.
// Unrecognized range strings fall back to the 30-day window.
func ResolveListenWindow(rangeStr string, month, year int, now time.Time) (time.Time, time.Time) {
	const lastMilli = 999 * int(time.Millisecond)

	if month >= 1 && month <= 12 && year > 0 {
		start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
		end := time.Date(year, time.Month(month)+1, 0, 23, 59, 59, lastMilli, time.Local)
		return start, end
	}

	days := 29
	switch rangeStr {
	case "today":
		days = 0
	case "7d":
		days = 6
	case "30d":
		days = 29
	case "90d":
		days = 89
	}

	end := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, lastMilli, now.Location())
	s := end.AddDate(0, 0, -days)
	start := time.Date(s.Year(), s.Month(), s.Day(), 0, 0, 0, 0, now.Location())
	return start, end
}

// DayCount is one chart bucket: listens on a single calendar day.
type DayCount struct {
	Day   string `json:"day"`
	Count int    `json:"count"`
}

// BucketByDay counts timestamps per calendar day across the whole
// window, including zero-listen days so charts have a continuous axis.
func BucketByDay(times []time.Time, start, end time.Time) []DayCount {
	counts := make(map[string]int, len(times))
	for _, t := range times {
		counts[t.In(start.Location()).Format("2006-01-02")]++
	}

	var buckets []DayCount
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		day := d.Format("2006-01-02")
		buckets = append(buckets, DayCount{Day: day, Count: counts[day]})
	}
	return buckets
}
