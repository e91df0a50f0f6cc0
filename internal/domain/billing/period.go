package billing

import "time"

// CurrentPeriod returns the half-open [start, end) range covering the month
// to date. The cost source rejects start == end, so on the 1st of a month
// the range falls back to the entire previous month: step one day back to
// land in it, then take that month's first day. start < end always holds,
// including on January 1st where the range rolls into December of the
// previous year.
func CurrentPeriod(today time.Time) (time.Time, time.Time) {
	today = truncateToDate(today)
	start := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
	if start.Equal(today) {
		prev := today.AddDate(0, 0, -1)
		start = time.Date(prev.Year(), prev.Month(), 1, 0, 0, 0, 0, time.UTC)
	}
	return start, today
}

// ComparisonPeriod returns the single most recent full day, [yesterday, today).
func ComparisonPeriod(today time.Time) (time.Time, time.Time) {
	today = truncateToDate(today)
	return today.AddDate(0, 0, -1), today
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
