package util

import "time"

// MonthLabel formats a point in time as its "YYYY-MM" calendar month
// label.
func MonthLabel(t time.Time) string {
	return t.Format("2006-01")
}

// TrailingMonthLabels returns the labels of the n calendar months up to
// and including the month of now, oldest first. Labels are derived by
// true calendar arithmetic, so month lengths never shift the result.
func TrailingMonthLabels(now time.Time, n int) []string {
	labels := make([]string, 0, n)
	for i := n - 1; i >= 0; i-- {
		month := time.Date(now.Year(), now.Month()-time.Month(i), 1, 0, 0, 0, 0, now.Location())
		labels = append(labels, MonthLabel(month))
	}
	return labels
}
