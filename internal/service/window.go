package service

import (
	"time"

	"github.com/finsight/finsight-backend/internal/domain"
)

// ResolveWindow maps a report period and a reference instant to the
// half-open [start, end) window it covers. The result is deterministic
// for a given now, and end is always strictly after start.
func ResolveWindow(period domain.ReportPeriod, now time.Time) (domain.TimeWindow, error) {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch period {
	case domain.ReportPeriodWeekly:
		// Most recent Monday at or before now.
		offset := (int(day.Weekday()) + 6) % 7
		start := day.AddDate(0, 0, -offset)
		return domain.TimeWindow{Start: start, End: start.AddDate(0, 0, 7)}, nil

	case domain.ReportPeriodMonthly:
		// Calendar arithmetic, not a fixed day count: months of 28-31
		// days all resolve to exact boundaries.
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return domain.TimeWindow{Start: start, End: start.AddDate(0, 1, 0)}, nil

	case domain.ReportPeriodYearly:
		start := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location())
		return domain.TimeWindow{Start: start, End: start.AddDate(1, 0, 0)}, nil

	default:
		return domain.TimeWindow{}, domain.ErrInvalidPeriod
	}
}
