// Package analytics is the aggregation engine of the dashboard: pure
// transformations that turn normalized transaction rows into
// time-bucketed, category-bucketed and per-product summaries. Nothing
// in this package performs I/O or keeps state between calls; every
// function leaves its input untouched.
package analytics

import (
	"time"

	"github.com/retailmetrics/sales-insights-go/internal/shared/types"
)

// Period selects the calendar granularity of time-series aggregates.
type Period string

const (
	PeriodDay   Period = "day"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
)

// Periods lists the recognized period selectors, in menu order.
func Periods() []Period {
	return []Period{PeriodDay, PeriodWeek, PeriodMonth}
}

// Valid reports whether p is one of the recognized selectors.
func (p Period) Valid() bool {
	switch p {
	case PeriodDay, PeriodWeek, PeriodMonth:
		return true
	}
	return false
}

// Label returns the display form of a bucket start for this period.
func (p Period) Label(bucket time.Time) string {
	if p == PeriodMonth {
		return bucket.Format("2006-01")
	}
	return bucket.Format("2006-01-02")
}

// Bucket maps a timestamp to the start of its calendar bucket: the day
// itself, the Monday starting its week, or the first of its month.
// All buckets are midnight UTC so they compare and sort as plain dates.
func (p Period) Bucket(t time.Time) time.Time {
	y, m, d := t.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	switch p {
	case PeriodWeek:
		// Weekday() has Sunday == 0; shift so Monday == 0.
		offset := (int(day.Weekday()) + 6) % 7
		return day.AddDate(0, 0, -offset)
	case PeriodMonth:
		return time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
	default:
		return day
	}
}

// checkPeriod converts an unrecognized selector into the sentinel the
// aggregators report to their caller.
func checkPeriod(p Period) error {
	if !p.Valid() {
		return types.ErrUnknownPeriod
	}
	return nil
}
