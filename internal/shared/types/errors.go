package types

import "errors"

var (
	// ErrNoSalesData signals that an aggregator found no sale rows to
	// work with. Not a failure of the process, but the caller must
	// check it before using the result.
	ErrNoSalesData = errors.New("no sales data available")

	// ErrUnknownPeriod is returned for a period selector outside
	// day/week/month.
	ErrUnknownPeriod = errors.New("unknown period: expected day, week or month")

	// ErrUnknownMetric is returned for a ranking metric outside
	// quantity/revenue.
	ErrUnknownMetric = errors.New("unknown metric: expected quantity or revenue")

	// ErrInvalidTopN marks a contract violation: N must be positive.
	ErrInvalidTopN = errors.New("top-N must be a positive integer")

	// ErrUnknownReport is returned when the requested report name is
	// not one of the supported reports.
	ErrUnknownReport = errors.New("unknown report: expected revenue, profit, category, top or turnover")
)
