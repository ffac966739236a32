package analytics

import (
	"sort"
	"time"

	"github.com/retailmetrics/sales-insights-go/internal/domain/entity"
)

// RevenueByPeriod sums the amount of every sale row per calendar
// bucket and returns the buckets ascending. Buckets with no rows do
// not appear; gaps are not filled.
func RevenueByPeriod(rows []entity.TransactionRow, period Period) ([]entity.PeriodRevenue, error) {
	if err := checkPeriod(period); err != nil {
		return nil, err
	}

	sales := FilterByOperation(rows, entity.OperationSale)
	totals := sumByBucket(sales, period)

	result := make([]entity.PeriodRevenue, 0, len(totals))
	for bucket, revenue := range totals {
		result = append(result, entity.PeriodRevenue{Bucket: bucket, Revenue: revenue})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Bucket.Before(result[j].Bucket)
	})

	return result, nil
}

// sumByBucket groups rows by their period bucket and sums the amounts.
func sumByBucket(rows []entity.TransactionRow, period Period) map[time.Time]float64 {
	totals := map[time.Time]float64{}
	for _, row := range rows {
		totals[period.Bucket(row.Date)] += row.Amount
	}
	return totals
}
