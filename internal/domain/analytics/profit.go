package analytics

import (
	"sort"
	"time"

	"github.com/retailmetrics/sales-insights-go/internal/domain/entity"
	"github.com/retailmetrics/sales-insights-go/internal/shared/types"
)

// ProfitByPeriod computes profit per calendar bucket as sale income
// minus receipt expenses. The bucket set is the union of both sides;
// a bucket present on only one side gets zero for the other. With no
// sale rows at all the calculation is meaningless and ErrNoSalesData
// is returned. With no receipt rows the statement is still produced
// (profit equals revenue) and flagged via ExpensesMissing.
func ProfitByPeriod(rows []entity.TransactionRow, period Period) (*entity.ProfitStatement, error) {
	if err := checkPeriod(period); err != nil {
		return nil, err
	}

	sales := FilterByOperation(rows, entity.OperationSale)
	if len(sales) == 0 {
		return nil, types.ErrNoSalesData
	}
	receipts := FilterByOperation(rows, entity.OperationReceipt)

	income := sumByBucket(sales, period)
	expenses := sumByBucket(receipts, period)

	buckets := map[time.Time]struct{}{}
	for b := range income {
		buckets[b] = struct{}{}
	}
	for b := range expenses {
		buckets[b] = struct{}{}
	}

	entries := make([]entity.PeriodProfit, 0, len(buckets))
	for bucket := range buckets {
		in := income[bucket]
		out := expenses[bucket]
		entries = append(entries, entity.PeriodProfit{
			Bucket:   bucket,
			Income:   in,
			Expenses: out,
			Profit:   in - out,
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Bucket.Before(entries[j].Bucket)
	})

	return &entity.ProfitStatement{
		Entries:         entries,
		ExpensesMissing: len(receipts) == 0,
	}, nil
}
