package analytics

import (
	"sort"
	"time"

	"github.com/retailmetrics/sales-insights-go/internal/domain/entity"
	"github.com/retailmetrics/sales-insights-go/internal/shared/types"
)

// Metric selects which summed value a product ranking is built on.
type Metric string

const (
	MetricQuantity Metric = "quantity"
	MetricRevenue  Metric = "revenue"
)

// Valid reports whether m is one of the recognized metrics.
func (m Metric) Valid() bool {
	return m == MetricQuantity || m == MetricRevenue
}

// TopProducts ranks products by the summed metric over sale rows,
// descending, truncated to the n largest. A non-nil date restricts the
// input to rows on exactly that calendar date; callers should confirm
// the date occurs in the data beforehand, otherwise the result is
// empty. Ties keep their first-encountered order.
func TopProducts(rows []entity.TransactionRow, n int, metric Metric, date *time.Time) ([]entity.ProductRank, error) {
	if n <= 0 {
		return nil, types.ErrInvalidTopN
	}
	if !metric.Valid() {
		return nil, types.ErrUnknownMetric
	}

	sales := FilterByOperation(rows, entity.OperationSale)
	if date != nil {
		y, m, d := date.Date()
		onDate := sales[:0]
		for _, row := range sales {
			ry, rm, rd := row.Date.Date()
			if ry == y && rm == m && rd == d {
				onDate = append(onDate, row)
			}
		}
		sales = onDate
	}

	totals := map[string]float64{}
	order := []string{}
	for _, row := range sales {
		if _, seen := totals[row.ProductName]; !seen {
			order = append(order, row.ProductName)
		}
		switch metric {
		case MetricQuantity:
			totals[row.ProductName] += float64(row.Quantity)
		case MetricRevenue:
			totals[row.ProductName] += row.Amount
		}
	}

	ranking := make([]entity.ProductRank, 0, len(order))
	for _, name := range order {
		ranking = append(ranking, entity.ProductRank{ProductName: name, Value: totals[name]})
	}
	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].Value > ranking[j].Value
	})

	if len(ranking) > n {
		ranking = ranking[:n]
	}
	return ranking, nil
}
