package analytics

import (
	"math"
	"sort"

	"github.com/retailmetrics/sales-insights-go/internal/domain/entity"
	"github.com/retailmetrics/sales-insights-go/internal/shared/types"
)

// productTotals accumulates one side of the turnover join.
type productTotals struct {
	units  int
	amount float64
}

// AnalyzeTurnover joins per-product sale and receipt aggregates into
// turnover records and returns the topN products with the largest
// absolute unit imbalance, largest first. The join is a full outer
// join: a product seen on only one side still appears, zero-filled on
// the other. Monetary fields are rounded to two decimals.
func AnalyzeTurnover(rows []entity.TransactionRow, topN int) ([]entity.TurnoverRecord, error) {
	if topN <= 0 {
		return nil, types.ErrInvalidTopN
	}

	sold, soldOrder := groupByProduct(FilterByOperation(rows, entity.OperationSale))
	received, receivedOrder := groupByProduct(FilterByOperation(rows, entity.OperationReceipt))

	// Union of both key sets, sales side first, deterministic order.
	keys := make([]entity.ProductKey, 0, len(soldOrder)+len(receivedOrder))
	keys = append(keys, soldOrder...)
	for _, key := range receivedOrder {
		if _, ok := sold[key]; !ok {
			keys = append(keys, key)
		}
	}

	records := make([]entity.TurnoverRecord, 0, len(keys))
	for _, key := range keys {
		s := sold[key]
		p := received[key]

		rec := entity.TurnoverRecord{
			SKU:            key.SKU,
			ProductName:    key.Name,
			SoldUnits:      s.units,
			ReceivedUnits:  p.units,
			UnitDifference: s.units - p.units,
			SalesRevenue:   round2(s.amount),
			PurchaseCost:   round2(p.amount),
			Profit:         round2(s.amount - p.amount),
		}
		rec.MarginPct = marginPct(rec.Profit, rec.PurchaseCost, rec.SoldUnits)
		records = append(records, rec)
	}

	sort.SliceStable(records, func(i, j int) bool {
		di := records[i].UnitDifference
		dj := records[j].UnitDifference
		if di < 0 {
			di = -di
		}
		if dj < 0 {
			dj = -dj
		}
		return di > dj
	})

	if len(records) > topN {
		records = records[:topN]
	}
	return records, nil
}

// groupByProduct sums quantity and amount per (sku, product name),
// remembering first-encounter order for deterministic output.
func groupByProduct(rows []entity.TransactionRow) (map[entity.ProductKey]productTotals, []entity.ProductKey) {
	totals := map[entity.ProductKey]productTotals{}
	order := []entity.ProductKey{}
	for _, row := range rows {
		key := entity.ProductKey{SKU: row.SKU, Name: row.ProductName}
		t, seen := totals[key]
		if !seen {
			order = append(order, key)
		}
		t.units += row.Quantity
		t.amount += row.Amount
		totals[key] = t
	}
	return totals, order
}

// marginPct derives the profitability percentage. With zero purchase
// cost a sold product has no defined margin (nil); a product with
// neither sales nor costs keeps 0.
func marginPct(profit, purchaseCost float64, soldUnits int) *float64 {
	if purchaseCost > 0 {
		m := round2(profit / purchaseCost * 100)
		return &m
	}
	if soldUnits > 0 {
		return nil
	}
	zero := 0.0
	return &zero
}

// round2 rounds to two decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
