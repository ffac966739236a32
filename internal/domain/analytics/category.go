package analytics

import (
	"sort"

	"github.com/retailmetrics/sales-insights-go/internal/domain/entity"
)

// SalesByCategory groups the dataset's sale rows by department and
// sums revenue, units sold and the count of distinct SKUs per
// department, ordered alphabetically. Measures whose source column is
// absent from the schema are flagged off in the report so downstream
// rendering skips them. An empty input yields an empty report.
func SalesByCategory(ds *entity.Dataset) *entity.CategoryReport {
	sales := FilterByOperation(ds.Rows, entity.OperationSale)

	type bucket struct {
		revenue float64
		units   int
		skus    map[string]struct{}
	}

	byDept := map[string]*bucket{}
	for _, row := range sales {
		b := byDept[row.Department]
		if b == nil {
			b = &bucket{skus: map[string]struct{}{}}
			byDept[row.Department] = b
		}
		b.revenue += row.Amount
		b.units += row.Quantity
		b.skus[row.SKU] = struct{}{}
	}

	departments := make([]string, 0, len(byDept))
	for dept := range byDept {
		departments = append(departments, dept)
	}
	sort.Strings(departments)

	summaries := make([]entity.CategorySummary, 0, len(departments))
	for _, dept := range departments {
		b := byDept[dept]
		summaries = append(summaries, entity.CategorySummary{
			Department:     dept,
			Revenue:        b.revenue,
			UnitsSold:      b.units,
			UniqueProducts: len(b.skus),
		})
	}

	return &entity.CategoryReport{
		Summaries:         summaries,
		HasRevenue:        ds.Schema.HasAmount,
		HasUnitsSold:      ds.Schema.HasQuantity,
		HasUniqueProducts: ds.Schema.HasSKU,
	}
}
