package entity

import "time"

// PeriodRevenue is the revenue summed over one time bucket.
type PeriodRevenue struct {
	Bucket  time.Time `json:"bucket"`
	Revenue float64   `json:"revenue"`
}

// PeriodProfit holds income, expenses and the derived profit for one
// time bucket. Buckets missing on one side are zero-filled.
type PeriodProfit struct {
	Bucket   time.Time `json:"bucket"`
	Income   float64   `json:"income"`
	Expenses float64   `json:"expenses"`
	Profit   float64   `json:"profit"`
}

// ProfitStatement is the full profit-by-period result.
// ExpensesMissing is set when the input contained no receipt rows at
// all, in which case profit equals revenue and the caller should warn.
type ProfitStatement struct {
	Entries         []PeriodProfit `json:"entries"`
	ExpensesMissing bool           `json:"expenses_missing"`
}

// CategorySummary aggregates sale rows of one department.
type CategorySummary struct {
	Department     string  `json:"department"`
	Revenue        float64 `json:"revenue"`
	UnitsSold      int     `json:"units_sold"`
	UniqueProducts int     `json:"unique_products"`
}

// CategoryReport carries the per-department summaries plus the measure
// columns the source schema supports; columns without a source field
// are omitted from display and export.
type CategoryReport struct {
	Summaries         []CategorySummary `json:"summaries"`
	HasRevenue        bool              `json:"has_revenue"`
	HasUnitsSold      bool              `json:"has_units_sold"`
	HasUniqueProducts bool              `json:"has_unique_products"`
}

// ProductRank is one entry of a top-N product ranking. Value is the
// summed metric (units or revenue) chosen by the caller.
type ProductRank struct {
	ProductName string  `json:"product_name"`
	Value       float64 `json:"value"`
}

// ReportDocument is the presentation-neutral form of a computed report:
// an ordered table plus the typed records it was rendered from. Every
// exporter consumes this shape.
type ReportDocument struct {
	Title       string     `json:"title"`
	GeneratedAt time.Time  `json:"generated_at"`
	Headers     []string   `json:"headers"`
	Rows        [][]string `json:"rows"`
	Records     any        `json:"records"`
}
