package entity

// TurnoverRecord joins sales and receipts of one product. A product
// seen on only one side carries zeros for the other side's measures.
type TurnoverRecord struct {
	SKU            string  `json:"sku"`
	ProductName    string  `json:"product_name"`
	SoldUnits      int     `json:"sold_units"`
	ReceivedUnits  int     `json:"received_units"`
	UnitDifference int     `json:"unit_difference"`
	SalesRevenue   float64 `json:"sales_revenue"`
	PurchaseCost   float64 `json:"purchase_cost"`
	Profit         float64 `json:"profit"`
	// MarginPct is nil when the product was sold but never purchased:
	// a return on zero cost has no meaning. When there were neither
	// sales nor costs it stays at 0.
	MarginPct *float64 `json:"margin_pct"`
}

// TurnoverSummary holds the scalar statistics of an insight bundle.
type TurnoverSummary struct {
	TotalRevenue float64 `json:"total_revenue"`
	TotalCosts   float64 `json:"total_costs"`
	TotalProfit  float64 `json:"total_profit"`
	// AvgMarginPct averages the defined margins only; nil when no
	// record has a defined margin.
	AvgMarginPct *float64 `json:"avg_margin_pct"`
	DeficitCount int      `json:"deficit_count"`
	ExcessCount  int      `json:"excess_count"`
	TotalItems   int      `json:"total_items"`
}

// InventoryInsights is a read-only view derived from a set of turnover
// records: imbalance candidates, profitability extremes and summary
// statistics. It never aliases or mutates its input.
type InventoryInsights struct {
	DeficitCandidates []TurnoverRecord `json:"deficit_candidates"`
	ExcessCandidates  []TurnoverRecord `json:"excess_candidates"`
	MostProfitable    []TurnoverRecord `json:"most_profitable"`
	LeastProfitable   []TurnoverRecord `json:"least_profitable"`
	Summary           TurnoverSummary  `json:"summary"`
}
