package entity

import "time"

// OperationKind is the normalized, lower-case label of a transaction
// operation. Labels outside the two known kinds are preserved as-is so
// filters can still match them case-insensitively.
type OperationKind string

const (
	OperationSale    OperationKind = "sale"
	OperationReceipt OperationKind = "receipt"
)

// TransactionRow is a single normalized record of the sales log.
// After normalization Date, Quantity and UnitPrice are always present
// and non-negative; rows that fail those checks never reach this type.
type TransactionRow struct {
	OperationID  string        `json:"operation_id"`
	Date         time.Time     `json:"date"`
	StoreAddress string        `json:"store_address"`
	StoreRegion  string        `json:"store_region"`
	SKU          string        `json:"sku"`
	ProductName  string        `json:"product_name"`
	Department   string        `json:"department"`
	Quantity     int           `json:"quantity"`
	Operation    OperationKind `json:"operation"`
	UnitPrice    float64       `json:"unit_price"`
	// Amount is Quantity * UnitPrice, derived during normalization.
	Amount float64 `json:"amount"`
}

// Schema records which measure columns the source file actually
// carried. The loader decides this once at construction; aggregators
// consult it instead of probing individual rows.
type Schema struct {
	HasAmount   bool `json:"has_amount"`
	HasQuantity bool `json:"has_quantity"`
	HasSKU      bool `json:"has_sku"`
}

// Dataset is the cleaned row set produced by the loader, together with
// its schema capabilities and the number of source rows dropped during
// normalization.
type Dataset struct {
	Rows        []TransactionRow `json:"rows"`
	Schema      Schema           `json:"schema"`
	DroppedRows int              `json:"dropped_rows"`
}

// HasDate reports whether at least one row falls on the given calendar
// date. Used to validate an exact-date filter before ranking.
func (d *Dataset) HasDate(date time.Time) bool {
	y, m, day := date.Date()
	for _, row := range d.Rows {
		ry, rm, rd := row.Date.Date()
		if ry == y && rm == m && rd == day {
			return true
		}
	}
	return false
}

// ProductKey identifies a product across sales and receipts.
type ProductKey struct {
	SKU  string `json:"sku"`
	Name string `json:"name"`
}
