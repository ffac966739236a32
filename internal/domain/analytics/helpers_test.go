package analytics

import (
	"time"

	"github.com/retailmetrics/sales-insights-go/internal/domain/entity"
)

// saleRow and receiptRow build normalized rows the way the dataset
// loader would, with the amount derived from quantity and price.
func saleRow(sku, name, dept, date string, qty int, price float64) entity.TransactionRow {
	return testRow(sku, name, dept, date, qty, price, entity.OperationSale)
}

func receiptRow(sku, name, dept, date string, qty int, price float64) entity.TransactionRow {
	return testRow(sku, name, dept, date, qty, price, entity.OperationReceipt)
}

func testRow(sku, name, dept, date string, qty int, price float64, kind entity.OperationKind) entity.TransactionRow {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	return entity.TransactionRow{
		OperationID:  sku + "-" + date,
		Date:         d,
		StoreAddress: "Main St 1",
		StoreRegion:  "Central",
		SKU:          sku,
		ProductName:  name,
		Department:   dept,
		Quantity:     qty,
		Operation:    kind,
		UnitPrice:    price,
		Amount:       float64(qty) * price,
	}
}

func fullDataset(rows []entity.TransactionRow) *entity.Dataset {
	return &entity.Dataset{
		Rows: rows,
		Schema: entity.Schema{
			HasAmount:   true,
			HasQuantity: true,
			HasSKU:      true,
		},
	}
}

func day(date string) time.Time {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	return d
}
