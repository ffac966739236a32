package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/retailmetrics/sales-insights-go/internal/domain/entity"
)

func TestFilterByOperation(t *testing.T) {
	rows := []entity.TransactionRow{
		saleRow("A1", "Coffee", "Grocery", "2024-01-01", 2, 50),
		receiptRow("A1", "Coffee", "Grocery", "2024-01-01", 10, 5),
		saleRow("B2", "Tea", "Grocery", "2024-01-02", 1, 30),
	}

	sales := FilterByOperation(rows, entity.OperationSale)
	assert.Len(t, sales, 2)
	for _, r := range sales {
		assert.Equal(t, entity.OperationSale, r.Operation)
	}

	receipts := FilterByOperation(rows, entity.OperationReceipt)
	assert.Len(t, receipts, 1)
}

func TestFilterByOperationCaseInsensitive(t *testing.T) {
	rows := []entity.TransactionRow{
		saleRow("A1", "Coffee", "Grocery", "2024-01-01", 2, 50),
	}
	rows[0].Operation = entity.OperationKind("SALE")

	assert.Len(t, FilterByOperation(rows, entity.OperationSale), 1)
}

func TestFilterByOperationEmptyKindReturnsCopy(t *testing.T) {
	rows := []entity.TransactionRow{
		saleRow("A1", "Coffee", "Grocery", "2024-01-01", 2, 50),
		receiptRow("B2", "Tea", "Grocery", "2024-01-02", 1, 30),
	}

	out := FilterByOperation(rows, "")
	assert.Equal(t, rows, out)

	// A copy, not the same backing array.
	out[0].SKU = "mutated"
	assert.Equal(t, "A1", rows[0].SKU)
}

func TestFilterByOperationNoMatches(t *testing.T) {
	rows := []entity.TransactionRow{
		receiptRow("A1", "Coffee", "Grocery", "2024-01-01", 10, 5),
	}
	out := FilterByOperation(rows, entity.OperationSale)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}
