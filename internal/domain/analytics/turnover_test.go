package analytics

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retailmetrics/sales-insights-go/internal/domain/entity"
	"github.com/retailmetrics/sales-insights-go/internal/shared/types"
)

func TestAnalyzeTurnoverSingleProduct(t *testing.T) {
	rows := []entity.TransactionRow{
		saleRow("A1", "Coffee", "Grocery", "2024-01-01", 1, 100),
		saleRow("A1", "Coffee", "Grocery", "2024-01-02", 2, 100),
		receiptRow("A1", "Coffee", "Grocery", "2024-01-01", 10, 5),
	}

	got, err := AnalyzeTurnover(rows, 10)
	require.NoError(t, err)
	require.Len(t, got, 1)

	rec := got[0]
	assert.Equal(t, "A1", rec.SKU)
	assert.Equal(t, "Coffee", rec.ProductName)
	assert.Equal(t, 3, rec.SoldUnits)
	assert.Equal(t, 10, rec.ReceivedUnits)
	assert.Equal(t, -7, rec.UnitDifference)
	assert.Equal(t, 300.0, rec.SalesRevenue)
	assert.Equal(t, 50.0, rec.PurchaseCost)
	assert.Equal(t, 250.0, rec.Profit)
	require.NotNil(t, rec.MarginPct)
	assert.Equal(t, 500.0, *rec.MarginPct)
}

func TestAnalyzeTurnoverOuterJoin(t *testing.T) {
	rows := []entity.TransactionRow{
		// Sold but never received.
		saleRow("A1", "Coffee", "Grocery", "2024-01-01", 2, 50),
		// Received but never sold.
		receiptRow("B2", "Tea", "Grocery", "2024-01-01", 5, 4),
	}

	got, err := AnalyzeTurnover(rows, 10)
	require.NoError(t, err)
	require.Len(t, got, 2)

	byName := map[string]entity.TurnoverRecord{}
	for _, r := range got {
		byName[r.ProductName] = r
	}

	coffee := byName["Coffee"]
	assert.Equal(t, 2, coffee.SoldUnits)
	assert.Equal(t, 0, coffee.ReceivedUnits)
	assert.Equal(t, 2, coffee.UnitDifference)
	assert.Equal(t, 0.0, coffee.PurchaseCost)
	assert.Equal(t, 100.0, coffee.Profit)
	assert.Nil(t, coffee.MarginPct, "no purchase cost means no defined margin")

	tea := byName["Tea"]
	assert.Equal(t, 0, tea.SoldUnits)
	assert.Equal(t, 5, tea.ReceivedUnits)
	assert.Equal(t, -5, tea.UnitDifference)
	assert.Equal(t, 0.0, tea.SalesRevenue)
	assert.Equal(t, 20.0, tea.PurchaseCost)
	assert.Equal(t, -20.0, tea.Profit)
	require.NotNil(t, tea.MarginPct)
	assert.Equal(t, -100.0, *tea.MarginPct)
}

func TestAnalyzeTurnoverZeroActivityMargin(t *testing.T) {
	rows := []entity.TransactionRow{
		saleRow("A1", "Coffee", "Grocery", "2024-01-01", 0, 50),
	}

	got, err := AnalyzeTurnover(rows, 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.NotNil(t, got[0].MarginPct)
	assert.Equal(t, 0.0, *got[0].MarginPct)
}

func TestAnalyzeTurnoverSortedByAbsoluteImbalance(t *testing.T) {
	rows := []entity.TransactionRow{
		saleRow("A1", "Coffee", "Grocery", "2024-01-01", 2, 10), // diff +2
		receiptRow("B2", "Tea", "Grocery", "2024-01-01", 9, 3),  // diff -9
		saleRow("C3", "Sugar", "Grocery", "2024-01-01", 5, 8),   // diff +5
	}

	got, err := AnalyzeTurnover(rows, 10)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "Tea", got[0].ProductName)
	assert.Equal(t, "Sugar", got[1].ProductName)
	assert.Equal(t, "Coffee", got[2].ProductName)
}

func TestAnalyzeTurnoverTruncation(t *testing.T) {
	rows := []entity.TransactionRow{
		saleRow("A1", "Coffee", "Grocery", "2024-01-01", 1, 10),
		saleRow("B2", "Tea", "Grocery", "2024-01-01", 2, 10),
		saleRow("C3", "Sugar", "Grocery", "2024-01-01", 3, 10),
	}

	got, err := AnalyzeTurnover(rows, 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Sugar", got[0].ProductName)
	assert.Equal(t, "Tea", got[1].ProductName)
}

func TestAnalyzeTurnoverRounding(t *testing.T) {
	rows := []entity.TransactionRow{
		saleRow("A1", "Coffee", "Grocery", "2024-01-01", 3, 0.333), // 0.999
		receiptRow("A1", "Coffee", "Grocery", "2024-01-01", 1, 0.295),
	}

	got, err := AnalyzeTurnover(rows, 10)
	require.NoError(t, err)
	require.Len(t, got, 1)

	rec := got[0]
	assert.Equal(t, 1.0, rec.SalesRevenue)
	assert.Equal(t, 0.3, rec.PurchaseCost)
	// Profit is rounded from the raw totals, not the rounded parts.
	assert.Equal(t, 0.7, rec.Profit)
}

func TestAnalyzeTurnoverInvalidTopN(t *testing.T) {
	_, err := AnalyzeTurnover(nil, 0)
	assert.True(t, errors.Is(err, types.ErrInvalidTopN))
}

func TestAnalyzeTurnoverIdempotent(t *testing.T) {
	rows := []entity.TransactionRow{
		saleRow("A1", "Coffee", "Grocery", "2024-01-01", 2, 50),
		receiptRow("A1", "Coffee", "Grocery", "2024-01-01", 5, 10),
		saleRow("B2", "Tea", "Grocery", "2024-01-02", 1, 30),
	}
	snapshot := make([]entity.TransactionRow, len(rows))
	copy(snapshot, rows)

	first, err := AnalyzeTurnover(rows, 10)
	require.NoError(t, err)
	second, err := AnalyzeTurnover(rows, 10)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, snapshot, rows, "input rows must not be mutated")
}
