package analytics

import (
	"strings"

	"github.com/retailmetrics/sales-insights-go/internal/domain/entity"
)

// FilterByOperation returns the rows whose operation label matches the
// given kind, compared case-insensitively. An empty kind selects every
// row. No matches is not an error; the result is simply empty.
func FilterByOperation(rows []entity.TransactionRow, kind entity.OperationKind) []entity.TransactionRow {
	if kind == "" {
		out := make([]entity.TransactionRow, len(rows))
		copy(out, rows)
		return out
	}

	filtered := []entity.TransactionRow{}
	for _, row := range rows {
		if strings.EqualFold(string(row.Operation), string(kind)) {
			filtered = append(filtered, row)
		}
	}
	return filtered
}
