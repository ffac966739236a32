package repository

import (
	"github.com/retailmetrics/sales-insights-go/internal/domain/entity"
)

// DatasetRepository is the row-normalizer port: it parses a source
// file, coerces types, drops incomplete rows and derives per-row
// amounts, producing the cleaned dataset the aggregators consume.
type DatasetRepository interface {
	LoadDataset(filePath string) (*entity.Dataset, error)
}
