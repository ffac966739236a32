package repository

import (
	"github.com/retailmetrics/sales-insights-go/internal/domain/entity"
)

// ExportRepository writes a computed report document to disk in one of
// the supported formats and returns the absolute path of the file.
type ExportRepository interface {
	ExportToCSV(doc *entity.ReportDocument, filename, outputDir string) (string, error)
	ExportToJSON(doc *entity.ReportDocument, filename, outputDir string) (string, error)
	ExportToPDF(doc *entity.ReportDocument, filename, outputDir string) (string, error)
	ExportToXLSX(doc *entity.ReportDocument, filename, outputDir string) (string, error)
}
