package dataset

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/retailmetrics/sales-insights-go/internal/domain/entity"
	"github.com/retailmetrics/sales-insights-go/internal/domain/repository"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/charmap"
)

// requiredColumns is the fixed header contract of a sales log export.
var requiredColumns = []string{
	"operation_id",
	"date",
	"store_address",
	"store_region",
	"sku",
	"product_name",
	"department",
	"quantity",
	"operation",
	"unit_price",
}

// dateFormats accepted for the date column, day-first forms included
// because that is how the store systems export.
var dateFormats = []string{
	"2006-01-02",
	"02.01.2006",
	"02/01/2006",
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// DatasetRepositoryImpl implementa o DatasetRepository: lê o arquivo
// de origem e produz o conjunto de linhas normalizado.
type DatasetRepositoryImpl struct{}

// NewDatasetRepository cria uma nova implementação do DatasetRepository.
func NewDatasetRepository() repository.DatasetRepository {
	return &DatasetRepositoryImpl{}
}

// LoadDataset reads a `;`-separated CSV or an XLSX workbook, verifies
// the required columns, coerces the field types, drops rows with
// missing or invalid values and derives the per-row amount.
func (r *DatasetRepositoryImpl) LoadDataset(filePath string) (*entity.Dataset, error) {
	info, err := os.Stat(filePath)
	if err != nil {
		return nil, fmt.Errorf("error accessing data file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory, not a file", filePath)
	}

	var records [][]string
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".xlsx":
		records, err = readXLSX(filePath)
	default:
		records, err = readCSV(filePath)
	}
	if err != nil {
		return nil, err
	}

	return normalize(records)
}

// readCSV reads a semicolon-separated file, trying UTF-8 first and
// falling back to Windows-1251 for legacy exports.
func readCSV(filePath string) ([][]string, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading data file: %w", err)
	}

	data = bytes.TrimPrefix(data, utf8BOM)
	if !utf8.Valid(data) {
		decoded, decErr := charmap.Windows1251.NewDecoder().Bytes(data)
		if decErr != nil {
			return nil, fmt.Errorf("could not read %s: check the file encoding and separator", filePath)
		}
		data = decoded
	}

	reader := newSalesReader(bytes.NewReader(data))
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("error parsing CSV data: %w", err)
	}
	return records, nil
}

// newSalesReader configures a CSV reader for the `;`-separated sales
// log format. Ragged rows are tolerated here and dropped during
// normalization instead of failing the whole file.
func newSalesReader(r io.Reader) *csv.Reader {
	reader := csv.NewReader(r)
	reader.Comma = ';'
	reader.FieldsPerRecord = -1
	return reader
}

// readXLSX reads the first sheet of a workbook as string rows.
func readXLSX(filePath string) ([][]string, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error opening XLSX file: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("error reading XLSX sheet %q: %w", sheet, err)
	}
	return rows, nil
}

// normalize turns raw header+rows into the cleaned dataset. Rows that
// fail type coercion or miss a value are dropped, not reported as
// errors; their count is carried on the dataset.
func normalize(records [][]string) (*entity.Dataset, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("data file is empty")
	}

	colIndex := map[string]int{}
	for i, name := range records[0] {
		colIndex[strings.ToLower(strings.TrimSpace(name))] = i
	}

	missing := []string{}
	for _, col := range requiredColumns {
		if _, ok := colIndex[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required columns: %s", strings.Join(missing, ", "))
	}

	rows := []entity.TransactionRow{}
	dropped := 0
	for _, record := range records[1:] {
		row, ok := normalizeRow(record, colIndex)
		if !ok {
			dropped++
			continue
		}
		rows = append(rows, row)
	}

	return &entity.Dataset{
		Rows: rows,
		Schema: entity.Schema{
			HasAmount:   true,
			HasQuantity: true,
			HasSKU:      true,
		},
		DroppedRows: dropped,
	}, nil
}

func normalizeRow(record []string, colIndex map[string]int) (entity.TransactionRow, bool) {
	field := func(name string) (string, bool) {
		idx := colIndex[name]
		if idx >= len(record) {
			return "", false
		}
		value := strings.TrimSpace(record[idx])
		return value, value != ""
	}

	var row entity.TransactionRow
	var ok bool

	if row.OperationID, ok = field("operation_id"); !ok {
		return row, false
	}
	if row.StoreAddress, ok = field("store_address"); !ok {
		return row, false
	}
	if row.StoreRegion, ok = field("store_region"); !ok {
		return row, false
	}
	if row.SKU, ok = field("sku"); !ok {
		return row, false
	}
	if row.ProductName, ok = field("product_name"); !ok {
		return row, false
	}
	if row.Department, ok = field("department"); !ok {
		return row, false
	}

	rawDate, ok := field("date")
	if !ok {
		return row, false
	}
	date, err := parseDate(rawDate)
	if err != nil {
		return row, false
	}
	row.Date = date

	rawQuantity, ok := field("quantity")
	if !ok {
		return row, false
	}
	quantity, err := strconv.Atoi(rawQuantity)
	if err != nil || quantity < 0 {
		return row, false
	}
	row.Quantity = quantity

	rawPrice, ok := field("unit_price")
	if !ok {
		return row, false
	}
	// Prices sometimes come with a decimal comma.
	price, err := strconv.ParseFloat(strings.ReplaceAll(rawPrice, ",", "."), 64)
	if err != nil || price < 0 {
		return row, false
	}
	row.UnitPrice = price

	rawKind, ok := field("operation")
	if !ok {
		return row, false
	}
	row.Operation = normalizeKind(rawKind)

	row.Amount = float64(row.Quantity) * row.UnitPrice
	return row, true
}

// parseDate tries the accepted date layouts in order.
func parseDate(value string) (time.Time, error) {
	for _, layout := range dateFormats {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date: %q", value)
}

// normalizeKind lowers the operation label and maps the known labels,
// including the Russian ones found in legacy store exports, onto the
// canonical kinds. Unknown labels pass through lower-cased.
func normalizeKind(label string) entity.OperationKind {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "sale", "продажа":
		return entity.OperationSale
	case "receipt", "поступление":
		return entity.OperationReceipt
	default:
		return entity.OperationKind(strings.ToLower(strings.TrimSpace(label)))
	}
}
