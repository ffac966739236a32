package usecase

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retailmetrics/sales-insights-go/internal/domain/entity"
	"github.com/retailmetrics/sales-insights-go/internal/shared/types"
)

// fakeConsole captura toda a saída para inspeção nos testes.
type fakeConsole struct {
	output   strings.Builder
	warnings []string
	errors   []string
	success  []string
}

func (c *fakeConsole) Print(a ...interface{})                 { c.output.WriteString(fmt.Sprint(a...)) }
func (c *fakeConsole) Printf(format string, a ...interface{}) { fmt.Fprintf(&c.output, format, a...) }
func (c *fakeConsole) Println(a ...interface{})               { fmt.Fprintln(&c.output, a...) }

func (c *fakeConsole) LogInfo(format string, a ...interface{}) {}
func (c *fakeConsole) LogWarning(format string, a ...interface{}) {
	c.warnings = append(c.warnings, fmt.Sprintf(format, a...))
}
func (c *fakeConsole) LogError(format string, a ...interface{}) {
	c.errors = append(c.errors, fmt.Sprintf(format, a...))
}
func (c *fakeConsole) LogSuccess(format string, a ...interface{}) {
	c.success = append(c.success, fmt.Sprintf(format, a...))
}

func (c *fakeConsole) Status(message string) types.StatusHandle { return fakeStatus{} }

func (c *fakeConsole) CreateTable() types.TableInterface                                { return &fakeTable{} }
func (c *fakeConsole) DisplayPeriodBars(title string, points []types.ChartPoint)        {}
func (c *fakeConsole) DisplayRankingBars(title, unit string, points []types.ChartPoint) {}

func (c *fakeConsole) PromptSelect(label string, options []string) (string, error) {
	return "", errors.New("not interactive")
}
func (c *fakeConsole) PromptText(label string) (string, error) {
	return "", errors.New("not interactive")
}
func (c *fakeConsole) PromptConfirm(label string) (bool, error) {
	return false, errors.New("not interactive")
}

type fakeStatus struct{}

func (fakeStatus) Update(message string) {}
func (fakeStatus) Stop()                 {}

// fakeTable renders cells as plain `|`-separated lines.
type fakeTable struct {
	headers []string
	rows    [][]string
}

func (t *fakeTable) AddColumn(name string, options ...interface{}) {
	t.headers = append(t.headers, name)
}

func (t *fakeTable) AddRow(cells ...interface{}) {
	row := make([]string, len(cells))
	for i, cell := range cells {
		row[i] = fmt.Sprint(cell)
	}
	t.rows = append(t.rows, row)
}

func (t *fakeTable) Render() string {
	var b strings.Builder
	b.WriteString(strings.Join(t.headers, "|"))
	b.WriteString("\n")
	for _, row := range t.rows {
		b.WriteString(strings.Join(row, "|"))
		b.WriteString("\n")
	}
	return b.String()
}

// fakeExportRepo records export calls instead of writing files.
type fakeExportRepo struct {
	calls []string
	fail  bool
}

func (r *fakeExportRepo) export(format string) (string, error) {
	r.calls = append(r.calls, format)
	if r.fail {
		return "", errors.New("disk full")
	}
	return "/tmp/out." + format, nil
}

func (r *fakeExportRepo) ExportToCSV(doc *entity.ReportDocument, filename, outputDir string) (string, error) {
	return r.export("csv")
}
func (r *fakeExportRepo) ExportToJSON(doc *entity.ReportDocument, filename, outputDir string) (string, error) {
	return r.export("json")
}
func (r *fakeExportRepo) ExportToPDF(doc *entity.ReportDocument, filename, outputDir string) (string, error) {
	return r.export("pdf")
}
func (r *fakeExportRepo) ExportToXLSX(doc *entity.ReportDocument, filename, outputDir string) (string, error) {
	return r.export("xlsx")
}

func testRow(sku, name, dept, date string, qty int, price float64, kind entity.OperationKind) entity.TransactionRow {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	return entity.TransactionRow{
		OperationID: sku + "-" + date,
		Date:        d,
		SKU:         sku,
		ProductName: name,
		Department:  dept,
		Quantity:    qty,
		Operation:   kind,
		UnitPrice:   price,
		Amount:      float64(qty) * price,
	}
}

func testDataset() *entity.Dataset {
	return &entity.Dataset{
		Rows: []entity.TransactionRow{
			testRow("A1", "Coffee", "Grocery", "2024-01-01", 1, 100, entity.OperationSale),
			testRow("A1", "Coffee", "Grocery", "2024-01-02", 2, 100, entity.OperationSale),
			testRow("A1", "Coffee", "Grocery", "2024-01-01", 10, 5, entity.OperationReceipt),
			testRow("B2", "Tea", "Grocery", "2024-01-02", 4, 30, entity.OperationSale),
		},
		Schema: entity.Schema{HasAmount: true, HasQuantity: true, HasSKU: true},
	}
}

func newTestUseCase() (*ReportUseCase, *fakeConsole, *fakeExportRepo) {
	console := &fakeConsole{}
	exportRepo := &fakeExportRepo{}
	uc := NewReportUseCase(nil, exportRepo, nil, console)
	return uc, console, exportRepo
}

func quietArgs(report string) *types.CLIArgs {
	return &types.CLIArgs{Report: report, Period: "day", TopN: 10, Metric: "quantity", NoChart: true}
}

func TestRunReportUnknownReport(t *testing.T) {
	uc, _, _ := newTestUseCase()
	err := uc.RunReport(testDataset(), quietArgs("velocity"))
	assert.True(t, errors.Is(err, types.ErrUnknownReport))
}

func TestRunReportRevenue(t *testing.T) {
	uc, console, _ := newTestUseCase()
	require.NoError(t, uc.RunReport(testDataset(), quietArgs(ReportRevenue)))

	out := console.output.String()
	assert.Contains(t, out, "2024-01-01")
	assert.Contains(t, out, "2024-01-02")
	assert.Contains(t, out, "Total revenue: 420.00")
}

func TestRunReportProfit(t *testing.T) {
	uc, console, _ := newTestUseCase()
	require.NoError(t, uc.RunReport(testDataset(), quietArgs(ReportProfit)))

	out := console.output.String()
	assert.Contains(t, out, "Profit statistics:")
	assert.Contains(t, out, "Total profit:   370.00")
	assert.Empty(t, console.warnings)
}

func TestRunReportProfitWithoutReceipts(t *testing.T) {
	uc, console, _ := newTestUseCase()
	ds := testDataset()
	ds.Rows = ds.Rows[:2] // sales only

	require.NoError(t, uc.RunReport(ds, quietArgs(ReportProfit)))
	require.Len(t, console.warnings, 1)
	assert.Contains(t, console.warnings[0], "No receipt data found")
}

func TestRunReportProfitWithoutSales(t *testing.T) {
	uc, console, _ := newTestUseCase()
	ds := testDataset()
	ds.Rows = ds.Rows[2:3] // one receipt row

	require.NoError(t, uc.RunReport(ds, quietArgs(ReportProfit)))
	require.Len(t, console.warnings, 1)
	assert.Contains(t, console.warnings[0], "No sales data")
}

func TestRunReportCategory(t *testing.T) {
	uc, console, _ := newTestUseCase()
	require.NoError(t, uc.RunReport(testDataset(), quietArgs(ReportCategory)))

	out := console.output.String()
	assert.Contains(t, out, "Grocery")
	assert.Contains(t, out, "Total revenue: 420.00")
	assert.Contains(t, out, "Top departments by revenue:")
}

func TestRunReportTopWithDateFilter(t *testing.T) {
	uc, console, _ := newTestUseCase()
	args := quietArgs(ReportTop)
	args.Date = "2024-01-02"

	require.NoError(t, uc.RunReport(testDataset(), args))
	out := console.output.String()
	assert.Contains(t, out, "Tea")
	assert.NotContains(t, out, "2024-01-01")
}

func TestRunReportTopRejectsAbsentDate(t *testing.T) {
	uc, _, _ := newTestUseCase()
	args := quietArgs(ReportTop)
	args.Date = "2030-06-15"

	err := uc.RunReport(testDataset(), args)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not occur in the data")
}

func TestRunReportTopRejectsMalformedDate(t *testing.T) {
	uc, _, _ := newTestUseCase()
	args := quietArgs(ReportTop)
	args.Date = "01/02/2024"

	err := uc.RunReport(testDataset(), args)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected YYYY-MM-DD")
}

func TestParseDateFilterNoFilterValues(t *testing.T) {
	uc, _, _ := newTestUseCase()
	ds := testDataset()

	for _, value := range []string{"", "all", "ALL", "0", "  all  "} {
		date, err := uc.parseDateFilter(ds, value)
		require.NoError(t, err, "value %q", value)
		assert.Nil(t, date, "value %q", value)
	}
}

func TestRunReportTurnover(t *testing.T) {
	uc, console, _ := newTestUseCase()
	require.NoError(t, uc.RunReport(testDataset(), quietArgs(ReportTurnover)))

	out := console.output.String()
	assert.Contains(t, out, "SUMMARY STATISTICS")
	assert.Contains(t, out, "POSSIBLE DEFICIT")
	assert.Contains(t, out, "POSSIBLE EXCESS")
	assert.Contains(t, out, "MOST PROFITABLE PRODUCTS:")
	assert.Contains(t, out, "LEAST PROFITABLE PRODUCTS:")
	// Coffee: sold 3, received 10, margin 250/50.
	assert.Contains(t, out, "500.00%")
	// Tea has sales but no receipts, margin undefined.
	assert.Contains(t, out, "N/A")
}

func TestExportIfRequested(t *testing.T) {
	uc, console, exportRepo := newTestUseCase()
	args := quietArgs(ReportRevenue)
	args.ReportName = "revenue_report"
	args.ReportType = []string{"csv", "xlsx", "docx"}

	require.NoError(t, uc.RunReport(testDataset(), args))
	assert.Equal(t, []string{"csv", "xlsx"}, exportRepo.calls)
	require.Len(t, console.warnings, 1)
	assert.Contains(t, console.warnings[0], "docx")
	assert.Len(t, console.success, 2)
}

func TestExportIfRequestedReportsFailures(t *testing.T) {
	uc, console, exportRepo := newTestUseCase()
	exportRepo.fail = true
	args := quietArgs(ReportRevenue)
	args.ReportName = "revenue_report"
	args.ReportType = []string{"pdf"}

	require.NoError(t, uc.RunReport(testDataset(), args))
	require.Len(t, console.errors, 1)
	assert.Contains(t, console.errors[0], "PDF")
}

func TestExportSkippedWithoutReportName(t *testing.T) {
	uc, _, exportRepo := newTestUseCase()
	args := quietArgs(ReportRevenue)
	args.ReportType = []string{"csv"}

	require.NoError(t, uc.RunReport(testDataset(), args))
	assert.Empty(t, exportRepo.calls)
}

func TestFormatMargin(t *testing.T) {
	assert.Equal(t, "N/A", formatMargin(nil))
	v := 33.333
	assert.Equal(t, "33.33%", formatMargin(&v))
}
