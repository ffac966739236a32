package usecase

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/pterm/pterm"
	"github.com/retailmetrics/sales-insights-go/internal/domain/analytics"
	"github.com/retailmetrics/sales-insights-go/internal/domain/entity"
	"github.com/retailmetrics/sales-insights-go/internal/domain/repository"
	"github.com/retailmetrics/sales-insights-go/internal/shared/types"
)

// Report names accepted on the command line and in config files.
const (
	ReportRevenue  = "revenue"
	ReportProfit   = "profit"
	ReportCategory = "category"
	ReportTop      = "top"
	ReportTurnover = "turnover"
)

// insightDisplayLimit caps the deficit/excess lists printed on the
// terminal, matching what fits a glanceable report.
const insightDisplayLimit = 5

// ReportUseCase handles the report computation and presentation flow.
type ReportUseCase struct {
	datasetRepo repository.DatasetRepository
	exportRepo  repository.ExportRepository
	configRepo  repository.ConfigRepository
	console     types.ConsoleInterface
}

// NewReportUseCase creates a new report use case.
func NewReportUseCase(
	datasetRepo repository.DatasetRepository,
	exportRepo repository.ExportRepository,
	configRepo repository.ConfigRepository,
	console types.ConsoleInterface,
) *ReportUseCase {
	return &ReportUseCase{
		datasetRepo: datasetRepo,
		exportRepo:  exportRepo,
		configRepo:  configRepo,
		console:     console,
	}
}

// LoadConfig carrega o arquivo de configuração através do repositório.
func (uc *ReportUseCase) LoadConfig(filePath string) (*types.Config, error) {
	return uc.configRepo.LoadConfigFile(filePath)
}

// LoadDataset carrega e normaliza o arquivo de dados, reportando as
// linhas descartadas durante a limpeza.
func (uc *ReportUseCase) LoadDataset(filePath string) (*entity.Dataset, error) {
	status := uc.console.Status(fmt.Sprintf("Loading %s...", filePath))
	ds, err := uc.datasetRepo.LoadDataset(filePath)
	status.Stop()
	if err != nil {
		return nil, err
	}

	if ds.DroppedRows > 0 {
		uc.console.LogWarning("Dropped %d row(s) with missing or invalid values", ds.DroppedRows)
	}
	uc.console.LogSuccess("Loaded %d transaction row(s) from %s", len(ds.Rows), filePath)
	return ds, nil
}

// RunReport executa o relatório pedido nos argumentos da CLI.
func (uc *ReportUseCase) RunReport(ds *entity.Dataset, args *types.CLIArgs) error {
	switch strings.ToLower(args.Report) {
	case ReportRevenue:
		return uc.RevenueReport(ds, analytics.Period(args.Period), args)
	case ReportProfit:
		return uc.ProfitReport(ds, analytics.Period(args.Period), args)
	case ReportCategory:
		return uc.CategoryReport(ds, args)
	case ReportTop:
		date, err := uc.parseDateFilter(ds, args.Date)
		if err != nil {
			return err
		}
		return uc.TopProductsReport(ds, args.TopN, analytics.Metric(args.Metric), date, args)
	case ReportTurnover:
		return uc.TurnoverReport(ds, args.TopN, args)
	default:
		return types.ErrUnknownReport
	}
}

// parseDateFilter converts the CLI date argument into an exact-date
// filter. Empty, "all" and "0" mean no filter. A date that never
// occurs in the data is rejected here, before the ranker runs.
func (uc *ReportUseCase) parseDateFilter(ds *entity.Dataset, value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" || strings.EqualFold(value, "all") || value == "0" {
		return nil, nil
	}
	date, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", value)
	}
	if !ds.HasDate(date) {
		return nil, fmt.Errorf("date %s does not occur in the data", value)
	}
	return &date, nil
}

// RevenueReport computa e apresenta a receita por período.
func (uc *ReportUseCase) RevenueReport(ds *entity.Dataset, period analytics.Period, args *types.CLIArgs) error {
	entries, err := analytics.RevenueByPeriod(ds.Rows, period)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		uc.console.LogWarning("No sale rows found; nothing to report")
		return nil
	}

	table := uc.console.CreateTable()
	table.AddColumn("Period")
	table.AddColumn("Revenue")

	total := 0.0
	points := make([]types.ChartPoint, 0, len(entries))
	for _, entry := range entries {
		label := period.Label(entry.Bucket)
		table.AddRow(label, pterm.FgGreen.Sprintf("%.2f", entry.Revenue))
		points = append(points, types.ChartPoint{Label: label, Value: entry.Revenue})
		total += entry.Revenue
	}

	uc.console.Print(table.Render())
	uc.console.Printf("%s\n", pterm.FgGreen.Sprintf("Total revenue: %.2f", total))

	if !args.NoChart {
		uc.console.DisplayPeriodBars(fmt.Sprintf("Revenue by %s", period), points)
	}

	doc := buildDocument(
		fmt.Sprintf("Revenue by %s", period),
		[]string{"Period", "Revenue"},
		entries,
		func(e entity.PeriodRevenue) []string {
			return []string{period.Label(e.Bucket), fmt.Sprintf("%.2f", e.Revenue)}
		},
	)
	uc.exportIfRequested(doc, args)
	return nil
}

// ProfitReport computa e apresenta a prestação de lucro por período,
// com estatísticas agregadas.
func (uc *ReportUseCase) ProfitReport(ds *entity.Dataset, period analytics.Period, args *types.CLIArgs) error {
	statement, err := analytics.ProfitByPeriod(ds.Rows, period)
	if errors.Is(err, types.ErrNoSalesData) {
		uc.console.LogWarning("No sales data available for profit calculation")
		return nil
	}
	if err != nil {
		return err
	}

	if statement.ExpensesMissing {
		uc.console.LogWarning("No receipt data found. Profit is calculated as plain revenue.")
	}

	table := uc.console.CreateTable()
	table.AddColumn("Period")
	table.AddColumn("Income")
	table.AddColumn("Expenses")
	table.AddColumn("Profit")

	points := make([]types.ChartPoint, 0, len(statement.Entries))
	for _, entry := range statement.Entries {
		label := period.Label(entry.Bucket)
		profitText := pterm.FgGreen.Sprintf("%.2f", entry.Profit)
		if entry.Profit < 0 {
			profitText = pterm.FgRed.Sprintf("%.2f", entry.Profit)
		}
		table.AddRow(
			label,
			fmt.Sprintf("%.2f", entry.Income),
			fmt.Sprintf("%.2f", entry.Expenses),
			profitText,
		)
		points = append(points, types.ChartPoint{Label: label, Value: entry.Profit})
	}

	uc.console.Print(table.Render())
	uc.printProfitStats(statement.Entries)

	if !args.NoChart {
		uc.console.DisplayPeriodBars(fmt.Sprintf("Profit by %s", period), points)
	}

	doc := buildDocument(
		fmt.Sprintf("Profit by %s", period),
		[]string{"Period", "Income", "Expenses", "Profit"},
		statement.Entries,
		func(e entity.PeriodProfit) []string {
			return []string{
				period.Label(e.Bucket),
				fmt.Sprintf("%.2f", e.Income),
				fmt.Sprintf("%.2f", e.Expenses),
				fmt.Sprintf("%.2f", e.Profit),
			}
		},
	)
	doc.Records = statement
	uc.exportIfRequested(doc, args)
	return nil
}

// printProfitStats imprime o bloco de estatísticas do lucro.
func (uc *ReportUseCase) printProfitStats(entries []entity.PeriodProfit) {
	if len(entries) == 0 {
		return
	}

	maxProfit := entries[0].Profit
	minProfit := entries[0].Profit
	total := 0.0
	for _, entry := range entries {
		if entry.Profit > maxProfit {
			maxProfit = entry.Profit
		}
		if entry.Profit < minProfit {
			minProfit = entry.Profit
		}
		total += entry.Profit
	}

	uc.console.Println()
	uc.console.Println(pterm.FgCyan.Sprint("Profit statistics:"))
	uc.console.Printf("  Highest profit: %.2f\n", maxProfit)
	uc.console.Printf("  Lowest profit:  %.2f\n", minProfit)
	uc.console.Printf("  Average profit: %.2f\n", total/float64(len(entries)))
	uc.console.Printf("  Total profit:   %.2f\n", total)
}

// CategoryReport apresenta a estatística de vendas por departamento.
func (uc *ReportUseCase) CategoryReport(ds *entity.Dataset, args *types.CLIArgs) error {
	report := analytics.SalesByCategory(ds)
	if len(report.Summaries) == 0 {
		uc.console.LogWarning("No sale rows found; nothing to aggregate")
		return nil
	}

	headers := []string{"Department"}
	if report.HasRevenue {
		headers = append(headers, "Revenue")
	}
	if report.HasUnitsSold {
		headers = append(headers, "Units Sold")
	}
	if report.HasUniqueProducts {
		headers = append(headers, "Unique Products")
	}

	table := uc.console.CreateTable()
	for _, header := range headers {
		table.AddColumn(header)
	}

	rowCells := func(s entity.CategorySummary) []string {
		cells := []string{s.Department}
		if report.HasRevenue {
			cells = append(cells, fmt.Sprintf("%.2f", s.Revenue))
		}
		if report.HasUnitsSold {
			cells = append(cells, fmt.Sprintf("%d", s.UnitsSold))
		}
		if report.HasUniqueProducts {
			cells = append(cells, fmt.Sprintf("%d", s.UniqueProducts))
		}
		return cells
	}

	points := []types.ChartPoint{}
	for _, summary := range report.Summaries {
		cells := rowCells(summary)
		values := make([]interface{}, len(cells))
		for i, cell := range cells {
			values[i] = cell
		}
		table.AddRow(values...)
		points = append(points, types.ChartPoint{Label: summary.Department, Value: summary.Revenue})
	}

	uc.console.Print(table.Render())
	uc.printCategoryStats(report)

	if !args.NoChart && report.HasRevenue {
		uc.console.DisplayRankingBars("Revenue by department", "", points)
	}

	doc := buildDocument("Sales by Category", headers, report.Summaries, rowCells)
	doc.Records = report
	uc.exportIfRequested(doc, args)
	return nil
}

// printCategoryStats imprime totais e o top-3 de departamentos.
func (uc *ReportUseCase) printCategoryStats(report *entity.CategoryReport) {
	totalRevenue := 0.0
	totalUnits := 0
	totalUnique := 0
	for _, summary := range report.Summaries {
		totalRevenue += summary.Revenue
		totalUnits += summary.UnitsSold
		totalUnique += summary.UniqueProducts
	}

	uc.console.Println()
	if report.HasRevenue {
		uc.console.Printf("Total revenue: %.2f\n", totalRevenue)
	}
	if report.HasUnitsSold {
		uc.console.Printf("Total units sold: %d\n", totalUnits)
	}
	if report.HasUniqueProducts {
		uc.console.Printf("Total unique products: %d\n", totalUnique)
	}

	if !report.HasRevenue {
		return
	}

	top := make([]entity.CategorySummary, len(report.Summaries))
	copy(top, report.Summaries)
	sort.SliceStable(top, func(i, j int) bool {
		return top[i].Revenue > top[j].Revenue
	})
	if len(top) > 3 {
		top = top[:3]
	}

	uc.console.Println()
	uc.console.Println(pterm.FgCyan.Sprint("Top departments by revenue:"))
	for i, summary := range top {
		uc.console.Printf("  %d. %s: %.2f\n", i+1, summary.Department, summary.Revenue)
	}
}

// TopProductsReport apresenta o ranking dos produtos mais vendidos.
func (uc *ReportUseCase) TopProductsReport(ds *entity.Dataset, n int, metric analytics.Metric, date *time.Time, args *types.CLIArgs) error {
	ranking, err := analytics.TopProducts(ds.Rows, n, metric, date)
	if err != nil {
		return err
	}
	if len(ranking) == 0 {
		uc.console.LogWarning("No sale rows matched; nothing to rank")
		return nil
	}

	valueHeader := "Units Sold"
	unit := "pcs"
	if metric == analytics.MetricRevenue {
		valueHeader = "Revenue"
		unit = ""
	}

	table := uc.console.CreateTable()
	table.AddColumn("#")
	table.AddColumn("Product")
	table.AddColumn(valueHeader)

	points := make([]types.ChartPoint, 0, len(ranking))
	for i, entry := range ranking {
		table.AddRow(
			fmt.Sprintf("%d", i+1),
			pterm.FgMagenta.Sprint(entry.ProductName),
			fmt.Sprintf("%.2f", entry.Value),
		)
		points = append(points, types.ChartPoint{Label: entry.ProductName, Value: entry.Value})
	}

	uc.console.Print(table.Render())

	scope := "the whole period"
	if date != nil {
		scope = date.Format("2006-01-02")
	}
	if !args.NoChart {
		uc.console.DisplayRankingBars(fmt.Sprintf("Top %d products by %s (%s)", len(ranking), metric, scope), unit, points)
	}

	doc := buildDocument(
		fmt.Sprintf("Top %d Products by %s", len(ranking), metric),
		[]string{"Product", valueHeader},
		ranking,
		func(e entity.ProductRank) []string {
			return []string{e.ProductName, fmt.Sprintf("%.2f", e.Value)}
		},
	)
	uc.exportIfRequested(doc, args)
	return nil
}

// TurnoverReport apresenta o movimento de estoque e os insights de
// rentabilidade derivados dele.
func (uc *ReportUseCase) TurnoverReport(ds *entity.Dataset, topN int, args *types.CLIArgs) error {
	records, err := analytics.AnalyzeTurnover(ds.Rows, topN)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		uc.console.LogWarning("No sale or receipt rows found; nothing to analyze")
		return nil
	}
	insights := analytics.BuildInsights(records)

	headers := []string{"SKU", "Product", "Sold", "Received", "Difference", "Revenue", "Costs", "Profit", "Margin %"}
	table := uc.console.CreateTable()
	for _, header := range headers {
		table.AddColumn(header)
	}

	rowCells := func(rec entity.TurnoverRecord) []string {
		return []string{
			rec.SKU,
			rec.ProductName,
			fmt.Sprintf("%d", rec.SoldUnits),
			fmt.Sprintf("%d", rec.ReceivedUnits),
			fmt.Sprintf("%+d", rec.UnitDifference),
			fmt.Sprintf("%.2f", rec.SalesRevenue),
			fmt.Sprintf("%.2f", rec.PurchaseCost),
			fmt.Sprintf("%.2f", rec.Profit),
			formatMargin(rec.MarginPct),
		}
	}

	for _, rec := range records {
		cells := rowCells(rec)
		values := make([]interface{}, len(cells))
		for i, cell := range cells {
			values[i] = cell
		}
		table.AddRow(values...)
	}

	uc.console.Print(table.Render())
	uc.printInsights(insights)

	doc := buildDocument("Inventory Turnover", headers, records, rowCells)
	doc.Records = struct {
		Records  []entity.TurnoverRecord   `json:"records"`
		Insights *entity.InventoryInsights `json:"insights"`
	}{records, insights}
	uc.exportIfRequested(doc, args)
	return nil
}

// printInsights imprime o pacote de insights do relatório de estoque.
func (uc *ReportUseCase) printInsights(insights *entity.InventoryInsights) {
	stats := insights.Summary

	uc.console.Println()
	uc.console.Println(pterm.FgCyan.Sprint("SUMMARY STATISTICS"))
	uc.console.Printf("  Items analyzed:   %d\n", stats.TotalItems)
	uc.console.Printf("  Total revenue:    %.2f\n", stats.TotalRevenue)
	uc.console.Printf("  Total costs:      %.2f\n", stats.TotalCosts)
	uc.console.Printf("  Total profit:     %.2f\n", stats.TotalProfit)
	uc.console.Printf("  Average margin:   %s\n", formatMargin(stats.AvgMarginPct))
	uc.console.Printf("  Deficit items:    %d\n", stats.DeficitCount)
	uc.console.Printf("  Excess items:     %d\n", stats.ExcessCount)

	uc.console.Println()
	uc.console.Println(pterm.FgYellow.Sprint("POSSIBLE DEFICIT (sales exceed receipts):"))
	if len(insights.DeficitCandidates) == 0 {
		uc.console.Println("  No items with a clear deficit")
	}
	for i, rec := range insights.DeficitCandidates {
		if i == insightDisplayLimit {
			break
		}
		uc.console.Printf("  • %s (%s)\n", rec.ProductName, rec.SKU)
		uc.console.Printf("    Sold: %d, received: %d, difference: %+d\n", rec.SoldUnits, rec.ReceivedUnits, rec.UnitDifference)
	}

	uc.console.Println()
	uc.console.Println(pterm.FgYellow.Sprint("POSSIBLE EXCESS (receipts exceed sales):"))
	if len(insights.ExcessCandidates) == 0 {
		uc.console.Println("  No items with a clear excess")
	}
	for i, rec := range insights.ExcessCandidates {
		if i == insightDisplayLimit {
			break
		}
		uc.console.Printf("  • %s (%s)\n", rec.ProductName, rec.SKU)
		uc.console.Printf("    Sold: %d, received: %d, difference: %+d\n", rec.SoldUnits, rec.ReceivedUnits, rec.UnitDifference)
	}

	uc.console.Println()
	uc.console.Println(pterm.FgGreen.Sprint("MOST PROFITABLE PRODUCTS:"))
	for _, rec := range insights.MostProfitable {
		uc.console.Printf("  • %s (%s)\n", rec.ProductName, rec.SKU)
		uc.console.Printf("    Profit: %.2f | Margin: %s\n", rec.Profit, formatMargin(rec.MarginPct))
	}

	uc.console.Println()
	uc.console.Println(pterm.FgRed.Sprint("LEAST PROFITABLE PRODUCTS:"))
	for _, rec := range insights.LeastProfitable {
		label := "Profit"
		if rec.Profit < 0 {
			label = "Loss"
		}
		uc.console.Printf("  • %s (%s)\n", rec.ProductName, rec.SKU)
		uc.console.Printf("    %s: %.2f | Margin: %s\n", label, rec.Profit, formatMargin(rec.MarginPct))
	}
}

// exportIfRequested grava o relatório nos formatos pedidos.
func (uc *ReportUseCase) exportIfRequested(doc *entity.ReportDocument, args *types.CLIArgs) {
	if args.ReportName == "" || len(args.ReportType) == 0 {
		return
	}

	for _, reportType := range args.ReportType {
		var (
			path string
			err  error
		)
		switch strings.ToLower(reportType) {
		case "csv":
			path, err = uc.exportRepo.ExportToCSV(doc, args.ReportName, args.Dir)
		case "json":
			path, err = uc.exportRepo.ExportToJSON(doc, args.ReportName, args.Dir)
		case "pdf":
			path, err = uc.exportRepo.ExportToPDF(doc, args.ReportName, args.Dir)
		case "xlsx":
			path, err = uc.exportRepo.ExportToXLSX(doc, args.ReportName, args.Dir)
		default:
			uc.console.LogWarning("Unknown report type %q: expected csv, json, pdf or xlsx", reportType)
			continue
		}
		if err != nil {
			uc.console.LogError("Failed to export to %s: %s", strings.ToUpper(reportType), err)
		} else {
			uc.console.LogSuccess("Successfully exported to %s: %s", strings.ToUpper(reportType), path)
		}
	}
}

// buildDocument monta o documento exportável a partir de registros tipados.
func buildDocument[T any](title string, headers []string, records []T, cells func(T) []string) *entity.ReportDocument {
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, cells(record))
	}
	return &entity.ReportDocument{
		Title:       title,
		GeneratedAt: time.Now(),
		Headers:     headers,
		Rows:        rows,
		Records:     records,
	}
}

// formatMargin formata a rentabilidade, exibindo N/A quando indefinida.
func formatMargin(margin *float64) string {
	if margin == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.2f%%", *margin)
}
