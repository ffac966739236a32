package cli

import (
	"os"
	"path/filepath"

	"github.com/retailmetrics/sales-insights-go/pkg/version"

	"github.com/retailmetrics/sales-insights-go/internal/application/usecase"
	"github.com/retailmetrics/sales-insights-go/internal/shared/types"
	"github.com/spf13/cobra"
)

// CLIApp represents the command-line interface application.
type CLIApp struct {
	rootCmd       *cobra.Command
	reportUseCase *usecase.ReportUseCase
	console       types.ConsoleInterface
	version       string
}

// NewCLIApp cria uma nova aplicação CLI.
func NewCLIApp(versionStr string) *CLIApp {
	app := &CLIApp{
		version: versionStr,
	}

	formattedVersion := version.FormatVersion()

	rootCmd := &cobra.Command{
		Use:     "sales-insights",
		Short:   "Sales Insights Dashboard CLI",
		Version: formattedVersion,
		RunE:    app.runCommand,
	}

	rootCmd.SetVersionTemplate(`{{printf "Sales Insights Dashboard version: %s\n" .Version}}`)

	// Adiciona flags de linha de comando
	rootCmd.PersistentFlags().StringP("config-file", "C", "", "Path to a TOML, YAML, or JSON configuration file")
	rootCmd.PersistentFlags().StringP("file", "f", "", "Path to the sales log file (CSV or XLSX)")
	rootCmd.PersistentFlags().StringP("report", "R", "", "Report to run: revenue, profit, category, top, turnover (omit for the interactive menu)")
	rootCmd.PersistentFlags().StringP("period", "P", "day", "Period granularity for time-series reports: day, week, month")
	rootCmd.PersistentFlags().IntP("top", "N", 10, "How many entries the top/turnover reports should keep")
	rootCmd.PersistentFlags().StringP("metric", "m", "quantity", "Ranking metric for the top report: quantity or revenue")
	rootCmd.PersistentFlags().StringP("date", "D", "all", "Exact date filter (YYYY-MM-DD) for the top report, or 'all'")
	rootCmd.PersistentFlags().StringP("report-name", "n", "", "Specify the base name for the report file (without extension)")
	rootCmd.PersistentFlags().StringSliceP("report-type", "y", []string{"csv"}, "Specify report types: csv, json, pdf, xlsx")
	rootCmd.PersistentFlags().StringP("dir", "d", "", "Directory to save the report files (default: current directory)")
	rootCmd.PersistentFlags().BoolP("interactive", "i", false, "Force the interactive menu even when a report flag is set")
	rootCmd.PersistentFlags().Bool("no-chart", false, "Skip the terminal chart after each report")

	app.rootCmd = rootCmd
	return app
}

// Execute runs the CLI application.
func (app *CLIApp) Execute() error {
	return app.rootCmd.Execute()
}

// parseArgs parses command-line arguments into a CLIArgs struct.
func (app *CLIApp) parseArgs() (*types.CLIArgs, error) {
	configFile, _ := app.rootCmd.PersistentFlags().GetString("config-file")
	file, _ := app.rootCmd.PersistentFlags().GetString("file")
	report, _ := app.rootCmd.PersistentFlags().GetString("report")
	period, _ := app.rootCmd.PersistentFlags().GetString("period")
	topN, _ := app.rootCmd.PersistentFlags().GetInt("top")
	metric, _ := app.rootCmd.PersistentFlags().GetString("metric")
	date, _ := app.rootCmd.PersistentFlags().GetString("date")
	reportName, _ := app.rootCmd.PersistentFlags().GetString("report-name")
	reportType, _ := app.rootCmd.PersistentFlags().GetStringSlice("report-type")
	dir, _ := app.rootCmd.PersistentFlags().GetString("dir")
	interactive, _ := app.rootCmd.PersistentFlags().GetBool("interactive")
	noChart, _ := app.rootCmd.PersistentFlags().GetBool("no-chart")

	// Set default directory to current working directory if not specified
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		dir = cwd
	} else {
		absDir, err := filepath.Abs(dir)
		if err != nil {
			return nil, err
		}
		dir = absDir
	}

	args := &types.CLIArgs{
		ConfigFile:  configFile,
		File:        file,
		Report:      report,
		Period:      period,
		TopN:        topN,
		Metric:      metric,
		Date:        date,
		ReportName:  reportName,
		ReportType:  reportType,
		Dir:         dir,
		Interactive: interactive,
		NoChart:     noChart,
	}

	return args, nil
}

// applyConfig preenche os argumentos ainda não definidos com os valores
// do arquivo de configuração; flags explícitas têm prioridade.
func applyConfig(args *types.CLIArgs, cfg *types.Config) {
	if args.File == "" {
		args.File = cfg.File
	}
	if args.Report == "" {
		args.Report = cfg.Report
	}
	if cfg.Period != "" && args.Period == "day" {
		args.Period = cfg.Period
	}
	if cfg.TopN > 0 && args.TopN == 10 {
		args.TopN = cfg.TopN
	}
	if cfg.Metric != "" && args.Metric == "quantity" {
		args.Metric = cfg.Metric
	}
	if cfg.Date != "" && args.Date == "all" {
		args.Date = cfg.Date
	}
	if args.ReportName == "" {
		args.ReportName = cfg.ReportName
	}
	if len(cfg.ReportType) > 0 {
		args.ReportType = cfg.ReportType
	}
	if cfg.Dir != "" {
		args.Dir = cfg.Dir
	}
	if cfg.NoChart {
		args.NoChart = true
	}
}

// runCommand é o ponto de entrada principal para o comando CLI.
func (app *CLIApp) runCommand(cmd *cobra.Command, cmdArgs []string) error {
	// Exibe o banner de boas-vindas
	displayWelcomeBanner(app.version)

	// Verifica a versão mais recente disponível
	go version.CheckLatestVersion(app.version)

	// Analisa os argumentos da linha de comando
	args, err := app.parseArgs()
	if err != nil {
		return err
	}

	// Lida com o arquivo de configuração, se especificado
	if args.ConfigFile != "" {
		cfg, err := app.reportUseCase.LoadConfig(args.ConfigFile)
		if err != nil {
			return err
		}
		applyConfig(args, cfg)
	}

	// Sem arquivo de dados nas flags, perguntamos interativamente
	if args.File == "" {
		file, err := app.console.PromptText("Path to the sales log file (CSV or XLSX)")
		if err != nil {
			return err
		}
		args.File = file
	}

	ds, err := app.reportUseCase.LoadDataset(args.File)
	if err != nil {
		return err
	}

	// Sem relatório pedido, entramos no menu interativo
	if args.Interactive || args.Report == "" {
		session := NewSession(app.reportUseCase, app.console, ds, args)
		return session.Run()
	}

	return app.reportUseCase.RunReport(ds, args)
}

// SetReportUseCase sets the report use case for the CLI app.
func (app *CLIApp) SetReportUseCase(useCase *usecase.ReportUseCase) {
	app.reportUseCase = useCase
}

// SetConsole sets the console implementation for the CLI app.
func (app *CLIApp) SetConsole(console types.ConsoleInterface) {
	app.console = console
}
