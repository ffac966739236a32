package main

import (
	"fmt"
	"os"

	"github.com/retailmetrics/sales-insights-go/internal/adapter/driven/config"
	"github.com/retailmetrics/sales-insights-go/internal/adapter/driven/dataset"
	"github.com/retailmetrics/sales-insights-go/internal/adapter/driven/export"
	"github.com/retailmetrics/sales-insights-go/internal/adapter/driving/cli"
	"github.com/retailmetrics/sales-insights-go/internal/application/usecase"
	"github.com/retailmetrics/sales-insights-go/pkg/console"
	"github.com/retailmetrics/sales-insights-go/pkg/version"
)

func main() {
	// Inicializa o aplicativo CLI
	app := cli.NewCLIApp(version.Version)

	// Inicializa os repositórios
	datasetRepo := dataset.NewDatasetRepository()
	exportRepo := export.NewExportRepository()
	configRepo := config.NewConfigRepository()
	consoleImpl := console.NewConsole()

	// Inicializa o caso de uso
	reportUseCase := usecase.NewReportUseCase(
		datasetRepo,
		exportRepo,
		configRepo,
		consoleImpl,
	)

	// Define as dependências no aplicativo CLI
	app.SetReportUseCase(reportUseCase)
	app.SetConsole(consoleImpl)

	// Executa o aplicativo
	if err := app.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
