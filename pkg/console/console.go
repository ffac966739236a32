package console

import (
	"fmt"
	"math"
	"strings"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/retailmetrics/sales-insights-go/internal/shared/types"
)

// Console é uma implementação do ConsoleInterface.
type Console struct{}

// NewConsole cria um novo Console.
func NewConsole() *Console {
	return &Console{}
}

// Print imprime no console.
func (c *Console) Print(a ...interface{}) {
	fmt.Print(a...)
}

// Printf imprime uma string formatada no console.
func (c *Console) Printf(format string, a ...interface{}) {
	fmt.Printf(format, a...)
}

// Println imprime no console com uma nova linha.
func (c *Console) Println(a ...interface{}) {
	fmt.Println(a...)
}

// LogInfo registra uma mensagem de informação.
func (c *Console) LogInfo(format string, a ...interface{}) {
	pterm.Info.Printfln(format, a...)
}

// LogWarning registra uma mensagem de aviso.
func (c *Console) LogWarning(format string, a ...interface{}) {
	pterm.Warning.Printfln(format, a...)
}

// LogError registra uma mensagem de erro.
func (c *Console) LogError(format string, a ...interface{}) {
	pterm.Error.Printfln(format, a...)
}

// LogSuccess registra uma mensagem de sucesso.
func (c *Console) LogSuccess(format string, a ...interface{}) {
	pterm.Success.Printfln(format, a...)
}

// Cores predefinidas para uso consistente
var (
	BrightMagenta = color.New(color.FgMagenta, color.Bold).SprintFunc()
	BoldRed       = color.New(color.FgRed, color.Bold).SprintFunc()
	BrightGreen   = color.New(color.FgGreen, color.Bold).SprintFunc()
	BrightYellow  = color.New(color.FgYellow, color.Bold).SprintFunc()
	BrightCyan    = color.New(color.FgCyan, color.Bold).SprintFunc()
)

// statusHandle é uma implementação do StatusHandle.
type statusHandle struct {
	spinner *pterm.SpinnerPrinter
}

// Status cria um spinner de status com a mensagem especificada.
func (c *Console) Status(message string) types.StatusHandle {
	spinner, _ := pterm.DefaultSpinner.Start(message)
	return &statusHandle{spinner: spinner}
}

// Update atualiza a mensagem de status.
func (h *statusHandle) Update(message string) {
	if h.spinner != nil {
		h.spinner.UpdateText(message)
	}
}

// Stop pára o spinner de status.
func (h *statusHandle) Stop() {
	if h.spinner != nil {
		h.spinner.Stop()
	}
}

// Table é uma implementação do TableInterface.
type Table struct {
	columns []string
	rows    [][]string
}

// CreateTable cria uma nova tabela.
func (c *Console) CreateTable() types.TableInterface {
	return &Table{
		columns: []string{},
		rows:    [][]string{},
	}
}

// AddColumn adiciona uma coluna à tabela.
func (t *Table) AddColumn(name string, options ...interface{}) {
	t.columns = append(t.columns, name)
}

// AddRow adiciona uma linha à tabela.
func (t *Table) AddRow(cells ...interface{}) {
	processedCells := make([]string, len(cells))
	for i, cell := range cells {
		processedCells[i] = fmt.Sprint(cell)
	}
	t.rows = append(t.rows, processedCells)
}

// Render renderiza a tabela como uma string.
func (t *Table) Render() string {
	tableData := pterm.TableData{t.columns}
	for _, row := range t.rows {
		tableData = append(tableData, row)
	}

	table := pterm.DefaultTable.
		WithHasHeader().
		WithBoxed().
		WithHeaderStyle(pterm.NewStyle(pterm.FgLightCyan)).
		WithData(tableData)

	renderedTable, _ := table.Srender()
	return renderedTable
}

// DisplayPeriodBars exibe um gráfico de barras de valores por período,
// com a variação percentual em relação ao período anterior.
func (c *Console) DisplayPeriodBars(title string, points []types.ChartPoint) {
	maxValue := 0.0
	for _, point := range points {
		if math.Abs(point.Value) > maxValue {
			maxValue = math.Abs(point.Value)
		}
	}

	if maxValue == 0 {
		pterm.Warning.Println("All values are 0.00 for this period")
		return
	}

	tableData := pterm.TableData{
		{"Period", "Value", "", "Change"},
	}

	var prev *float64

	for _, point := range points {
		barLength := int(math.Abs(point.Value) / maxValue * 40)
		bar := strings.Repeat("█", barLength)

		barColor := pterm.FgBlue.Sprint(bar)
		change := ""

		if prev != nil {
			if math.Abs(*prev) < 0.01 {
				if math.Abs(point.Value) < 0.01 {
					change = pterm.FgYellow.Sprint("0%")
					barColor = pterm.FgYellow.Sprint(bar)
				} else {
					change = pterm.FgCyan.Sprint("N/A")
				}
			} else {
				changePercent := (point.Value - *prev) / math.Abs(*prev) * 100.0

				switch {
				case math.Abs(changePercent) < 0.01:
					change = pterm.FgYellow.Sprintf("0%%")
					barColor = pterm.FgYellow.Sprint(bar)
				case math.Abs(changePercent) > 999:
					if changePercent > 0 {
						change = pterm.FgGreen.Sprint(">+999%")
						barColor = pterm.FgGreen.Sprint(bar)
					} else {
						change = pterm.FgRed.Sprint(">-999%")
						barColor = pterm.FgRed.Sprint(bar)
					}
				case changePercent > 0:
					change = pterm.FgGreen.Sprintf("+%.2f%%", changePercent)
					barColor = pterm.FgGreen.Sprint(bar)
				default:
					change = pterm.FgRed.Sprintf("%.2f%%", changePercent)
					barColor = pterm.FgRed.Sprint(bar)
				}
			}
		}

		tableData = append(tableData, []string{
			point.Label,
			fmt.Sprintf("%.2f", point.Value),
			barColor,
			change,
		})

		current := point.Value
		prev = &current
	}

	table := pterm.DefaultTable.WithHasHeader().WithData(tableData)
	renderedTable, _ := table.Srender()

	panel := pterm.DefaultBox.WithTitle(title).WithBoxStyle(pterm.NewStyle(pterm.FgCyan)).Sprint(renderedTable)
	fmt.Println("\n" + panel)
}

// DisplayRankingBars exibe barras horizontais para um ranking, maior
// valor primeiro, com a escala relativa ao maior valor.
func (c *Console) DisplayRankingBars(title, unit string, points []types.ChartPoint) {
	maxValue := 0.0
	for _, point := range points {
		if point.Value > maxValue {
			maxValue = point.Value
		}
	}

	if maxValue == 0 {
		pterm.Warning.Println("All values are 0.00 for this ranking")
		return
	}

	labelWidth := 0
	for _, point := range points {
		if len(point.Label) > labelWidth {
			labelWidth = len(point.Label)
		}
	}

	lines := []string{}
	for _, point := range points {
		barLength := int(point.Value / maxValue * 40)
		bar := pterm.FgBlue.Sprint(strings.Repeat("█", barLength))
		lines = append(lines, fmt.Sprintf("%-*s %s %.2f %s", labelWidth, point.Label, bar, point.Value, unit))
	}

	panel := pterm.DefaultBox.WithTitle(title).WithBoxStyle(pterm.NewStyle(pterm.FgCyan)).Sprint(strings.Join(lines, "\n"))
	fmt.Println("\n" + panel)
}

// PromptSelect pede ao usuário que escolha uma das opções.
func (c *Console) PromptSelect(label string, options []string) (string, error) {
	return pterm.DefaultInteractiveSelect.
		WithDefaultText(label).
		WithOptions(options).
		Show()
}

// PromptText pede ao usuário um texto livre.
func (c *Console) PromptText(label string) (string, error) {
	value, err := pterm.DefaultInteractiveTextInput.Show(label)
	return strings.TrimSpace(value), err
}

// PromptConfirm pede ao usuário uma confirmação sim/não.
func (c *Console) PromptConfirm(label string) (bool, error) {
	return pterm.DefaultInteractiveConfirm.Show(label)
}
