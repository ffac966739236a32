package types

// ConsoleInterface define a interface para saída no console.
type ConsoleInterface interface {
	Print(a ...interface{})
	Printf(format string, a ...interface{})
	Println(a ...interface{})

	LogInfo(format string, a ...interface{})
	LogWarning(format string, a ...interface{})
	LogError(format string, a ...interface{})
	LogSuccess(format string, a ...interface{})

	Status(message string) StatusHandle

	CreateTable() TableInterface
	DisplayPeriodBars(title string, points []ChartPoint)
	DisplayRankingBars(title, unit string, points []ChartPoint)

	PromptSelect(label string, options []string) (string, error)
	PromptText(label string) (string, error)
	PromptConfirm(label string) (bool, error)
}

// StatusHandle é uma interface para atualizar uma mensagem de status.
type StatusHandle interface {
	Update(message string)
	Stop()
}

// TableInterface define a interface para criar e manipular tabelas.
type TableInterface interface {
	AddColumn(name string, options ...interface{})
	AddRow(cells ...interface{})
	Render() string
}

// ChartPoint é um valor rotulado usado nos gráficos de barras do terminal.
type ChartPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}
