package cli

import (
	"strconv"
	"time"

	"github.com/retailmetrics/sales-insights-go/internal/application/usecase"
	"github.com/retailmetrics/sales-insights-go/internal/domain/analytics"
	"github.com/retailmetrics/sales-insights-go/internal/domain/entity"
	"github.com/retailmetrics/sales-insights-go/internal/shared/types"
)

// Menu entries of the interactive session.
const (
	menuRevenue  = "Revenue by period"
	menuProfit   = "Profit by period"
	menuCategory = "Sales by department"
	menuTop      = "Top selling products"
	menuTurnover = "Inventory turnover"
	menuQuit     = "Quit"
)

// Session drives the interactive report loop over one loaded dataset.
// All terminal interaction goes through the console interface; the
// session itself only holds the menu state.
type Session struct {
	uc      *usecase.ReportUseCase
	console types.ConsoleInterface
	ds      *entity.Dataset
	args    *types.CLIArgs
}

// NewSession cria uma nova sessão interativa.
func NewSession(uc *usecase.ReportUseCase, console types.ConsoleInterface, ds *entity.Dataset, args *types.CLIArgs) *Session {
	return &Session{uc: uc, console: console, ds: ds, args: args}
}

// Run apresenta o menu até o usuário encerrar a sessão.
func (s *Session) Run() error {
	for {
		choice, err := s.console.PromptSelect("Choose a report", []string{
			menuRevenue,
			menuProfit,
			menuCategory,
			menuTop,
			menuTurnover,
			menuQuit,
		})
		if err != nil {
			return err
		}

		switch choice {
		case menuRevenue:
			err = s.runRevenue()
		case menuProfit:
			err = s.runProfit()
		case menuCategory:
			err = s.uc.CategoryReport(s.ds, s.args)
		case menuTop:
			err = s.runTopProducts()
		case menuTurnover:
			err = s.runTurnover()
		case menuQuit:
			s.console.LogInfo("Thanks for using Sales Insights. Bye!")
			return nil
		}
		if err != nil {
			return err
		}

		again, err := s.console.PromptConfirm("Anything else?")
		if err != nil {
			return err
		}
		if !again {
			s.console.LogInfo("Thanks for using Sales Insights. Bye!")
			return nil
		}
	}
}

func (s *Session) runRevenue() error {
	period, err := s.promptPeriod()
	if err != nil {
		return err
	}
	return s.uc.RevenueReport(s.ds, period, s.args)
}

func (s *Session) runProfit() error {
	period, err := s.promptPeriod()
	if err != nil {
		return err
	}
	return s.uc.ProfitReport(s.ds, period, s.args)
}

func (s *Session) runTopProducts() error {
	n, err := s.promptPositiveInt("How many top products do you want to see?")
	if err != nil {
		return err
	}

	metricChoice, err := s.console.PromptSelect("Rank products by", []string{
		string(analytics.MetricQuantity),
		string(analytics.MetricRevenue),
	})
	if err != nil {
		return err
	}

	date, err := s.promptDateFilter()
	if err != nil {
		return err
	}

	return s.uc.TopProductsReport(s.ds, n, analytics.Metric(metricChoice), date, s.args)
}

func (s *Session) runTurnover() error {
	n, err := s.promptPositiveInt("How many products should the report show?")
	if err != nil {
		return err
	}
	return s.uc.TurnoverReport(s.ds, n, s.args)
}

// promptPeriod pede a granularidade do período.
func (s *Session) promptPeriod() (analytics.Period, error) {
	options := []string{}
	for _, period := range analytics.Periods() {
		options = append(options, string(period))
	}
	choice, err := s.console.PromptSelect("Choose a period", options)
	if err != nil {
		return "", err
	}
	return analytics.Period(choice), nil
}

// promptPositiveInt insiste até receber um inteiro positivo.
func (s *Session) promptPositiveInt(label string) (int, error) {
	for {
		raw, err := s.console.PromptText(label)
		if err != nil {
			return 0, err
		}
		n, convErr := strconv.Atoi(raw)
		if convErr != nil || n <= 0 {
			s.console.LogWarning("Please enter a positive whole number")
			continue
		}
		return n, nil
	}
}

// promptDateFilter insiste até receber 'all' ou uma data presente nos
// dados carregados.
func (s *Session) promptDateFilter() (*time.Time, error) {
	for {
		raw, err := s.console.PromptText("Date filter (YYYY-MM-DD), or 'all' for the whole period")
		if err != nil {
			return nil, err
		}
		if raw == "" || raw == "0" || raw == "all" {
			return nil, nil
		}
		date, parseErr := time.Parse("2006-01-02", raw)
		if parseErr != nil {
			s.console.LogWarning("That doesn't look like a date, try again")
			continue
		}
		if !s.ds.HasDate(date) {
			s.console.LogWarning("Date %s does not occur in the data, try again", raw)
			continue
		}
		return &date, nil
	}
}
