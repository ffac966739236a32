package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/retailmetrics/sales-insights-go/pkg/version"
)

// displayWelcomeBanner exibe o banner de boas-vindas com informações de versão.
func displayWelcomeBanner(versionStr string) {
	banner := `
         /$$$$$$            /$$                     /$$$$$$                     /$$           /$$         /$$
        /$$__  $$          | $$                    |_  $$_/                    |__/          | $$        | $$
       | $$  \__/  /$$$$$$ | $$  /$$$$$$   /$$$$$$$  | $$   /$$$$$$$   /$$$$$$$ /$$  /$$$$$$ | $$$$$$$  /$$$$$$    /$$$$$$$
       |  $$$$$$  |____  $$| $$ /$$__  $$ /$$_____/  | $$  | $$__  $$ /$$_____/| $$ /$$__  $$| $$__  $$|_  $$_/   /$$_____/
        \____  $$  /$$$$$$$| $$| $$$$$$$$|  $$$$$$   | $$  | $$  \ $$|  $$$$$$ | $$| $$  \ $$| $$  \ $$  | $$    |  $$$$$$
        /$$  \ $$ /$$__  $$| $$| $$_____/ \____  $$  | $$  | $$  | $$ \____  $$| $$| $$  | $$| $$  | $$  | $$ /$$ \____  $$
       |  $$$$$$/|  $$$$$$$| $$|  $$$$$$$ /$$$$$$$/ /$$$$$$| $$  | $$ /$$$$$$$/| $$|  $$$$$$$| $$  | $$  |  $$$$/ /$$$$$$$/
        \______/  \_______/|__/ \_______/|_______/ |______/|__/  |__/|_______/ |__/ \____  $$|__/  |__/   \___/  |_______/
                                                                                    /$$  \ $$
                                                                                   |  $$$$$$/
                                                                                    \______/
        `
	red := color.New(color.FgRed, color.Bold).SprintFunc()
	blue := color.New(color.FgBlue, color.Bold).SprintFunc()

	fmt.Println(red(banner))

	// Obtem a string formatada da versão através do pacote version
	formattedVersion := version.FormatVersion()
	fmt.Println(blue(fmt.Sprintf("Sales Insights Dashboard CLI (v%s)", formattedVersion)))
}
