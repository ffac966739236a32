package types

// CLIArgs represents the command-line arguments.
type CLIArgs struct {
	ConfigFile  string
	File        string
	Report      string
	Period      string
	TopN        int
	Metric      string
	Date        string
	ReportName  string
	ReportType  []string
	Dir         string
	Interactive bool
	NoChart     bool
}
