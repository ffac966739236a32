package types

// Config represents the application configuration that can be loaded from a file.
type Config struct {
	File       string   `json:"file" yaml:"file" toml:"file"`
	Report     string   `json:"report" yaml:"report" toml:"report"`
	Period     string   `json:"period" yaml:"period" toml:"period"`
	TopN       int      `json:"top_n" yaml:"top_n" toml:"top_n"`
	Metric     string   `json:"metric" yaml:"metric" toml:"metric"`
	Date       string   `json:"date" yaml:"date" toml:"date"`
	ReportName string   `json:"report_name" yaml:"report_name" toml:"report_name"`
	ReportType []string `json:"report_type" yaml:"report_type" toml:"report_type"`
	Dir        string   `json:"dir" yaml:"dir" toml:"dir"`
	NoChart    bool     `json:"no_chart" yaml:"no_chart" toml:"no_chart"`
}
