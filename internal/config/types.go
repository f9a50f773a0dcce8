package config

const (
	SourceSample   = "sample"
	SourcePostgres = "postgres"
	SourceRemote   = "remote"
)

type Config struct {
	Port           string `yaml:"port"`
	Environment    string `yaml:"environment"`
	DataSource     string `yaml:"data_source"`
	DataDir        string `yaml:"data_dir"`
	DatabaseURL    string `yaml:"database_url"`
	DatasetBaseURL string `yaml:"dataset_base_url"`
	ExportDir      string `yaml:"export_dir"`
	ReportsDir     string `yaml:"reports_dir"`
	AMQPURL        string `yaml:"amqp_url"`
	ReportSchedule string `yaml:"report_schedule"`
	DashboardTitle string `yaml:"dashboard_title"`
	CurrencySymbol string `yaml:"currency_symbol"`
}

func Defaults() Config {
	return Config{
		Port:           "8080",
		Environment:    "development",
		DataSource:     SourceSample,
		DataDir:        "./data",
		ExportDir:      "./exports",
		ReportsDir:     "./reports",
		DashboardTitle: "HealthKart Campaign Insights",
		CurrencySymbol: "₹",
	}
}
