package config

import (
	"flag"
	"fmt"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	App      *App
	HTTP     *HTTP
	Sheets   *Sheets
	SMTP     *SMTP
	Database *Database
}

const AppModeProduction = "PROD"
const AppModeDevelop = "DEV"

const LedgerBackendSheets = "sheets"
const LedgerBackendPostgres = "postgres"

type App struct {
	LogLevel      string `env:"LOG_LEVEL"`
	Mode          string `env:"APP_MODE"`
	PublicBaseURL string `env:"PUBLIC_BASE_URL"`
	LedgerBackend string `env:"LEDGER_BACKEND" envDefault:"sheets"`
}

type HTTP struct {
	HostString string `env:"RUN_ADDRESS"`
}

// Sheets configures the spreadsheet ledger. Enabled defaults to true and
// governs the ledger integration regardless of the selected backend.
type Sheets struct {
	Enabled         bool   `env:"SHEETS_ENABLED" envDefault:"true"`
	SpreadsheetID   string `env:"SPREADSHEET_ID"`
	SheetName       string `env:"SHEET_NAME" envDefault:"Orders"`
	CredentialsFile string `env:"GOOGLE_CREDENTIALS_FILE"`
}

type SMTP struct {
	Enabled    bool     `env:"EMAIL_ENABLED" envDefault:"true"`
	Host       string   `env:"SMTP_HOST"`
	Port       int      `env:"SMTP_PORT" envDefault:"587"`
	User       string   `env:"SMTP_USER"`
	Password   string   `env:"SMTP_PASSWORD"`
	From       string   `env:"NOTIFY_FROM"`
	Recipients []string `env:"NOTIFY_RECIPIENTS" envSeparator:","`
}

type Database struct {
	DSN string `env:"DATABASE_URI"`
}

func NewConfig() (*Config, error) {
	var app App
	var http HTTP
	var sheets Sheets
	var smtp SMTP
	var db Database

	flag.StringVar(&http.HostString, "a", `localhost:8080`, "HTTP server endpoint")
	flag.StringVar(&app.LogLevel, "l", `error`, "Log level")
	flag.StringVar(&app.Mode, "m", `DEV`, "PROD / DEV")
	flag.StringVar(&app.PublicBaseURL, "b", ``, "Public base URL of the storefront assets")
	flag.StringVar(&db.DSN, "d", ``, "Database string (postgres ledger backend)")
	flag.Parse()

	err := env.Parse(&app)
	if err != nil {
		return nil, fmt.Errorf("error parsing app config: %w", err)
	}
	err = env.Parse(&http)
	if err != nil {
		return nil, fmt.Errorf("error parsing http config: %w", err)
	}
	err = env.Parse(&sheets)
	if err != nil {
		return nil, fmt.Errorf("error parsing sheets config: %w", err)
	}
	err = env.Parse(&smtp)
	if err != nil {
		return nil, fmt.Errorf("error parsing smtp config: %w", err)
	}
	err = env.Parse(&db)
	if err != nil {
		return nil, fmt.Errorf("error parsing env database config: %w", err)
	}

	config := Config{
		App:      &app,
		HTTP:     &http,
		Sheets:   &sheets,
		SMTP:     &smtp,
		Database: &db,
	}

	return &config, nil
}
