package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	DriverSheets   = "sheets"
	DriverPostgres = "postgres"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"Shop Ledger"`
		Port int    `envconfig:"PORT" default:"3000"`
	}

	Form struct {
		Password string `envconfig:"FORM_PASSWORD" required:"true"`
	}

	Store struct {
		Driver string `envconfig:"STORE_DRIVER" default:"sheets"`
	}

	Sheets struct {
		SpreadsheetID   string `envconfig:"SPREADSHEET_ID"`
		SheetName       string `envconfig:"SHEET_NAME" default:"Sheet1"`
		CredentialsFile string `envconfig:"GOOGLE_APPLICATION_CREDENTIALS" default:"credentials.json"`
	}

	DB struct {
		Host     string `envconfig:"DB_HOST" default:"localhost"`
		Port     int    `envconfig:"DB_PORT" default:"5432"`
		User     string `envconfig:"DB_USER" default:"postgres"`
		Password string `envconfig:"DB_PASSWORD" default:""`
		Name     string `envconfig:"DB_NAME" default:"shopledger"`
	}

	Server struct {
		Timeout        time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
		AllowedOrigins []string      `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`
	}
}

func (c *Config) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name)
}

func (c *Config) validate() error {
	if c.Form.Password == "" {
		return fmt.Errorf("FORM_PASSWORD must not be empty")
	}

	switch c.Store.Driver {
	case DriverSheets:
		if c.Sheets.SpreadsheetID == "" {
			return fmt.Errorf("SPREADSHEET_ID is required for the %s driver", DriverSheets)
		}
	case DriverPostgres:
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.Store.Driver)
	}

	return nil
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	cfg.Store.Driver = strings.ToLower(strings.TrimSpace(cfg.Store.Driver))

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}
