package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config carries everything a run needs. Values load from an optional YAML
// file first; environment variables (including a .env file) override it.
type Config struct {
	RestaurantID string `yaml:"restaurant_id"`
	AuthHeader   string `yaml:"auth_header"`

	SpreadsheetID string `yaml:"spreadsheet_id"`
	CellRange     string `yaml:"cell_range"`
	AccessToken   string `yaml:"access_token"`
	ClientID      string `yaml:"client_id"`
	ClientSecret  string `yaml:"client_secret"`
	RefreshToken  string `yaml:"refresh_token"`

	OutputDir    string `yaml:"output_dir"`
	WorkbookPath string `yaml:"workbook_path"`

	LedgerPath  string `yaml:"ledger_path"`
	DatabaseURL string `yaml:"database_url"`

	Timezone string `yaml:"timezone"`
	// RunDate overrides "today" (YYYY-MM-DD) for reruns of a past day.
	RunDate string `yaml:"run_date"`

	Tabs   TabsConfig   `yaml:"tabs"`
	Window WindowConfig `yaml:"window"`
}

// TabsConfig names the destination sheet tabs. Empty fields fall back to the
// pipeline defaults.
type TabsConfig struct {
	Orders     string `yaml:"orders"`
	Deliveries string `yaml:"deliveries"`
	Manifest   string `yaml:"manifest"`
	Menu       string `yaml:"menu"`
}

// WindowConfig is the routing service window (see services.ManifestWindow).
type WindowConfig struct {
	WeekdayStart       string `yaml:"weekday_start"`
	SaturdayStart      string `yaml:"saturday_start"`
	WindowHours        int    `yaml:"window_hours"`
	ServiceTimeMinutes int    `yaml:"service_time_minutes"`
}

// Load reads the YAML file at path (skipped when absent) and applies
// environment overrides. Callers validate required fields.
func Load(path string) (Config, error) {
	cfg := Config{
		OutputDir:  "out",
		LedgerPath: "data/ledger.db",
		Timezone:   "America/Los_Angeles",
	}

	if path != "" {
		raw, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// Env-only configuration is fine.
		case err != nil:
			return Config{}, fmt.Errorf("load config: read %q: %w", path, err)
		default:
			if err := yaml.Unmarshal(raw, &cfg); err != nil {
				return Config{}, fmt.Errorf("load config: parse %q: %w", path, err)
			}
		}
	}

	overlay(&cfg.RestaurantID, "RESTAURANT_ID")
	overlay(&cfg.AuthHeader, "AUTH_HEADER")
	overlay(&cfg.SpreadsheetID, "SPREADSHEET_ID")
	overlay(&cfg.CellRange, "CELL_RANGE")
	overlay(&cfg.AccessToken, "SHEETS_ACCESS_TOKEN")
	overlay(&cfg.ClientID, "SHEETS_CLIENT_ID")
	overlay(&cfg.ClientSecret, "SHEETS_CLIENT_SECRET")
	overlay(&cfg.RefreshToken, "SHEETS_REFRESH_TOKEN")
	overlay(&cfg.OutputDir, "OUTPUT_DIR")
	overlay(&cfg.WorkbookPath, "WORKBOOK_PATH")
	overlay(&cfg.LedgerPath, "LEDGER_PATH")
	overlay(&cfg.DatabaseURL, "DATABASE_URL")
	overlay(&cfg.Timezone, "TIMEZONE")
	overlay(&cfg.RunDate, "RUN_DATE")

	return cfg, nil
}

func overlay(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
