package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"orders-report-service/internal/adapters/csvout"
	"orders-report-service/internal/adapters/ledger"
	"orders-report-service/internal/adapters/restaurant"
	"orders-report-service/internal/adapters/sheets"
	"orders-report-service/internal/adapters/workbook"
	"orders-report-service/internal/config"
	"orders-report-service/internal/domain"
	"orders-report-service/internal/platform/obs"
	"orders-report-service/internal/ports"
	"orders-report-service/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"
)

// Exit codes: 0 success, 3 partial success (local files written, spreadsheet
// not updated), 1 anything else.
const exitPartial = 3

// main is the job composition root.
// It wires concrete adapters (platform API, Sheets, CSV, ledger) behind ports
// and performs exactly one pull-transform-publish cycle.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	cfgPath := getEnv("CONFIG_PATH", "config.yaml")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatal(err)
	}

	if cfg.RestaurantID == "" {
		log.Fatal("restaurant_id is required")
	}
	if cfg.AuthHeader == "" {
		log.Fatal("auth_header is required")
	}

	// Every downstream date depends on the zone; refuse to run without it.
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		log.Fatalf("load timezone %q: %v", cfg.Timezone, err)
	}

	source, err := restaurant.NewClient(cfg.RestaurantID, cfg.AuthHeader)
	if err != nil {
		log.Fatal(err)
	}

	files, err := csvout.NewWriter(cfg.OutputDir)
	if err != nil {
		log.Fatal(err)
	}

	publisher, err := newPublisher(cfg)
	if err != nil {
		log.Fatal(err)
	}

	runLedger, closeLedger, err := newLedger(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer closeLedger()

	today, err := resolveToday(cfg.RunDate, loc)
	if err != nil {
		log.Fatal(err)
	}

	req := services.RunRequest{
		Today:    today,
		Location: loc,
		Window:   manifestWindow(cfg.Window),
		Tabs:     sheetTabs(cfg.Tabs),
	}

	ctx, runID := obs.WithRunID(context.Background())
	started := time.Now()
	log.Printf("run_id=%s date=%s starting", runID, today)

	res, runErr := services.Run(ctx, req, source, files, publisher)

	rec := ports.RunRecord{
		RunID:        runID,
		StartedAt:    started,
		FinishedAt:   time.Now(),
		OrderRows:    res.OrderRows,
		DeliveryRows: res.DeliveryRows,
		Status:       ports.RunStatusOK,
	}

	var partial *domain.PartialPublishError
	switch {
	case runErr == nil:
	case errors.As(runErr, &partial):
		rec.Status = ports.RunStatusPartial
		rec.Reason = partial.Error()
	default:
		rec.Status = ports.RunStatusFailed
		rec.Reason = runErr.Error()
	}

	if err := runLedger.Record(ctx, rec); err != nil {
		log.Printf("ledger record failed: %v", err)
	}

	log.Printf(
		"run_id=%s status=%s orders=%d deliveries=%d",
		runID, rec.Status, rec.OrderRows, rec.DeliveryRows,
	)

	switch rec.Status {
	case ports.RunStatusOK:
	case ports.RunStatusPartial:
		log.Printf("partial success: %v", runErr)
		os.Exit(exitPartial)
	default:
		log.Fatal(runErr)
	}
}

// newPublisher prefers the Sheets API when a spreadsheet id is configured and
// falls back to a local workbook for offline runs.
func newPublisher(cfg config.Config) (ports.SheetPublisher, error) {
	if cfg.SpreadsheetID != "" {
		tokens, err := newTokenSource(cfg)
		if err != nil {
			return nil, err
		}
		return sheets.NewPublisher(tokens, cfg.SpreadsheetID, cfg.CellRange)
	}

	if cfg.WorkbookPath != "" {
		return workbook.NewPublisher(cfg.WorkbookPath)
	}

	return nil, errors.New("either spreadsheet_id or workbook_path is required")
}

func newTokenSource(cfg config.Config) (sheets.TokenSource, error) {
	if cfg.RefreshToken != "" {
		return sheets.NewRefreshTokenSource(cfg.ClientID, cfg.ClientSecret, cfg.RefreshToken)
	}
	if cfg.AccessToken != "" {
		return sheets.StaticTokenSource{AccessToken: cfg.AccessToken}, nil
	}
	return nil, errors.New("spreadsheet publishing needs access_token or refresh_token credentials")
}

func newLedger(cfg config.Config) (ports.RunLedger, func(), error) {
	if cfg.DatabaseURL != "" {
		db, err := ledger.OpenPostgres(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		return ledger.NewSQLRunLedger(db), func() { db.Close() }, nil
	}

	db, err := ledger.OpenSqlite(cfg.LedgerPath)
	if err != nil {
		return nil, nil, err
	}
	return ledger.NewSqliteRunLedger(db), func() { db.Close() }, nil
}

func resolveToday(runDate string, loc *time.Location) (domain.Date, error) {
	if runDate == "" {
		return domain.DateOf(time.Now().In(loc)), nil
	}

	t, err := time.ParseInLocation("2006-01-02", runDate, loc)
	if err != nil {
		return domain.Date{}, fmt.Errorf("parse run date %q: %w", runDate, err)
	}
	return domain.DateOf(t), nil
}

func manifestWindow(w config.WindowConfig) services.ManifestWindow {
	window := services.DefaultManifestWindow()
	if w.WeekdayStart != "" {
		window.WeekdayStart = w.WeekdayStart
	}
	if w.SaturdayStart != "" {
		window.SaturdayStart = w.SaturdayStart
	}
	if w.WindowHours > 0 {
		window.Window = time.Duration(w.WindowHours) * time.Hour
	}
	if w.ServiceTimeMinutes > 0 {
		window.ServiceTimeMinutes = w.ServiceTimeMinutes
	}
	return window
}

func sheetTabs(t config.TabsConfig) services.SheetTabs {
	tabs := services.DefaultSheetTabs()
	if t.Orders != "" {
		tabs.Orders = t.Orders
	}
	if t.Deliveries != "" {
		tabs.Deliveries = t.Deliveries
	}
	if t.Manifest != "" {
		tabs.Manifest = t.Manifest
	}
	if t.Menu != "" {
		tabs.Menu = t.Menu
	}
	return tabs
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
