package services

import (
	"context"
	"fmt"
	"orders-report-service/internal/domain"
	"orders-report-service/internal/platform/obs"
	"orders-report-service/internal/ports"
	"time"
)

// SheetTabs names the destination tab for each published table.
type SheetTabs struct {
	Orders     string
	Deliveries string
	Manifest   string
	Menu       string
}

func DefaultSheetTabs() SheetTabs {
	return SheetTabs{
		Orders:     "data",
		Deliveries: "Order Processing",
		Manifest:   "Routing",
		Menu:       "Menu Items",
	}
}

type RunRequest struct {
	Today    domain.Date
	Location *time.Location
	Window   ManifestWindow
	Tabs     SheetTabs
}

// RunResult reports row counts for the ledger even when publishing fails.
type RunResult struct {
	OrderRows    int
	DeliveryRows int
}

// Run performs one full pull-transform-publish cycle.
//
// Local files are written before any spreadsheet call; a sheet failure after
// that point returns a PartialPublishError so the caller can surface the
// files-written-sheet-stale state instead of reporting plain failure.
func Run(
	ctx context.Context,
	req RunRequest,
	source ports.RestaurantSource,
	files ports.TableWriter,
	sheets ports.SheetPublisher,
) (_ RunResult, err error) {
	defer obs.Time(ctx, "pipeline.Run")(&err)

	var res RunResult

	menu, err := source.FetchMenu(ctx)
	if err != nil {
		return res, fmt.Errorf("run: fetch menu: %w", err)
	}

	catalog, err := BuildCatalog(menu)
	if err != nil {
		return res, fmt.Errorf("run: build catalog: %w", err)
	}

	orders, err := source.FetchOrders(ctx)
	if err != nil {
		return res, fmt.Errorf("run: fetch orders: %w", err)
	}

	flat, err := FlattenOrders(orders, catalog)
	if err != nil {
		return res, fmt.Errorf("run: flatten orders: %w", err)
	}

	report := FormatReport(flat, catalog, req.Location)
	daily := SelectDailyDeliveries(report, req.Today)

	manifest, err := BuildManifest(daily, req.Window)
	if err != nil {
		return res, fmt.Errorf("run: %w", err)
	}

	res.OrderRows = len(report.Orders)
	res.DeliveryRows = len(daily.Orders)

	tables := []struct {
		name  string
		tab   string
		table [][]string
	}{
		{"orders", req.Tabs.Orders, report.Table()},
		{"deliveries", req.Tabs.Deliveries, daily.Table()},
		{"manifest", req.Tabs.Manifest, manifest.Table()},
		{"menu_items", req.Tabs.Menu, catalog.Table()},
	}

	for _, t := range tables {
		if err := files.WriteTable(t.name, t.table); err != nil {
			return res, fmt.Errorf("run: write %s table: %w", t.name, err)
		}
	}

	for _, t := range tables {
		if err := sheets.Publish(ctx, t.tab, t.table); err != nil {
			return res, &domain.PartialPublishError{
				Err: fmt.Errorf("publish tab %q: %w", t.tab, err),
			}
		}
	}

	return res, nil
}
