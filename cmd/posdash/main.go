package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"neonpos/backend/internal/config"
	"neonpos/backend/internal/report"
	"neonpos/backend/internal/service"
	"neonpos/backend/internal/state"
	"neonpos/backend/pkg/logger"
)

func main() {
	cfg := config.Load()

	baseLogger := logger.Must(logger.New())
	defer func() { _ = baseLogger.Sync() }()
	zap.ReplaceGlobals(baseLogger)

	now := time.Now().UTC()
	initial := state.Seed(now)
	initial.Settings = cfg.Settings()

	st := state.New(initial)
	ctx := state.NewContext(context.Background(), st)
	svc := service.New(logger.Named(baseLogger, "svc.pos"))

	snapshot := svc.Snapshot(ctx)
	summary := report.Summarize(snapshot, now)
	baseLogger.Info("dashboard",
		zap.String("store", snapshot.Settings.StoreName),
		zap.Float64("today_revenue", summary.TodayRevenue),
		zap.Float64("month_revenue", summary.MonthRevenue),
		zap.Float64("estimated_profit", summary.EstimatedProfit),
		zap.Float64("margin_percent", summary.MarginPercent),
		zap.Int("low_stock_count", summary.LowStockCount),
	)

	for _, p := range report.LowStock(snapshot) {
		baseLogger.Warn("low stock",
			zap.String("sku", p.SKU),
			zap.String("name", p.Name),
			zap.Int("stock", p.Stock),
			zap.Int("threshold", p.LowStockAt),
		)
	}

	if len(snapshot.Sales) > 0 {
		doc := report.RenderInvoice(snapshot.Settings, snapshot.Sales[0])
		fmt.Println(doc.PreviewText)
	}

	if os.Getenv("EXPORT_SALES_CSV") == "1" {
		if err := report.WriteSalesCSV(os.Stdout, snapshot.Sales); err != nil {
			baseLogger.Fatal("csv export failed", zap.Error(err))
		}
	}
}
