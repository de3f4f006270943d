// Package report holds the read-side computations over a state
// snapshot: dashboard figures, low-stock listing, revenue series. They
// derive values for display and impose no invariants on the store.
package report

import (
	"strings"
	"time"

	"neonpos/backend/internal/domain"
)

type Summary struct {
	TodayRevenue    float64 `json:"today_revenue"`
	MonthRevenue    float64 `json:"month_revenue"`
	TotalRevenue    float64 `json:"total_revenue"`
	TotalCost       float64 `json:"total_cost"`
	EstimatedProfit float64 `json:"estimated_profit"`
	MarginPercent   float64 `json:"margin_percent"`
	LowStockCount   int     `json:"low_stock_count"`
}

type DailyRevenue struct {
	Date  string  `json:"date"`
	Total float64 `json:"total"`
}

// Summarize computes the dashboard figures for one snapshot. Cost and
// profit come from the buy prices captured on sale lines, not the live
// catalog, so history stays stable when prices change.
func Summarize(s domain.StoreState, now time.Time) Summary {
	today := now.UTC().Format("2006-01-02")
	month := now.UTC().Format("2006-01")

	var sum Summary
	for _, sale := range s.Sales {
		sum.TotalRevenue += sale.Total
		if strings.HasPrefix(sale.Date, today) {
			sum.TodayRevenue += sale.Total
		}
		if strings.HasPrefix(sale.Date, month) {
			sum.MonthRevenue += sale.Total
		}
		for _, item := range sale.Items {
			sum.TotalCost += item.BuyPrice * float64(item.Qty)
		}
	}
	sum.EstimatedProfit = sum.TotalRevenue - sum.TotalCost
	if sum.TotalRevenue > 0 {
		sum.MarginPercent = sum.EstimatedProfit / sum.TotalRevenue * 100
	}
	sum.LowStockCount = len(LowStock(s))
	return sum
}

// LowStock returns the products at or below their restock threshold,
// in catalog order.
func LowStock(s domain.StoreState) []domain.Product {
	low := make([]domain.Product, 0)
	for _, p := range s.Products {
		if p.Stock <= p.LowStockAt {
			low = append(low, p)
		}
	}
	return low
}

// StockByCategory totals current stock per category.
func StockByCategory(s domain.StoreState) map[string]int {
	totals := make(map[string]int)
	for _, p := range s.Products {
		totals[p.Category] += p.Stock
	}
	return totals
}

// RevenueSeries returns per-day revenue totals for the trailing window
// ending today, oldest first.
func RevenueSeries(s domain.StoreState, now time.Time, days int) []DailyRevenue {
	series := make([]DailyRevenue, 0, days)
	for i := days - 1; i >= 0; i-- {
		day := now.UTC().Add(-time.Duration(i) * 24 * time.Hour).Format("2006-01-02")
		total := 0.0
		for _, sale := range s.Sales {
			if strings.HasPrefix(sale.Date, day) {
				total += sale.Total
			}
		}
		series = append(series, DailyRevenue{Date: day, Total: total})
	}
	return series
}
