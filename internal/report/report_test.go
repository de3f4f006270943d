package report

import (
	"math"
	"testing"
	"time"

	"neonpos/backend/internal/domain"
)

var reportNow = time.Date(2024, 5, 10, 15, 0, 0, 0, time.UTC)

func fixtureState() domain.StoreState {
	day := func(offset int) string {
		return reportNow.Add(-time.Duration(offset) * 24 * time.Hour).Format(time.RFC3339)
	}
	return domain.StoreState{
		Settings: domain.AppSettings{StoreName: "Sujit Electronics", Address: "Bharatpur-11, Chitwan", Currency: "USD", TaxRate: 8, Theme: domain.ThemeLight},
		Products: []domain.Product{
			{ID: "1", SKU: "NEON-A", Name: "Widget A", Category: "Phones", Stock: 2, LowStockAt: 5},
			{ID: "2", SKU: "NEON-B", Name: "Widget B", Category: "Phones", Stock: 30, LowStockAt: 5},
			{ID: "3", SKU: "NEON-C", Name: "Widget C", Category: "Audio", Stock: 7, LowStockAt: 7},
		},
		Sales: []domain.Sale{
			{
				ID: "s1", InvoiceNo: "INV-000001", Date: day(0), Total: 216,
				Customer: domain.Customer{Name: "John Doe"},
				Items:    []domain.SaleItem{{ProductID: "1", Name: "Widget A", Qty: 2, UnitPrice: 100, BuyPrice: 60}},
				Payment:  domain.Payment{Status: domain.PaymentStatusPaid, Method: domain.PaymentMethodCard, PaidAmount: 216},
			},
			{
				ID: "s2", InvoiceNo: "INV-000002", Date: day(3), Total: 108,
				Customer: domain.Customer{Name: "Jane Smith"},
				Items:    []domain.SaleItem{{ProductID: "2", Name: "Widget B", Qty: 1, UnitPrice: 100, BuyPrice: 55}},
				Payment:  domain.Payment{Status: domain.PaymentStatusPartial, Method: domain.PaymentMethodCash, PaidAmount: 50},
			},
			{
				ID: "s3", InvoiceNo: "INV-000003", Date: day(45), Total: 500,
				Customer: domain.Customer{Name: "Cipher Zero"},
				Items:    []domain.SaleItem{{ProductID: "3", Name: "Widget C", Qty: 5, UnitPrice: 100, BuyPrice: 70}},
				Payment:  domain.Payment{Status: domain.PaymentStatusPaid, Method: domain.PaymentMethodUPI, PaidAmount: 500},
			},
		},
	}
}

func TestSummarize(t *testing.T) {
	s := fixtureState()
	sum := Summarize(s, reportNow)

	if sum.TodayRevenue != 216 {
		t.Fatalf("expected today revenue 216, got %v", sum.TodayRevenue)
	}
	if sum.MonthRevenue != 216+108 {
		t.Fatalf("expected month revenue 324, got %v", sum.MonthRevenue)
	}
	if sum.TotalRevenue != 216+108+500 {
		t.Fatalf("expected total revenue 824, got %v", sum.TotalRevenue)
	}
	wantCost := 2*60.0 + 55 + 5*70
	if sum.TotalCost != wantCost {
		t.Fatalf("expected cost %v, got %v", wantCost, sum.TotalCost)
	}
	if sum.EstimatedProfit != 824-wantCost {
		t.Fatalf("expected profit %v, got %v", 824-wantCost, sum.EstimatedProfit)
	}
	wantMargin := (824 - wantCost) / 824 * 100
	if math.Abs(sum.MarginPercent-wantMargin) > 1e-9 {
		t.Fatalf("expected margin %v, got %v", wantMargin, sum.MarginPercent)
	}
	// Products 1 (2<=5) and 3 (7<=7) are at or below threshold.
	if sum.LowStockCount != 2 {
		t.Fatalf("expected 2 low-stock products, got %d", sum.LowStockCount)
	}
}

func TestLowStockIncludesThresholdBoundary(t *testing.T) {
	low := LowStock(fixtureState())
	if len(low) != 2 {
		t.Fatalf("expected 2 products, got %d", len(low))
	}
	if low[0].ID != "1" || low[1].ID != "3" {
		t.Fatalf("expected catalog order 1,3, got %s,%s", low[0].ID, low[1].ID)
	}
}

func TestStockByCategory(t *testing.T) {
	totals := StockByCategory(fixtureState())
	if totals["Phones"] != 32 || totals["Audio"] != 7 {
		t.Fatalf("unexpected category totals: %+v", totals)
	}
}

func TestRevenueSeries(t *testing.T) {
	series := RevenueSeries(fixtureState(), reportNow, 7)
	if len(series) != 7 {
		t.Fatalf("expected 7 entries, got %d", len(series))
	}
	if series[6].Total != 216 {
		t.Fatalf("expected today's total 216 at the end, got %v", series[6].Total)
	}
	if series[3].Total != 108 {
		t.Fatalf("expected 108 three days back, got %v", series[3].Total)
	}
	for i := 1; i < len(series); i++ {
		if series[i].Date <= series[i-1].Date {
			t.Fatalf("series must be oldest first: %s before %s", series[i-1].Date, series[i].Date)
		}
	}
}
