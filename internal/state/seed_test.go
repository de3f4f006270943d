package state

import (
	"reflect"
	"testing"
	"time"

	"neonpos/backend/internal/domain"
)

func TestSeedIsDeterministic(t *testing.T) {
	ref := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	if !reflect.DeepEqual(Seed(ref), Seed(ref)) {
		t.Fatalf("seed must be deterministic for a fixed reference time")
	}
}

func TestSeedShape(t *testing.T) {
	s := Seed(time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC))

	if len(s.Products) != 9 {
		t.Fatalf("expected 9 products, got %d", len(s.Products))
	}
	categories := map[string]bool{}
	for _, p := range s.Products {
		categories[p.Category] = true
	}
	if len(categories) != 5 {
		t.Fatalf("expected 5 categories, got %d", len(categories))
	}
	if len(s.Customers) != 3 {
		t.Fatalf("expected 3 customers, got %d", len(s.Customers))
	}
	if len(s.Suppliers) != 2 {
		t.Fatalf("expected 2 suppliers, got %d", len(s.Suppliers))
	}
	if len(s.Sales) != 10 {
		t.Fatalf("expected 10 sales, got %d", len(s.Sales))
	}
	if len(s.Purchases) != 8 {
		t.Fatalf("expected 8 purchases, got %d", len(s.Purchases))
	}
}

func TestSeedHistoryWindows(t *testing.T) {
	ref := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	s := Seed(ref)

	for i, sale := range s.Sales {
		date, err := time.Parse(time.RFC3339, sale.Date)
		if err != nil {
			t.Fatalf("sale %d has malformed date %q: %v", i, sale.Date, err)
		}
		age := ref.Sub(date)
		if age < 0 || age > 10*24*time.Hour {
			t.Fatalf("sale %d outside trailing 10 days: %v", i, age)
		}
	}

	for i, purchase := range s.Purchases {
		date, err := time.Parse(time.RFC3339, purchase.Date)
		if err != nil {
			t.Fatalf("purchase %d has malformed date %q: %v", i, purchase.Date, err)
		}
		age := ref.Sub(date)
		if age < 0 || age > 24*24*time.Hour {
			t.Fatalf("purchase %d outside trailing 24 days: %v", i, age)
		}
	}

	if s.Purchases[0].Status != domain.PurchaseStatusPending {
		t.Fatalf("most recent purchase should be pending, got %s", s.Purchases[0].Status)
	}
	for _, p := range s.Purchases[1:] {
		if p.Status != domain.PurchaseStatusReceived {
			t.Fatalf("expected received status, got %s", p.Status)
		}
	}
}

func TestSeedSalePaymentsReflectTotals(t *testing.T) {
	s := Seed(time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC))

	for i, sale := range s.Sales {
		switch sale.Payment.Status {
		case domain.PaymentStatusPaid:
			if sale.Payment.PaidAmount < sale.Total {
				t.Fatalf("sale %d marked paid but paid %v of %v", i, sale.Payment.PaidAmount, sale.Total)
			}
		case domain.PaymentStatusPartial:
			if sale.Payment.PaidAmount >= sale.Total {
				t.Fatalf("sale %d marked partial but fully covered", i)
			}
		default:
			t.Fatalf("sale %d has unexpected status %s", i, sale.Payment.Status)
		}
	}
}
