package state

import (
	"fmt"
	"time"

	"neonpos/backend/internal/domain"
)

func seedSettings() domain.AppSettings {
	return domain.AppSettings{
		StoreName: "Sujit Electronics",
		Address:   "Bharatpur-11, Chitwan",
		Currency:  "USD",
		TaxRate:   8,
		Theme:     domain.ThemeLight,
	}
}

func seedProducts() []domain.Product {
	return []domain.Product{
		{ID: "1", SKU: "NEON-IP15-P", Name: "iPhone 15 Pro Max", Category: "Phones", Unit: "pcs", Stock: 12, BuyPrice: 126350, SellPrice: 159467, LowStockAt: 5},
		{ID: "2", SKU: "NEON-S24-U", Name: "Samsung Galaxy S24 Ultra", Category: "Phones", Unit: "pcs", Stock: 8, BuyPrice: 119700, SellPrice: 172767, LowStockAt: 3},
		{ID: "3", SKU: "NEON-MBP-14", Name: "MacBook Pro 14\" M3", Category: "Laptops", Unit: "pcs", Stock: 5, BuyPrice: 186200, SellPrice: 265867, LowStockAt: 2},
		{ID: "4", SKU: "NEON-ROG-ST", Name: "ASUS ROG Strix G16", Category: "Laptops", Unit: "pcs", Stock: 3, BuyPrice: 146300, SellPrice: 199367, LowStockAt: 2},
		{ID: "5", SKU: "NEON-SNY-XM5", Name: "Sony WH-1000XM5", Category: "Audio", Unit: "pcs", Stock: 25, BuyPrice: 29260, SellPrice: 46417, LowStockAt: 10},
		{ID: "6", SKU: "NEON-LGT-GPW", Name: "Logitech G Pro Wireless", Category: "Accessories", Unit: "pcs", Stock: 45, BuyPrice: 10640, SellPrice: 17157, LowStockAt: 15},
		{ID: "7", SKU: "NEON-SAM-G7", Name: "Samsung Odyssey G7 32\"", Category: "Monitors", Unit: "pcs", Stock: 6, BuyPrice: 59850, SellPrice: 92967, LowStockAt: 3},
		{ID: "8", SKU: "NEON-KEY-K2", Name: "Keychron K2 Mechanical", Category: "Accessories", Unit: "pcs", Stock: 18, BuyPrice: 8645, SellPrice: 13167, LowStockAt: 5},
		{ID: "9", SKU: "NEON-PWB-20", Name: "Anker PowerCore 20K", Category: "Accessories", Unit: "pcs", Stock: 50, BuyPrice: 4655, SellPrice: 7847, LowStockAt: 20},
	}
}

func seedCustomers() []domain.Customer {
	return []domain.Customer{
		{ID: "c1", Name: "John Doe", Phone: "555-0101", Address: "Upper Hive, Sector 4"},
		{ID: "c2", Name: "Jane Smith", Phone: "555-0202", Address: "Tech District 9"},
		{ID: "c3", Name: "Cipher Zero", Phone: "555-0999", Address: "Undergrid B3"},
	}
}

func seedSuppliers() []domain.Supplier {
	return []domain.Supplier{
		{ID: "sup1", Name: "Global Tech Distro", Phone: "999-222", Address: "Logistics Hub A"},
		{ID: "sup2", Name: "Neon-Core Manufacturing", Phone: "999-333", Address: "Factory Zone 7"},
	}
}

// seedSales generates ten synthetic sales over the trailing ten days,
// one per day, cycling products and customers. Every third sale is
// partial-paid, methods alternate card/cash.
func seedSales(ref time.Time, products []domain.Product, customers []domain.Customer) []domain.Sale {
	sales := make([]domain.Sale, 0, 10)
	for i := 0; i < 10; i++ {
		date := ref.Add(-time.Duration(i) * 24 * time.Hour)
		prod := products[i%len(products)]
		subtotal := prod.SellPrice
		tax := subtotal * 0.08

		status := domain.PaymentStatusPaid
		paid := subtotal + tax
		if i%3 == 0 {
			status = domain.PaymentStatusPartial
			paid = subtotal / 2
		}
		method := domain.PaymentMethodCash
		if i%2 == 0 {
			method = domain.PaymentMethodCard
		}

		sales = append(sales, domain.Sale{
			ID:        fmt.Sprintf("s%d", i),
			InvoiceNo: fmt.Sprintf("INV-202%d", i),
			Date:      date.Format(time.RFC3339),
			Customer:  customers[i%len(customers)],
			Items: []domain.SaleItem{{
				ProductID: prod.ID,
				Name:      prod.Name,
				Qty:       1,
				UnitPrice: prod.SellPrice,
				BuyPrice:  prod.BuyPrice,
				Discount:  0,
			}},
			Subtotal: subtotal,
			Tax:      tax,
			Total:    subtotal + tax,
			Payment: domain.Payment{
				Status:     status,
				Method:     method,
				PaidAmount: paid,
			},
		})
	}
	return sales
}

// seedPurchases generates eight synthetic purchases over the trailing
// 24 days, every third day. The most recent one is still pending.
func seedPurchases(ref time.Time, products []domain.Product, suppliers []domain.Supplier) []domain.Purchase {
	purchases := make([]domain.Purchase, 0, 8)
	for i := 0; i < 8; i++ {
		date := ref.Add(-time.Duration(i) * 3 * 24 * time.Hour)
		prod := products[i%len(products)]

		status := domain.PurchaseStatusReceived
		if i == 0 {
			status = domain.PurchaseStatusPending
		}

		purchases = append(purchases, domain.Purchase{
			ID:       fmt.Sprintf("p%d", i),
			PONo:     fmt.Sprintf("PO-88%d", i),
			Date:     date.Format(time.RFC3339),
			Supplier: suppliers[i%len(suppliers)],
			Items: []domain.PurchaseItem{{
				ProductID: prod.ID,
				Name:      prod.Name,
				Qty:       10,
				UnitCost:  prod.BuyPrice,
			}},
			Total:  prod.BuyPrice * 10,
			Status: status,
		})
	}
	return purchases
}

// Seed builds the demo dataset: nine products across five categories,
// three customers, two suppliers, and synthetic sale/purchase history
// anchored at ref. Deterministic for a fixed reference time.
func Seed(ref time.Time) domain.StoreState {
	products := seedProducts()
	customers := seedCustomers()
	suppliers := seedSuppliers()

	return domain.StoreState{
		Products:  products,
		Sales:     seedSales(ref, products, customers),
		Purchases: seedPurchases(ref, products, suppliers),
		Customers: customers,
		Suppliers: suppliers,
		Settings:  seedSettings(),
	}
}
