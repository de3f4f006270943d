package state

import "neonpos/backend/internal/domain"

// Reducer applies actions to a state snapshot. It carries the seeded
// initial state so ResetData can restore it; everything else is a pure
// function of (previous state, action).
type Reducer struct {
	initial domain.StoreState
}

func NewReducer(initial domain.StoreState) Reducer {
	return Reducer{initial: initial}
}

// Reduce returns the next state for one action. Transitions never
// mutate the previous snapshot: affected collections are rebuilt,
// untouched ones are carried over as-is so observers can detect change
// cheaply. Malformed input degrades to a no-op on the affected line;
// an action outside the known set returns the state unchanged.
func (r Reducer) Reduce(s domain.StoreState, action Action) domain.StoreState {
	switch a := action.(type) {
	case AddSale:
		next := s
		next.Sales = prependSale(s.Sales, a.Sale)
		next.Products = applyStockDeltas(s.Products, saleDeltas(a.Sale.Items))
		return next

	case AddPurchase:
		next := s
		next.Purchases = prependPurchase(s.Purchases, a.Purchase)
		next.Products = applyStockDeltas(s.Products, purchaseDeltas(a.Purchase.Items))
		return next

	case UpsertProduct:
		next := s
		next.Products = upsertProduct(s.Products, a.Product)
		return next

	case UpdateStock:
		next := s
		next.Products = applyStockDeltas(s.Products, map[string]int{a.ProductID: a.Adjustment})
		return next

	case UpdateSettings:
		next := s
		next.Settings = mergeSettings(s.Settings, a.Patch)
		return next

	case ResetData:
		return r.initial

	default:
		return s
	}
}

// saleDeltas maps product id to the negative stock delta of its first
// matching line. Only the first line per product counts, matching how
// the catalog lookup resolves duplicate lines.
func saleDeltas(items []domain.SaleItem) map[string]int {
	deltas := make(map[string]int, len(items))
	for _, item := range items {
		if _, seen := deltas[item.ProductID]; !seen {
			deltas[item.ProductID] = -item.Qty
		}
	}
	return deltas
}

func purchaseDeltas(items []domain.PurchaseItem) map[string]int {
	deltas := make(map[string]int, len(items))
	for _, item := range items {
		if _, seen := deltas[item.ProductID]; !seen {
			deltas[item.ProductID] = item.Qty
		}
	}
	return deltas
}

// applyStockDeltas rebuilds the product list with adjusted stock. When
// no delta matches a product the original slice is returned untouched.
// There is no floor: stock may go negative.
func applyStockDeltas(products []domain.Product, deltas map[string]int) []domain.Product {
	touched := false
	for _, p := range products {
		if _, ok := deltas[p.ID]; ok {
			touched = true
			break
		}
	}
	if !touched {
		return products
	}

	next := make([]domain.Product, len(products))
	copy(next, products)
	for i := range next {
		if delta, ok := deltas[next[i].ID]; ok {
			next[i].Stock += delta
		}
	}
	return next
}

func upsertProduct(products []domain.Product, product domain.Product) []domain.Product {
	for i, p := range products {
		if p.ID == product.ID {
			next := make([]domain.Product, len(products))
			copy(next, products)
			next[i] = product
			return next
		}
	}

	next := make([]domain.Product, len(products)+1)
	copy(next, products)
	next[len(products)] = product
	return next
}

func prependSale(sales []domain.Sale, sale domain.Sale) []domain.Sale {
	next := make([]domain.Sale, 0, len(sales)+1)
	next = append(next, sale)
	return append(next, sales...)
}

func prependPurchase(purchases []domain.Purchase, purchase domain.Purchase) []domain.Purchase {
	next := make([]domain.Purchase, 0, len(purchases)+1)
	next = append(next, purchase)
	return append(next, purchases...)
}

func mergeSettings(settings domain.AppSettings, patch SettingsPatch) domain.AppSettings {
	if patch.StoreName != nil {
		settings.StoreName = *patch.StoreName
	}
	if patch.Address != nil {
		settings.Address = *patch.Address
	}
	if patch.Currency != nil {
		settings.Currency = *patch.Currency
	}
	if patch.TaxRate != nil {
		settings.TaxRate = *patch.TaxRate
	}
	if patch.Theme != nil {
		settings.Theme = *patch.Theme
	}
	return settings
}
