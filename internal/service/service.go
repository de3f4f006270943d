package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"neonpos/backend/internal/docno"
	"neonpos/backend/internal/domain"
	"neonpos/backend/internal/state"
)

var (
	ErrInvalidSale     = errors.New("invalid sale")
	ErrInvalidPurchase = errors.New("invalid purchase")
	ErrInvalidProduct  = errors.New("invalid product")
)

// Service is the sanctioned caller in front of the store: it performs
// the presentation-layer validation and derivation the reducer itself
// does not, then dispatches. The store is resolved from the context it
// was provisioned into; using a bare context is a programming error
// and panics.
type Service struct {
	log *zap.Logger
}

func New(log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{log: log}
}

// Snapshot returns the current read-only state.
func (s *Service) Snapshot(ctx context.Context) domain.StoreState {
	return state.MustFromContext(ctx).Snapshot()
}

// RecordSale validates and completes a sale draft, snapshots catalog
// data into its lines, derives subtotal/tax/total and payment status,
// and dispatches it. Lines referencing unknown products are kept
// as-is; the reducer skips their stock effect.
func (s *Service) RecordSale(ctx context.Context, draft domain.SaleDraft) (domain.Sale, error) {
	st := state.MustFromContext(ctx)
	snapshot := st.Snapshot()

	customer := draft.Customer
	customer.Name = strings.TrimSpace(customer.Name)
	if customer.Name == "" {
		return domain.Sale{}, fmt.Errorf("%w: customer name required", ErrInvalidSale)
	}
	if customer.ID == "" {
		customer.ID = docno.Opaque("cust")
	}
	if len(draft.Items) == 0 {
		return domain.Sale{}, fmt.Errorf("%w: at least one item required", ErrInvalidSale)
	}

	method := draft.PaymentMethod
	switch method {
	case domain.PaymentMethodCash, domain.PaymentMethodCard, domain.PaymentMethodUPI, domain.PaymentMethodOther:
	case "":
		method = domain.PaymentMethodCard
	default:
		return domain.Sale{}, fmt.Errorf("%w: unknown payment method %q", ErrInvalidSale, method)
	}

	catalog := productIndex(snapshot.Products)
	items := make([]domain.SaleItem, 0, len(draft.Items))
	subtotal := 0.0
	for _, item := range draft.Items {
		if item.Qty < 1 {
			return domain.Sale{}, fmt.Errorf("%w: qty must be positive", ErrInvalidSale)
		}
		if item.Discount < 0 || item.UnitPrice < 0 {
			return domain.Sale{}, fmt.Errorf("%w: negative amount", ErrInvalidSale)
		}

		if product, ok := catalog[item.ProductID]; ok {
			item.Name = product.Name
			item.BuyPrice = product.BuyPrice
			if item.UnitPrice == 0 {
				item.UnitPrice = product.SellPrice
			}
		}

		subtotal += item.UnitPrice*float64(item.Qty) - item.Discount
		items = append(items, item)
	}

	tax := subtotal * snapshot.Settings.TaxRate / 100
	total := subtotal + tax

	status := domain.PaymentStatusPartial
	if draft.PaidAmount >= total {
		status = domain.PaymentStatusPaid
	}

	now := time.Now().UTC()
	sale := domain.Sale{
		ID:        uuid.NewString(),
		InvoiceNo: docno.Invoice(now),
		Date:      now.Format(time.RFC3339),
		Customer:  customer,
		Items:     items,
		Subtotal:  subtotal,
		Tax:       tax,
		Total:     total,
		Payment: domain.Payment{
			Status:     status,
			Method:     method,
			PaidAmount: draft.PaidAmount,
		},
	}

	st.Dispatch(state.AddSale{Sale: sale})
	s.log.Info("sale recorded",
		zap.String("invoice_no", sale.InvoiceNo),
		zap.String("customer", sale.Customer.Name),
		zap.Float64("total", sale.Total),
		zap.String("payment_status", sale.Payment.Status),
	)

	return sale, nil
}

// RecordPurchase validates and completes a purchase draft. The total
// is computed here, not by the reducer.
func (s *Service) RecordPurchase(ctx context.Context, draft domain.PurchaseDraft) (domain.Purchase, error) {
	st := state.MustFromContext(ctx)
	snapshot := st.Snapshot()

	supplier := draft.Supplier
	supplier.Name = strings.TrimSpace(supplier.Name)
	if supplier.Name == "" {
		return domain.Purchase{}, fmt.Errorf("%w: supplier name required", ErrInvalidPurchase)
	}
	if supplier.ID == "" {
		supplier.ID = docno.Opaque("sup")
	}
	if len(draft.Items) == 0 {
		return domain.Purchase{}, fmt.Errorf("%w: at least one item required", ErrInvalidPurchase)
	}

	status := draft.Status
	switch status {
	case domain.PurchaseStatusReceived, domain.PurchaseStatusPending, domain.PurchaseStatusCancelled:
	case "":
		status = domain.PurchaseStatusReceived
	default:
		return domain.Purchase{}, fmt.Errorf("%w: unknown status %q", ErrInvalidPurchase, status)
	}

	catalog := productIndex(snapshot.Products)
	items := make([]domain.PurchaseItem, 0, len(draft.Items))
	total := 0.0
	for _, item := range draft.Items {
		if item.Qty < 1 {
			return domain.Purchase{}, fmt.Errorf("%w: qty must be positive", ErrInvalidPurchase)
		}
		if item.UnitCost < 0 {
			return domain.Purchase{}, fmt.Errorf("%w: negative unit cost", ErrInvalidPurchase)
		}

		if product, ok := catalog[item.ProductID]; ok {
			item.Name = product.Name
			if item.UnitCost == 0 {
				item.UnitCost = product.BuyPrice
			}
		}

		total += item.UnitCost * float64(item.Qty)
		items = append(items, item)
	}

	now := time.Now().UTC()
	purchase := domain.Purchase{
		ID:       uuid.NewString(),
		PONo:     docno.PO(now),
		Date:     now.Format(time.RFC3339),
		Supplier: supplier,
		Items:    items,
		Total:    total,
		Status:   status,
	}

	st.Dispatch(state.AddPurchase{Purchase: purchase})
	s.log.Info("purchase recorded",
		zap.String("po_no", purchase.PONo),
		zap.String("supplier", purchase.Supplier.Name),
		zap.Float64("total", purchase.Total),
		zap.String("status", purchase.Status),
	)

	return purchase, nil
}

// SaveProduct upserts a catalog entry, assigning an id when absent.
func (s *Service) SaveProduct(ctx context.Context, product domain.Product) (domain.Product, error) {
	product.Name = strings.TrimSpace(product.Name)
	product.SKU = strings.ToUpper(strings.TrimSpace(product.SKU))
	if product.Name == "" || product.SKU == "" {
		return domain.Product{}, fmt.Errorf("%w: sku and name required", ErrInvalidProduct)
	}
	if product.BuyPrice < 0 || product.SellPrice < 0 {
		return domain.Product{}, fmt.Errorf("%w: negative price", ErrInvalidProduct)
	}
	if product.ID == "" {
		product.ID = uuid.NewString()
	}

	state.MustFromContext(ctx).Dispatch(state.UpsertProduct{Product: product})
	s.log.Info("product saved", zap.String("sku", product.SKU), zap.String("id", product.ID))
	return product, nil
}

// AdjustStock applies a signed manual stock correction.
func (s *Service) AdjustStock(ctx context.Context, productID string, adjustment int) error {
	if strings.TrimSpace(productID) == "" {
		return fmt.Errorf("%w: product id required", ErrInvalidProduct)
	}

	state.MustFromContext(ctx).Dispatch(state.UpdateStock{ProductID: productID, Adjustment: adjustment})
	s.log.Info("stock adjusted", zap.String("product_id", productID), zap.Int("adjustment", adjustment))
	return nil
}

// UpdateSettings shallow-merges a settings patch.
func (s *Service) UpdateSettings(ctx context.Context, patch state.SettingsPatch) domain.AppSettings {
	next := state.MustFromContext(ctx).Dispatch(state.UpdateSettings{Patch: patch})
	s.log.Info("settings updated", zap.String("store_name", next.Settings.StoreName))
	return next.Settings
}

// Reset discards all mutations and restores the seeded initial state.
func (s *Service) Reset(ctx context.Context) domain.StoreState {
	next := state.MustFromContext(ctx).Dispatch(state.ResetData{})
	s.log.Warn("store data reset")
	return next
}

func productIndex(products []domain.Product) map[string]domain.Product {
	index := make(map[string]domain.Product, len(products))
	for _, p := range products {
		index[p.ID] = p
	}
	return index
}
