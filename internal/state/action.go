package state

import "neonpos/backend/internal/domain"

// Action is the closed set of store transitions. The marker method keeps
// the set sealed so the reducer's type switch covers every variant.
type Action interface {
	isAction()
}

// AddSale prepends a fully-formed sale and decrements stock for every
// line whose product id matches a catalog entry.
type AddSale struct {
	Sale domain.Sale
}

// AddPurchase prepends a fully-formed purchase and increments stock for
// every line whose product id matches a catalog entry.
type AddPurchase struct {
	Purchase domain.Purchase
}

// UpsertProduct replaces the product with the same id in place, or
// appends it as new. The id is the sole identity key.
type UpsertProduct struct {
	Product domain.Product
}

// UpdateStock adds a signed adjustment to one product's stock. Unknown
// product ids are a no-op.
type UpdateStock struct {
	ProductID  string
	Adjustment int
}

// UpdateSettings shallow-merges the patch into the current settings.
// Nil fields retain their prior value.
type UpdateSettings struct {
	Patch SettingsPatch
}

// ResetData discards every mutation and restores the seeded initial state.
type ResetData struct{}

// SettingsPatch is a partial settings update in the same pointer-field
// style as the product update request.
type SettingsPatch struct {
	StoreName *string
	Address   *string
	Currency  *string
	TaxRate   *float64
	Theme     *string
}

func (AddSale) isAction()        {}
func (AddPurchase) isAction()    {}
func (UpsertProduct) isAction()  {}
func (UpdateStock) isAction()    {}
func (UpdateSettings) isAction() {}
func (ResetData) isAction()      {}
