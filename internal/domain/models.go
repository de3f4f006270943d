package domain

type Product struct {
	ID         string  `json:"id"`
	SKU        string  `json:"sku"`
	Name       string  `json:"name"`
	Category   string  `json:"category"`
	Unit       string  `json:"unit"`
	Stock      int     `json:"stock"`
	BuyPrice   float64 `json:"buy_price"`
	SellPrice  float64 `json:"sell_price"`
	LowStockAt int     `json:"low_stock_at"`
}

type Customer struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

type Supplier struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

// SaleItem captures name and prices at sale time. The snapshot is
// deliberate: a stored invoice must not change when the catalog does.
type SaleItem struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Qty       int     `json:"qty"`
	UnitPrice float64 `json:"unit_price"`
	BuyPrice  float64 `json:"buy_price"`
	Discount  float64 `json:"discount"`
}

type Payment struct {
	Status     string  `json:"status"`
	Method     string  `json:"method"`
	PaidAmount float64 `json:"paid_amount"`
}

type Sale struct {
	ID        string     `json:"id"`
	InvoiceNo string     `json:"invoice_no"`
	Date      string     `json:"date"`
	Customer  Customer   `json:"customer"`
	Items     []SaleItem `json:"items"`
	Subtotal  float64    `json:"subtotal"`
	Tax       float64    `json:"tax"`
	Total     float64    `json:"total"`
	Payment   Payment    `json:"payment"`
}

type PurchaseItem struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Qty       int     `json:"qty"`
	UnitCost  float64 `json:"unit_cost"`
}

type Purchase struct {
	ID       string         `json:"id"`
	PONo     string         `json:"po_no"`
	Date     string         `json:"date"`
	Supplier Supplier       `json:"supplier"`
	Items    []PurchaseItem `json:"items"`
	Total    float64        `json:"total"`
	Status   string         `json:"status"`
}

type AppSettings struct {
	StoreName string  `json:"store_name"`
	Address   string  `json:"address"`
	Currency  string  `json:"currency"`
	TaxRate   float64 `json:"tax_rate"`
	Theme     string  `json:"theme"`
}

// StoreState is the aggregate root. It owns every collection and the
// settings; sales and purchases own their embedded customer/supplier
// snapshots and item lists outright.
type StoreState struct {
	Products  []Product   `json:"products"`
	Sales     []Sale      `json:"sales"`
	Purchases []Purchase  `json:"purchases"`
	Customers []Customer  `json:"customers"`
	Suppliers []Supplier  `json:"suppliers"`
	Settings  AppSettings `json:"settings"`
}

// SaleDraft is what the sale form submits: lines may carry only a
// product id and qty; name and prices are snapshotted from the live
// catalog before dispatch.
type SaleDraft struct {
	Customer      Customer   `json:"customer"`
	Items         []SaleItem `json:"items"`
	PaymentMethod string     `json:"payment_method"`
	PaidAmount    float64    `json:"paid_amount"`
}

type PurchaseDraft struct {
	Supplier Supplier       `json:"supplier"`
	Items    []PurchaseItem `json:"items"`
	Status   string         `json:"status"`
}

const (
	PaymentStatusPaid    = "paid"
	PaymentStatusUnpaid  = "unpaid"
	PaymentStatusPartial = "partial"
)

const (
	PaymentMethodCash  = "cash"
	PaymentMethodCard  = "card"
	PaymentMethodUPI   = "upi"
	PaymentMethodOther = "other"
)

const (
	PurchaseStatusReceived  = "received"
	PurchaseStatusPending   = "pending"
	PurchaseStatusCancelled = "cancelled"
)

const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)
