package report

import (
	"fmt"
	"strings"
	"time"

	"neonpos/backend/internal/domain"
)

// InvoiceDocument is a printable rendering of one sale: a plain-text
// preview plus the equivalent ESC/POS byte stream for receipt printers.
type InvoiceDocument struct {
	InvoiceNo   string `json:"invoice_no"`
	PreviewText string `json:"preview_text"`
	Escpos      []byte `json:"escpos"`
	FileName    string `json:"file_name"`
}

// RenderInvoice builds the printable invoice for a sale. All values
// come from the sale's snapshot fields; the live catalog is not
// consulted.
func RenderInvoice(settings domain.AppSettings, sale domain.Sale) InvoiceDocument {
	date := sale.Date
	if parsed, err := time.Parse(time.RFC3339, sale.Date); err == nil {
		date = parsed.Format("2006-01-02 15:04:05")
	}

	lines := []string{
		settings.StoreName,
		settings.Address,
		"========================",
		"Invoice : " + sale.InvoiceNo,
		"Date    : " + date,
		"Customer: " + sale.Customer.Name,
		"------------------------",
	}
	for _, item := range sale.Items {
		lines = append(lines, fmt.Sprintf("%s x%d", item.Name, item.Qty))
		if item.Discount > 0 {
			lines = append(lines, fmt.Sprintf("  %.2f (disc %.2f)", item.UnitPrice*float64(item.Qty)-item.Discount, item.Discount))
		} else {
			lines = append(lines, fmt.Sprintf("  %.2f", item.UnitPrice*float64(item.Qty)))
		}
	}
	lines = append(lines,
		"------------------------",
		fmt.Sprintf("Subtotal : %.2f %s", sale.Subtotal, settings.Currency),
		fmt.Sprintf("Tax      : %.2f %s", sale.Tax, settings.Currency),
		fmt.Sprintf("Total    : %.2f %s", sale.Total, settings.Currency),
		fmt.Sprintf("Paid     : %.2f %s", sale.Payment.PaidAmount, settings.Currency),
		fmt.Sprintf("Due      : %.2f %s", sale.Total-sale.Payment.PaidAmount, settings.Currency),
		"Status   : "+sale.Payment.Status,
		"========================",
		"Thank you",
		"",
	)

	// Printer init, then line feed per row, then partial cut.
	escpos := []byte{0x1b, 0x40}
	for _, line := range lines {
		escpos = append(escpos, []byte(line)...)
		escpos = append(escpos, '\n')
	}
	escpos = append(escpos, []byte{0x1d, 0x56, 0x41, 0x10}...)

	return InvoiceDocument{
		InvoiceNo:   sale.InvoiceNo,
		PreviewText: strings.Join(lines, "\n"),
		Escpos:      escpos,
		FileName:    fmt.Sprintf("invoice-%s.bin", sale.ID),
	}
}
