package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"neonpos/backend/internal/domain"
)

var salesCSVHeader = []string{"Invoice No", "Date", "Customer", "Total", "Status"}

// WriteSalesCSV streams the sales report in the export format the
// reports page downloads: one row per sale, most recent first.
func WriteSalesCSV(w io.Writer, sales []domain.Sale) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(salesCSVHeader); err != nil {
		return err
	}

	for _, sale := range sales {
		date := sale.Date
		if parsed, err := time.Parse(time.RFC3339, sale.Date); err == nil {
			date = parsed.Format("2006-01-02")
		}
		row := []string{
			sale.InvoiceNo,
			date,
			sale.Customer.Name,
			fmt.Sprintf("%.2f", sale.Total),
			sale.Payment.Status,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
