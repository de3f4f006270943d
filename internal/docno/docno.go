// Package docno generates the human-readable document codes printed on
// sales invoices and purchase orders. Codes are display identifiers
// only; entity identity uses opaque ids and uniqueness is not enforced
// by the store.
package docno

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

// Invoice returns an INV- code derived from the millisecond tail of
// the clock, the same shape the storefront prints.
func Invoice(now time.Time) string {
	return fmt.Sprintf("INV-%06d", now.UnixMilli()%1_000_000)
}

// PO returns a PO- code for a purchase order.
func PO(now time.Time) string {
	return fmt.Sprintf("PO-%06d", now.UnixMilli()%1_000_000)
}

// Opaque returns a prefixed random identifier for records created
// outside the seed set.
func Opaque(prefix string) string {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		return fmt.Sprintf("%s-%d", prefix, time.Now().UnixNano())
	}
	return fmt.Sprintf("%s-%s", prefix, hex.EncodeToString(buf))
}
