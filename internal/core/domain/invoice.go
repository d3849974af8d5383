package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus is the settlement state of an invoice.
type InvoiceStatus string

const (
	InvoicePending   InvoiceStatus = "PENDING"
	InvoicePaid      InvoiceStatus = "PAID"
	InvoiceCancelled InvoiceStatus = "CANCELLED"
)

// Invoice is owned by a subscription and only read here, except for the pending -> paid transition.
type Invoice struct {
	InvoiceID      int64           `json:"invoiceID"`
	SubscriptionID int64           `json:"subscriptionID"`
	BaseCurrencyID *int64          `json:"baseCurrencyID"` // Nullable; required for payments
	BaseCurrency   *Currency       `json:"baseCurrency,omitempty"`
	TotalAmount    decimal.Decimal `json:"totalAmount"` // Fixed at creation
	Status         InvoiceStatus   `json:"status"`
	PaidAt         *time.Time      `json:"paidAt"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// Precision returns the base currency precision, 2 when the currency was not loaded.
func (i Invoice) Precision() int32 {
	if i.BaseCurrency != nil {
		return i.BaseCurrency.Precision
	}
	return 2
}

// InvoiceBalance is the derived payment state of an invoice, recomputed on every read.
type InvoiceBalance struct {
	Invoice
	TotalPaid   decimal.Decimal `json:"totalPaid"`
	Outstanding decimal.Decimal `json:"outstanding"`
}
