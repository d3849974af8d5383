package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus is the settlement status of a payment row.
type PaymentStatus string

const (
	PaymentSuccessful PaymentStatus = "SUCCESSFUL"
	PaymentFailed     PaymentStatus = "FAILED"
)

// MaxIdempotencyKeyLength is the longest idempotency key a payment can carry.
const MaxIdempotencyKeyLength = 128

// Payment is one payment attempt against an invoice. Rows are never mutated or deleted.
type Payment struct {
	PaymentID         int64           `json:"paymentID"`
	InvoiceID         int64           `json:"invoiceID"`
	QuoteID           *int64          `json:"quoteID"` // Nil only when paid in the base currency
	PaymentCurrencyID int64           `json:"paymentCurrencyID"`
	RawAmount         decimal.Decimal `json:"rawAmount"`  // In the payment currency
	BaseAmount        decimal.Decimal `json:"baseAmount"` // Converted into the invoice base currency
	Status            PaymentStatus   `json:"status"`
	Method            string          `json:"method"`
	ActorID           string          `json:"actorID"`
	ReceiptReference  *string         `json:"receiptReference"`
	IdempotencyKey    *string         `json:"idempotencyKey"`
	CreatedAt         time.Time       `json:"createdAt"`
}

// PaymentRegistration is the caller-supplied part of a payment. The converted amount is
// deliberately absent: it is always computed.
type PaymentRegistration struct {
	InvoiceID         int64
	QuoteID           *int64
	PaymentCurrencyID int64
	Amount            decimal.Decimal
	Method            string
	ReceiptReference  *string
	IdempotencyKey    *string
}

// TotalPaid sums the base amounts of the successful payments in the slice.
func TotalPaid(payments []Payment) decimal.Decimal {
	total := decimal.Zero
	for _, p := range payments {
		if p.Status == PaymentSuccessful {
			total = total.Add(p.BaseAmount)
		}
	}
	return total
}

// SameRequest reports whether reg asks for what p already records.
// The quote is only compared when one was applied.
func (p Payment) SameRequest(reg PaymentRegistration) bool {
	if p.InvoiceID != reg.InvoiceID || p.PaymentCurrencyID != reg.PaymentCurrencyID || !p.RawAmount.Equal(reg.Amount) {
		return false
	}
	if p.QuoteID == nil {
		return true
	}
	return reg.QuoteID != nil && *reg.QuoteID == *p.QuoteID
}
