package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment is a row of the payments table.
type Payment struct {
	PaymentID         int64
	InvoiceID         int64
	QuoteID           *int64
	PaymentCurrencyID int64
	RawAmount         decimal.Decimal
	BaseAmount        decimal.Decimal
	Status            string
	Method            string
	ActorID           string
	ReceiptReference  *string
	IdempotencyKey    *string
	CreatedAt         time.Time
}
