package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice is a row of the invoices table left joined with its base currency.
type Invoice struct {
	InvoiceID      int64
	SubscriptionID int64
	BaseCurrencyID *int64
	TotalAmount    decimal.Decimal
	Status         string
	PaidAt         *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// Joined from currencies, nil when base_currency_id is null.
	CurrencyISOCode   *string
	CurrencyName      *string
	CurrencySymbol    *string
	CurrencyPrecision *int32
}
