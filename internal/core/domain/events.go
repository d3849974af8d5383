package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceSettled is raised inside the reconciliation transaction when the paid total of an
// invoice reaches its total amount.
type InvoiceSettled struct {
	InvoiceID       int64
	BaseCurrencyID  int64
	TotalAmount     decimal.Decimal
	SettlingPayment int64
	ActorID         string
	SettledAt       time.Time
}
