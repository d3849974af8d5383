package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Quote is a row of the quotes table.
type Quote struct {
	QuoteID               int64
	OriginCurrencyID      int64
	DestinationCurrencyID int64
	BuyRate               decimal.Decimal
	SellRate              decimal.Decimal
	Active                bool
	CreatedBy             string
	CreatedAt             time.Time
	UpdatedAt             *time.Time
	DeactivatedBy         *string
	DeactivatedAt         *time.Time
}

// QuoteListing is a quote row joined with its currencies and author.
type QuoteListing struct {
	Quote
	OriginName       string
	OriginISO        string
	DestinationName  string
	DestinationISO   string
	RegisteredByName *string // users row may be missing
}
