package dto

import (
	"time"

	"github.com/SscSPs/fx_settlement/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RegisterQuoteRequest defines the structure for registering a new exchange quote.
type RegisterQuoteRequest struct {
	OriginCurrencyID      int64           `json:"originCurrencyId" binding:"required,gt=0"`
	DestinationCurrencyID int64           `json:"destinationCurrencyId" binding:"required,gt=0"`
	BuyRate               decimal.Decimal `json:"buyRate" binding:"required,gt=0"`
	SellRate              decimal.Decimal `json:"sellRate" binding:"required,gt=0"`
}

// QuoteResponse defines the structure for API responses containing a single quote.
type QuoteResponse struct {
	QuoteID               int64           `json:"quoteId"`
	OriginCurrencyID      int64           `json:"originCurrencyId"`
	DestinationCurrencyID int64           `json:"destinationCurrencyId"`
	BuyRate               decimal.Decimal `json:"buyRate"`
	SellRate              decimal.Decimal `json:"sellRate"`
	Active                bool            `json:"active"`
	CreatedBy             string          `json:"createdBy"`
	CreatedAt             time.Time       `json:"createdAt"`
	UpdatedAt             *time.Time      `json:"updatedAt,omitempty"`
	DeactivatedBy         *string         `json:"deactivatedBy,omitempty"`
	DeactivatedAt         *time.Time      `json:"deactivatedAt,omitempty"`
}

// CurrentQuoteResponse is one row of the current-quotes listing, one per currency pair.
type CurrentQuoteResponse struct {
	QuoteID               int64           `json:"quoteId"`
	OriginCurrencyID      int64           `json:"originCurrencyId"`
	OriginName            string          `json:"originName"`
	OriginISO             string          `json:"originIso"`
	DestinationCurrencyID int64           `json:"destinationCurrencyId"`
	DestinationName       string          `json:"destinationName"`
	DestinationISO        string          `json:"destinationIso"`
	BuyAmount             decimal.Decimal `json:"buyAmount"`
	SellAmount            decimal.Decimal `json:"sellAmount"`
	LastUpdated           time.Time       `json:"lastUpdated"`
	RegisteredByName      string          `json:"registeredByName"`
}

// AnnulQuoteResponse confirms a quote annulment.
type AnnulQuoteResponse struct {
	Message string        `json:"message"`
	Quote   QuoteResponse `json:"quote"`
}

// ToQuoteResponse converts a domain.Quote to QuoteResponse DTO
func ToQuoteResponse(q *domain.Quote) QuoteResponse {
	return QuoteResponse{
		QuoteID:               q.QuoteID,
		OriginCurrencyID:      q.OriginCurrencyID,
		DestinationCurrencyID: q.DestinationCurrencyID,
		BuyRate:               q.BuyRate,
		SellRate:              q.SellRate,
		Active:                q.IsActive,
		CreatedBy:             q.CreatedBy,
		CreatedAt:             q.CreatedAt,
		UpdatedAt:             q.UpdatedAt,
		DeactivatedBy:         q.DeactivatedBy,
		DeactivatedAt:         q.DeactivatedAt,
	}
}

// ToCurrentQuoteResponses converts quote listings to the current-quotes DTO slice.
func ToCurrentQuoteResponses(listings []domain.QuoteListing) []CurrentQuoteResponse {
	res := make([]CurrentQuoteResponse, len(listings))
	for i, l := range listings {
		res[i] = CurrentQuoteResponse{
			QuoteID:               l.QuoteID,
			OriginCurrencyID:      l.OriginCurrencyID,
			OriginName:            l.OriginName,
			OriginISO:             l.OriginISO,
			DestinationCurrencyID: l.DestinationCurrencyID,
			DestinationName:       l.DestinationName,
			DestinationISO:        l.DestinationISO,
			BuyAmount:             l.BuyRate,
			SellAmount:            l.SellRate,
			LastUpdated:           l.LastChangedAt(),
			RegisteredByName:      l.RegisteredByName,
		}
	}
	return res
}
