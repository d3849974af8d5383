package dto

import (
	"github.com/SscSPs/fx_settlement/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ConversionQuery holds the query parameters of a conversion preview.
type ConversionQuery struct {
	QuoteID *int64          `form:"quoteId" binding:"omitempty,gt=0"`
	From    int64           `form:"from" binding:"required,gt=0"`
	To      int64           `form:"to" binding:"required,gt=0"`
	Amount  decimal.Decimal `form:"amount" binding:"required,gt=0"`
}

// ConversionResponse exposes both sides of a conversion for auditing.
type ConversionResponse struct {
	QuoteID         *int64          `json:"quoteId"`
	From            int64           `json:"from"`
	To              int64           `json:"to"`
	Amount          decimal.Decimal `json:"amount"`
	ConvertedBuy    decimal.Decimal `json:"convertedBuy"`
	ConvertedSell   decimal.Decimal `json:"convertedSell"`
	BuyRateApplied  decimal.Decimal `json:"buyRateApplied"`
	SellRateApplied decimal.Decimal `json:"sellRateApplied"`
	Route           string          `json:"route"`
}

// ToConversionRequest converts the query into a domain request.
func (q ConversionQuery) ToConversionRequest() domain.ConversionRequest {
	return domain.ConversionRequest{
		QuoteID:          q.QuoteID,
		SourceCurrencyID: q.From,
		TargetCurrencyID: q.To,
		Amount:           q.Amount,
	}
}

// ToConversionResponse converts a domain.Conversion to ConversionResponse DTO
func ToConversionResponse(c *domain.Conversion) ConversionResponse {
	return ConversionResponse{
		QuoteID:         c.QuoteID,
		From:            c.SourceCurrencyID,
		To:              c.TargetCurrencyID,
		Amount:          c.Amount,
		ConvertedBuy:    c.ConvertedBuy,
		ConvertedSell:   c.ConvertedSell,
		BuyRateApplied:  c.BuyRateApplied,
		SellRateApplied: c.SellRateApplied,
		Route:           string(c.Route),
	}
}
