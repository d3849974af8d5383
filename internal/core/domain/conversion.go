package domain

import (
	"fmt"

	"github.com/SscSPs/fx_settlement/internal/apperrors"
	"github.com/shopspring/decimal"
)

// ConversionRoute tells which way a quote was applied.
type ConversionRoute string

const (
	// RouteDirect applies the stored rates as-is (or is the identity conversion).
	RouteDirect ConversionRoute = "DIRECT"
	// RouteInverse applies the reciprocal of the stored rates.
	RouteInverse ConversionRoute = "INVERSE"
)

// ConversionRequest asks for amount to be converted from source to target currency through a quote.
// QuoteID may be nil only when source and target are the same currency.
type ConversionRequest struct {
	QuoteID          *int64
	SourceCurrencyID int64
	TargetCurrencyID int64
	Amount           decimal.Decimal
}

// Conversion is the outcome of converting an amount through a quote.
// Both sides are always computed so audit records capture the full quote in effect.
type Conversion struct {
	QuoteID          *int64          `json:"quoteID"`
	SourceCurrencyID int64           `json:"sourceCurrencyID"`
	TargetCurrencyID int64           `json:"targetCurrencyID"`
	Amount           decimal.Decimal `json:"amount"`
	ConvertedBuy     decimal.Decimal `json:"convertedBuy"`
	ConvertedSell    decimal.Decimal `json:"convertedSell"`
	BuyRateApplied   decimal.Decimal `json:"buyRateApplied"`
	SellRateApplied  decimal.Decimal `json:"sellRateApplied"`
	Route            ConversionRoute `json:"route"`
}

// IdentityConversion converts an amount into its own currency.
func IdentityConversion(currencyID int64, amount decimal.Decimal) *Conversion {
	one := decimal.NewFromInt(1)
	return &Conversion{
		SourceCurrencyID: currencyID,
		TargetCurrencyID: currencyID,
		Amount:           amount,
		ConvertedBuy:     amount,
		ConvertedSell:    amount,
		BuyRateApplied:   one,
		SellRateApplied:  one,
		Route:            RouteDirect,
	}
}

// ResolveConversion converts amount from source to target currency through quote.
//
// The quote must be active and carry strictly positive rates. Converting along the stored
// pair multiplies by the rates; converting against it multiplies by their reciprocals,
// buy by 1/buyRate and sell by 1/sellRate.
func ResolveConversion(quote *Quote, source, target int64, amount decimal.Decimal) (*Conversion, error) {
	if source == target {
		return IdentityConversion(source, amount), nil
	}
	if quote == nil {
		return nil, apperrors.NewNotFoundError("quote not found")
	}
	if !quote.IsActive {
		return nil, fmt.Errorf("%w: quote %d is no longer active", apperrors.ErrInvalidState, quote.QuoteID)
	}
	if !quote.BuyRate.IsPositive() || !quote.SellRate.IsPositive() {
		return nil, fmt.Errorf("%w: quote %d has buy rate %s and sell rate %s",
			apperrors.ErrInvalidRate, quote.QuoteID, quote.BuyRate, quote.SellRate)
	}

	quoteID := quote.QuoteID
	conv := &Conversion{
		QuoteID:          &quoteID,
		SourceCurrencyID: source,
		TargetCurrencyID: target,
		Amount:           amount,
	}

	switch {
	case source == quote.OriginCurrencyID && target == quote.DestinationCurrencyID:
		conv.Route = RouteDirect
		conv.BuyRateApplied = quote.BuyRate
		conv.SellRateApplied = quote.SellRate
	case source == quote.DestinationCurrencyID && target == quote.OriginCurrencyID:
		one := decimal.NewFromInt(1)
		conv.Route = RouteInverse
		conv.BuyRateApplied = one.Div(quote.BuyRate)
		conv.SellRateApplied = one.Div(quote.SellRate)
	default:
		return nil, fmt.Errorf("%w: quote %d covers %d/%d, requested %d->%d", apperrors.ErrPairMismatch,
			quote.QuoteID, quote.OriginCurrencyID, quote.DestinationCurrencyID, source, target)
	}

	conv.ConvertedBuy = amount.Mul(conv.BuyRateApplied)
	conv.ConvertedSell = amount.Mul(conv.SellRateApplied)
	return conv, nil
}
