package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/fx_settlement/internal/apperrors"
	"github.com/SscSPs/fx_settlement/internal/core/domain"
	portsrepo "github.com/SscSPs/fx_settlement/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fx_settlement/internal/core/ports/services"
	"github.com/jackc/pgx/v5"
)

type conversionService struct {
	BaseService
	quoteRepo portsrepo.QuoteReader
}

// NewConversionService creates a resolver that reads quotes through quoteRepo.
func NewConversionService(quoteRepo portsrepo.QuoteReader) portssvc.ConversionSvc {
	return &conversionService{quoteRepo: quoteRepo}
}

var _ portssvc.ConversionSvc = (*conversionService)(nil)

func (s *conversionService) Convert(ctx context.Context, req domain.ConversionRequest) (*domain.Conversion, error) {
	return s.resolve(ctx, req, func(id int64) (*domain.Quote, error) {
		return s.quoteRepo.FindQuoteByID(ctx, id)
	})
}

func (s *conversionService) ConvertInTx(ctx context.Context, tx pgx.Tx, req domain.ConversionRequest) (*domain.Conversion, error) {
	return s.resolve(ctx, req, func(id int64) (*domain.Quote, error) {
		return s.quoteRepo.FindQuoteByIDInTx(ctx, tx, id)
	})
}

func (s *conversionService) resolve(ctx context.Context, req domain.ConversionRequest, load func(int64) (*domain.Quote, error)) (*domain.Conversion, error) {
	if req.Amount.IsNegative() {
		return nil, fmt.Errorf("%w: amount must not be negative", apperrors.ErrValidation)
	}
	// Same currency never needs a quote, not even an existing one.
	if req.SourceCurrencyID == req.TargetCurrencyID {
		return domain.IdentityConversion(req.SourceCurrencyID, req.Amount), nil
	}
	if req.QuoteID == nil {
		return nil, fmt.Errorf("%w: a quote is required to convert %d to %d",
			apperrors.ErrValidation, req.SourceCurrencyID, req.TargetCurrencyID)
	}

	quote, err := load(*req.QuoteID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to load quote for conversion", slog.Int64("quote_id", *req.QuoteID))
		}
		return nil, err
	}

	conv, err := domain.ResolveConversion(quote, req.SourceCurrencyID, req.TargetCurrencyID, req.Amount)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidRate) {
			// Stored quotes are validated on registration, so this is corrupt data.
			s.LogError(ctx, err, "Quote with non-positive rate found",
				slog.Int64("quote_id", quote.QuoteID),
				slog.String("buy_rate", quote.BuyRate.String()),
				slog.String("sell_rate", quote.SellRate.String()))
		}
		return nil, err
	}

	s.LogDebug(ctx, "Conversion resolved",
		slog.Int64("quote_id", quote.QuoteID),
		slog.String("route", string(conv.Route)),
		slog.String("amount", req.Amount.String()),
		slog.String("converted_sell", conv.ConvertedSell.String()))
	return conv, nil
}
