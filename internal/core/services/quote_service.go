package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/fx_settlement/internal/apperrors"
	"github.com/SscSPs/fx_settlement/internal/core/domain"
	portsrepo "github.com/SscSPs/fx_settlement/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fx_settlement/internal/core/ports/services"
	"github.com/SscSPs/fx_settlement/internal/dto"
)

// quoteService keeps the quote history. Quotes are only ever added or annulled.
type quoteService struct {
	BaseService
	quoteRepo    portsrepo.QuoteRepositoryFacade
	currencyRepo portsrepo.CurrencyReader
}

// NewQuoteService creates a new quote service.
func NewQuoteService(quoteRepo portsrepo.QuoteRepositoryFacade, currencyRepo portsrepo.CurrencyReader) portssvc.QuoteSvcFacade {
	return &quoteService{
		quoteRepo:    quoteRepo,
		currencyRepo: currencyRepo,
	}
}

var _ portssvc.QuoteSvcFacade = (*quoteService)(nil)

func (s *quoteService) RegisterQuote(ctx context.Context, req dto.RegisterQuoteRequest, actorID string) (*domain.Quote, error) {
	if req.OriginCurrencyID == req.DestinationCurrencyID {
		return nil, fmt.Errorf("%w: origin and destination currency are both %d", apperrors.ErrInvalidPair, req.OriginCurrencyID)
	}
	if !req.BuyRate.IsPositive() || !req.SellRate.IsPositive() {
		return nil, fmt.Errorf("%w: buy and sell rates must be positive", apperrors.ErrValidation)
	}
	if !domain.FitsAmountScale(req.BuyRate) || !domain.FitsAmountScale(req.SellRate) {
		return nil, fmt.Errorf("%w: rates support at most %d decimals", apperrors.ErrValidation, domain.AmountScale)
	}

	for _, id := range []int64{req.OriginCurrencyID, req.DestinationCurrencyID} {
		if _, err := s.currencyRepo.FindCurrencyByID(ctx, id); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: currency %d does not exist", apperrors.ErrValidation, id)
			}
			s.LogError(ctx, err, "Failed to validate quote currency", slog.Int64("currency_id", id))
			return nil, fmt.Errorf("failed to validate currency %d: %w", id, err)
		}
	}

	quote := domain.Quote{
		OriginCurrencyID:      req.OriginCurrencyID,
		DestinationCurrencyID: req.DestinationCurrencyID,
		BuyRate:               req.BuyRate,
		SellRate:              req.SellRate,
		IsActive:              true,
		CreatedBy:             actorID,
		CreatedAt:             time.Now().UTC(),
	}

	saved, err := s.quoteRepo.SaveQuote(ctx, quote)
	if err != nil {
		s.LogError(ctx, err, "Failed to save quote",
			slog.Int64("origin_currency_id", req.OriginCurrencyID),
			slog.Int64("destination_currency_id", req.DestinationCurrencyID))
		return nil, fmt.Errorf("failed to save quote: %w", err)
	}

	s.LogInfo(ctx, "Quote registered",
		slog.Int64("quote_id", saved.QuoteID),
		slog.Int64("origin_currency_id", saved.OriginCurrencyID),
		slog.Int64("destination_currency_id", saved.DestinationCurrencyID),
		slog.String("actor_id", actorID))
	return saved, nil
}

func (s *quoteService) GetQuote(ctx context.Context, quoteID int64) (*domain.Quote, error) {
	quote, err := s.quoteRepo.FindQuoteByID(ctx, quoteID)
	if err != nil {
		return nil, fmt.Errorf("failed to get quote %d: %w", quoteID, err)
	}
	return quote, nil
}

func (s *quoteService) ListCurrentQuotes(ctx context.Context) ([]domain.QuoteListing, error) {
	listings, err := s.quoteRepo.ListActiveQuoteListings(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list active quotes")
		return nil, fmt.Errorf("failed to list current quotes: %w", err)
	}
	return domain.LatestQuotesPerPair(listings), nil
}

func (s *quoteService) AnnulQuote(ctx context.Context, quoteID int64, actorID string) (*domain.Quote, error) {
	quote, err := s.quoteRepo.DeactivateQuote(ctx, quoteID, actorID, time.Now().UTC())
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to annul quote", slog.Int64("quote_id", quoteID))
		}
		return nil, fmt.Errorf("failed to annul quote %d: %w", quoteID, err)
	}

	s.LogInfo(ctx, "Quote annulled", slog.Int64("quote_id", quoteID), slog.String("actor_id", actorID))
	return quote, nil
}
