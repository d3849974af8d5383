package services

import (
	"context"

	"github.com/SscSPs/fx_settlement/internal/core/domain"
	"github.com/SscSPs/fx_settlement/internal/dto"
)

// QuoteReaderSvc defines read operations for quotes
type QuoteReaderSvc interface {
	// GetQuote retrieves a quote by id, active or not.
	GetQuote(ctx context.Context, quoteID int64) (*domain.Quote, error)

	// ListCurrentQuotes returns the latest active quote of every currency pair.
	ListCurrentQuotes(ctx context.Context) ([]domain.QuoteListing, error)
}

// QuoteWriterSvc defines write operations for quotes
type QuoteWriterSvc interface {
	// RegisterQuote persists a new active quote authored by actorID.
	RegisterQuote(ctx context.Context, req dto.RegisterQuoteRequest, actorID string) (*domain.Quote, error)

	// AnnulQuote deactivates an active quote on behalf of actorID.
	AnnulQuote(ctx context.Context, quoteID int64, actorID string) (*domain.Quote, error)
}

// QuoteSvcFacade combines all quote-related service interfaces
type QuoteSvcFacade interface {
	QuoteReaderSvc
	QuoteWriterSvc
}
