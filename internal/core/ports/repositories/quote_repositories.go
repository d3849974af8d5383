package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/fx_settlement/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// QuoteReader defines read operations for quote data
type QuoteReader interface {
	// FindQuoteByID retrieves a quote regardless of its active flag.
	FindQuoteByID(ctx context.Context, quoteID int64) (*domain.Quote, error)

	// FindQuoteByIDInTx retrieves a quote using the caller's transaction.
	FindQuoteByIDInTx(ctx context.Context, tx pgx.Tx, quoteID int64) (*domain.Quote, error)

	// ListActiveQuoteListings retrieves every active quote with currency and author display data.
	ListActiveQuoteListings(ctx context.Context) ([]domain.QuoteListing, error)
}

// QuoteWriter defines write operations for quote data
type QuoteWriter interface {
	// SaveQuote inserts a new quote and returns it with its generated id.
	SaveQuote(ctx context.Context, quote domain.Quote) (*domain.Quote, error)

	// DeactivateQuote flips an active quote to inactive. Returns ErrNotFound when no
	// active quote with that id exists.
	DeactivateQuote(ctx context.Context, quoteID int64, actorID string, at time.Time) (*domain.Quote, error)
}

// QuoteRepositoryFacade combines all quote-related repository interfaces
type QuoteRepositoryFacade interface {
	QuoteReader
	QuoteWriter
}

// QuoteRepositoryWithTx extends QuoteRepositoryFacade with transaction capabilities
type QuoteRepositoryWithTx interface {
	QuoteRepositoryFacade
	TransactionManager
}
