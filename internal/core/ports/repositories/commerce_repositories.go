package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/fx_settlement/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// CommerceReader defines read operations for commerce verification data
type CommerceReader interface {
	// FindCommerceByInvoiceIDForUpdate retrieves and locks the commerce record billed through
	// the invoice. Returns ErrNotFound when the invoice is not linked to one.
	FindCommerceByInvoiceIDForUpdate(ctx context.Context, tx pgx.Tx, invoiceID int64) (*domain.CommerceVerification, error)
}

// CommerceWriter defines write operations for commerce verification data
type CommerceWriter interface {
	// UpdateCommerceStatusInTx moves a commerce record from one status to another.
	// Returns ErrInvalidState when the record is no longer in the from status.
	UpdateCommerceStatusInTx(ctx context.Context, tx pgx.Tx, commerceID int64, from, to domain.CommerceStatus, actorID string, at time.Time) error
}

// CommerceRepositoryFacade combines all commerce-related repository interfaces
type CommerceRepositoryFacade interface {
	CommerceReader
	CommerceWriter
}
