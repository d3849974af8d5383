package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/fx_settlement/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// InvoiceReader defines read operations for invoice data
type InvoiceReader interface {
	// FindInvoiceByID retrieves an invoice with its base currency loaded.
	FindInvoiceByID(ctx context.Context, invoiceID int64) (*domain.Invoice, error)

	// FindInvoiceByIDForUpdate retrieves an invoice and locks its row until tx ends.
	// Must be called within a transaction.
	FindInvoiceByIDForUpdate(ctx context.Context, tx pgx.Tx, invoiceID int64) (*domain.Invoice, error)
}

// InvoiceWriter defines write operations for invoice data
type InvoiceWriter interface {
	// MarkInvoicePaidInTx moves a pending invoice to paid. Returns ErrInvalidState when the
	// invoice is not pending.
	MarkInvoicePaidInTx(ctx context.Context, tx pgx.Tx, invoiceID int64, at time.Time) error
}

// InvoiceRepositoryFacade combines all invoice-related repository interfaces
type InvoiceRepositoryFacade interface {
	InvoiceReader
	InvoiceWriter
}
