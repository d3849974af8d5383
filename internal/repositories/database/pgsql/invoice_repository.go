package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/fx_settlement/internal/apperrors"
	"github.com/SscSPs/fx_settlement/internal/core/domain"
	portsrepo "github.com/SscSPs/fx_settlement/internal/core/ports/repositories"
	"github.com/SscSPs/fx_settlement/internal/models"
	"github.com/SscSPs/fx_settlement/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxInvoiceRepository reads invoices and performs their single pending -> paid transition.
type PgxInvoiceRepository struct {
	BaseRepository
}

func newPgxInvoiceRepository(pool *pgxpool.Pool) portsrepo.InvoiceRepositoryFacade {
	return &PgxInvoiceRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.InvoiceRepositoryFacade = (*PgxInvoiceRepository)(nil)

func findInvoice(ctx context.Context, q querier, invoiceID int64, lock bool) (*domain.Invoice, error) {
	query := `
		SELECT i.id, i.subscription_id, i.base_currency_id, i.total_amount, i.status, i.paid_at,
			i.created_at, i.updated_at, c.iso_code, c.name, c.symbol, c.precision
		FROM invoices i
		LEFT JOIN currencies c ON c.id = i.base_currency_id
		WHERE i.id = $1`
	if lock {
		// Lock only the invoice row; the currency row is reference data.
		query += ` FOR UPDATE OF i`
	}

	var m models.Invoice
	err := q.QueryRow(ctx, query, invoiceID).Scan(
		&m.InvoiceID,
		&m.SubscriptionID,
		&m.BaseCurrencyID,
		&m.TotalAmount,
		&m.Status,
		&m.PaidAt,
		&m.CreatedAt,
		&m.UpdatedAt,
		&m.CurrencyISOCode,
		&m.CurrencyName,
		&m.CurrencySymbol,
		&m.CurrencyPrecision,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("invoice %d not found", invoiceID))
		}
		return nil, fmt.Errorf("failed to find invoice %d: %w", invoiceID, err)
	}

	inv := mapping.ToDomainInvoice(m)
	return &inv, nil
}

// FindInvoiceByID retrieves an invoice with its base currency.
func (r *PgxInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID int64) (*domain.Invoice, error) {
	return findInvoice(ctx, r.Pool, invoiceID, false)
}

// FindInvoiceByIDForUpdate retrieves an invoice and locks its row for the rest of tx.
// Must be called within a transaction.
func (r *PgxInvoiceRepository) FindInvoiceByIDForUpdate(ctx context.Context, tx pgx.Tx, invoiceID int64) (*domain.Invoice, error) {
	return findInvoice(ctx, tx, invoiceID, true)
}

// MarkInvoicePaidInTx moves a pending invoice to paid.
func (r *PgxInvoiceRepository) MarkInvoicePaidInTx(ctx context.Context, tx pgx.Tx, invoiceID int64, at time.Time) error {
	query := `
		UPDATE invoices
		SET status = $2, paid_at = $3, updated_at = $3
		WHERE id = $1 AND status = $4;
	`
	tag, err := tx.Exec(ctx, query, invoiceID, string(domain.InvoicePaid), at, string(domain.InvoicePending))
	if err != nil {
		return fmt.Errorf("failed to mark invoice %d paid: %w", invoiceID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: invoice %d is not pending", apperrors.ErrInvalidState, invoiceID)
	}
	return nil
}
