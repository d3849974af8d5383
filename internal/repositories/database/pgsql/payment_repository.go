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

const paymentColumns = `id, invoice_id, quote_id, payment_currency_id, raw_amount, base_amount,
	status, method, actor_id, receipt_reference, idempotency_key, created_at`

// PgxPaymentRepository stores payment rows. Rows are append-only.
type PgxPaymentRepository struct {
	BaseRepository
}

func newPgxPaymentRepository(pool *pgxpool.Pool) portsrepo.PaymentRepositoryWithTx {
	return &PgxPaymentRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.PaymentRepositoryWithTx = (*PgxPaymentRepository)(nil)

func paymentScanTargets(m *models.Payment) []any {
	return []any{
		&m.PaymentID,
		&m.InvoiceID,
		&m.QuoteID,
		&m.PaymentCurrencyID,
		&m.RawAmount,
		&m.BaseAmount,
		&m.Status,
		&m.Method,
		&m.ActorID,
		&m.ReceiptReference,
		&m.IdempotencyKey,
		&m.CreatedAt,
	}
}

func collectPayments(rows pgx.Rows) ([]domain.Payment, error) {
	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Payment, error) {
		var m models.Payment
		err := row.Scan(paymentScanTargets(&m)...)
		return m, err
	})
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainPaymentSlice(ms), nil
}

func listSuccessfulPayments(ctx context.Context, q querier, invoiceID int64) ([]domain.Payment, error) {
	query := `SELECT ` + paymentColumns + `
		FROM payments
		WHERE invoice_id = $1 AND status = $2
		ORDER BY created_at, id;`

	rows, err := q.Query(ctx, query, invoiceID, string(domain.PaymentSuccessful))
	if err != nil {
		return nil, fmt.Errorf("failed to query payments of invoice %d: %w", invoiceID, err)
	}
	defer rows.Close()

	payments, err := collectPayments(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to scan payments of invoice %d: %w", invoiceID, err)
	}
	return payments, nil
}

// ListSuccessfulPaymentsInTx retrieves the successful payments of an invoice within tx.
func (r *PgxPaymentRepository) ListSuccessfulPaymentsInTx(ctx context.Context, tx pgx.Tx, invoiceID int64) ([]domain.Payment, error) {
	return listSuccessfulPayments(ctx, tx, invoiceID)
}

// ListSuccessfulPayments retrieves the successful payments of an invoice.
func (r *PgxPaymentRepository) ListSuccessfulPayments(ctx context.Context, invoiceID int64) ([]domain.Payment, error) {
	return listSuccessfulPayments(ctx, r.Pool, invoiceID)
}

// FindPaymentByIdempotencyKeyInTx retrieves the payment registered for invoiceID under key.
func (r *PgxPaymentRepository) FindPaymentByIdempotencyKeyInTx(ctx context.Context, tx pgx.Tx, invoiceID int64, key string) (*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + `
		FROM payments
		WHERE invoice_id = $1 AND idempotency_key = $2;`

	var m models.Payment
	if err := tx.QueryRow(ctx, query, invoiceID, key).Scan(paymentScanTargets(&m)...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("no payment registered under idempotency key")
		}
		return nil, fmt.Errorf("failed to find payment by idempotency key: %w", err)
	}

	p := mapping.ToDomainPayment(m)
	return &p, nil
}

// ListPaymentsByInvoice retrieves a page of payments of an invoice, newest first.
func (r *PgxPaymentRepository) ListPaymentsByInvoice(ctx context.Context, invoiceID int64, limit int, afterCreatedAt *time.Time, afterID *int64) ([]domain.Payment, error) {
	var (
		rows pgx.Rows
		err  error
	)
	if afterCreatedAt != nil && afterID != nil {
		query := `SELECT ` + paymentColumns + `
			FROM payments
			WHERE invoice_id = $1 AND (created_at, id) < ($2, $3)
			ORDER BY created_at DESC, id DESC
			LIMIT $4;`
		rows, err = r.Pool.Query(ctx, query, invoiceID, *afterCreatedAt, *afterID, limit)
	} else {
		query := `SELECT ` + paymentColumns + `
			FROM payments
			WHERE invoice_id = $1
			ORDER BY created_at DESC, id DESC
			LIMIT $2;`
		rows, err = r.Pool.Query(ctx, query, invoiceID, limit)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list payments of invoice %d: %w", invoiceID, err)
	}
	defer rows.Close()

	payments, err := collectPayments(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to scan payments of invoice %d: %w", invoiceID, err)
	}
	return payments, nil
}

// SavePaymentInTx inserts a payment row within tx.
// A second payment with the same idempotency key for the invoice yields ErrDuplicate.
func (r *PgxPaymentRepository) SavePaymentInTx(ctx context.Context, tx pgx.Tx, payment domain.Payment) (*domain.Payment, error) {
	m := mapping.ToModelPayment(payment)
	query := `
		INSERT INTO payments (invoice_id, quote_id, payment_currency_id, raw_amount, base_amount,
			status, method, actor_id, receipt_reference, idempotency_key, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + paymentColumns + `;`

	var saved models.Payment
	err := tx.QueryRow(ctx, query,
		m.InvoiceID,
		m.QuoteID,
		m.PaymentCurrencyID,
		m.RawAmount,
		m.BaseAmount,
		m.Status,
		m.Method,
		m.ActorID,
		m.ReceiptReference,
		m.IdempotencyKey,
		m.CreatedAt,
	).Scan(paymentScanTargets(&saved)...)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: payment already registered for invoice %d", apperrors.ErrDuplicate, m.InvoiceID)
		}
		return nil, fmt.Errorf("failed to insert payment for invoice %d: %w", m.InvoiceID, err)
	}

	p := mapping.ToDomainPayment(saved)
	return &p, nil
}
