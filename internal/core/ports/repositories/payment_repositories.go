package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/fx_settlement/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// PaymentReader defines read operations for payment data
type PaymentReader interface {
	// ListSuccessfulPaymentsInTx retrieves every successful payment of an invoice inside tx.
	ListSuccessfulPaymentsInTx(ctx context.Context, tx pgx.Tx, invoiceID int64) ([]domain.Payment, error)

	// FindPaymentByIdempotencyKeyInTx retrieves the payment registered under key for the invoice.
	FindPaymentByIdempotencyKeyInTx(ctx context.Context, tx pgx.Tx, invoiceID int64, key string) (*domain.Payment, error)

	// ListPaymentsByInvoice retrieves payments of an invoice, newest first, starting after
	// the (createdAt, paymentID) cursor when given.
	ListPaymentsByInvoice(ctx context.Context, invoiceID int64, limit int, afterCreatedAt *time.Time, afterID *int64) ([]domain.Payment, error)

	// ListSuccessfulPayments retrieves every successful payment of an invoice outside any transaction.
	ListSuccessfulPayments(ctx context.Context, invoiceID int64) ([]domain.Payment, error)
}

// PaymentWriter defines write operations for payment data
type PaymentWriter interface {
	// SavePaymentInTx inserts a payment row and returns it with its generated id.
	SavePaymentInTx(ctx context.Context, tx pgx.Tx, payment domain.Payment) (*domain.Payment, error)
}

// PaymentRepositoryFacade combines all payment-related repository interfaces
type PaymentRepositoryFacade interface {
	PaymentReader
	PaymentWriter
}

// PaymentRepositoryWithTx extends PaymentRepositoryFacade with transaction capabilities
type PaymentRepositoryWithTx interface {
	PaymentRepositoryFacade
	TransactionManager
}
