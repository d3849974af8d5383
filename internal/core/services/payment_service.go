package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/fx_settlement/internal/apperrors"
	"github.com/SscSPs/fx_settlement/internal/core/domain"
	portsrepo "github.com/SscSPs/fx_settlement/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fx_settlement/internal/core/ports/services"
	"github.com/SscSPs/fx_settlement/internal/dto"
	"github.com/SscSPs/fx_settlement/internal/utils"
	"github.com/SscSPs/fx_settlement/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
)

const (
	defaultPaymentTxTimeout = 10 * time.Second
	defaultPaymentPageSize  = 20
)

// paymentService reconciles payments against invoices.
type paymentService struct {
	BaseService
	invoiceRepo   portsrepo.InvoiceRepositoryFacade
	paymentRepo   portsrepo.PaymentRepositoryWithTx
	conversionSvc portssvc.ConversionSvc
	dispatcher    portssvc.SettlementDispatcherSvc
	listeners     []portssvc.SettlementListener
	txTimeout     time.Duration
}

// PaymentServiceOption is a functional option for configuring the payment service
type PaymentServiceOption func(*paymentService)

// WithSettlementListener adds a listener notified after a settling payment commits.
func WithSettlementListener(l portssvc.SettlementListener) PaymentServiceOption {
	return func(s *paymentService) {
		if l != nil {
			s.listeners = append(s.listeners, l)
		}
	}
}

// WithPaymentTxTimeout bounds each registration transaction, lock wait included.
func WithPaymentTxTimeout(d time.Duration) PaymentServiceOption {
	return func(s *paymentService) {
		if d > 0 {
			s.txTimeout = d
		}
	}
}

// NewPaymentService creates a new payment service with the provided options
func NewPaymentService(
	invoiceRepo portsrepo.InvoiceRepositoryFacade,
	paymentRepo portsrepo.PaymentRepositoryWithTx,
	conversionSvc portssvc.ConversionSvc,
	dispatcher portssvc.SettlementDispatcherSvc,
	options ...PaymentServiceOption,
) portssvc.PaymentSvcFacade {
	svc := &paymentService{
		invoiceRepo:   invoiceRepo,
		paymentRepo:   paymentRepo,
		conversionSvc: conversionSvc,
		dispatcher:    dispatcher,
		txTimeout:     defaultPaymentTxTimeout,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.PaymentSvcFacade = (*paymentService)(nil)

// registration is the outcome of the transactional part of RegisterPayment.
type registration struct {
	payment  *domain.Payment
	settled  *domain.InvoiceSettled
	replayed bool
}

// RegisterPayment converts the payment into the invoice base currency, rejects it if it
// would overpay the invoice, stores it and settles the invoice when it is paid in full.
// Everything happens in one transaction holding the invoice row lock.
func (s *paymentService) RegisterPayment(ctx context.Context, reg domain.PaymentRegistration, actorID string) (*domain.Payment, error) {
	if !reg.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: payment amount must be positive", apperrors.ErrValidation)
	}
	if !domain.FitsAmountScale(reg.Amount) {
		return nil, fmt.Errorf("%w: payment amount supports at most %d decimals", apperrors.ErrValidation, domain.AmountScale)
	}
	if strings.TrimSpace(reg.Method) == "" {
		return nil, fmt.Errorf("%w: payment method is required", apperrors.ErrValidation)
	}
	if reg.IdempotencyKey != nil && strings.TrimSpace(*reg.IdempotencyKey) == "" {
		reg.IdempotencyKey = nil
	}
	if reg.IdempotencyKey != nil && len(*reg.IdempotencyKey) > domain.MaxIdempotencyKeyLength {
		return nil, fmt.Errorf("%w: idempotency key longer than %d characters", apperrors.ErrValidation, domain.MaxIdempotencyKeyLength)
	}

	txCtx, cancel := context.WithTimeout(ctx, s.txTimeout)
	defer cancel()

	tx, err := s.paymentRepo.Begin(txCtx)
	if err != nil {
		s.LogError(ctx, err, "Failed to begin payment transaction", slog.Int64("invoice_id", reg.InvoiceID))
		return nil, fmt.Errorf("failed to begin payment transaction: %w", err)
	}
	defer func() {
		// No-op once committed.
		if rbErr := s.paymentRepo.Rollback(txCtx, tx); rbErr != nil {
			s.LogError(ctx, rbErr, "Failed to roll back payment transaction", slog.Int64("invoice_id", reg.InvoiceID))
		}
	}()

	res, err := s.registerInTx(txCtx, tx, reg, actorID)
	if err != nil {
		s.logRejection(ctx, err, reg)
		return nil, err
	}

	if err := s.paymentRepo.Commit(txCtx, tx); err != nil {
		s.LogError(ctx, err, "Failed to commit payment transaction", slog.Int64("invoice_id", reg.InvoiceID))
		return nil, fmt.Errorf("failed to commit payment: %w", err)
	}

	if res.replayed {
		s.LogInfo(ctx, "Payment replayed for idempotency key",
			slog.Int64("invoice_id", reg.InvoiceID),
			slog.Int64("payment_id", res.payment.PaymentID))
		return res.payment, nil
	}

	s.LogInfo(ctx, "Payment registered",
		slog.Int64("invoice_id", reg.InvoiceID),
		slog.Int64("payment_id", res.payment.PaymentID),
		slog.String("raw_amount", res.payment.RawAmount.String()),
		slog.String("base_amount", res.payment.BaseAmount.String()),
		slog.String("actor_id", actorID))

	if res.settled != nil {
		s.LogInfo(ctx, "Invoice settled",
			slog.Int64("invoice_id", res.settled.InvoiceID),
			slog.Int64("payment_id", res.settled.SettlingPayment))
		for _, l := range s.listeners {
			l.InvoiceSettled(ctx, *res.settled)
		}
	}
	return res.payment, nil
}

func (s *paymentService) registerInTx(ctx context.Context, tx pgx.Tx, reg domain.PaymentRegistration, actorID string) (*registration, error) {
	// Locking the invoice row first serializes concurrent payments for the same invoice.
	invoice, err := s.invoiceRepo.FindInvoiceByIDForUpdate(ctx, tx, reg.InvoiceID)
	if err != nil {
		return nil, err
	}
	if invoice.BaseCurrencyID == nil {
		return nil, fmt.Errorf("%w: invoice %d", apperrors.ErrMissingBaseCurrency, invoice.InvoiceID)
	}
	if invoice.Status == domain.InvoiceCancelled {
		return nil, fmt.Errorf("%w: invoice %d is cancelled", apperrors.ErrInvalidState, invoice.InvoiceID)
	}

	if reg.IdempotencyKey != nil {
		existing, err := s.paymentRepo.FindPaymentByIdempotencyKeyInTx(ctx, tx, invoice.InvoiceID, *reg.IdempotencyKey)
		if err == nil {
			if !existing.SameRequest(reg) {
				return nil, fmt.Errorf("%w: idempotency key already used for payment %d with a different request",
					apperrors.ErrDuplicate, existing.PaymentID)
			}
			return &registration{payment: existing, replayed: true}, nil
		}
		if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("failed to check idempotency key: %w", err)
		}
	}

	conv, err := s.conversionSvc.ConvertInTx(ctx, tx, domain.ConversionRequest{
		QuoteID:          reg.QuoteID,
		SourceCurrencyID: reg.PaymentCurrencyID,
		TargetCurrencyID: *invoice.BaseCurrencyID,
		Amount:           reg.Amount,
	})
	if err != nil {
		return nil, err
	}

	// The sell side is what the payer is charged.
	converted := utils.RoundToPrecision(conv.ConvertedSell, invoice.Precision())
	if !converted.IsPositive() {
		return nil, fmt.Errorf("%w: amount %s converts to %s in the invoice currency",
			apperrors.ErrValidation, reg.Amount, converted)
	}

	// Totals stored with more decimals than the currency allows are settled at its precision.
	total := utils.RoundToPrecision(invoice.TotalAmount, invoice.Precision())

	prior, err := s.paymentRepo.ListSuccessfulPaymentsInTx(ctx, tx, invoice.InvoiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to load prior payments: %w", err)
	}
	projected := domain.TotalPaid(prior).Add(converted)
	if projected.GreaterThan(total) {
		return nil, fmt.Errorf("%w: paying %s would bring invoice %d to %s of %s",
			apperrors.ErrOverpayment, converted, invoice.InvoiceID, projected, total)
	}

	now := time.Now().UTC()
	saved, err := s.paymentRepo.SavePaymentInTx(ctx, tx, domain.Payment{
		InvoiceID:         invoice.InvoiceID,
		QuoteID:           conv.QuoteID,
		PaymentCurrencyID: reg.PaymentCurrencyID,
		RawAmount:         reg.Amount,
		BaseAmount:        converted,
		Status:            domain.PaymentSuccessful,
		Method:            reg.Method,
		ActorID:           actorID,
		ReceiptReference:  reg.ReceiptReference,
		IdempotencyKey:    reg.IdempotencyKey,
		CreatedAt:         now,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save payment: %w", err)
	}

	res := &registration{payment: saved}
	if !projected.Equal(total) {
		return res, nil
	}

	if err := s.invoiceRepo.MarkInvoicePaidInTx(ctx, tx, invoice.InvoiceID, now); err != nil {
		return nil, fmt.Errorf("failed to settle invoice: %w", err)
	}
	event := domain.InvoiceSettled{
		InvoiceID:       invoice.InvoiceID,
		BaseCurrencyID:  *invoice.BaseCurrencyID,
		TotalAmount:     total,
		SettlingPayment: saved.PaymentID,
		ActorID:         actorID,
		SettledAt:       now,
	}
	if s.dispatcher != nil {
		if err := s.dispatcher.Dispatch(ctx, tx, event); err != nil {
			return nil, err
		}
	}
	res.settled = &event
	return res, nil
}

// logRejection logs business rejections at WARN and everything else at ERROR.
func (s *paymentService) logRejection(ctx context.Context, err error, reg domain.PaymentRegistration) {
	attrs := []any{
		slog.Int64("invoice_id", reg.InvoiceID),
		slog.Int64("payment_currency_id", reg.PaymentCurrencyID),
		slog.String("amount", reg.Amount.String()),
	}
	switch {
	case errors.Is(err, apperrors.ErrNotFound),
		errors.Is(err, apperrors.ErrValidation),
		errors.Is(err, apperrors.ErrInvalidState),
		errors.Is(err, apperrors.ErrPairMismatch),
		errors.Is(err, apperrors.ErrMissingBaseCurrency),
		errors.Is(err, apperrors.ErrOverpayment),
		errors.Is(err, apperrors.ErrDuplicate):
		s.LogWarn(ctx, err, "Payment rejected", attrs...)
	default:
		s.LogError(ctx, err, "Payment registration failed", attrs...)
	}
}

func (s *paymentService) GetInvoiceBalance(ctx context.Context, invoiceID int64) (*domain.InvoiceBalance, error) {
	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get invoice %d: %w", invoiceID, err)
	}
	payments, err := s.paymentRepo.ListSuccessfulPayments(ctx, invoiceID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load invoice payments", slog.Int64("invoice_id", invoiceID))
		return nil, fmt.Errorf("failed to load payments of invoice %d: %w", invoiceID, err)
	}

	paid := domain.TotalPaid(payments)
	return &domain.InvoiceBalance{
		Invoice:     *invoice,
		TotalPaid:   paid,
		Outstanding: utils.RoundToPrecision(invoice.TotalAmount, invoice.Precision()).Sub(paid),
	}, nil
}

func (s *paymentService) ListInvoicePayments(ctx context.Context, invoiceID int64, params dto.ListPaymentsParams) (*dto.ListPaymentsResponse, error) {
	if _, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID); err != nil {
		return nil, fmt.Errorf("failed to get invoice %d: %w", invoiceID, err)
	}

	limit := params.Limit
	if limit <= 0 {
		limit = defaultPaymentPageSize
	}

	var afterCreatedAt *time.Time
	var afterID *int64
	if params.NextToken != nil && *params.NextToken != "" {
		createdAt, id, err := pagination.DecodeToken(*params.NextToken)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		afterCreatedAt, afterID = &createdAt, &id
	}

	// One extra row tells whether another page exists.
	payments, err := s.paymentRepo.ListPaymentsByInvoice(ctx, invoiceID, limit+1, afterCreatedAt, afterID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list invoice payments", slog.Int64("invoice_id", invoiceID))
		return nil, fmt.Errorf("failed to list payments of invoice %d: %w", invoiceID, err)
	}

	var nextToken *string
	if len(payments) > limit {
		payments = payments[:limit]
		last := payments[limit-1]
		token := pagination.EncodeToken(last.CreatedAt, last.PaymentID)
		nextToken = &token
	}

	return &dto.ListPaymentsResponse{
		Payments:  dto.ToPaymentResponses(payments),
		NextToken: nextToken,
	}, nil
}
