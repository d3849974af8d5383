package services

import (
	"context"

	"github.com/SscSPs/fx_settlement/internal/core/domain"
	"github.com/SscSPs/fx_settlement/internal/dto"
)

// PaymentReaderSvc defines read operations for invoices and their payments
type PaymentReaderSvc interface {
	// GetInvoiceBalance returns the invoice together with its recomputed paid and outstanding totals.
	GetInvoiceBalance(ctx context.Context, invoiceID int64) (*domain.InvoiceBalance, error)

	// ListInvoicePayments lists the payments of an invoice with token based pagination.
	ListInvoicePayments(ctx context.Context, invoiceID int64, params dto.ListPaymentsParams) (*dto.ListPaymentsResponse, error)
}

// PaymentWriterSvc defines write operations for payments
type PaymentWriterSvc interface {
	// RegisterPayment applies a payment to an invoice atomically, settling it when fully paid.
	RegisterPayment(ctx context.Context, reg domain.PaymentRegistration, actorID string) (*domain.Payment, error)
}

// PaymentSvcFacade combines all payment-related service interfaces
type PaymentSvcFacade interface {
	PaymentReaderSvc
	PaymentWriterSvc
}
