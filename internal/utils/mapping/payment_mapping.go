package mapping

import (
	"github.com/SscSPs/fx_settlement/internal/core/domain"
	"github.com/SscSPs/fx_settlement/internal/models"
)

// ToModelPayment converts a domain Payment to a model Payment
func ToModelPayment(d domain.Payment) models.Payment {
	return models.Payment{
		PaymentID:         d.PaymentID,
		InvoiceID:         d.InvoiceID,
		QuoteID:           d.QuoteID,
		PaymentCurrencyID: d.PaymentCurrencyID,
		RawAmount:         d.RawAmount,
		BaseAmount:        d.BaseAmount,
		Status:            string(d.Status),
		Method:            d.Method,
		ActorID:           d.ActorID,
		ReceiptReference:  d.ReceiptReference,
		IdempotencyKey:    d.IdempotencyKey,
		CreatedAt:         d.CreatedAt,
	}
}

// ToDomainPayment converts a model Payment to a domain Payment
func ToDomainPayment(m models.Payment) domain.Payment {
	return domain.Payment{
		PaymentID:         m.PaymentID,
		InvoiceID:         m.InvoiceID,
		QuoteID:           m.QuoteID,
		PaymentCurrencyID: m.PaymentCurrencyID,
		RawAmount:         m.RawAmount,
		BaseAmount:        m.BaseAmount,
		Status:            domain.PaymentStatus(m.Status),
		Method:            m.Method,
		ActorID:           m.ActorID,
		ReceiptReference:  m.ReceiptReference,
		IdempotencyKey:    m.IdempotencyKey,
		CreatedAt:         m.CreatedAt,
	}
}

// ToDomainPaymentSlice converts a slice of model Payments to domain Payments
func ToDomainPaymentSlice(ms []models.Payment) []domain.Payment {
	ds := make([]domain.Payment, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPayment(m)
	}
	return ds
}
