package dto

import (
	"time"

	"github.com/SscSPs/fx_settlement/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RegisterPaymentRequest defines the body for registering a payment against an invoice.
// There is no converted amount field: the base-currency amount is always computed server side.
type RegisterPaymentRequest struct {
	InvoiceID         int64           `json:"invoiceId" binding:"required,gt=0"`
	QuoteID           *int64          `json:"quoteId" binding:"omitempty,gt=0"`
	PaymentCurrencyID int64           `json:"paymentCurrencyId" binding:"required,gt=0"`
	Amount            decimal.Decimal `json:"amount" binding:"required,gt=0"`
	PaymentMethod     string          `json:"paymentMethod" binding:"required,max=50"`
	ReceiptReference  *string         `json:"receiptReference" binding:"omitempty,max=120"`
}

// ToPaymentRegistration converts the request into the domain registration.
func (r RegisterPaymentRequest) ToPaymentRegistration(idempotencyKey *string) domain.PaymentRegistration {
	return domain.PaymentRegistration{
		InvoiceID:         r.InvoiceID,
		QuoteID:           r.QuoteID,
		PaymentCurrencyID: r.PaymentCurrencyID,
		Amount:            r.Amount,
		Method:            r.PaymentMethod,
		ReceiptReference:  r.ReceiptReference,
		IdempotencyKey:    idempotencyKey,
	}
}

// PaymentResponse defines the data returned for a payment.
type PaymentResponse struct {
	PaymentID         int64           `json:"paymentId"`
	InvoiceID         int64           `json:"invoiceId"`
	QuoteID           *int64          `json:"quoteId"`
	PaymentCurrencyID int64           `json:"paymentCurrencyId"`
	RawAmount         decimal.Decimal `json:"rawAmount"`
	BaseAmount        decimal.Decimal `json:"baseAmount"`
	Status            string          `json:"status"`
	Method            string          `json:"paymentMethod"`
	ActorID           string          `json:"actorId"`
	ReceiptReference  *string         `json:"receiptReference,omitempty"`
	CreatedAt         time.Time       `json:"createdAt"`
}

// ListPaymentsParams defines query parameters for listing the payments of an invoice.
type ListPaymentsParams struct {
	Limit     int     `form:"limit" binding:"omitempty,min=1,max=100"`
	NextToken *string `form:"nextToken"`
}

// ListPaymentsResponse wraps a page of payments.
type ListPaymentsResponse struct {
	Payments  []PaymentResponse `json:"payments"`
	NextToken *string           `json:"nextToken,omitempty"`
}

// ToPaymentResponse converts a domain.Payment to PaymentResponse DTO
func ToPaymentResponse(p *domain.Payment) PaymentResponse {
	return PaymentResponse{
		PaymentID:         p.PaymentID,
		InvoiceID:         p.InvoiceID,
		QuoteID:           p.QuoteID,
		PaymentCurrencyID: p.PaymentCurrencyID,
		RawAmount:         p.RawAmount,
		BaseAmount:        p.BaseAmount,
		Status:            string(p.Status),
		Method:            p.Method,
		ActorID:           p.ActorID,
		ReceiptReference:  p.ReceiptReference,
		CreatedAt:         p.CreatedAt,
	}
}

// ToPaymentResponses converts a slice of domain.Payment to []PaymentResponse.
func ToPaymentResponses(payments []domain.Payment) []PaymentResponse {
	res := make([]PaymentResponse, len(payments))
	for i := range payments {
		res[i] = ToPaymentResponse(&payments[i])
	}
	return res
}
