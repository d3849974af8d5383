package dto

import (
	"time"

	"github.com/SscSPs/fx_settlement/internal/core/domain"
	"github.com/shopspring/decimal"
)

// InvoiceResponse defines the data returned for an invoice, including its derived payment state.
type InvoiceResponse struct {
	InvoiceID      int64           `json:"invoiceId"`
	SubscriptionID int64           `json:"subscriptionId"`
	BaseCurrencyID *int64          `json:"baseCurrencyId"`
	BaseCurrency   string          `json:"baseCurrency,omitempty"`
	TotalAmount    decimal.Decimal `json:"totalAmount"`
	TotalPaid      decimal.Decimal `json:"totalPaid"`
	Outstanding    decimal.Decimal `json:"outstanding"`
	Status         string          `json:"status"`
	PaidAt         *time.Time      `json:"paidAt,omitempty"`
}

// ToInvoiceResponse converts a domain.InvoiceBalance to InvoiceResponse DTO
func ToInvoiceResponse(b *domain.InvoiceBalance) InvoiceResponse {
	res := InvoiceResponse{
		InvoiceID:      b.InvoiceID,
		SubscriptionID: b.SubscriptionID,
		BaseCurrencyID: b.BaseCurrencyID,
		TotalAmount:    b.TotalAmount,
		TotalPaid:      b.TotalPaid,
		Outstanding:    b.Outstanding,
		Status:         string(b.Status),
		PaidAt:         b.PaidAt,
	}
	if b.BaseCurrency != nil {
		res.BaseCurrency = b.BaseCurrency.ISOCode
	}
	return res
}
