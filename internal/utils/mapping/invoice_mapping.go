package mapping

import (
	"github.com/SscSPs/fx_settlement/internal/core/domain"
	"github.com/SscSPs/fx_settlement/internal/models"
)

// ToDomainInvoice converts a model Invoice to a domain Invoice, attaching the joined base currency when present.
func ToDomainInvoice(m models.Invoice) domain.Invoice {
	inv := domain.Invoice{
		InvoiceID:      m.InvoiceID,
		SubscriptionID: m.SubscriptionID,
		BaseCurrencyID: m.BaseCurrencyID,
		TotalAmount:    m.TotalAmount,
		Status:         domain.InvoiceStatus(m.Status),
		PaidAt:         m.PaidAt,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
	if m.BaseCurrencyID != nil && m.CurrencyISOCode != nil {
		curr := domain.Currency{
			CurrencyID: *m.BaseCurrencyID,
			ISOCode:    *m.CurrencyISOCode,
		}
		if m.CurrencyName != nil {
			curr.Name = *m.CurrencyName
		}
		if m.CurrencySymbol != nil {
			curr.Symbol = *m.CurrencySymbol
		}
		if m.CurrencyPrecision != nil {
			curr.Precision = *m.CurrencyPrecision
		}
		inv.BaseCurrency = &curr
	}
	return inv
}
