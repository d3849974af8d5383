package mapping

import (
	"github.com/SscSPs/fx_settlement/internal/core/domain"
	"github.com/SscSPs/fx_settlement/internal/models"
)

// ToModelQuote converts a domain Quote to a model Quote
func ToModelQuote(d domain.Quote) models.Quote {
	return models.Quote{
		QuoteID:               d.QuoteID,
		OriginCurrencyID:      d.OriginCurrencyID,
		DestinationCurrencyID: d.DestinationCurrencyID,
		BuyRate:               d.BuyRate,
		SellRate:              d.SellRate,
		Active:                d.IsActive,
		CreatedBy:             d.CreatedBy,
		CreatedAt:             d.CreatedAt,
		UpdatedAt:             d.UpdatedAt,
		DeactivatedBy:         d.DeactivatedBy,
		DeactivatedAt:         d.DeactivatedAt,
	}
}

// ToDomainQuote converts a model Quote to a domain Quote
func ToDomainQuote(m models.Quote) domain.Quote {
	return domain.Quote{
		QuoteID:               m.QuoteID,
		OriginCurrencyID:      m.OriginCurrencyID,
		DestinationCurrencyID: m.DestinationCurrencyID,
		BuyRate:               m.BuyRate,
		SellRate:              m.SellRate,
		IsActive:              m.Active,
		CreatedBy:             m.CreatedBy,
		CreatedAt:             m.CreatedAt,
		UpdatedAt:             m.UpdatedAt,
		DeactivatedBy:         m.DeactivatedBy,
		DeactivatedAt:         m.DeactivatedAt,
	}
}

// ToDomainQuoteListing converts a joined quote row to a domain QuoteListing.
// A quote whose author is unknown to the users table is shown under its raw actor id.
func ToDomainQuoteListing(m models.QuoteListing) domain.QuoteListing {
	registeredBy := m.CreatedBy
	if m.RegisteredByName != nil && *m.RegisteredByName != "" {
		registeredBy = *m.RegisteredByName
	}
	return domain.QuoteListing{
		Quote:            ToDomainQuote(m.Quote),
		OriginName:       m.OriginName,
		OriginISO:        m.OriginISO,
		DestinationName:  m.DestinationName,
		DestinationISO:   m.DestinationISO,
		RegisteredByName: registeredBy,
	}
}

// ToDomainQuoteListingSlice converts joined quote rows to domain listings.
func ToDomainQuoteListingSlice(ms []models.QuoteListing) []domain.QuoteListing {
	ds := make([]domain.QuoteListing, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainQuoteListing(m)
	}
	return ds
}
