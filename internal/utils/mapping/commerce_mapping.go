package mapping

import (
	"github.com/SscSPs/fx_settlement/internal/core/domain"
	"github.com/SscSPs/fx_settlement/internal/models"
)

// ToDomainCommerceVerification converts a model CommerceVerification to its domain form.
func ToDomainCommerceVerification(m models.CommerceVerification) domain.CommerceVerification {
	d := domain.CommerceVerification{
		CommerceID:   m.CommerceID,
		InvoiceID:    m.InvoiceID,
		BusinessName: m.BusinessName,
		Status:       domain.CommerceStatus(m.Status),
		CreatedAt:    m.CreatedAt,
	}
	if m.LastUpdatedAt != nil {
		d.LastUpdatedAt = *m.LastUpdatedAt
	}
	if m.LastUpdatedBy != nil {
		d.LastUpdatedBy = *m.LastUpdatedBy
	}
	return d
}
