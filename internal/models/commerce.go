package models

import "time"

// CommerceVerification is a row of the commerce_verifications table.
type CommerceVerification struct {
	CommerceID    int64
	InvoiceID     *int64
	BusinessName  string
	Status        string
	LastUpdatedBy *string
	LastUpdatedAt *time.Time
	CreatedAt     time.Time
}
