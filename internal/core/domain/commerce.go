package domain

import "time"

// CommerceStatus is the state of a commerce (business) verification workflow.
type CommerceStatus string

const (
	CommercePendingReview   CommerceStatus = "PENDING_REVIEW"
	CommerceAwaitingPayment CommerceStatus = "AWAITING_PAYMENT"
	CommercePaymentApproved CommerceStatus = "PAYMENT_APPROVED"
	CommerceVerified        CommerceStatus = "VERIFIED"
	CommerceRejected        CommerceStatus = "REJECTED"
)

// CommerceVerification is a business verification record whose fee is billed through an invoice.
type CommerceVerification struct {
	CommerceID    int64          `json:"commerceID"`
	InvoiceID     *int64         `json:"invoiceID"`
	BusinessName  string         `json:"businessName"`
	Status        CommerceStatus `json:"status"`
	CreatedAt     time.Time      `json:"createdAt"`
	LastUpdatedAt time.Time      `json:"lastUpdatedAt"`
	LastUpdatedBy string         `json:"lastUpdatedBy"`
}
