package model

import "time"

// BillingDetail is a payout destination. PaymentHandle (a mobile-wallet
// number) is unique across the whole system, not per user.
type BillingDetail struct {
	ID            int64     `json:"id"`
	UserID        int64     `json:"user_id"`
	NegotiationID int64     `json:"negotiation_id"`
	PaymentHandle string    `json:"payment_handle"`
	Consented     bool      `json:"consented"`
	CreatedAt     time.Time `json:"created_at"`
}
