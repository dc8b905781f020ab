package model

import "time"

type NegotiationStatus string

const (
	NegotiationPending     NegotiationStatus = "Pending"
	NegotiationApproved    NegotiationStatus = "Approved"
	NegotiationDisapproved NegotiationStatus = "Disapproved"
)

func (s NegotiationStatus) Valid() bool {
	switch s {
	case NegotiationPending, NegotiationApproved, NegotiationDisapproved:
		return true
	}
	return false
}

// CanTransitionTo reports whether the status change is legal. A
// negotiation is decided exactly once: only Pending moves, and only to
// Approved or Disapproved.
func (s NegotiationStatus) CanTransitionTo(next NegotiationStatus) bool {
	return s == NegotiationPending &&
		(next == NegotiationApproved || next == NegotiationDisapproved)
}

type Negotiation struct {
	ID          int64             `json:"id"`
	ListingID   int64             `json:"listing_id"`
	SenderID    int64             `json:"sender_id"`
	ReceiverID  int64             `json:"receiver_id"`
	Message     string            `json:"message"`
	OfferAmount float64           `json:"offer_amount"`
	Status      NegotiationStatus `json:"status"`
	CreatedAt   time.Time         `json:"created_at"`
}

// IsParticipant reports whether userID is the sender or receiver.
func (n *Negotiation) IsParticipant(userID int64) bool {
	return userID == n.SenderID || userID == n.ReceiverID
}
