package model

import "time"

// Reply is one message in a negotiation thread. Message holds either the
// text body or, for image replies, the stored image key. Never both.
type Reply struct {
	ID            int64     `json:"id"`
	NegotiationID int64     `json:"negotiation_id"`
	SenderID      int64     `json:"sender_id"`
	Message       string    `json:"message"`
	IsImage       bool      `json:"is_image"`
	CreatedAt     time.Time `json:"created_at"`
}
