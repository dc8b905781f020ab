package model

import "time"

const (
	NotifNegotiation       = "negotiation"
	NotifNegotiationStatus = "negotiation_status_update"
)

type Notification struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Type      string    `json:"type"`
	Data      string    `json:"data"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}
