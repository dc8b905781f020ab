package model

import "time"

type RentalTerm string

const (
	TermWeekly  RentalTerm = "weekly"
	TermMonthly RentalTerm = "monthly"
	TermYearly  RentalTerm = "yearly"
)

func (t RentalTerm) Valid() bool {
	switch t {
	case TermWeekly, TermMonthly, TermYearly:
		return true
	}
	return false
}

const AgreementStatusAgree = "Agree"

type RentalAgreement struct {
	ID            int64      `json:"id"`
	NegotiationID int64      `json:"negotiation_id"`
	OwnerID       int64      `json:"owner_id"`
	RenterID      int64      `json:"renter_id"`
	ListingID     int64      `json:"listing_id"`
	RentalTerm    RentalTerm `json:"rental_term"`
	OfferAmount   float64    `json:"offer_amount"`
	DateStart     time.Time  `json:"date_start"`
	DateEnd       time.Time  `json:"date_end"`
	Status        string     `json:"status"`
	CreatedAt     time.Time  `json:"created_at"`
}
