package agreement

type FinalizeAgreementReq struct {
	OwnerID     int64   `json:"owner_id" validate:"required,gt=0"`
	RenterID    int64   `json:"renter_id" validate:"required,gt=0"`
	ListingID   int64   `json:"listing_id" validate:"required,gt=0"`
	RentalTerm  string  `json:"rental_term" validate:"required,oneof=weekly monthly yearly"`
	OfferAmount float64 `json:"offer_amount" validate:"gte=0"`
	StartDate   string  `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate     string  `json:"end_date" validate:"required,datetime=2006-01-02"`
}
