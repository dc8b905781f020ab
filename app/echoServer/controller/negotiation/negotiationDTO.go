package negotiation

type CreateNegotiationReq struct {
	ListingID   int64   `json:"listing_id" validate:"required,gt=0"`
	ReceiverID  int64   `json:"receiver_id" validate:"required,gt=0"`
	Message     string  `json:"message" validate:"required"`
	OfferAmount float64 `json:"offer_amount" validate:"gte=0"`
}

type UpdateOfferAmountReq struct {
	OfferAmount float64 `json:"offer_amount" validate:"gte=0"`
}

type UpdateStatusReq struct {
	Status string `json:"status" validate:"required,oneof=Pending Approved Disapproved"`
}
