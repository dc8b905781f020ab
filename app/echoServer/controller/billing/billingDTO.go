package billing

type RegisterBillingReq struct {
	PaymentHandle string `json:"payment_handle" form:"payment_handle" validate:"required,max=255"`
	Consent       bool   `json:"consent" form:"consent" validate:"required"`
}
