package agreement

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"spacerental/model"
)

type ErrCode string

const (
	ErrNotFound        ErrCode = "NOT_FOUND"
	ErrListingNotFound ErrCode = "LISTING_NOT_FOUND"
	ErrUserNotFound    ErrCode = "USER_NOT_FOUND"
	ErrSameParty       ErrCode = "SAME_PARTY"
	ErrBadTerm         ErrCode = "BAD_TERM"
	ErrBadDates        ErrCode = "BAD_DATES"
	ErrNegativeAmount  ErrCode = "NEGATIVE_AMOUNT"
)

type codedError struct{ code ErrCode }

func (e codedError) Error() string { return string(e.code) }
func (e codedError) Code() ErrCode { return e.code }
func makeErr(c ErrCode) error      { return codedError{code: c} }

func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}

type FinalizeInput struct {
	NegotiationID int64
	OwnerID       int64
	RenterID      int64
	ListingID     int64
	RentalTerm    model.RentalTerm
	OfferAmount   float64
	DateStart     time.Time
	DateEnd       time.Time
}

type Repo interface {
	Insert(ctx context.Context, a *model.RentalAgreement) error
	ListForUser(ctx context.Context, userID int64) ([]model.RentalAgreement, error)
}

type Negotiations interface {
	ByID(ctx context.Context, id int64) (*model.Negotiation, error)
}

type Listings interface {
	ByID(ctx context.Context, id int64) (*model.Listing, error)
}

type Users interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

type Service interface {
	// Finalize converts an approved negotiation into a binding
	// agreement. There is no idempotence guard: two identical calls
	// produce two agreements.
	Finalize(ctx context.Context, in FinalizeInput) (*model.RentalAgreement, error)

	ListForActor(ctx context.Context, actorID int64) ([]model.RentalAgreement, error)
}

type service struct {
	r     Repo
	negos Negotiations
	l     Listings
	u     Users
}

func New(r Repo, negos Negotiations, l Listings, u Users) Service {
	return &service{r: r, negos: negos, l: l, u: u}
}

func (s *service) Finalize(ctx context.Context, in FinalizeInput) (*model.RentalAgreement, error) {
	if !in.RentalTerm.Valid() {
		return nil, makeErr(ErrBadTerm)
	}
	if in.OwnerID == in.RenterID {
		return nil, makeErr(ErrSameParty)
	}
	if in.OfferAmount < 0 {
		return nil, makeErr(ErrNegativeAmount)
	}
	// End on the start day is allowed; ending before it is not.
	if in.DateEnd.Before(in.DateStart) {
		return nil, makeErr(ErrBadDates)
	}

	if _, err := s.negos.ByID(ctx, in.NegotiationID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, makeErr(ErrNotFound)
		}
		return nil, err
	}
	if _, err := s.l.ByID(ctx, in.ListingID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, makeErr(ErrListingNotFound)
		}
		return nil, err
	}
	for _, id := range []int64{in.OwnerID, in.RenterID} {
		ok, err := s.u.Exists(ctx, id)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, makeErr(ErrUserNotFound)
		}
	}

	a := &model.RentalAgreement{
		NegotiationID: in.NegotiationID,
		OwnerID:       in.OwnerID,
		RenterID:      in.RenterID,
		ListingID:     in.ListingID,
		RentalTerm:    in.RentalTerm,
		OfferAmount:   in.OfferAmount,
		DateStart:     in.DateStart,
		DateEnd:       in.DateEnd,
		Status:        model.AgreementStatusAgree,
	}
	if err := s.r.Insert(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *service) ListForActor(ctx context.Context, actorID int64) ([]model.RentalAgreement, error) {
	return s.r.ListForUser(ctx, actorID)
}
