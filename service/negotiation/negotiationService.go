package negotiation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"spacerental/model"
	negotiationrepo "spacerental/repository/negotiation"
)

// errors used by controllers

type ErrCode string

const (
	ErrNotFound          ErrCode = "NOT_FOUND"
	ErrListingNotFound   ErrCode = "LISTING_NOT_FOUND"
	ErrReceiverNotFound  ErrCode = "RECEIVER_NOT_FOUND"
	ErrSelfNegotiation   ErrCode = "SELF_NEGOTIATION"
	ErrNegativeAmount    ErrCode = "NEGATIVE_AMOUNT"
	ErrNotParticipant    ErrCode = "NOT_PARTICIPANT"
	ErrNotReceiver       ErrCode = "NOT_RECEIVER"
	ErrInvalidStatus     ErrCode = "INVALID_STATUS"
	ErrInvalidTransition ErrCode = "INVALID_TRANSITION"
)

type codedError struct{ code ErrCode }

func (e codedError) Error() string { return string(e.code) }
func (e codedError) Code() ErrCode { return e.code }
func makeErr(c ErrCode) error      { return codedError{code: c} }

// Code extracts error code
func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}

// Row = repository shape
type Row = negotiationrepo.Row

type Repo interface {
	Insert(ctx context.Context, n *model.Negotiation) error
	ByID(ctx context.Context, id int64) (*model.Negotiation, error)
	UpdateOfferAmount(ctx context.Context, id int64, amount float64) error
	UpdateStatus(ctx context.Context, id int64, status model.NegotiationStatus) error
	ListForUser(ctx context.Context, userID int64) ([]Row, error)
	ListForUserWithBilling(ctx context.Context, userID int64) ([]Row, error)
}

type Listings interface {
	ByID(ctx context.Context, id int64) (*model.Listing, error)
}

type Users interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

type Notifier interface {
	Insert(ctx context.Context, n *model.Notification) error
}

type Billing interface {
	ByUser(ctx context.Context, userID int64) (*model.BillingDetail, error)
}

type CreateInput struct {
	ListingID   int64
	ReceiverID  int64
	Message     string
	OfferAmount float64
}

// PaymentContext is the billing view: the actor's negotiations joined
// with billing info plus the actor's own payout record, which is nil
// until registered. An actor with zero negotiations gets an empty list.
type PaymentContext struct {
	Negotiations []Row                `json:"negotiations"`
	Billing      *model.BillingDetail `json:"billing,omitempty"`
}

type Service interface {
	Create(ctx context.Context, actorID int64, in CreateInput) (*model.Negotiation, error)
	Detail(ctx context.Context, actorID, negotiationID int64) (*model.Negotiation, error)
	UpdateOfferAmount(ctx context.Context, actorID, negotiationID int64, amount float64) error
	UpdateStatus(ctx context.Context, actorID, negotiationID int64, status model.NegotiationStatus) (*model.Negotiation, error)
	ListForActor(ctx context.Context, actorID int64, role model.Role) (*ListView, error)
	PaymentContext(ctx context.Context, actorID int64) (*PaymentContext, error)
}

type service struct {
	r  Repo
	l  Listings
	u  Users
	nf Notifier
	b  Billing
}

func New(r Repo, l Listings, u Users, nf Notifier, b Billing) Service {
	return &service{r: r, l: l, u: u, nf: nf, b: b}
}

// Create opens a negotiation thread against a listing and notifies the
// space owner. The notification write is not atomic with the
// negotiation insert: if it fails, the negotiation stands.
func (s *service) Create(ctx context.Context, actorID int64, in CreateInput) (*model.Negotiation, error) {
	if in.OfferAmount < 0 {
		return nil, makeErr(ErrNegativeAmount)
	}
	if in.ReceiverID == actorID {
		return nil, makeErr(ErrSelfNegotiation)
	}

	listing, err := s.l.ByID(ctx, in.ListingID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, makeErr(ErrListingNotFound)
		}
		return nil, err
	}

	ok, err := s.u.Exists(ctx, in.ReceiverID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, makeErr(ErrReceiverNotFound)
	}

	n := &model.Negotiation{
		ListingID:   in.ListingID,
		SenderID:    actorID,
		ReceiverID:  in.ReceiverID,
		Message:     in.Message,
		OfferAmount: in.OfferAmount,
		Status:      model.NegotiationPending,
	}
	if err := s.r.Insert(ctx, n); err != nil {
		return nil, err
	}

	s.notify(ctx, in.ReceiverID, model.NotifNegotiation, listing.Title)
	return n, nil
}

func (s *service) Detail(ctx context.Context, actorID, negotiationID int64) (*model.Negotiation, error) {
	n, err := s.byID(ctx, negotiationID)
	if err != nil {
		return nil, err
	}
	if !n.IsParticipant(actorID) {
		return nil, makeErr(ErrNotParticipant)
	}
	return n, nil
}

// UpdateOfferAmount overwrites the offer with no audit trail of prior
// values. Either party may revise; anyone else is rejected.
func (s *service) UpdateOfferAmount(ctx context.Context, actorID, negotiationID int64, amount float64) error {
	if amount < 0 {
		return makeErr(ErrNegativeAmount)
	}
	n, err := s.byID(ctx, negotiationID)
	if err != nil {
		return err
	}
	if !n.IsParticipant(actorID) {
		return makeErr(ErrNotParticipant)
	}
	if err := s.r.UpdateOfferAmount(ctx, negotiationID, amount); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return makeErr(ErrNotFound)
		}
		return err
	}
	return nil
}

// UpdateStatus decides a pending negotiation. Only the receiver (the
// space owner the offer was made to) may decide, and a negotiation is
// decided at most once: Pending -> Approved or Pending -> Disapproved.
func (s *service) UpdateStatus(ctx context.Context, actorID, negotiationID int64, status model.NegotiationStatus) (*model.Negotiation, error) {
	if !status.Valid() {
		return nil, makeErr(ErrInvalidStatus)
	}
	n, err := s.byID(ctx, negotiationID)
	if err != nil {
		return nil, err
	}
	if actorID != n.ReceiverID {
		return nil, makeErr(ErrNotReceiver)
	}
	if !n.Status.CanTransitionTo(status) {
		return nil, makeErr(ErrInvalidTransition)
	}
	if err := s.r.UpdateStatus(ctx, negotiationID, status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, makeErr(ErrNotFound)
		}
		return nil, err
	}
	n.Status = status

	title := ""
	if listing, lerr := s.l.ByID(ctx, n.ListingID); lerr == nil {
		title = listing.Title
	}
	s.notify(ctx, n.SenderID, model.NotifNegotiationStatus,
		fmt.Sprintf("Your negotiation for %q has been %s.", title, status))
	return n, nil
}

func (s *service) ListForActor(ctx context.Context, actorID int64, role model.Role) (*ListView, error) {
	rows, err := s.r.ListForUser(ctx, actorID)
	if err != nil {
		return nil, err
	}
	return buildListView(role, rows), nil
}

func (s *service) PaymentContext(ctx context.Context, actorID int64) (*PaymentContext, error) {
	rows, err := s.r.ListForUserWithBilling(ctx, actorID)
	if err != nil {
		return nil, err
	}
	bill, err := s.b.ByUser(ctx, actorID)
	if err != nil {
		return nil, err
	}
	return &PaymentContext{Negotiations: rows, Billing: bill}, nil
}

func (s *service) byID(ctx context.Context, id int64) (*model.Negotiation, error) {
	n, err := s.r.ByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, makeErr(ErrNotFound)
		}
		return nil, err
	}
	return n, nil
}

func (s *service) notify(ctx context.Context, userID int64, typ, data string) {
	err := s.nf.Insert(ctx, &model.Notification{UserID: userID, Type: typ, Data: data})
	if err != nil {
		slog.Warn("notification write failed", "user_id", userID, "type", typ, "err", err)
	}
}
