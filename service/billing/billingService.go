package billing

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"spacerental/model"
)

type ErrCode string

const (
	ErrNotFound       ErrCode = "NOT_FOUND"
	ErrNotParticipant ErrCode = "NOT_PARTICIPANT"
	ErrHandleTaken    ErrCode = "HANDLE_TAKEN"
	ErrNoConsent      ErrCode = "NO_CONSENT"
	ErrBadHandle      ErrCode = "BAD_HANDLE"
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

type Repo interface {
	Insert(ctx context.Context, b *model.BillingDetail) error
	ByUser(ctx context.Context, userID int64) (*model.BillingDetail, error)
}

type Negotiations interface {
	ByID(ctx context.Context, id int64) (*model.Negotiation, error)
}

type Service interface {
	// Register records a payout destination for the actor. The payment
	// handle is unique across the whole system: registration fails if
	// any user already holds it.
	Register(ctx context.Context, actorID, negotiationID int64, paymentHandle string, consent bool) (*model.BillingDetail, error)
}

type service struct {
	r     Repo
	negos Negotiations
}

func New(r Repo, negos Negotiations) Service { return &service{r: r, negos: negos} }

func (s *service) Register(ctx context.Context, actorID, negotiationID int64, paymentHandle string, consent bool) (*model.BillingDetail, error) {
	if !consent {
		return nil, makeErr(ErrNoConsent)
	}
	paymentHandle = strings.TrimSpace(paymentHandle)
	if paymentHandle == "" || len(paymentHandle) > 255 {
		return nil, makeErr(ErrBadHandle)
	}

	n, err := s.negos.ByID(ctx, negotiationID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, makeErr(ErrNotFound)
		}
		return nil, err
	}
	if !n.IsParticipant(actorID) {
		return nil, makeErr(ErrNotParticipant)
	}

	b := &model.BillingDetail{
		UserID:        actorID,
		NegotiationID: negotiationID,
		PaymentHandle: paymentHandle,
		Consented:     consent,
	}
	if err := s.r.Insert(ctx, b); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, makeErr(ErrHandleTaken)
		}
		return nil, err
	}
	return b, nil
}
