package billing

import (
	"context"
	"testing"

	"spacerental/model"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

type repoMock struct {
	insertFn func(ctx context.Context, b *model.BillingDetail) error
	byUserFn func(ctx context.Context, userID int64) (*model.BillingDetail, error)
}

func (m *repoMock) Insert(ctx context.Context, b *model.BillingDetail) error {
	return m.insertFn(ctx, b)
}
func (m *repoMock) ByUser(ctx context.Context, userID int64) (*model.BillingDetail, error) {
	return m.byUserFn(ctx, userID)
}

type negosMock struct {
	byIDFn func(ctx context.Context, id int64) (*model.Negotiation, error)
}

func (m *negosMock) ByID(ctx context.Context, id int64) (*model.Negotiation, error) {
	return m.byIDFn(ctx, id)
}

func participants() *negosMock {
	return &negosMock{byIDFn: func(ctx context.Context, id int64) (*model.Negotiation, error) {
		return &model.Negotiation{ID: id, SenderID: 10, ReceiverID: 20}, nil
	}}
}

func TestRegister_ConsentRequired(t *testing.T) {
	inserted := false
	r := &repoMock{insertFn: func(ctx context.Context, b *model.BillingDetail) error {
		inserted = true
		return nil
	}}
	svc := New(r, participants())

	_, err := svc.Register(context.Background(), 10, 1, "09171234567", false)
	require.Equal(t, ErrNoConsent, Code(err))
	require.False(t, inserted)
}

func TestRegister_HandleTakenByAnyUser(t *testing.T) {
	r := &repoMock{insertFn: func(ctx context.Context, b *model.BillingDetail) error {
		return &pgconn.PgError{
			Code:           pgerrcode.UniqueViolation,
			ConstraintName: "billing_details_payment_handle_key",
		}
	}}
	svc := New(r, participants())

	_, err := svc.Register(context.Background(), 10, 1, "09171234567", true)
	require.Equal(t, ErrHandleTaken, Code(err))
}

func TestRegister_NovelHandleSucceeds(t *testing.T) {
	r := &repoMock{insertFn: func(ctx context.Context, b *model.BillingDetail) error {
		b.ID = 3
		return nil
	}}
	svc := New(r, participants())

	b, err := svc.Register(context.Background(), 10, 1, " 09171234567 ", true)
	require.NoError(t, err)
	require.Equal(t, int64(3), b.ID)
	require.Equal(t, "09171234567", b.PaymentHandle)
	require.Equal(t, int64(10), b.UserID)
	require.Equal(t, int64(1), b.NegotiationID)
}

func TestRegister_EmptyHandleRejected(t *testing.T) {
	svc := New(&repoMock{}, participants())
	_, err := svc.Register(context.Background(), 10, 1, "  ", true)
	require.Equal(t, ErrBadHandle, Code(err))
}

func TestRegister_NonParticipantRejected(t *testing.T) {
	svc := New(&repoMock{}, participants())
	_, err := svc.Register(context.Background(), 99, 1, "09171234567", true)
	require.Equal(t, ErrNotParticipant, Code(err))
}
