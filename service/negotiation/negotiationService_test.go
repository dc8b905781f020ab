package negotiation

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"

	"spacerental/model"

	"github.com/stretchr/testify/require"
)

type repoMock struct {
	insertFn      func(ctx context.Context, n *model.Negotiation) error
	byIDFn        func(ctx context.Context, id int64) (*model.Negotiation, error)
	updateOfferFn func(ctx context.Context, id int64, amount float64) error
	updateStatFn  func(ctx context.Context, id int64, status model.NegotiationStatus) error
	listFn        func(ctx context.Context, userID int64) ([]Row, error)
	listBillFn    func(ctx context.Context, userID int64) ([]Row, error)
}

func (m *repoMock) Insert(ctx context.Context, n *model.Negotiation) error {
	return m.insertFn(ctx, n)
}
func (m *repoMock) ByID(ctx context.Context, id int64) (*model.Negotiation, error) {
	return m.byIDFn(ctx, id)
}
func (m *repoMock) UpdateOfferAmount(ctx context.Context, id int64, amount float64) error {
	return m.updateOfferFn(ctx, id, amount)
}
func (m *repoMock) UpdateStatus(ctx context.Context, id int64, status model.NegotiationStatus) error {
	return m.updateStatFn(ctx, id, status)
}
func (m *repoMock) ListForUser(ctx context.Context, userID int64) ([]Row, error) {
	return m.listFn(ctx, userID)
}
func (m *repoMock) ListForUserWithBilling(ctx context.Context, userID int64) ([]Row, error) {
	return m.listBillFn(ctx, userID)
}

type listingsMock struct {
	byIDFn func(ctx context.Context, id int64) (*model.Listing, error)
}

func (m *listingsMock) ByID(ctx context.Context, id int64) (*model.Listing, error) {
	return m.byIDFn(ctx, id)
}

type usersMock struct {
	existsFn func(ctx context.Context, id int64) (bool, error)
}

func (m *usersMock) Exists(ctx context.Context, id int64) (bool, error) {
	return m.existsFn(ctx, id)
}

type notifierMock struct {
	insertFn func(ctx context.Context, n *model.Notification) error
	sent     []*model.Notification
}

func (m *notifierMock) Insert(ctx context.Context, n *model.Notification) error {
	if m.insertFn != nil {
		if err := m.insertFn(ctx, n); err != nil {
			return err
		}
	}
	m.sent = append(m.sent, n)
	return nil
}

type billingMock struct {
	byUserFn func(ctx context.Context, userID int64) (*model.BillingDetail, error)
}

func (m *billingMock) ByUser(ctx context.Context, userID int64) (*model.BillingDetail, error) {
	return m.byUserFn(ctx, userID)
}

const (
	businessOwnerID = int64(10)
	spaceOwnerID    = int64(20)
	listingID       = int64(5)
)

func pendingNegotiation() *model.Negotiation {
	return &model.Negotiation{
		ID:          1,
		ListingID:   listingID,
		SenderID:    businessOwnerID,
		ReceiverID:  spaceOwnerID,
		OfferAmount: 500,
		Status:      model.NegotiationPending,
	}
}

func listingsWithTitle(title string) *listingsMock {
	return &listingsMock{byIDFn: func(ctx context.Context, id int64) (*model.Listing, error) {
		return &model.Listing{ID: id, OwnerID: spaceOwnerID, Title: title}, nil
	}}
}

func TestCreate_NegativeAmountRejected(t *testing.T) {
	inserted := false
	r := &repoMock{insertFn: func(ctx context.Context, n *model.Negotiation) error {
		inserted = true
		return nil
	}}
	svc := New(r, listingsWithTitle("Corner Lot"), &usersMock{}, &notifierMock{}, &billingMock{})

	_, err := svc.Create(context.Background(), businessOwnerID, CreateInput{
		ListingID: listingID, ReceiverID: spaceOwnerID, Message: "hi", OfferAmount: -1,
	})
	require.Error(t, err)
	require.Equal(t, ErrNegativeAmount, Code(err))
	require.False(t, inserted, "no row may be written on validation failure")
}

func TestCreate_SelfNegotiationRejected(t *testing.T) {
	svc := New(&repoMock{}, listingsWithTitle("Corner Lot"), &usersMock{}, &notifierMock{}, &billingMock{})

	_, err := svc.Create(context.Background(), spaceOwnerID, CreateInput{
		ListingID: listingID, ReceiverID: spaceOwnerID, Message: "hi", OfferAmount: 100,
	})
	require.Equal(t, ErrSelfNegotiation, Code(err))
}

func TestCreate_ListingNotFound(t *testing.T) {
	l := &listingsMock{byIDFn: func(ctx context.Context, id int64) (*model.Listing, error) {
		return nil, sql.ErrNoRows
	}}
	svc := New(&repoMock{}, l, &usersMock{}, &notifierMock{}, &billingMock{})

	_, err := svc.Create(context.Background(), businessOwnerID, CreateInput{
		ListingID: 999, ReceiverID: spaceOwnerID, Message: "hi", OfferAmount: 100,
	})
	require.Equal(t, ErrListingNotFound, Code(err))
}

func TestCreate_Success_NotifiesReceiver(t *testing.T) {
	r := &repoMock{insertFn: func(ctx context.Context, n *model.Negotiation) error {
		n.ID = 7
		return nil
	}}
	u := &usersMock{existsFn: func(ctx context.Context, id int64) (bool, error) { return true, nil }}
	nf := &notifierMock{}
	svc := New(r, listingsWithTitle("Corner Lot"), u, nf, &billingMock{})

	n, err := svc.Create(context.Background(), businessOwnerID, CreateInput{
		ListingID: listingID, ReceiverID: spaceOwnerID, Message: "interested", OfferAmount: 500,
	})
	require.NoError(t, err)
	require.Equal(t, int64(7), n.ID)
	require.Equal(t, model.NegotiationPending, n.Status)
	require.Equal(t, businessOwnerID, n.SenderID)

	require.Len(t, nf.sent, 1)
	require.Equal(t, spaceOwnerID, nf.sent[0].UserID)
	require.Equal(t, model.NotifNegotiation, nf.sent[0].Type)
	require.Equal(t, "Corner Lot", nf.sent[0].Data)
}

func TestCreate_NotificationFailureDoesNotFail(t *testing.T) {
	r := &repoMock{insertFn: func(ctx context.Context, n *model.Negotiation) error { return nil }}
	u := &usersMock{existsFn: func(ctx context.Context, id int64) (bool, error) { return true, nil }}
	nf := &notifierMock{insertFn: func(ctx context.Context, n *model.Notification) error {
		return errors.New("db down")
	}}
	svc := New(r, listingsWithTitle("Corner Lot"), u, nf, &billingMock{})

	_, err := svc.Create(context.Background(), businessOwnerID, CreateInput{
		ListingID: listingID, ReceiverID: spaceOwnerID, Message: "hi", OfferAmount: 100,
	})
	require.NoError(t, err, "negotiation persists even when the notification write fails")
}

func TestUpdateOfferAmount_NonParticipantRejected(t *testing.T) {
	r := &repoMock{byIDFn: func(ctx context.Context, id int64) (*model.Negotiation, error) {
		return pendingNegotiation(), nil
	}}
	svc := New(r, listingsWithTitle("x"), &usersMock{}, &notifierMock{}, &billingMock{})

	err := svc.UpdateOfferAmount(context.Background(), int64(99), 1, 700)
	require.Equal(t, ErrNotParticipant, Code(err))
}

func TestUpdateOfferAmount_EitherPartyMayRevise(t *testing.T) {
	for _, actor := range []int64{businessOwnerID, spaceOwnerID} {
		var got float64
		r := &repoMock{
			byIDFn: func(ctx context.Context, id int64) (*model.Negotiation, error) {
				return pendingNegotiation(), nil
			},
			updateOfferFn: func(ctx context.Context, id int64, amount float64) error {
				got = amount
				return nil
			},
		}
		svc := New(r, listingsWithTitle("x"), &usersMock{}, &notifierMock{}, &billingMock{})

		require.NoError(t, svc.UpdateOfferAmount(context.Background(), actor, 1, 750))
		require.Equal(t, float64(750), got)
	}
}

func TestUpdateOfferAmount_NegativeRejected(t *testing.T) {
	svc := New(&repoMock{}, listingsWithTitle("x"), &usersMock{}, &notifierMock{}, &billingMock{})
	err := svc.UpdateOfferAmount(context.Background(), businessOwnerID, 1, -5)
	require.Equal(t, ErrNegativeAmount, Code(err))
}

func TestUpdateStatus_SenderRejected(t *testing.T) {
	r := &repoMock{byIDFn: func(ctx context.Context, id int64) (*model.Negotiation, error) {
		return pendingNegotiation(), nil
	}}
	svc := New(r, listingsWithTitle("x"), &usersMock{}, &notifierMock{}, &billingMock{})

	// The business owner made the offer; they may not approve it.
	_, err := svc.UpdateStatus(context.Background(), businessOwnerID, 1, model.NegotiationApproved)
	require.Equal(t, ErrNotReceiver, Code(err))
}

func TestUpdateStatus_ReceiverApproves_NotifiesSender(t *testing.T) {
	r := &repoMock{
		byIDFn: func(ctx context.Context, id int64) (*model.Negotiation, error) {
			return pendingNegotiation(), nil
		},
		updateStatFn: func(ctx context.Context, id int64, status model.NegotiationStatus) error {
			return nil
		},
	}
	nf := &notifierMock{}
	svc := New(r, listingsWithTitle("Corner Lot"), &usersMock{}, nf, &billingMock{})

	n, err := svc.UpdateStatus(context.Background(), spaceOwnerID, 1, model.NegotiationApproved)
	require.NoError(t, err)
	require.Equal(t, model.NegotiationApproved, n.Status)

	require.Len(t, nf.sent, 1)
	require.Equal(t, businessOwnerID, nf.sent[0].UserID)
	require.Equal(t, model.NotifNegotiationStatus, nf.sent[0].Type)
	require.True(t, strings.Contains(nf.sent[0].Data, "Corner Lot"))
	require.True(t, strings.Contains(nf.sent[0].Data, "Approved"))
}

func TestUpdateStatus_DecidedNegotiationIsFinal(t *testing.T) {
	decided := pendingNegotiation()
	decided.Status = model.NegotiationApproved

	r := &repoMock{byIDFn: func(ctx context.Context, id int64) (*model.Negotiation, error) {
		return decided, nil
	}}
	svc := New(r, listingsWithTitle("x"), &usersMock{}, &notifierMock{}, &billingMock{})

	for _, next := range []model.NegotiationStatus{
		model.NegotiationPending, model.NegotiationDisapproved, model.NegotiationApproved,
	} {
		_, err := svc.UpdateStatus(context.Background(), spaceOwnerID, 1, next)
		require.Equal(t, ErrInvalidTransition, Code(err), "transition to %s must be rejected", next)
	}
}

func TestUpdateStatus_UnknownStatusRejected(t *testing.T) {
	svc := New(&repoMock{}, listingsWithTitle("x"), &usersMock{}, &notifierMock{}, &billingMock{})
	_, err := svc.UpdateStatus(context.Background(), spaceOwnerID, 1, "Maybe")
	require.Equal(t, ErrInvalidStatus, Code(err))
}

func TestListForActor_RoleShapesCounterpart(t *testing.T) {
	rows := []Row{{
		NegotiationID: 1,
		SenderID:      businessOwnerID, SenderName: "Bea Business",
		ReceiverID: spaceOwnerID, ReceiverName: "Sam Space",
	}}
	r := &repoMock{listFn: func(ctx context.Context, userID int64) ([]Row, error) { return rows, nil }}
	svc := New(r, listingsWithTitle("x"), &usersMock{}, &notifierMock{}, &billingMock{})

	v, err := svc.ListForActor(context.Background(), businessOwnerID, model.RoleBusinessOwner)
	require.NoError(t, err)
	require.Equal(t, "business_owner.negotiations", v.View)
	require.Equal(t, "Sam Space", v.Negotiations[0].CounterpartName)

	v, err = svc.ListForActor(context.Background(), spaceOwnerID, model.RoleSpaceOwner)
	require.NoError(t, err)
	require.Equal(t, "space_owner.negotiations", v.View)
	require.Equal(t, "Bea Business", v.Negotiations[0].CounterpartName)
}

func TestPaymentContext_EmptyStateIsNotAnError(t *testing.T) {
	r := &repoMock{listBillFn: func(ctx context.Context, userID int64) ([]Row, error) { return nil, nil }}
	b := &billingMock{byUserFn: func(ctx context.Context, userID int64) (*model.BillingDetail, error) {
		return nil, nil
	}}
	svc := New(r, listingsWithTitle("x"), &usersMock{}, &notifierMock{}, b)

	pc, err := svc.PaymentContext(context.Background(), businessOwnerID)
	require.NoError(t, err)
	require.NotNil(t, pc)
	require.Empty(t, pc.Negotiations)
	require.Nil(t, pc.Billing)
}
