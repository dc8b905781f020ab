package billingrepo

import (
	"context"
	"database/sql"

	"spacerental/model"
)

type Repo interface {
	Insert(ctx context.Context, b *model.BillingDetail) error
	ByUser(ctx context.Context, userID int64) (*model.BillingDetail, error)
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db} }

func (r *repo) Insert(ctx context.Context, b *model.BillingDetail) error {
	const q = `
	INSERT INTO billing_details (user_id, negotiation_id, payment_handle, consented)
	VALUES ($1,$2,$3,$4)
	RETURNING id, created_at`
	return r.db.QueryRowContext(ctx, q,
		b.UserID, b.NegotiationID, b.PaymentHandle, b.Consented,
	).Scan(&b.ID, &b.CreatedAt)
}

// ByUser returns the user's earliest billing record, or nil when none
// exists. The payment view treats a missing record as "not registered
// yet", not an error.
func (r *repo) ByUser(ctx context.Context, userID int64) (*model.BillingDetail, error) {
	const q = `
	SELECT id, user_id, negotiation_id, payment_handle, consented, created_at
	FROM billing_details
	WHERE user_id=$1
	ORDER BY id ASC
	LIMIT 1`
	var b model.BillingDetail
	err := r.db.QueryRowContext(ctx, q, userID).Scan(
		&b.ID, &b.UserID, &b.NegotiationID, &b.PaymentHandle, &b.Consented, &b.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}
