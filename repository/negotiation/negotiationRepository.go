package negotiationrepo

import (
	"context"
	"database/sql"
	"time"

	"spacerental/model"
)

// Row is a negotiation joined with its listing and both parties, the
// shape the list and payment views render from.
type Row struct {
	NegotiationID int64     `json:"negotiation_id"`
	ListingID     int64     `json:"listing_id"`
	ListingTitle  string    `json:"listing_title"`
	SenderID      int64     `json:"sender_id"`
	SenderName    string    `json:"sender_name"`
	ReceiverID    int64     `json:"receiver_id"`
	ReceiverName  string    `json:"receiver_name"`
	Message       string    `json:"message"`
	OfferAmount   float64   `json:"offer_amount"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	PaymentHandle *string   `json:"payment_handle,omitempty"`
}

type Repo interface {
	Insert(ctx context.Context, n *model.Negotiation) error
	ByID(ctx context.Context, id int64) (*model.Negotiation, error)
	UpdateOfferAmount(ctx context.Context, id int64, amount float64) error
	UpdateStatus(ctx context.Context, id int64, status model.NegotiationStatus) error
	ListForUser(ctx context.Context, userID int64) ([]Row, error)
	ListForUserWithBilling(ctx context.Context, userID int64) ([]Row, error)
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db} }

func (r *repo) Insert(ctx context.Context, n *model.Negotiation) error {
	const q = `
	INSERT INTO negotiations (listing_id, sender_id, receiver_id, message, offer_amount, status)
	VALUES ($1,$2,$3,$4,$5,$6)
	RETURNING id, created_at`
	return r.db.QueryRowContext(ctx, q,
		n.ListingID, n.SenderID, n.ReceiverID, n.Message, n.OfferAmount, n.Status,
	).Scan(&n.ID, &n.CreatedAt)
}

func (r *repo) ByID(ctx context.Context, id int64) (*model.Negotiation, error) {
	const q = `
	SELECT id, listing_id, sender_id, receiver_id, message, offer_amount, status, created_at
	FROM negotiations
	WHERE id=$1`
	var n model.Negotiation
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&n.ID, &n.ListingID, &n.SenderID, &n.ReceiverID, &n.Message, &n.OfferAmount, &n.Status, &n.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *repo) UpdateOfferAmount(ctx context.Context, id int64, amount float64) error {
	const q = `UPDATE negotiations SET offer_amount=$2 WHERE id=$1`
	res, err := r.db.ExecContext(ctx, q, id, amount)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *repo) UpdateStatus(ctx context.Context, id int64, status model.NegotiationStatus) error {
	const q = `UPDATE negotiations SET status=$2 WHERE id=$1`
	res, err := r.db.ExecContext(ctx, q, id, status)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *repo) ListForUser(ctx context.Context, userID int64) ([]Row, error) {
	const q = `
	SELECT
		n.id           AS negotiation_id,
		n.listing_id   AS listing_id,
		l.title        AS listing_title,
		n.sender_id    AS sender_id,
		s.first_name || ' ' || s.last_name AS sender_name,
		n.receiver_id  AS receiver_id,
		rcv.first_name || ' ' || rcv.last_name AS receiver_name,
		n.message      AS message,
		n.offer_amount AS offer_amount,
		n.status       AS status,
		n.created_at   AS created_at
	FROM negotiations n
	JOIN listings l ON l.id = n.listing_id
	JOIN users s    ON s.id = n.sender_id
	JOIN users rcv  ON rcv.id = n.receiver_id
	WHERE n.sender_id = $1 OR n.receiver_id = $1
	ORDER BY n.created_at DESC, n.id DESC`
	return r.queryRows(ctx, q, userID, false)
}

func (r *repo) ListForUserWithBilling(ctx context.Context, userID int64) ([]Row, error) {
	const q = `
	SELECT
		n.id           AS negotiation_id,
		n.listing_id   AS listing_id,
		l.title        AS listing_title,
		n.sender_id    AS sender_id,
		s.first_name || ' ' || s.last_name AS sender_name,
		n.receiver_id  AS receiver_id,
		rcv.first_name || ' ' || rcv.last_name AS receiver_name,
		n.message      AS message,
		n.offer_amount AS offer_amount,
		n.status       AS status,
		n.created_at   AS created_at,
		b.payment_handle AS payment_handle
	FROM negotiations n
	JOIN listings l ON l.id = n.listing_id
	JOIN users s    ON s.id = n.sender_id
	JOIN users rcv  ON rcv.id = n.receiver_id
	LEFT JOIN billing_details b ON b.negotiation_id = n.id
	WHERE n.sender_id = $1 OR n.receiver_id = $1
	ORDER BY n.created_at DESC, n.id DESC`
	return r.queryRows(ctx, q, userID, true)
}

func (r *repo) queryRows(ctx context.Context, q string, userID int64, withBilling bool) ([]Row, error) {
	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Row
	for rows.Next() {
		var row Row
		dst := []any{
			&row.NegotiationID, &row.ListingID, &row.ListingTitle,
			&row.SenderID, &row.SenderName,
			&row.ReceiverID, &row.ReceiverName,
			&row.Message, &row.OfferAmount, &row.Status, &row.CreatedAt,
		}
		if withBilling {
			dst = append(dst, &row.PaymentHandle)
		}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
