package agreementrepo

import (
	"context"
	"database/sql"

	"spacerental/model"
)

type Repo interface {
	Insert(ctx context.Context, a *model.RentalAgreement) error
	ListForUser(ctx context.Context, userID int64) ([]model.RentalAgreement, error)
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db} }

func (r *repo) Insert(ctx context.Context, a *model.RentalAgreement) error {
	const q = `
	INSERT INTO rental_agreements
		(negotiation_id, owner_id, renter_id, listing_id, rental_term, offer_amount, date_start, date_end, status)
	VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	RETURNING id, created_at`
	return r.db.QueryRowContext(ctx, q,
		a.NegotiationID, a.OwnerID, a.RenterID, a.ListingID,
		a.RentalTerm, a.OfferAmount, a.DateStart, a.DateEnd, a.Status,
	).Scan(&a.ID, &a.CreatedAt)
}

func (r *repo) ListForUser(ctx context.Context, userID int64) ([]model.RentalAgreement, error) {
	const q = `
	SELECT id, negotiation_id, owner_id, renter_id, listing_id, rental_term,
	       offer_amount, date_start, date_end, status, created_at
	FROM rental_agreements
	WHERE owner_id=$1 OR renter_id=$1
	ORDER BY created_at DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.RentalAgreement
	for rows.Next() {
		var a model.RentalAgreement
		if err := rows.Scan(
			&a.ID, &a.NegotiationID, &a.OwnerID, &a.RenterID, &a.ListingID,
			&a.RentalTerm, &a.OfferAmount, &a.DateStart, &a.DateEnd, &a.Status, &a.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
