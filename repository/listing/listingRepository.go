package listingrepo

import (
	"context"
	"database/sql"

	"spacerental/model"
)

type Repo interface {
	List(ctx context.Context) ([]model.Listing, error)
	ByID(ctx context.Context, id int64) (*model.Listing, error)
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db} }

func (r *repo) List(ctx context.Context) ([]model.Listing, error) {
	const q = `
	SELECT id, owner_id, title, description, location, price, created_at
	FROM listings
	ORDER BY id DESC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Listing
	for rows.Next() {
		var l model.Listing
		if err := rows.Scan(&l.ID, &l.OwnerID, &l.Title, &l.Description, &l.Location, &l.Price, &l.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func (r *repo) ByID(ctx context.Context, id int64) (*model.Listing, error) {
	const q = `
	SELECT id, owner_id, title, description, location, price, created_at
	FROM listings
	WHERE id=$1`
	var l model.Listing
	err := r.db.QueryRowContext(ctx, q, id).Scan(&l.ID, &l.OwnerID, &l.Title, &l.Description, &l.Location, &l.Price, &l.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &l, nil
}
