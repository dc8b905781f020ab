package replyrepo

import (
	"context"
	"database/sql"

	"spacerental/model"
)

type Repo interface {
	Insert(ctx context.Context, rep *model.Reply) error
	ListByNegotiation(ctx context.Context, negotiationID int64) ([]model.Reply, error)
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db} }

func (r *repo) Insert(ctx context.Context, rep *model.Reply) error {
	const q = `
	INSERT INTO replies (negotiation_id, sender_id, message, is_image)
	VALUES ($1,$2,$3,$4)
	RETURNING id, created_at`
	return r.db.QueryRowContext(ctx, q,
		rep.NegotiationID, rep.SenderID, rep.Message, rep.IsImage,
	).Scan(&rep.ID, &rep.CreatedAt)
}

func (r *repo) ListByNegotiation(ctx context.Context, negotiationID int64) ([]model.Reply, error) {
	const q = `
	SELECT id, negotiation_id, sender_id, message, is_image, created_at
	FROM replies
	WHERE negotiation_id=$1
	ORDER BY created_at ASC, id ASC`
	rows, err := r.db.QueryContext(ctx, q, negotiationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Reply
	for rows.Next() {
		var rep model.Reply
		if err := rows.Scan(&rep.ID, &rep.NegotiationID, &rep.SenderID, &rep.Message, &rep.IsImage, &rep.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, rep)
	}
	return out, rows.Err()
}
