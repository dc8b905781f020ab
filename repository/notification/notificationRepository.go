package notificationrepo

import (
	"context"
	"database/sql"

	"spacerental/model"
)

type Repo interface {
	Insert(ctx context.Context, n *model.Notification) error
	ListForUser(ctx context.Context, userID int64) ([]model.Notification, error)
	MarkRead(ctx context.Context, id, userID int64) error
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db} }

func (r *repo) Insert(ctx context.Context, n *model.Notification) error {
	const q = `
	INSERT INTO notifications (user_id, type, data)
	VALUES ($1,$2,$3)
	RETURNING id, created_at`
	return r.db.QueryRowContext(ctx, q, n.UserID, n.Type, n.Data).Scan(&n.ID, &n.CreatedAt)
}

func (r *repo) ListForUser(ctx context.Context, userID int64) ([]model.Notification, error) {
	const q = `
	SELECT id, user_id, type, data, is_read, created_at
	FROM notifications
	WHERE user_id=$1
	ORDER BY created_at DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Notification
	for rows.Next() {
		var n model.Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.Type, &n.Data, &n.IsRead, &n.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

func (r *repo) MarkRead(ctx context.Context, id, userID int64) error {
	// Scoped to the recipient.
	const q = `UPDATE notifications SET is_read=TRUE WHERE id=$1 AND user_id=$2`
	res, err := r.db.ExecContext(ctx, q, id, userID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
