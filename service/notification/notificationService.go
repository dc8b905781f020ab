package notification

import (
	"context"
	"database/sql"
	"errors"

	"spacerental/model"
	notificationrepo "spacerental/repository/notification"
)

var ErrNotFound = errors.New("notification not found")

type Service interface {
	Inbox(ctx context.Context, actorID int64) ([]model.Notification, error)
	MarkRead(ctx context.Context, actorID, notificationID int64) error
}

type service struct{ r notificationrepo.Repo }

func New(r notificationrepo.Repo) Service { return &service{r: r} }

func (s *service) Inbox(ctx context.Context, actorID int64) ([]model.Notification, error) {
	return s.r.ListForUser(ctx, actorID)
}

func (s *service) MarkRead(ctx context.Context, actorID, notificationID int64) error {
	err := s.r.MarkRead(ctx, notificationID, actorID)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}
