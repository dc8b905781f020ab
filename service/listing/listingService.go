package listing

import (
	"context"
	"database/sql"
	"errors"

	"spacerental/model"
	listingrepo "spacerental/repository/listing"
)

var ErrNotFound = errors.New("listing not found")

type Repo interface {
	List(ctx context.Context) ([]model.Listing, error)
	ByID(ctx context.Context, id int64) (*model.Listing, error)
}

type Service interface {
	List(ctx context.Context) ([]model.Listing, error)
	Detail(ctx context.Context, id int64) (*model.Listing, error)
}

type service struct{ r Repo }

func New(r Repo) Service { return &service{r: r} }

var _ Repo = (listingrepo.Repo)(nil)

func (s *service) List(ctx context.Context) ([]model.Listing, error) { return s.r.List(ctx) }

func (s *service) Detail(ctx context.Context, id int64) (*model.Listing, error) {
	l, err := s.r.ByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return l, err
}
