package auth

import (
	"context"
	"errors"
	"testing"

	"spacerental/model"
	userrepo "spacerental/repository/user"
	"spacerental/util/hash"

	"github.com/stretchr/testify/require"
)

type mockRepo struct {
	byEmailFn func(ctx context.Context, email string) (*model.User, error)
	createFn  func(ctx context.Context, u *model.User) error
	existsFn  func(ctx context.Context, id int64) (bool, error)
}

var _ userrepo.Repo = (*mockRepo)(nil)

func (m *mockRepo) ByEmail(ctx context.Context, email string) (*model.User, error) {
	if m.byEmailFn == nil {
		return nil, errors.New("not found")
	}
	return m.byEmailFn(ctx, email)
}

func (m *mockRepo) Create(ctx context.Context, u *model.User) error {
	if m.createFn == nil {
		return nil
	}
	return m.createFn(ctx, u)
}

func (m *mockRepo) Exists(ctx context.Context, id int64) (bool, error) {
	if m.existsFn == nil {
		return true, nil
	}
	return m.existsFn(ctx, id)
}

func mustHash(t *testing.T, plain string) string {
	t.Helper()
	h, err := hash.HashPassword(plain)
	require.NoError(t, err)
	return h
}

func TestRegister_Success(t *testing.T) {
	ctx := context.Background()
	m := &mockRepo{
		createFn: func(ctx context.Context, u *model.User) error {
			u.ID = 42
			return nil
		},
	}
	svc := New(m, "test-secret")

	u, tok, err := svc.Register(ctx, model.RegisterReq{
		FirstName: "Sam",
		LastName:  "Space",
		Email:     "USER@Example.COM",
		Username:  "sam",
		Password:  "supersecret",
		Role:      "space_owner",
	})
	require.NoError(t, err)
	require.NotNil(t, u)
	require.NotEmpty(t, tok)
	require.Equal(t, int64(42), u.ID)
	require.Equal(t, "user@example.com", u.Email)
	require.Equal(t, model.RoleSpaceOwner, u.Role)
	require.NotEmpty(t, u.PasswordHash)
}

func TestRegister_AdminRoleRejected(t *testing.T) {
	svc := New(&mockRepo{}, "test-secret")

	_, _, err := svc.Register(context.Background(), model.RegisterReq{
		FirstName: "A", LastName: "B",
		Email:    "a@example.com",
		Username: "a",
		Password: "123456",
		Role:     "admin",
	})
	require.Error(t, err)
	require.Equal(t, ErrBadInput, Code(err))
}

func TestRegister_BadInput(t *testing.T) {
	svc := New(&mockRepo{}, "test-secret")

	_, _, err := svc.Register(context.Background(), model.RegisterReq{
		Email:    " ",
		Username: "u",
		Password: "123",
		Role:     "business_owner",
	})
	require.Error(t, err)
	require.Equal(t, ErrBadInput, Code(err))
}

func TestLogin_Success(t *testing.T) {
	pw := "supersecret"
	hashed := mustHash(t, pw)

	m := &mockRepo{
		byEmailFn: func(ctx context.Context, email string) (*model.User, error) {
			return &model.User{
				ID:           7,
				Email:        "user@example.com",
				Username:     "sam",
				PasswordHash: hashed,
				Role:         model.RoleSpaceOwner,
			}, nil
		},
	}
	svc := New(m, "test-secret")

	u, tok, err := svc.Login(context.Background(), model.LoginReq{
		Email:    "User@Example.com",
		Password: pw,
	})
	require.NoError(t, err)
	require.NotNil(t, u)
	require.NotEmpty(t, tok)
	require.Equal(t, int64(7), u.ID)
}

func TestLogin_WrongPassword(t *testing.T) {
	hashed := mustHash(t, "correct-password")

	m := &mockRepo{
		byEmailFn: func(ctx context.Context, email string) (*model.User, error) {
			return &model.User{ID: 101, PasswordHash: hashed, Role: model.RoleBusinessOwner}, nil
		},
	}
	svc := New(m, "test-secret")

	_, _, err := svc.Login(context.Background(), model.LoginReq{
		Email:    "user@example.com",
		Password: "wrong-password",
	})
	require.Error(t, err)
	require.Equal(t, ErrInvalidCreds, Code(err))
}

func TestLogin_UserNotFound(t *testing.T) {
	m := &mockRepo{
		byEmailFn: func(ctx context.Context, email string) (*model.User, error) {
			return nil, errors.New("no rows")
		},
	}
	svc := New(m, "test-secret")

	_, _, err := svc.Login(context.Background(), model.LoginReq{
		Email:    "missing@example.com",
		Password: "whatever",
	})
	require.Error(t, err)
	require.Equal(t, ErrInvalidCreds, Code(err))
}
