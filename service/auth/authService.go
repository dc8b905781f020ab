package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"spacerental/model"
	userrepo "spacerental/repository/user"
	"spacerental/util/hash"
	jwtutil "spacerental/util/jwt"
)

type ErrCode string

const (
	ErrEmailTaken    ErrCode = "EMAIL_TAKEN"
	ErrUsernameTaken ErrCode = "USERNAME_TAKEN"
	ErrInvalidCreds  ErrCode = "INVALID_CREDENTIALS"
	ErrBadInput      ErrCode = "BAD_INPUT"
)

type codedError struct{ code ErrCode }

func (e codedError) Error() string { return string(e.code) }
func (e codedError) Code() ErrCode { return e.code }
func makeErr(c ErrCode) error      { return codedError{code: c} }

func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}

type Service interface {
	Register(ctx context.Context, req model.RegisterReq) (*model.User, string, error)
	Login(ctx context.Context, req model.LoginReq) (*model.User, string, error)
}

type service struct {
	ur     userrepo.Repo
	secret string
}

func New(ur userrepo.Repo, secret string) Service { return &service{ur: ur, secret: secret} }

func (s *service) Register(ctx context.Context, req model.RegisterReq) (*model.User, string, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	username := strings.TrimSpace(req.Username)
	role := model.Role(req.Role)
	if email == "" || username == "" || len(req.Password) < 6 || !role.Valid() || role == model.RoleAdmin {
		return nil, "", makeErr(ErrBadInput)
	}

	hashed, err := hash.HashPassword(req.Password)
	if err != nil {
		return nil, "", err
	}

	u := &model.User{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        email,
		Username:     username,
		PasswordHash: hashed,
		Role:         role,
	}

	if err := s.ur.Create(ctx, u); err != nil {
		if derr := mapDuplicateErr(err); derr != nil {
			return nil, "", derr
		}
		return nil, "", err
	}

	token, err := jwtutil.Issue(s.secret, u.ID, string(u.Role), 24)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

func mapDuplicateErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		cn := strings.ToLower(pgErr.ConstraintName)
		msg := strings.ToLower(pgErr.Message)

		if strings.Contains(cn, "users_email") || strings.Contains(msg, "email") {
			return makeErr(ErrEmailTaken)
		}
		if strings.Contains(cn, "users_username") || strings.Contains(msg, "username") {
			return makeErr(ErrUsernameTaken)
		}
		return makeErr(ErrBadInput)
	}
	return nil
}

func (s *service) Login(ctx context.Context, req model.LoginReq) (*model.User, string, error) {
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return nil, "", makeErr(ErrBadInput)
	}
	u, err := s.ur.ByEmail(ctx, req.Email)
	if err != nil || u == nil {
		return nil, "", makeErr(ErrInvalidCreds)
	}
	if !hash.Check(u.PasswordHash, req.Password) {
		return nil, "", makeErr(ErrInvalidCreds)
	}
	token, err := jwtutil.Issue(s.secret, u.ID, string(u.Role), 24)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}
