package reply

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"spacerental/model"
	"spacerental/util/storage"
)

const (
	MaxMessageLen = 1000
	MaxImageBytes = 2 << 20 // 2 MiB
)

var allowedImageExts = map[string]bool{
	".jpeg": true,
	".jpg":  true,
	".png":  true,
	".gif":  true,
}

type ErrCode string

const (
	ErrNotFound       ErrCode = "NOT_FOUND"
	ErrNotParticipant ErrCode = "NOT_PARTICIPANT"
	ErrEmptyReply     ErrCode = "EMPTY_REPLY"
	ErrMessageTooLong ErrCode = "MESSAGE_TOO_LONG"
	ErrBadImageType   ErrCode = "BAD_IMAGE_TYPE"
	ErrImageTooLarge  ErrCode = "IMAGE_TOO_LARGE"
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

// Image is an uploaded reply attachment.
type Image struct {
	Filename string
	Size     int64
	Reader   io.Reader
}

type Repo interface {
	Insert(ctx context.Context, rep *model.Reply) error
	ListByNegotiation(ctx context.Context, negotiationID int64) ([]model.Reply, error)
}

type Negotiations interface {
	ByID(ctx context.Context, id int64) (*model.Negotiation, error)
}

type Service interface {
	// Append adds one message to the thread: either text or an image,
	// never both. An image wins over accompanying text.
	Append(ctx context.Context, actorID, negotiationID int64, message string, img *Image) (*model.Reply, error)

	// List returns the thread in creation order. Any caller who can
	// resolve the negotiation ID may read it.
	List(ctx context.Context, negotiationID int64) ([]model.Reply, error)
}

type service struct {
	r     Repo
	negos Negotiations
	store storage.ImageStore
}

func New(r Repo, negos Negotiations, store storage.ImageStore) Service {
	return &service{r: r, negos: negos, store: store}
}

func (s *service) Append(ctx context.Context, actorID, negotiationID int64, message string, img *Image) (*model.Reply, error) {
	n, err := s.negos.ByID(ctx, negotiationID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, makeErr(ErrNotFound)
		}
		return nil, err
	}
	if !n.IsParticipant(actorID) {
		return nil, makeErr(ErrNotParticipant)
	}

	message = strings.TrimSpace(message)
	if img == nil && message == "" {
		return nil, makeErr(ErrEmptyReply)
	}
	if utf8.RuneCountInString(message) > MaxMessageLen {
		return nil, makeErr(ErrMessageTooLong)
	}

	rep := &model.Reply{NegotiationID: negotiationID, SenderID: actorID}
	if img != nil {
		if !allowedImageExts[strings.ToLower(filepath.Ext(img.Filename))] {
			return nil, makeErr(ErrBadImageType)
		}
		if img.Size > MaxImageBytes {
			return nil, makeErr(ErrImageTooLarge)
		}
		key, err := s.store.Save(img.Filename, img.Reader)
		if err != nil {
			return nil, err
		}
		rep.Message = key
		rep.IsImage = true
	} else {
		rep.Message = message
	}

	if err := s.r.Insert(ctx, rep); err != nil {
		return nil, err
	}
	return rep, nil
}

func (s *service) List(ctx context.Context, negotiationID int64) ([]model.Reply, error) {
	return s.r.ListByNegotiation(ctx, negotiationID)
}
