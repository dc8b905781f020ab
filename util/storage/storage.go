package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ImageStore persists uploaded reply images and returns the key they
// were stored under.
type ImageStore interface {
	Save(originalName string, r io.Reader) (key string, err error)
}

type DiskStore struct {
	Dir string
}

func NewDisk(dir string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskStore{Dir: dir}, nil
}

// Save writes the image under a fresh UUID key, keeping the original
// extension. Two uploads with the same client filename never collide.
func (s *DiskStore) Save(originalName string, r io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	key := uuid.NewString() + ext

	f, err := os.OpenFile(filepath.Join(s.Dir, key), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("create image file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("write image file: %w", err)
	}
	return key, nil
}
