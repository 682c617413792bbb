package storage

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const pngDataURIPrefix = "data:image/png;base64,"

// ImageStore persists uploaded vendor images and returns the stored path.
type ImageStore interface {
	Save(image string) (string, error)
}

// DiskStore writes decoded PNG payloads under a local directory. Filenames
// are random so concurrent uploads cannot collide.
type DiskStore struct {
	dir string
}

// NewDiskStore creates a disk-backed image store rooted at dir. The
// directory is created if missing.
func NewDiskStore(dir string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &DiskStore{dir: dir}, nil
}

// Save strips a data:image/png;base64 prefix when present, decodes the
// remainder, and writes it as a .png file. It returns the stored path
// (dir-relative, forward slashes) to keep on the vendor record.
func (s *DiskStore) Save(image string) (string, error) {
	payload := strings.TrimPrefix(image, pngDataURIPrefix)

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", fmt.Errorf("decode image: %w", err)
	}

	name := uuid.New().String() + ".png"
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("write image: %w", err)
	}
	return s.dir + "/" + name, nil
}
