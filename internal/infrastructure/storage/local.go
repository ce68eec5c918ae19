// Package storage is the blob store boundary: upload a file under a bucket
// and get back a public URL for it. The local driver keeps buckets as
// directories under one root and serves them via the HTTP static route.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/niwatnet1979-coder/168InteriorLighting/internal/domain"
)

// Local stores blobs on the filesystem.
type Local struct {
	dir     string
	baseURL string
}

// NewLocal builds the driver. dir is the root directory, baseURL the public
// prefix the HTTP layer serves dir under.
func NewLocal(dir, baseURL string) (*Local, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: create root: %w", err)
	}
	return &Local{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

// SaveObject writes data under the bucket with a fresh name keeping the
// original extension, and returns the object path (bucket/name).
func (l *Local) SaveObject(bucket, filename string, data []byte) (string, error) {
	if !validBucket(bucket) {
		return "", fmt.Errorf("%w: bad bucket name %q", domain.ErrInvalidInput, bucket)
	}
	if err := os.MkdirAll(filepath.Join(l.dir, bucket), 0o755); err != nil {
		return "", fmt.Errorf("storage: create bucket: %w", err)
	}
	name := uuid.New().String() + strings.ToLower(filepath.Ext(filename))
	if err := os.WriteFile(filepath.Join(l.dir, bucket, name), data, 0o644); err != nil {
		return "", fmt.Errorf("storage: write object: %w", err)
	}
	return bucket + "/" + name, nil
}

// PublicURL maps an object path to its URL.
func (l *Local) PublicURL(objectPath string) string {
	return l.baseURL + "/" + strings.TrimLeft(objectPath, "/")
}

// Dir returns the root directory, for the static file route.
func (l *Local) Dir() string { return l.dir }

// validBucket permits plain directory names only, so an object can never
// land outside the storage root.
func validBucket(s string) bool {
	return s != "" && s != "." && !strings.Contains(s, "..") &&
		!strings.ContainsAny(s, `/\`)
}
