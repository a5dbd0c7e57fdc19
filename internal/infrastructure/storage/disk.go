// Package storage keeps uploaded files on the local filesystem. It backs
// uploads when the API runs without MongoDB.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"mime"
	"os"
	"path/filepath"

	"github.com/skattajobs/marketplace-api/internal/core/domain"
)

// DiskStore writes each file under dir by name.
type DiskStore struct {
	dir string
}

// NewDiskStore creates dir when missing.
func NewDiskStore(dir string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("upload dir: %w", err)
	}
	return &DiskStore{dir: dir}, nil
}

func (s *DiskStore) path(name string) (string, error) {
	if name == "" || name != filepath.Base(name) {
		return "", domain.ErrFileNotFound
	}
	return filepath.Join(s.dir, name), nil
}

// Save writes r to a temporary file and renames it into place, so readers
// never see a partial upload.
func (s *DiskStore) Save(ctx context.Context, name, _ string, r io.Reader) error {
	dst, err := s.path(name)
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(s.dir, ".upload-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, &ctxReader{ctx: ctx, r: r}); err != nil {
		tmp.Close()
		return fmt.Errorf("write upload: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close upload: %w", err)
	}
	return os.Rename(tmp.Name(), dst)
}

// Open returns the file and a content type derived from its extension.
func (s *DiskStore) Open(_ context.Context, name string) (io.ReadCloser, string, error) {
	p, err := s.path(name)
	if err != nil {
		return nil, "", err
	}
	f, err := os.Open(p)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, "", domain.ErrFileNotFound
	}
	if err != nil {
		return nil, "", fmt.Errorf("open upload: %w", err)
	}
	contentType := mime.TypeByExtension(filepath.Ext(name))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return f, contentType, nil
}

// ctxReader stops a copy once ctx is done.
type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (c *ctxReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}
