package ports

import (
	"context"
	"io"
)

// FileStore persists uploaded files by name.
type FileStore interface {
	Save(ctx context.Context, name, contentType string, r io.Reader) error
	// Open returns ErrFileNotFound for unknown names.
	Open(ctx context.Context, name string) (io.ReadCloser, string, error)
}

// UploadInput describes one uploaded file.
type UploadInput struct {
	Kind     string // avatar | service | portfolio
	// Filename only contributes its extension; the stored type is derived from it.
	Filename string
	Body     io.Reader
}

type UploadService interface {
	// Upload stores the file and returns its public URL.
	Upload(ctx context.Context, userID string, input UploadInput) (string, error)
	Open(ctx context.Context, name string) (io.ReadCloser, string, error)
}
