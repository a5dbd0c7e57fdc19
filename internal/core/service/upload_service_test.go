package service

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/skattajobs/marketplace-api/internal/core/domain"
	"github.com/skattajobs/marketplace-api/internal/core/ports"
)

type stubFileStore struct {
	mu    sync.Mutex
	files map[string][]byte
}

func (s *stubFileStore) Save(_ context.Context, name, _ string, r io.Reader) error {
	b, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.files[name] = b
	return nil
}

func (s *stubFileStore) Open(_ context.Context, name string) (io.ReadCloser, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.files[name]
	if !ok {
		return nil, "", domain.ErrFileNotFound
	}
	return io.NopCloser(bytes.NewReader(b)), "text/html", nil
}

func TestUploadService_Upload(t *testing.T) {
	store := &stubFileStore{files: map[string][]byte{}}
	svc := NewUploadService(store, "http://localhost:3001/api/", zerolog.Nop())
	ctx := context.Background()

	url, err := svc.Upload(ctx, "u1", ports.UploadInput{
		Kind: "avatar", Filename: "me.PNG", Body: strings.NewReader("png"),
	})
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	prefix := "http://localhost:3001/api/uploads/avatar-"
	if !strings.HasPrefix(url, prefix) || !strings.HasSuffix(url, ".png") {
		t.Fatalf("unexpected url %q", url)
	}

	name := strings.TrimPrefix(url, "http://localhost:3001/api/uploads/")
	rc, contentType, err := svc.Open(ctx, name)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if contentType != "image/png" {
		t.Fatalf("unexpected content type %q", contentType)
	}
	defer rc.Close()
	body, _ := io.ReadAll(rc)
	if string(body) != "png" {
		t.Fatalf("unexpected body %q", body)
	}
}

func TestUploadService_Rejects(t *testing.T) {
	svc := NewUploadService(&stubFileStore{files: map[string][]byte{}}, "http://x", zerolog.Nop())
	ctx := context.Background()

	_, err := svc.Upload(ctx, "u1", ports.UploadInput{Kind: "cv", Body: strings.NewReader("x")})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	for _, name := range []string{"../etc/passwd", "avatar-../../x", "other-1.png", "avatar-1.html", "portfolio-1.svg", ""} {
		if _, _, err := svc.Open(ctx, name); !errors.Is(err, domain.ErrFileNotFound) {
			t.Fatalf("%q: expected ErrFileNotFound, got %v", name, err)
		}
	}
}

func TestUploadService_RejectsActiveContent(t *testing.T) {
	store := &stubFileStore{files: map[string][]byte{}}
	svc := NewUploadService(store, "http://x", zerolog.Nop())
	ctx := context.Background()

	cases := []struct{ kind, filename string }{
		{"avatar", "x.html"},
		{"avatar", "x.svg"},
		{"service", "x.htm"},
		{"avatar", "x.pdf"},
		{"portfolio", "x.js"},
		{"avatar", "noext"},
	}
	for _, tc := range cases {
		_, err := svc.Upload(ctx, "u1", ports.UploadInput{
			Kind: tc.kind, Filename: tc.filename, Body: strings.NewReader("<script>alert(1)</script>"),
		})
		if !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("%s %s: expected ErrValidation, got %v", tc.kind, tc.filename, err)
		}
	}
	if len(store.files) != 0 {
		t.Fatalf("rejected uploads must not be stored, got %d", len(store.files))
	}

	if _, err := svc.Upload(ctx, "u1", ports.UploadInput{
		Kind: "portfolio", Filename: "cv.pdf", Body: strings.NewReader("%PDF"),
	}); err != nil {
		t.Fatalf("portfolio pdf should be accepted: %v", err)
	}
}
