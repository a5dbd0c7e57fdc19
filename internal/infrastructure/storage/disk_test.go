package storage

import (
	"context"
	"errors"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/skattajobs/marketplace-api/internal/core/domain"
)

func TestDiskStore_SaveOpen(t *testing.T) {
	store, err := NewDiskStore(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	ctx := context.Background()

	if err := store.Save(ctx, "avatar-1.png", "image/png", strings.NewReader("png")); err != nil {
		t.Fatalf("save: %v", err)
	}
	rc, ct, err := store.Open(ctx, "avatar-1.png")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer rc.Close()
	data, _ := io.ReadAll(rc)
	if string(data) != "png" || ct != "image/png" {
		t.Fatalf("unexpected file %q %q", data, ct)
	}

	entries, _ := os.ReadDir(store.dir)
	if len(entries) != 1 {
		t.Fatalf("expected no leftover temp files, got %d entries", len(entries))
	}
}

func TestDiskStore_RejectsTraversalAndMissing(t *testing.T) {
	store, _ := NewDiskStore(t.TempDir())
	ctx := context.Background()

	for _, name := range []string{"../etc/passwd", "a/b", "", "missing.png"} {
		if _, _, err := store.Open(ctx, name); !errors.Is(err, domain.ErrFileNotFound) {
			t.Fatalf("%q: expected ErrFileNotFound, got %v", name, err)
		}
	}
	if err := store.Save(ctx, "../x", "", strings.NewReader("x")); !errors.Is(err, domain.ErrFileNotFound) {
		t.Fatalf("expected traversal rejection, got %v", err)
	}
}

func TestDiskStore_CancelledSave(t *testing.T) {
	store, _ := NewDiskStore(t.TempDir())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := store.Save(ctx, "service-1.jpg", "", strings.NewReader("jpeg")); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if _, _, err := store.Open(context.Background(), "service-1.jpg"); !errors.Is(err, domain.ErrFileNotFound) {
		t.Fatalf("cancelled upload must not be visible, got %v", err)
	}
}
