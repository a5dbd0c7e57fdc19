package session

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDecode_MigratesUnversionedBlob(t *testing.T) {
	s, err := Decode([]byte(`{"state":{"token":"abc"}}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Token != "abc" || !s.IsAuthenticated {
		t.Fatalf("expected migrated authenticated state, got %+v", s)
	}

	s, err = Decode([]byte(`{"state":{}}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.IsAuthenticated {
		t.Fatalf("empty v0 blob must stay signed out")
	}
}

func TestDecode_RejectsNewerVersion(t *testing.T) {
	_, err := Decode([]byte(`{"version":2,"state":{"token":"abc"}}`))
	if !errors.Is(err, ErrUnsupportedVersion) {
		t.Fatalf("expected ErrUnsupportedVersion, got %v", err)
	}
}

func TestEncode_WritesCurrentVersion(t *testing.T) {
	data, err := Encode(State{Token: "t", IsAuthenticated: true, User: &User{ID: "u1", Role: "client"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(string(data), `"version":1`) {
		t.Fatalf("expected version 1 in %s", data)
	}
	s, err := Decode(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if s.User == nil || s.User.ID != "u1" || s.Token != "t" {
		t.Fatalf("unexpected state %+v", s)
	}
}

func TestFileStore_LoadSaveClear(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "session.json")
	fs := NewFileStore(path)

	s, err := fs.Load(ctx)
	if err != nil || s.IsAuthenticated {
		t.Fatalf("missing file should load signed out, got %+v %v", s, err)
	}

	if err := fs.Save(ctx, State{Token: "tok", IsAuthenticated: true}); err != nil {
		t.Fatalf("save: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Fatalf("expected 0600, got %v", info.Mode().Perm())
	}
	s, err = fs.Load(ctx)
	if err != nil || s.Token != "tok" {
		t.Fatalf("expected saved token, got %+v %v", s, err)
	}

	if err := fs.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if err := fs.Clear(ctx); err != nil {
		t.Fatalf("second clear should be a no-op: %v", err)
	}
	s, _ = fs.Load(ctx)
	if s.Token != "" {
		t.Fatalf("expected cleared state, got %+v", s)
	}
}

func TestFileStore_MigratesLegacyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	if err := os.WriteFile(path, []byte(`{"state":{"token":"legacy"}}`), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	s, err := NewFileStore(path).Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if s.Token != "legacy" || !s.IsAuthenticated {
		t.Fatalf("unexpected state %+v", s)
	}
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore(State{Token: "a", IsAuthenticated: true})
	if s, _ := m.Load(ctx); s.Token != "a" {
		t.Fatalf("expected initial token")
	}
	_ = m.Clear(ctx)
	if s, _ := m.Load(ctx); s.IsAuthenticated {
		t.Fatalf("expected signed out after clear")
	}
}
