// Package session persists the signed-in state of an API client.
//
// The stored blob has the shape
//
//	{"version": 1, "state": {"token": "...", "user": {...}, "isAuthenticated": true}}
//
// Blobs written without a version field are version 0 and are migrated on read.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// CurrentVersion is the blob version written by Encode.
const CurrentVersion = 1

// ErrUnsupportedVersion is returned for blobs newer than CurrentVersion.
var ErrUnsupportedVersion = errors.New("session: unsupported version")

// User is the account stored alongside the token.
type User struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Role       string    `json:"role"`
	Avatar     string    `json:"avatar,omitempty"`
	Phone      string    `json:"phone,omitempty"`
	Location   string    `json:"location,omitempty"`
	IsVerified bool      `json:"is_verified"`
	CreatedAt  time.Time `json:"created_at"`
}

// State is the persisted authentication state.
type State struct {
	Token           string `json:"token,omitempty"`
	User            *User  `json:"user,omitempty"`
	IsAuthenticated bool   `json:"isAuthenticated"`
}

type blob struct {
	Version *int  `json:"version,omitempty"`
	State   State `json:"state"`
}

// Encode serialises s at CurrentVersion.
func Encode(s State) ([]byte, error) {
	v := CurrentVersion
	return json.Marshal(blob{Version: &v, State: s})
}

// Decode parses a stored blob, migrating older versions.
func Decode(data []byte) (State, error) {
	var b blob
	if err := json.Unmarshal(data, &b); err != nil {
		return State{}, fmt.Errorf("session: decode: %w", err)
	}
	version := 0
	if b.Version != nil {
		version = *b.Version
	}
	switch {
	case version > CurrentVersion:
		return State{}, fmt.Errorf("%w: %d", ErrUnsupportedVersion, version)
	case version == 0:
		return migrateV0(b.State), nil
	}
	return b.State, nil
}

// migrateV0 upgrades the unversioned shape, which only guaranteed a token.
func migrateV0(s State) State {
	if s.Token != "" {
		s.IsAuthenticated = true
	}
	return s
}

// Store loads and saves the session state. Load on an empty store returns
// the zero State.
type Store interface {
	Load(ctx context.Context) (State, error)
	Save(ctx context.Context, s State) error
	Clear(ctx context.Context) error
}
