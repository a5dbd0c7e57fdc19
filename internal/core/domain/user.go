package domain

import (
	"fmt"
	"strings"
	"time"
)

// Role is the closed set of actor kinds known to the marketplace.
type Role string

const (
	RoleClient   Role = "client"
	RoleProvider Role = "prestataire"
	RoleAdmin    Role = "admin"
)

// ParseRole validates s against the known roles.
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	if !r.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidRole, s)
	}
	return r, nil
}

// Valid reports whether r is one of the declared roles.
func (r Role) Valid() bool {
	switch r {
	case RoleClient, RoleProvider, RoleAdmin:
		return true
	}
	return false
}

// SelfAssignable reports whether a user may pick r at registration time.
// Admin accounts are provisioned, never self-registered.
func (r Role) SelfAssignable() bool {
	return r == RoleClient || r == RoleProvider
}

// User models an authenticated actor in the system.
type User struct {
	ID           string    `json:"id"          bson:"_id"`
	Name         string    `json:"name"        bson:"name"`
	Email        string    `json:"email"       bson:"email"`
	PasswordHash string    `json:"-"           bson:"password_hash"`
	Role         Role      `json:"role"        bson:"role"`
	Avatar       string    `json:"avatar,omitempty"   bson:"avatar,omitempty"`
	Phone        string    `json:"phone,omitempty"    bson:"phone,omitempty"`
	Location     string    `json:"location,omitempty" bson:"location,omitempty"`
	IsVerified   bool      `json:"is_verified" bson:"is_verified"`
	CreatedAt    time.Time `json:"created_at"  bson:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"  bson:"updated_at"`
}

// UserPatch carries a partial update of the editable account fields.
// Nil fields are left untouched.
type UserPatch struct {
	Name     *string
	Avatar   *string
	Phone    *string
	Location *string
}

// Apply merges p into u and reports whether anything changed.
func (u *User) Apply(p UserPatch) bool {
	changed := false
	set := func(dst *string, v *string) {
		if v != nil && *dst != *v {
			*dst = *v
			changed = true
		}
	}
	set(&u.Name, p.Name)
	set(&u.Avatar, p.Avatar)
	set(&u.Phone, p.Phone)
	set(&u.Location, p.Location)
	return changed
}

// NormalizeEmail is the canonical form used for lookups and uniqueness.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Actor is the authenticated identity performing an operation.
type Actor struct {
	UserID string
	Role   Role
}

// IsAdmin reports whether the actor holds the admin role.
func (a Actor) IsAdmin() bool { return a.Role == RoleAdmin }

// OwnsOrAdmin reports whether the actor owns a resource held by ownerID
// or is an admin.
func (a Actor) OwnsOrAdmin(ownerID string) bool {
	return a.IsAdmin() || (a.UserID != "" && a.UserID == ownerID)
}

// SessionRevocationKey is the denylist key that invalidates every token
// issued to userID. Token ids are UUIDs so the prefix cannot collide.
func SessionRevocationKey(userID string) string { return "user:" + userID }
