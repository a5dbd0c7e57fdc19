// Package access decides what a navigation to a client-side path resolves to
// for a given session. Decisions are pure and recomputed on every call.
package access

import (
	"strings"

	"github.com/skattajobs/marketplace-api/internal/core/domain"
)

// Outcome is the kind of navigation result.
type Outcome string

const (
	Render   Outcome = "render"
	Redirect Outcome = "redirect"
	NotFound Outcome = "not_found"
)

// Redirect targets.
const (
	LoginPath = "/login"
	HomePath  = "/home"
)

// Decision is the result of resolving a path.
type Decision struct {
	Outcome Outcome `json:"outcome"`
	// Route is the matched pattern, empty for unknown paths.
	Route string `json:"route,omitempty"`
	// Target and Replace are set for redirects.
	Target  string `json:"target,omitempty"`
	Replace bool   `json:"replace,omitempty"`
}

// Route is one entry of the client route table.
type Route struct {
	Pattern string
	// Public routes render without a session.
	Public bool
	// PublicOnly routes redirect authenticated users home.
	PublicOnly bool
	// Roles restricts the route to the listed roles; nil means any signed-in user.
	Roles []domain.Role
}

// Routes is the client route table.
var Routes = []Route{
	{Pattern: "/login", Public: true, PublicOnly: true},
	{Pattern: "/register", Public: true, PublicOnly: true},
	{Pattern: "/home"},
	{Pattern: "/search"},
	{Pattern: "/job-details/:id"},
	{Pattern: "/availability", Roles: []domain.Role{domain.RoleProvider}},
	{Pattern: "/my-jobs"},
	{Pattern: "/provider-profile", Roles: []domain.Role{domain.RoleProvider}},
	{Pattern: "/client-dashboard", Roles: []domain.Role{domain.RoleClient}},
	{Pattern: "/job-posting", Roles: []domain.Role{domain.RoleClient}},
	{Pattern: "/stage-offers"},
	{Pattern: "/favorites", Roles: []domain.Role{domain.RoleClient}},
	{Pattern: "/admin/dashboard", Roles: []domain.Role{domain.RoleAdmin}},
	{Pattern: "/admin/users", Roles: []domain.Role{domain.RoleAdmin}},
	{Pattern: "/admin/job-management", Roles: []domain.Role{domain.RoleAdmin}},
	{Pattern: "/admin/stats", Roles: []domain.Role{domain.RoleAdmin}},
}

// Guard applies the role check to a protected view.
//
// Unauthenticated sessions go to the login page; authenticated sessions
// whose role is not in required go home. Both redirects replace history.
func Guard(authenticated bool, role domain.Role, required []domain.Role) Decision {
	if !authenticated {
		return Decision{Outcome: Redirect, Target: LoginPath, Replace: true}
	}
	if required != nil && !hasRole(required, role) {
		return Decision{Outcome: Redirect, Target: HomePath, Replace: true}
	}
	return Decision{Outcome: Render}
}

// Resolve decides the outcome of navigating to path.
func Resolve(authenticated bool, role domain.Role, path string) Decision {
	path = normalize(path)
	if path == "/" {
		if authenticated {
			return Decision{Outcome: Redirect, Route: "/", Target: HomePath, Replace: true}
		}
		return Decision{Outcome: Redirect, Route: "/", Target: LoginPath, Replace: true}
	}

	r, ok := Match(path)
	if !ok {
		return Decision{Outcome: NotFound}
	}

	var d Decision
	switch {
	case r.PublicOnly && authenticated:
		d = Decision{Outcome: Redirect, Target: HomePath, Replace: true}
	case r.Public:
		d = Decision{Outcome: Render}
	default:
		d = Guard(authenticated, role, r.Roles)
	}
	d.Route = r.Pattern
	return d
}

// Match finds the route whose pattern matches path. A ":name" segment
// matches any single non-empty segment.
func Match(path string) (Route, bool) {
	segs := strings.Split(strings.Trim(normalize(path), "/"), "/")
	for _, r := range Routes {
		if matchSegments(strings.Split(strings.Trim(r.Pattern, "/"), "/"), segs) {
			return r, true
		}
	}
	return Route{}, false
}

// RolesFor returns the role allow-list of the route matching path.
func RolesFor(path string) []domain.Role {
	r, ok := Match(path)
	if !ok {
		return nil
	}
	return r.Roles
}

func matchSegments(pattern, segs []string) bool {
	if len(pattern) != len(segs) {
		return false
	}
	for i, p := range pattern {
		if strings.HasPrefix(p, ":") {
			if segs[i] == "" {
				return false
			}
			continue
		}
		if p != segs[i] {
			return false
		}
	}
	return true
}

func normalize(path string) string {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	path = strings.TrimSpace(path)
	if path == "" || path == "/" {
		return "/"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return strings.TrimRight(path, "/")
}

func hasRole(roles []domain.Role, r domain.Role) bool {
	for _, x := range roles {
		if x == r {
			return true
		}
	}
	return false
}
