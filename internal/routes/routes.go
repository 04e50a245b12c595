// Package routes decides, per navigation, whether the current session may
// view a destination. Decisions are pure functions over a session snapshot;
// the package performs no I/O and never triggers a token refresh.
package routes

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cruisebase/cruisebase/internal/session"
)

// Well-known navigation targets.
const (
	PathLogin        = "/login"
	PathUnauthorized = "/unauthorized"
)

// Verdict classifies a navigation decision.
type Verdict int

const (
	// Allow renders the destination.
	Allow Verdict = iota
	// RedirectLogin sends the visitor to the unauthenticated entry point.
	RedirectLogin
	// RedirectUnauthorized sends an authenticated visitor whose role is not
	// permitted to the unauthorized terminal view.
	RedirectUnauthorized
)

// Decision is the outcome of one navigation check.
type Decision struct {
	Verdict  Verdict
	Redirect string // target path for redirect verdicts, empty on Allow
}

// Route declares a destination and, optionally, the roles allowed to view it.
// An empty AllowedRoles set means any authenticated session may view it; a
// public route requires no session at all.
type Route struct {
	Path         string         `yaml:"path"`
	Public       bool           `yaml:"public,omitempty"`
	AllowedRoles []session.Role `yaml:"roles,omitempty"`
}

// Decide evaluates one navigation against the current session snapshot.
// Authorization denial is not an error: the result is always a deterministic
// redirect or an allow, never a failure.
func Decide(snap session.Session, route Route) Decision {
	if route.Public {
		return Decision{Verdict: Allow}
	}

	if !snap.IsAuthenticated {
		return Decision{Verdict: RedirectLogin, Redirect: PathLogin}
	}

	if len(route.AllowedRoles) == 0 {
		return Decision{Verdict: Allow}
	}

	// Tokens can be set while the identity fetch is still outstanding; a
	// role-guarded destination is not viewable until the role is known.
	if snap.User == nil {
		return Decision{Verdict: RedirectUnauthorized, Redirect: PathUnauthorized}
	}

	for _, role := range route.AllowedRoles {
		if snap.User.Role == role {
			return Decision{Verdict: Allow}
		}
	}
	return Decision{Verdict: RedirectUnauthorized, Redirect: PathUnauthorized}
}

// Table is an ordered set of route declarations.
type Table struct {
	Routes []Route `yaml:"routes"`
}

// Lookup finds the declaration for a path. Unknown paths fall back to a
// guarded-but-roleless route, so they require a session.
func (t *Table) Lookup(path string) Route {
	for _, route := range t.Routes {
		if route.Path == path {
			return route
		}
	}
	return Route{Path: path}
}

// HomeFor returns the landing destination for a role, mirroring the root
// redirect of the web app.
func HomeFor(role session.Role) string {
	switch role {
	case session.RoleDriver:
		return "/dashboard/driver"
	case session.RoleOwner:
		return "/dashboard/owner"
	default:
		return "/dashboard/admin"
	}
}

// DefaultTable is the built-in navigation table of the dashboard.
func DefaultTable() *Table {
	return &Table{Routes: []Route{
		{Path: PathLogin, Public: true},
		{Path: "/register", Public: true},
		{Path: PathUnauthorized, Public: true},
		{Path: "/dashboard/driver", AllowedRoles: []session.Role{session.RoleDriver}},
		{Path: "/dashboard/owner", AllowedRoles: []session.Role{session.RoleOwner}},
		{Path: "/dashboard/admin", AllowedRoles: []session.Role{session.RoleAdmin, session.RoleSuperAdmin}},
		{Path: "/contracts/new", AllowedRoles: []session.Role{session.RoleAdmin, session.RoleSuperAdmin}},
		{Path: "/wallet", AllowedRoles: []session.Role{session.RoleDriver, session.RoleOwner}},
		{Path: "/fleet"},
		{Path: "/profile"},
	}}
}

// LoadTable reads a route table from a YAML file, validating that every
// declared role is one of the known four.
func LoadTable(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read route table: %w", err)
	}

	var table Table
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("failed to parse route table: %w", err)
	}

	for _, route := range table.Routes {
		if !strings.HasPrefix(route.Path, "/") {
			return nil, fmt.Errorf("route path %q must start with /", route.Path)
		}
		for _, role := range route.AllowedRoles {
			if !session.ValidRole(role) {
				return nil, fmt.Errorf("route %q declares unknown role %q", route.Path, role)
			}
		}
	}
	return &table, nil
}
