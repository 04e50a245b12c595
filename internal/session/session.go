package session

// Role is the effective role of the authenticated user.
// The set is closed: the backend may report several roles, but the client
// always collapses them to exactly one of these.
type Role string

const (
	RoleSuperAdmin Role = "SuperAdmin"
	RoleAdmin      Role = "Admin"
	RoleOwner      Role = "Owner"
	RoleDriver     Role = "Driver"
)

// rolePrecedence is evaluated top-down against the role list returned by the
// user-details endpoint; the first match wins.
var rolePrecedence = []Role{
	RoleAdmin,
	RoleSuperAdmin,
	RoleOwner,
	RoleDriver,
}

// ResolveRole maps the backend's multi-role list down to a single effective
// role. Users carrying none of the known roles default to Driver.
func ResolveRole(roles []string) Role {
	for _, candidate := range rolePrecedence {
		for _, r := range roles {
			if Role(r) == candidate {
				return candidate
			}
		}
	}
	return RoleDriver
}

// ValidRole reports whether r is one of the four known roles.
func ValidRole(r Role) bool {
	switch r {
	case RoleSuperAdmin, RoleAdmin, RoleOwner, RoleDriver:
		return true
	}
	return false
}

// User is the resolved identity of the authenticated user.
type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Role     Role   `json:"role"`
}

// Session is the combined authentication and identity state for this client
// instance. Tokens are opaque bearer strings; the client never inspects their
// internal structure.
type Session struct {
	AccessToken     string `json:"access_token"`
	RefreshToken    string `json:"refresh_token"`
	User            *User  `json:"user,omitempty"`
	IsAuthenticated bool   `json:"is_authenticated"`
}
