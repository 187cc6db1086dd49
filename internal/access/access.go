package access

import "docvault/internal/model"

// Identity is the authenticated requester, extracted from the access token by
// the auth middleware and passed explicitly to every service call.
type Identity struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// IsAdmin reports whether the identity carries the administrator role.
func (id Identity) IsAdmin() bool {
	return id.Role == model.RoleAdmin
}

// CanAccess decides read/download/delete access to an owned resource:
// administrators may touch anything, everyone else only their own.
// Notes do not go through this check; note queries are owner-scoped in SQL.
func CanAccess(requester Identity, ownerID string) bool {
	return requester.IsAdmin() || requester.ID == ownerID
}
