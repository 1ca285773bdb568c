package domain

import "slices"

// Role is a granted authority carried in the access credential.
type Role string

// Known roles.
const (
	// RoleUser is a standard storefront account.
	RoleUser Role = "USER"

	// RoleAdmin is a back-office account.
	RoleAdmin Role = "ADMIN"
)

// String returns the string representation.
func (r Role) String() string {
	return string(r)
}

// Identity is derived from a decoded access credential. It is never stored
// independently of the credential it came from.
type Identity struct {
	// AccountName is the credential subject (the username).
	AccountName string `json:"account_name"`

	// AccountID is the numeric account id used in API paths and bodies.
	AccountID int64 `json:"account_id"`

	// Roles lists the granted authorities. Never nil after decoding.
	Roles []Role `json:"roles"`
}

// HasRole reports whether the identity was granted role.
func (i *Identity) HasRole(role Role) bool {
	if i == nil {
		return false
	}
	return slices.Contains(i.Roles, role)
}

// HasAnyRole reports whether the identity's roles intersect required.
func (i *Identity) HasAnyRole(required []Role) bool {
	if i == nil {
		return false
	}
	for _, r := range required {
		if slices.Contains(i.Roles, r) {
			return true
		}
	}
	return false
}

// IsAdmin reports whether the identity holds the administrative role.
func (i *Identity) IsAdmin() bool {
	return i.HasRole(RoleAdmin)
}

// Equal reports whether two identities describe the same account and roles.
// Two nil identities are equal.
func (i *Identity) Equal(other *Identity) bool {
	if i == nil || other == nil {
		return i == nil && other == nil
	}
	return i.AccountName == other.AccountName &&
		i.AccountID == other.AccountID &&
		slices.Equal(i.Roles, other.Roles)
}
