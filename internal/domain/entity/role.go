// Package entity contains the core business objects of the project.
package entity

// Role represents the identity a user is acting as.
type Role string

const (
	// RoleRenter indicates a user seeking a sublet; owns at most one RenterProfile.
	RoleRenter Role = "renter"
	// RoleLister indicates a user offering sublets; owns zero or more Listings.
	RoleLister Role = "lister"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// ActiveRole is the (role, resource) pair currently equipped by the user.
// It is derived, ephemeral state: never persisted, re-derived on every
// resource refresh unless the user has explicitly chosen a role.
type ActiveRole struct {
	IsRenter   bool
	ResourceID int
}

// Role returns the Role value for the active identity.
func (a ActiveRole) Role() Role {
	if a.IsRenter {
		return RoleRenter
	}

	return RoleLister
}

// HasResource reports whether a real resource is equipped. A zero ResourceID
// means the user has neither a renter profile nor a listing yet; callers must
// check this instead of comparing against the raw zero value.
func (a ActiveRole) HasResource() bool {
	return a.ResourceID != 0
}
