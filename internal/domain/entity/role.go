// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleBuyer indicates a property buyer. Lowest privilege, assigned by default.
	RoleBuyer Role = "BUYER"
	// RoleSeller indicates a property seller.
	RoleSeller Role = "SELLER"
	// RoleAdmin indicates a platform administrator. Never self-assignable.
	RoleAdmin Role = "ADMIN"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleBuyer, RoleSeller, RoleAdmin:
		return true
	default:
		return false
	}
}

// IsSelfAssignable reports whether the role may be requested at registration.
func (r Role) IsSelfAssignable() bool {
	return r == RoleBuyer || r == RoleSeller
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// Intersects reports whether any role in rs is also present in other.
// This is the RBAC check: a route requiring {ADMIN, SELLER} is satisfied
// by a user holding just SELLER.
func (rs Roles) Intersects(other Roles) bool {
	for _, r := range rs {
		if other.Contains(r) {
			return true
		}
	}

	return false
}

// ToStrings converts Roles to []string for JWT compatibility.
func (rs Roles) ToStrings() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = r.String()
	}

	return result
}

// RolesFromStrings converts []string to Roles, filtering out invalid role strings.
func RolesFromStrings(ss []string) Roles {
	result := make(Roles, 0, len(ss))
	for _, s := range ss {
		role := Role(s)
		if role.IsValid() {
			result = append(result, role)
		}
	}

	return result
}
