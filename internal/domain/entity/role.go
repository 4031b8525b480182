// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents a coarse role tag a user can carry in the system.
// Role tags are derived from profile state when a token is issued and are
// consumed by simple role-gated routes.
type Role string

const (
	// RoleCustomer indicates an active customer profile.
	RoleCustomer Role = "customer"
	// RoleBusinessUser indicates an active business profile.
	RoleBusinessUser Role = "business_user"
	// RoleBusinessAdmin indicates a business user with elevated permissions
	// in at least one active membership.
	RoleBusinessAdmin Role = "business_admin"
	// RoleStaffBasic indicates an active staff profile at the basic level.
	RoleStaffBasic Role = "staff_basic"
	// RoleStaffAdvanced indicates an active staff profile at the advanced level.
	RoleStaffAdvanced Role = "staff_advanced"
	// RoleStaffAdmin indicates an active staff profile at the admin level.
	RoleStaffAdmin Role = "staff_admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleBusinessUser, RoleBusinessAdmin,
		RoleStaffBasic, RoleStaffAdvanced, RoleStaffAdmin:
		return true
	default:
		return false
	}
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// ContainsAny checks if the roles slice contains at least one of the given roles.
func (rs Roles) ContainsAny(roles ...Role) bool {
	for _, role := range roles {
		if rs.Contains(role) {
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
