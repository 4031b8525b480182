// Package entity contains the core business objects of the project.
package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// Elevated permission strings. A membership carrying any of these in its
// permission bag is treated as business-admin-equivalent, in addition to
// memberships whose access level is admin.
const (
	PermissionAdmin       = "admin"
	PermissionManageUsers = "manage_users"
	PermissionFullAccess  = "full_access"
)

// BusinessUserProfile represents one membership of a user in a business.
// A user may hold several memberships across different businesses.
type BusinessUserProfile struct {
	ID          uuid.UUID           // The Global Unique Identifier (GUID) for the membership.
	UserID      uuid.UUID           // The user holding this membership.
	BusinessID  uuid.UUID           // The business this membership belongs to.
	Business    *Business           // The business, when preloaded.
	Status      ProfileStatus       // The lifecycle state of the membership.
	AccessLevel BusinessAccessLevel // The member's rank within the business: user, manager or admin.
	Permissions []string            // Free-form permission strings granted to this membership.
	CreatedAt   time.Time           // Timestamp of when this membership was created.
	UpdatedAt   time.Time           // Timestamp of the last modification.
}

// IsActive reports whether the membership is in the active state.
func (p *BusinessUserProfile) IsActive() bool {
	return p.Status == ProfileStatusActive
}

// IsAdmin reports whether the member holds the admin level.
func (p *BusinessUserProfile) IsAdmin() bool {
	return p.AccessLevel == BusinessLevelAdmin
}

// IsManager reports whether the member holds the manager level.
func (p *BusinessUserProfile) IsManager() bool {
	return p.AccessLevel == BusinessLevelManager
}

// IsUser reports whether the member holds the plain user level.
func (p *BusinessUserProfile) IsUser() bool {
	return p.AccessLevel == BusinessLevelUser
}

// CanManageUsers reports whether the member may manage other members
// of the same business. True for manager and admin levels.
func (p *BusinessUserProfile) CanManageUsers() bool {
	return p.IsManager() || p.IsAdmin()
}

// HasPermission reports whether the membership carries the given
// permission string explicitly.
func (p *BusinessUserProfile) HasPermission(permission string) bool {
	return slices.Contains(p.Permissions, permission)
}

// IsElevated reports whether the membership is business-admin-equivalent:
// either the access level is admin, or the permission bag carries one of
// the elevated permission strings.
func (p *BusinessUserProfile) IsElevated() bool {
	return p.IsAdmin() ||
		p.HasPermission(PermissionAdmin) ||
		p.HasPermission(PermissionManageUsers) ||
		p.HasPermission(PermissionFullAccess)
}
