// Package entity contains the core business objects of the project.
package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// StaffUserProfile holds data specific to the "staff" profile kind.
// Staff authorization combines two mechanisms: the ordinal access level
// and an optional explicit permission set.
type StaffUserProfile struct {
	ID                uuid.UUID        // The Global Unique Identifier (GUID) for the profile.
	UserID            uuid.UUID        // Foreign Key that links this profile to a core User entity.
	Status            ProfileStatus    // The lifecycle state of the profile.
	AccessLevel       StaffAccessLevel // The staff member's rank: basic, advanced or admin.
	SystemPermissions []string         // Fine-grained permission strings, e.g. "admin:users:read".
	CreatedAt         time.Time        // Timestamp of when this profile was created.
	UpdatedAt         time.Time        // Timestamp of the last modification.
}

// IsActive reports whether the profile is in the active state.
func (p *StaffUserProfile) IsActive() bool {
	return p.Status == ProfileStatusActive
}

// IsAdmin reports whether the staff member holds the admin level.
func (p *StaffUserProfile) IsAdmin() bool {
	return p.AccessLevel == StaffLevelAdmin
}

// IsAdvanced reports whether the staff member holds the advanced level.
func (p *StaffUserProfile) IsAdvanced() bool {
	return p.AccessLevel == StaffLevelAdvanced
}

// IsBasic reports whether the staff member holds the basic level.
func (p *StaffUserProfile) IsBasic() bool {
	return p.AccessLevel == StaffLevelBasic
}

// HasSystemPermission reports whether the staff member holds the given
// permission, either explicitly or implicitly through the admin level.
func (p *StaffUserProfile) HasSystemPermission(permission string) bool {
	return slices.Contains(p.SystemPermissions, permission) || p.IsAdmin()
}

// CanCreateStaff reports whether the staff member may create staff accounts.
func (p *StaffUserProfile) CanCreateStaff() bool {
	return p.IsAdmin()
}

// CanManageUsers reports whether the staff member may manage platform users.
func (p *StaffUserProfile) CanManageUsers() bool {
	return p.IsAdvanced() || p.IsAdmin()
}

// CanManageBusinesses reports whether the staff member may manage businesses.
func (p *StaffUserProfile) CanManageBusinesses() bool {
	return p.IsAdvanced() || p.IsAdmin()
}

// CanAccessSystemSettings reports whether the staff member may change
// platform-wide settings.
func (p *StaffUserProfile) CanAccessSystemSettings() bool {
	return p.IsAdmin()
}
