package authz

import "plaza/internal/domain/entity"

// StaffUserProfilePolicy decides who may act on platform staff profiles.
// Delete and DemoteFromAdmin take the count of active admin profiles, read
// by the caller in the same transaction as the guarded write, so two
// concurrent demotions cannot both observe a spare admin.
type StaffUserProfilePolicy struct{}

// ViewAny allows staff admins only.
func (StaffUserProfilePolicy) ViewAny(actor *entity.User) bool {
	return actor.IsStaffAdmin()
}

// View allows the profile's own user or a staff admin.
func (StaffUserProfilePolicy) View(actor *entity.User, profile *entity.StaffUserProfile) bool {
	return actor.ID == profile.UserID || actor.IsStaffAdmin()
}

// Create allows staff admins only.
func (StaffUserProfilePolicy) Create(actor *entity.User) bool {
	return actor.IsStaffAdmin()
}

// CreateAdmin allows staff admins only.
func (StaffUserProfilePolicy) CreateAdmin(actor *entity.User) bool {
	return actor.IsStaffAdmin()
}

// Update allows the profile's own user or a staff admin.
func (StaffUserProfilePolicy) Update(actor *entity.User, profile *entity.StaffUserProfile) bool {
	return actor.ID == profile.UserID || actor.IsStaffAdmin()
}

// Delete never allows self-deletion, requires a staff admin actor, and
// refuses to remove the last active admin in the system.
func (StaffUserProfilePolicy) Delete(actor *entity.User, profile *entity.StaffUserProfile, activeAdmins int64) bool {
	if actor.ID == profile.UserID {
		return false
	}
	if !actor.IsStaffAdmin() {
		return false
	}
	if profile.IsAdmin() && activeAdmins <= 1 {
		return false
	}

	return true
}

// PromoteToAdmin blocks a non-admin promoting themselves, otherwise
// requires a staff admin actor.
func (StaffUserProfilePolicy) PromoteToAdmin(actor *entity.User, profile *entity.StaffUserProfile) bool {
	if actor.ID == profile.UserID && !actor.IsStaffAdmin() {
		return false
	}

	return actor.IsStaffAdmin()
}

// DemoteFromAdmin never allows self-demotion and refuses to demote the last
// active admin, otherwise requires a staff admin actor.
func (StaffUserProfilePolicy) DemoteFromAdmin(actor *entity.User, profile *entity.StaffUserProfile, activeAdmins int64) bool {
	if actor.ID == profile.UserID {
		return false
	}
	if profile.IsAdmin() && activeAdmins <= 1 {
		return false
	}

	return actor.IsStaffAdmin()
}
