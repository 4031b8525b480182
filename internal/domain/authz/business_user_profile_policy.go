package authz

import "plaza/internal/domain/entity"

// BusinessUserProfilePolicy decides who may act on business staff memberships.
type BusinessUserProfilePolicy struct{}

// ViewAny allows advanced staff and business managers to list memberships.
func (BusinessUserProfilePolicy) ViewAny(actor *entity.User) bool {
	if actor.IsAdvancedStaff() {
		return true
	}

	return managesAnyBusiness(actor)
}

// View allows the profile's own user, advanced staff, or a business admin
// of the same business.
func (BusinessUserProfilePolicy) View(actor *entity.User, profile *entity.BusinessUserProfile) bool {
	if actor.ID == profile.UserID {
		return true
	}
	if actor.IsAdvancedStaff() {
		return true
	}

	return businessAdminOf(actor, profile.BusinessID)
}

// Create allows staff admins and business admins.
func (BusinessUserProfilePolicy) Create(actor *entity.User) bool {
	if actor.IsStaffAdmin() {
		return true
	}

	return actor.IsBusinessAdmin()
}

// Update allows the profile's own user, staff admins, or a business admin
// of the same business.
func (BusinessUserProfilePolicy) Update(actor *entity.User, profile *entity.BusinessUserProfile) bool {
	if actor.ID == profile.UserID {
		return true
	}
	if actor.IsStaffAdmin() {
		return true
	}

	return businessAdminOf(actor, profile.BusinessID)
}

// Delete never allows removing one's own membership. Otherwise staff admins
// and business admins of the same business may delete.
func (BusinessUserProfilePolicy) Delete(actor *entity.User, profile *entity.BusinessUserProfile) bool {
	if actor.ID == profile.UserID {
		return false
	}
	if actor.IsStaffAdmin() {
		return true
	}

	return businessAdminOf(actor, profile.BusinessID)
}
