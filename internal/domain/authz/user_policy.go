package authz

import "plaza/internal/domain/entity"

// UserPolicy decides who may act on user accounts.
// Record-level checks against customer targets consult the target's roster
// linkage, so callers preload the customer profile's businesses.
type UserPolicy struct{}

// ViewAny allows staff admins and business users to list accounts.
func (UserPolicy) ViewAny(actor *entity.User) bool {
	if actor.IsStaffAdmin() {
		return true
	}

	return actor.IsBusinessUser()
}

// View allows self, staff admins, and business admins scoped to the target:
// either a staff member of one of the actor's businesses, or a customer on
// one of the actor's rosters.
func (UserPolicy) View(actor, target *entity.User) bool {
	if actor.ID == target.ID {
		return true
	}
	if actor.IsStaffAdmin() {
		return true
	}

	return businessAdminOverTarget(actor, target)
}

// Create allows staff admins and business admins.
func (UserPolicy) Create(actor *entity.User) bool {
	if actor.IsStaffAdmin() {
		return true
	}

	return hasBusinessAdminRole(actor)
}

// Update follows the same rule as View.
func (UserPolicy) Update(actor, target *entity.User) bool {
	if actor.ID == target.ID {
		return true
	}
	if actor.IsStaffAdmin() {
		return true
	}

	return businessAdminOverTarget(actor, target)
}

// Delete never allows self-deletion. A staff admin may delete any account
// except another staff admin. A business admin may delete staff of their
// own business only.
func (UserPolicy) Delete(actor, target *entity.User) bool {
	if actor.ID == target.ID {
		return false
	}

	if actor.IsStaffAdmin() {
		return !target.IsStaffAdmin()
	}

	if target.IsBusinessUser() && hasBusinessAdminRole(actor) {
		return elevatedIn(actor, target.BusinessProfile.BusinessID)
	}

	return false
}

// Restore allows staff admins only.
func (UserPolicy) Restore(actor, _ *entity.User) bool {
	return actor.IsStaffAdmin()
}

// businessAdminOverTarget reports whether the actor holds elevated
// permissions in a business the target belongs to, either through a staff
// membership or roster membership.
func businessAdminOverTarget(actor, target *entity.User) bool {
	if !hasBusinessAdminRole(actor) {
		return false
	}

	if target.IsBusinessUser() {
		return elevatedIn(actor, target.BusinessProfile.BusinessID)
	}

	if target.IsCustomer() {
		for _, m := range actor.ActiveMemberships() {
			if m.IsElevated() && target.CustomerProfile.IsOnRosterOf(m.BusinessID) {
				return true
			}
		}
	}

	return false
}
