package authz

import "plaza/internal/domain/entity"

// BusinessPolicy decides who may act on businesses.
type BusinessPolicy struct{}

// ViewAny allows advanced staff and business managers to list businesses.
func (BusinessPolicy) ViewAny(actor *entity.User) bool {
	if actor.IsAdvancedStaff() {
		return true
	}

	return managesAnyBusiness(actor)
}

// View allows advanced staff, or any active member of that exact business.
func (BusinessPolicy) View(actor *entity.User, business *entity.Business) bool {
	if actor.IsAdvancedStaff() {
		return true
	}

	for _, m := range actor.ActiveMemberships() {
		if m.BusinessID == business.ID {
			return true
		}
	}

	return false
}

// Create allows staff admins only.
func (BusinessPolicy) Create(actor *entity.User) bool {
	return actor.IsStaffAdmin()
}

// Update allows staff admins, or a business admin of that same business.
func (BusinessPolicy) Update(actor *entity.User, business *entity.Business) bool {
	if actor.IsStaffAdmin() {
		return true
	}

	return businessAdminOf(actor, business.ID)
}

// Delete allows staff admins only.
func (BusinessPolicy) Delete(actor *entity.User, _ *entity.Business) bool {
	return actor.IsStaffAdmin()
}

// Approve allows staff admins only.
func (BusinessPolicy) Approve(actor *entity.User, _ *entity.Business) bool {
	return actor.IsStaffAdmin()
}

// ManagePlans allows staff admins only.
func (BusinessPolicy) ManagePlans(actor *entity.User, _ *entity.Business) bool {
	return actor.IsStaffAdmin()
}
