package authz

import "plaza/internal/domain/entity"

// AddressOwner is the resolved polymorphic owner of an address, fetched by
// the caller before the policy runs. Both fields nil means the address is
// orphaned, which always denies.
type AddressOwner struct {
	Business *entity.Business        // Set when the address belongs to a business.
	Customer *entity.CustomerProfile // Set when the address belongs to a customer profile.
}

// AddressPolicy decides who may act on postal addresses.
// Collection-level actions (ViewAny, Create) depend only on the actor;
// record-level actions resolve the polymorphic owner.
type AddressPolicy struct{}

// ViewAny allows advanced staff, business managers and customers to list addresses.
func (AddressPolicy) ViewAny(actor *entity.User) bool {
	if actor.IsAdvancedStaff() {
		return true
	}
	if managesAnyBusiness(actor) {
		return true
	}

	return actor.IsCustomer()
}

// Create allows staff admins, business managers and customers to add addresses.
func (AddressPolicy) Create(actor *entity.User) bool {
	if actor.IsStaffAdmin() {
		return true
	}
	if managesAnyBusiness(actor) {
		return true
	}

	return actor.IsCustomer()
}

// View allows staff admins unconditionally, otherwise owners per ownsAddress.
func (AddressPolicy) View(actor *entity.User, owner AddressOwner) bool {
	if actor.IsStaffAdmin() {
		return true
	}

	return ownsAddress(actor, owner)
}

// Update follows the same rule as View.
func (AddressPolicy) Update(actor *entity.User, owner AddressOwner) bool {
	if actor.IsStaffAdmin() {
		return true
	}

	return ownsAddress(actor, owner)
}

// Delete follows the same rule as View.
func (AddressPolicy) Delete(actor *entity.User, owner AddressOwner) bool {
	if actor.IsStaffAdmin() {
		return true
	}

	return ownsAddress(actor, owner)
}

// ownsAddress resolves record-level address access through the polymorphic
// owner. A business-owned address requires a manager-level membership in
// that business. A customer-owned address requires being that customer, or
// managing a business that has the customer on its roster.
func ownsAddress(actor *entity.User, owner AddressOwner) bool {
	switch {
	case owner.Business != nil:
		return businessManagerOf(actor, owner.Business.ID)
	case owner.Customer != nil:
		if actor.IsCustomer() && actor.CustomerProfile.ID == owner.Customer.ID {
			return true
		}

		for _, m := range actor.ActiveMemberships() {
			if m.CanManageUsers() && owner.Customer.IsOnRosterOf(m.BusinessID) {
				return true
			}
		}

		return false
	default:
		return false
	}
}
