package authz

import (
	"github.com/google/uuid"

	"plaza/internal/domain/entity"
)

// Policies bundles every per-resource policy behind one value, so callers
// inject a single dependency instead of six.
type Policies struct {
	Address             AddressPolicy
	Business            BusinessPolicy
	PlatformPlan        PlatformPlanPolicy
	BusinessUserProfile BusinessUserProfilePolicy
	StaffUserProfile    StaffUserProfilePolicy
	User                UserPolicy
}

// NewPolicies creates the policy bundle.
func NewPolicies() *Policies {
	return &Policies{}
}

// businessManagerOf reports whether the actor holds an active membership at
// manager level or above in the given business.
func businessManagerOf(actor *entity.User, businessID uuid.UUID) bool {
	if !actor.IsBusinessUser() {
		return false
	}

	for _, m := range actor.ActiveMemberships() {
		if m.BusinessID == businessID && m.CanManageUsers() {
			return true
		}
	}

	return false
}

// businessAdminOf reports whether the actor holds an active admin-level
// membership in the given business.
func businessAdminOf(actor *entity.User, businessID uuid.UUID) bool {
	if !actor.IsBusinessUser() {
		return false
	}

	for _, m := range actor.ActiveMemberships() {
		if m.BusinessID == businessID && m.IsAdmin() {
			return true
		}
	}

	return false
}

// managesAnyBusiness reports whether the actor is a manager or above in at
// least one active membership.
func managesAnyBusiness(actor *entity.User) bool {
	if !actor.IsBusinessUser() {
		return false
	}

	for _, m := range actor.ActiveMemberships() {
		if m.CanManageUsers() {
			return true
		}
	}

	return false
}

// hasBusinessAdminRole reports whether the actor carries the business_admin
// role tag: elevated permissions in at least one active membership.
func hasBusinessAdminRole(actor *entity.User) bool {
	if !actor.IsBusinessUser() {
		return false
	}

	for _, m := range actor.ActiveMemberships() {
		if m.IsElevated() {
			return true
		}
	}

	return false
}

// elevatedIn reports whether the actor holds elevated permissions in the
// given business specifically.
func elevatedIn(actor *entity.User, businessID uuid.UUID) bool {
	if !actor.IsBusinessUser() {
		return false
	}

	for _, m := range actor.ActiveMemberships() {
		if m.BusinessID == businessID && m.IsElevated() {
			return true
		}
	}

	return false
}
