package authz

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"plaza/internal/domain/entity"
)

func TestAddressPolicy_ViewAny(t *testing.T) {
	policy := AddressPolicy{}

	tests := []struct {
		name string
		user *entity.User
		want bool
	}{
		{name: "advanced staff", user: newStaff(entity.StaffLevelAdvanced, entity.ProfileStatusActive), want: true},
		{name: "admin staff", user: newStaff(entity.StaffLevelAdmin, entity.ProfileStatusActive), want: true},
		{name: "basic staff", user: newStaff(entity.StaffLevelBasic, entity.ProfileStatusActive), want: false},
		{name: "business manager", user: newBusinessUser(uuid.New(), entity.BusinessLevelManager, entity.ProfileStatusActive), want: true},
		{name: "business user", user: newBusinessUser(uuid.New(), entity.BusinessLevelUser, entity.ProfileStatusActive), want: false},
		{name: "customer", user: newCustomer(entity.CustomerLevelBasic, entity.ProfileStatusActive), want: true},
		{name: "suspended customer", user: newCustomer(entity.CustomerLevelBasic, entity.ProfileStatusSuspended), want: true},
		{name: "no profile", user: &entity.User{ID: uuid.New()}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, policy.ViewAny(tt.user))
		})
	}
}

func TestAddressPolicy_Create(t *testing.T) {
	policy := AddressPolicy{}

	tests := []struct {
		name string
		user *entity.User
		want bool
	}{
		{name: "admin staff", user: newStaff(entity.StaffLevelAdmin, entity.ProfileStatusActive), want: true},
		{name: "advanced staff", user: newStaff(entity.StaffLevelAdvanced, entity.ProfileStatusActive), want: false},
		{name: "business admin", user: newBusinessUser(uuid.New(), entity.BusinessLevelAdmin, entity.ProfileStatusActive), want: true},
		{name: "business manager", user: newBusinessUser(uuid.New(), entity.BusinessLevelManager, entity.ProfileStatusActive), want: true},
		{name: "business user", user: newBusinessUser(uuid.New(), entity.BusinessLevelUser, entity.ProfileStatusActive), want: false},
		{name: "customer", user: newCustomer(entity.CustomerLevelBasic, entity.ProfileStatusActive), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, policy.Create(tt.user))
		})
	}
}

func TestAddressPolicy_StaffAdminBypassesOwnership(t *testing.T) {
	policy := AddressPolicy{}
	admin := newStaff(entity.StaffLevelAdmin, entity.ProfileStatusActive)
	owner := AddressOwner{Business: &entity.Business{ID: uuid.New()}}

	assert.True(t, policy.View(admin, owner))
	assert.True(t, policy.Update(admin, owner))
	assert.True(t, policy.Delete(admin, owner))
}

func TestAddressPolicy_AdvancedStaffDoesNotBypassOwnership(t *testing.T) {
	policy := AddressPolicy{}
	staff := newStaff(entity.StaffLevelAdvanced, entity.ProfileStatusActive)
	owner := AddressOwner{Business: &entity.Business{ID: uuid.New()}}

	assert.False(t, policy.View(staff, owner))
}

func TestAddressPolicy_BusinessOwnedAddress(t *testing.T) {
	policy := AddressPolicy{}
	businessID := uuid.New()
	owner := AddressOwner{Business: &entity.Business{ID: businessID}}

	manager := newBusinessUser(businessID, entity.BusinessLevelManager, entity.ProfileStatusActive)
	assert.True(t, policy.View(manager, owner))
	assert.True(t, policy.Update(manager, owner))

	plainMember := newBusinessUser(businessID, entity.BusinessLevelUser, entity.ProfileStatusActive)
	assert.False(t, policy.View(plainMember, owner))

	otherManager := newBusinessUser(uuid.New(), entity.BusinessLevelManager, entity.ProfileStatusActive)
	assert.False(t, policy.View(otherManager, owner))

	suspendedManager := newBusinessUser(businessID, entity.BusinessLevelManager, entity.ProfileStatusSuspended)
	assert.False(t, policy.View(suspendedManager, owner))
}

func TestAddressPolicy_CustomerOwnedAddress(t *testing.T) {
	policy := AddressPolicy{}
	businessID := uuid.New()
	customer := newCustomer(entity.CustomerLevelBasic, entity.ProfileStatusActive)
	customer.CustomerProfile.Businesses = []*entity.Business{{ID: businessID}}
	owner := AddressOwner{Customer: customer.CustomerProfile}

	// the owning customer itself
	assert.True(t, policy.View(customer, owner))
	assert.True(t, policy.Delete(customer, owner))

	// a different customer
	stranger := newCustomer(entity.CustomerLevelVIP, entity.ProfileStatusActive)
	assert.False(t, policy.View(stranger, owner))

	// a manager of a business that has the customer on its roster
	manager := newBusinessUser(businessID, entity.BusinessLevelManager, entity.ProfileStatusActive)
	assert.True(t, policy.View(manager, owner))

	// a manager of an unrelated business
	outsider := newBusinessUser(uuid.New(), entity.BusinessLevelManager, entity.ProfileStatusActive)
	assert.False(t, policy.View(outsider, owner))
}

func TestAddressPolicy_OrphanedAddressAlwaysDenies(t *testing.T) {
	policy := AddressPolicy{}
	owner := AddressOwner{}

	users := []*entity.User{
		newCustomer(entity.CustomerLevelVIP, entity.ProfileStatusActive),
		newBusinessUser(uuid.New(), entity.BusinessLevelAdmin, entity.ProfileStatusActive),
		newStaff(entity.StaffLevelAdvanced, entity.ProfileStatusActive),
	}

	for _, u := range users {
		assert.False(t, policy.View(u, owner))
		assert.False(t, policy.Update(u, owner))
		assert.False(t, policy.Delete(u, owner))
	}
}
