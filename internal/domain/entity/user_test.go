package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestUser_ProfilePredicates(t *testing.T) {
	customer := &User{
		ProfileKind: ProfileKindCustomer,
		CustomerProfile: &CustomerProfile{
			Status:      ProfileStatusActive,
			AccessLevel: CustomerLevelBasic,
		},
	}

	assert.True(t, customer.IsCustomer())
	assert.False(t, customer.IsBusinessUser())
	assert.False(t, customer.IsStaff())
	assert.False(t, customer.IsPremiumCustomer())
}

func TestUser_SuspendedCustomerKeepsKind(t *testing.T) {
	user := &User{
		ProfileKind: ProfileKindCustomer,
		CustomerProfile: &CustomerProfile{
			Status:      ProfileStatusSuspended,
			AccessLevel: CustomerLevelVIP,
		},
	}

	assert.True(t, user.IsCustomer())
	assert.True(t, user.IsVIPCustomer())
}

func TestUser_SuspendedBusinessProfileLosesKind(t *testing.T) {
	user := &User{
		ProfileKind: ProfileKindBusiness,
		BusinessProfile: &BusinessUserProfile{
			Status:      ProfileStatusSuspended,
			AccessLevel: BusinessLevelAdmin,
		},
	}

	assert.False(t, user.IsBusinessUser())
	assert.False(t, user.IsBusinessAdmin())
}

func TestUser_MissingProfileRowHasNoRole(t *testing.T) {
	user := &User{ProfileKind: ProfileKindStaff}

	assert.False(t, user.IsStaff())
	assert.False(t, user.IsStaffAdmin())
}

func TestUser_PremiumAndVIPCustomer(t *testing.T) {
	premium := &User{
		ProfileKind: ProfileKindCustomer,
		CustomerProfile: &CustomerProfile{
			Status:      ProfileStatusActive,
			AccessLevel: CustomerLevelPremium,
		},
	}
	vip := &User{
		ProfileKind: ProfileKindCustomer,
		CustomerProfile: &CustomerProfile{
			Status:      ProfileStatusActive,
			AccessLevel: CustomerLevelVIP,
		},
	}

	assert.True(t, premium.IsPremiumCustomer())
	assert.False(t, premium.IsVIPCustomer())
	assert.True(t, vip.IsPremiumCustomer())
	assert.True(t, vip.IsVIPCustomer())
}

func TestUser_BusinessMembership(t *testing.T) {
	businessID := uuid.New()
	user := &User{
		ProfileKind: ProfileKindBusiness,
		BusinessProfile: &BusinessUserProfile{
			BusinessID:  businessID,
			Status:      ProfileStatusActive,
			AccessLevel: BusinessLevelAdmin,
		},
	}

	assert.True(t, user.IsBusinessUser())
	assert.True(t, user.IsBusinessAdmin())
	assert.True(t, user.BelongsToBusiness(businessID))
	assert.False(t, user.BelongsToBusiness(uuid.New()))
	assert.Equal(t, businessID, user.BusinessID())
}

func TestUser_BusinessIDNilWithoutProfile(t *testing.T) {
	user := &User{ProfileKind: ProfileKindCustomer}

	assert.Equal(t, uuid.Nil, user.BusinessID())
}

func TestUser_ElevatedBusinessUserByPermission(t *testing.T) {
	user := &User{
		ProfileKind: ProfileKindBusiness,
		BusinessProfile: &BusinessUserProfile{
			Status:      ProfileStatusActive,
			AccessLevel: BusinessLevelUser,
			Permissions: []string{PermissionManageUsers},
		},
	}

	assert.True(t, user.IsElevatedBusinessUser())
	assert.False(t, user.IsBusinessAdmin())
}

func TestUser_StaffLevels(t *testing.T) {
	admin := &User{
		ProfileKind: ProfileKindStaff,
		StaffProfile: &StaffUserProfile{
			Status:      ProfileStatusActive,
			AccessLevel: StaffLevelAdmin,
		},
	}
	advanced := &User{
		ProfileKind: ProfileKindStaff,
		StaffProfile: &StaffUserProfile{
			Status:      ProfileStatusActive,
			AccessLevel: StaffLevelAdvanced,
		},
	}
	basic := &User{
		ProfileKind: ProfileKindStaff,
		StaffProfile: &StaffUserProfile{
			Status:      ProfileStatusActive,
			AccessLevel: StaffLevelBasic,
		},
	}

	assert.True(t, admin.IsStaffAdmin())
	assert.True(t, admin.IsAdvancedStaff())
	assert.False(t, advanced.IsStaffAdmin())
	assert.True(t, advanced.IsAdvancedStaff())
	assert.False(t, basic.IsAdvancedStaff())
}

func TestUser_ActiveMemberships(t *testing.T) {
	active := &BusinessUserProfile{
		ID:         uuid.New(),
		BusinessID: uuid.New(),
		Status:     ProfileStatusActive,
	}
	suspended := &BusinessUserProfile{
		ID:         uuid.New(),
		BusinessID: uuid.New(),
		Status:     ProfileStatusSuspended,
	}

	user := &User{
		ProfileKind:         ProfileKindBusiness,
		BusinessMemberships: []*BusinessUserProfile{active, suspended, nil},
	}

	memberships := user.ActiveMemberships()
	assert.Len(t, memberships, 1)
	assert.Equal(t, active.ID, memberships[0].ID)
}

func TestUser_ActiveMembershipsFallsBackToProfile(t *testing.T) {
	profile := &BusinessUserProfile{
		ID:         uuid.New(),
		BusinessID: uuid.New(),
		Status:     ProfileStatusActive,
	}
	user := &User{
		ProfileKind:     ProfileKindBusiness,
		BusinessProfile: profile,
	}

	memberships := user.ActiveMemberships()
	assert.Len(t, memberships, 1)
	assert.Equal(t, profile.ID, memberships[0].ID)
}
