package authz

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"plaza/internal/domain/entity"
)

func TestDeriveRoles_NoProfile(t *testing.T) {
	user := &entity.User{ID: uuid.New()}

	assert.Empty(t, DeriveRoles(user))
}

func TestDeriveRoles_Customer(t *testing.T) {
	user := newCustomer(entity.CustomerLevelPremium, entity.ProfileStatusActive)

	assert.Equal(t, entity.Roles{entity.RoleCustomer}, DeriveRoles(user))
}

func TestDeriveRoles_SuspendedCustomerKeepsRole(t *testing.T) {
	user := newCustomer(entity.CustomerLevelPremium, entity.ProfileStatusSuspended)

	assert.Equal(t, entity.Roles{entity.RoleCustomer}, DeriveRoles(user))
}

func TestDeriveRoles_SuspendedBusinessProfileHasNoRole(t *testing.T) {
	user := newBusinessUser(uuid.New(), entity.BusinessLevelAdmin, entity.ProfileStatusSuspended)

	assert.Empty(t, DeriveRoles(user))
}

func TestDeriveRoles_PlainBusinessUser(t *testing.T) {
	user := newBusinessUser(uuid.New(), entity.BusinessLevelUser, entity.ProfileStatusActive)

	roles := DeriveRoles(user)

	assert.True(t, roles.Contains(entity.RoleBusinessUser))
	assert.False(t, roles.Contains(entity.RoleBusinessAdmin))
}

func TestDeriveRoles_ManagerWithoutElevatedPermissionIsNotBusinessAdmin(t *testing.T) {
	user := newBusinessUser(uuid.New(), entity.BusinessLevelManager, entity.ProfileStatusActive)

	roles := DeriveRoles(user)

	assert.True(t, roles.Contains(entity.RoleBusinessUser))
	assert.False(t, roles.Contains(entity.RoleBusinessAdmin))
}

func TestDeriveRoles_ElevatedBusinessUser(t *testing.T) {
	tests := []struct {
		name string
		user *entity.User
	}{
		{name: "admin level", user: newBusinessUser(uuid.New(), entity.BusinessLevelAdmin, entity.ProfileStatusActive)},
		{name: "admin permission", user: newBusinessUser(uuid.New(), entity.BusinessLevelUser, entity.ProfileStatusActive, entity.PermissionAdmin)},
		{name: "full_access permission", user: newBusinessUser(uuid.New(), entity.BusinessLevelManager, entity.ProfileStatusActive, entity.PermissionFullAccess)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roles := DeriveRoles(tt.user)

			assert.True(t, roles.Contains(entity.RoleBusinessUser))
			assert.True(t, roles.Contains(entity.RoleBusinessAdmin))
		})
	}
}

func TestDeriveRoles_ElevationInSecondMembershipCounts(t *testing.T) {
	user := newBusinessUser(uuid.New(), entity.BusinessLevelUser, entity.ProfileStatusActive)
	user.BusinessMemberships = []*entity.BusinessUserProfile{
		user.BusinessProfile,
		{
			ID:          uuid.New(),
			UserID:      user.ID,
			BusinessID:  uuid.New(),
			Status:      entity.ProfileStatusActive,
			AccessLevel: entity.BusinessLevelAdmin,
		},
	}

	assert.True(t, DeriveRoles(user).Contains(entity.RoleBusinessAdmin))
}

func TestDeriveRoles_ElevationInInactiveMembershipIgnored(t *testing.T) {
	user := newBusinessUser(uuid.New(), entity.BusinessLevelUser, entity.ProfileStatusActive)
	user.BusinessMemberships = []*entity.BusinessUserProfile{
		user.BusinessProfile,
		{
			ID:          uuid.New(),
			UserID:      user.ID,
			BusinessID:  uuid.New(),
			Status:      entity.ProfileStatusInactive,
			AccessLevel: entity.BusinessLevelAdmin,
		},
	}

	assert.False(t, DeriveRoles(user).Contains(entity.RoleBusinessAdmin))
}

func TestDeriveRoles_StaffLevelsAreMutuallyExclusive(t *testing.T) {
	tests := []struct {
		name  string
		level entity.StaffAccessLevel
		want  entity.Role
	}{
		{name: "basic", level: entity.StaffLevelBasic, want: entity.RoleStaffBasic},
		{name: "advanced", level: entity.StaffLevelAdvanced, want: entity.RoleStaffAdvanced},
		{name: "admin", level: entity.StaffLevelAdmin, want: entity.RoleStaffAdmin},
	}

	staffRoles := entity.Roles{entity.RoleStaffBasic, entity.RoleStaffAdvanced, entity.RoleStaffAdmin}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roles := DeriveRoles(newStaff(tt.level, entity.ProfileStatusActive))

			assert.True(t, roles.Contains(tt.want))

			others := 0
			for _, r := range staffRoles {
				if r != tt.want && roles.Contains(r) {
					others++
				}
			}
			assert.Zero(t, others)
		})
	}
}
