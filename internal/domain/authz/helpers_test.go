package authz

import (
	"github.com/google/uuid"

	"plaza/internal/domain/entity"
)

func newCustomer(level entity.CustomerAccessLevel, status entity.ProfileStatus) *entity.User {
	return &entity.User{
		ID:          uuid.New(),
		ProfileKind: entity.ProfileKindCustomer,
		CustomerProfile: &entity.CustomerProfile{
			ID:          uuid.New(),
			Status:      status,
			AccessLevel: level,
		},
	}
}

func newStaff(level entity.StaffAccessLevel, status entity.ProfileStatus, permissions ...string) *entity.User {
	return &entity.User{
		ID:          uuid.New(),
		ProfileKind: entity.ProfileKindStaff,
		StaffProfile: &entity.StaffUserProfile{
			ID:                uuid.New(),
			Status:            status,
			AccessLevel:       level,
			SystemPermissions: permissions,
		},
	}
}

func newBusinessUser(businessID uuid.UUID, level entity.BusinessAccessLevel, status entity.ProfileStatus, permissions ...string) *entity.User {
	userID := uuid.New()
	profile := &entity.BusinessUserProfile{
		ID:          uuid.New(),
		UserID:      userID,
		BusinessID:  businessID,
		Status:      status,
		AccessLevel: level,
		Permissions: permissions,
	}

	return &entity.User{
		ID:              userID,
		ProfileKind:     entity.ProfileKindBusiness,
		BusinessProfile: profile,
	}
}

func linkStaffProfile(u *entity.User) *entity.User {
	if u.StaffProfile != nil {
		u.StaffProfile.UserID = u.ID
	}

	return u
}
