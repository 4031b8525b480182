package authz

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"plaza/internal/domain/entity"
)

func TestBusinessUserProfilePolicy_View(t *testing.T) {
	policy := BusinessUserProfilePolicy{}
	businessID := uuid.New()
	target := &entity.BusinessUserProfile{
		ID:          uuid.New(),
		UserID:      uuid.New(),
		BusinessID:  businessID,
		Status:      entity.ProfileStatusActive,
		AccessLevel: entity.BusinessLevelUser,
	}

	self := newBusinessUser(businessID, entity.BusinessLevelUser, entity.ProfileStatusActive)
	self.ID = target.UserID
	assert.True(t, policy.View(self, target))

	assert.True(t, policy.View(newStaff(entity.StaffLevelAdvanced, entity.ProfileStatusActive), target))
	assert.False(t, policy.View(newStaff(entity.StaffLevelBasic, entity.ProfileStatusActive), target))

	sameBusinessAdmin := newBusinessUser(businessID, entity.BusinessLevelAdmin, entity.ProfileStatusActive)
	assert.True(t, policy.View(sameBusinessAdmin, target))

	otherBusinessAdmin := newBusinessUser(uuid.New(), entity.BusinessLevelAdmin, entity.ProfileStatusActive)
	assert.False(t, policy.View(otherBusinessAdmin, target))
}

func TestBusinessUserProfilePolicy_Update(t *testing.T) {
	policy := BusinessUserProfilePolicy{}
	businessID := uuid.New()
	target := &entity.BusinessUserProfile{
		ID:         uuid.New(),
		UserID:     uuid.New(),
		BusinessID: businessID,
		Status:     entity.ProfileStatusActive,
	}

	self := newBusinessUser(businessID, entity.BusinessLevelUser, entity.ProfileStatusActive)
	self.ID = target.UserID
	assert.True(t, policy.Update(self, target))

	assert.True(t, policy.Update(newStaff(entity.StaffLevelAdmin, entity.ProfileStatusActive), target))
	// update requires a staff admin, unlike view
	assert.False(t, policy.Update(newStaff(entity.StaffLevelAdvanced, entity.ProfileStatusActive), target))

	sameBusinessAdmin := newBusinessUser(businessID, entity.BusinessLevelAdmin, entity.ProfileStatusActive)
	assert.True(t, policy.Update(sameBusinessAdmin, target))
}

func TestBusinessUserProfilePolicy_DeleteNeverSelf(t *testing.T) {
	policy := BusinessUserProfilePolicy{}
	businessID := uuid.New()

	self := newBusinessUser(businessID, entity.BusinessLevelAdmin, entity.ProfileStatusActive)
	assert.False(t, policy.Delete(self, self.BusinessProfile))
}

func TestBusinessUserProfilePolicy_Delete(t *testing.T) {
	policy := BusinessUserProfilePolicy{}
	businessID := uuid.New()
	target := &entity.BusinessUserProfile{
		ID:         uuid.New(),
		UserID:     uuid.New(),
		BusinessID: businessID,
		Status:     entity.ProfileStatusActive,
	}

	assert.True(t, policy.Delete(newStaff(entity.StaffLevelAdmin, entity.ProfileStatusActive), target))
	assert.False(t, policy.Delete(newStaff(entity.StaffLevelAdvanced, entity.ProfileStatusActive), target))

	sameBusinessAdmin := newBusinessUser(businessID, entity.BusinessLevelAdmin, entity.ProfileStatusActive)
	assert.True(t, policy.Delete(sameBusinessAdmin, target))

	sameBusinessManager := newBusinessUser(businessID, entity.BusinessLevelManager, entity.ProfileStatusActive)
	assert.False(t, policy.Delete(sameBusinessManager, target))
}
