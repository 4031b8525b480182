package impl

import (
	"context"
	"testing"

	"plaza/internal/domain/authz"
	"plaza/internal/domain/entity"
	domainerrors "plaza/internal/domain/errors"
	mockRepo "plaza/internal/mocks/repository"
	"plaza/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staffServiceFixtures struct {
	txFixture
	service usecase.StaffUsecase
}

func createTestStaffService(t *testing.T) staffServiceFixtures {
	f := newTxFixture(t)
	service := NewStaffService(StaffServiceParams{
		TxManager: f.txManager,
		Policies:  authz.NewPolicies(),
		Logger:    testLogger(),
	})

	return staffServiceFixtures{txFixture: f, service: service}
}

func adminProfile() *entity.StaffUserProfile {
	return &entity.StaffUserProfile{
		ID:          uuid.New(),
		UserID:      uuid.New(),
		Status:      entity.ProfileStatusActive,
		AccessLevel: entity.StaffLevelAdmin,
	}
}

func TestStaffService_ListStaff_RequiresAdmin(t *testing.T) {
	fx := createTestStaffService(t)

	ctx := context.Background()
	actor := staffActor(entity.StaffLevelAdvanced)

	fx.onExecute(ctx, errors.Wrap(domainerrors.ErrForbidden, "actor may not list staff profiles"), func(factory *mockRepo.MockRepositoryFactory) {
		expectActor(t, factory, ctx, actor)
	})

	_, err := fx.service.ListStaff(ctx, actor.ID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestStaffService_ListStaff_Success(t *testing.T) {
	fx := createTestStaffService(t)

	ctx := context.Background()
	actor := staffActor(entity.StaffLevelAdmin)
	expected := []*entity.StaffUserProfile{adminProfile()}

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		expectActor(t, factory, ctx, actor)
		staffRepo := mockRepo.NewMockStaffUserProfileRepository(t)
		factory.EXPECT().NewStaffUserProfileRepository().Return(staffRepo)
		staffRepo.EXPECT().List(ctx).Return(expected, nil)
	})

	profiles, err := fx.service.ListStaff(ctx, actor.ID)

	require.NoError(t, err)
	assert.Equal(t, expected, profiles)
}

func TestStaffService_DeleteStaffProfile_Success(t *testing.T) {
	fx := createTestStaffService(t)

	ctx := context.Background()
	actor := staffActor(entity.StaffLevelAdmin)
	target := adminProfile()

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		expectActor(t, factory, ctx, actor)
		staffRepo := mockRepo.NewMockStaffUserProfileRepository(t)
		factory.EXPECT().NewStaffUserProfileRepository().Return(staffRepo)
		staffRepo.EXPECT().FindByID(ctx, target.ID).Return(target, nil)
		staffRepo.EXPECT().CountActiveAdminsForUpdate(ctx).Return(int64(2), nil)
		staffRepo.EXPECT().Delete(ctx, target.ID).Return(nil)
	})

	err := fx.service.DeleteStaffProfile(ctx, actor.ID, target.ID)

	require.NoError(t, err)
}

func TestStaffService_DeleteStaffProfile_LastAdmin(t *testing.T) {
	fx := createTestStaffService(t)

	ctx := context.Background()
	actor := staffActor(entity.StaffLevelAdmin)
	target := adminProfile()

	fx.onExecute(ctx, errors.Wrap(domainerrors.ErrLastAdminGuard, "cannot delete the last active admin"), func(factory *mockRepo.MockRepositoryFactory) {
		expectActor(t, factory, ctx, actor)
		staffRepo := mockRepo.NewMockStaffUserProfileRepository(t)
		factory.EXPECT().NewStaffUserProfileRepository().Return(staffRepo)
		staffRepo.EXPECT().FindByID(ctx, target.ID).Return(target, nil)
		staffRepo.EXPECT().CountActiveAdminsForUpdate(ctx).Return(int64(1), nil)
	})

	err := fx.service.DeleteStaffProfile(ctx, actor.ID, target.ID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrLastAdminGuard))
}

func TestStaffService_DeleteStaffProfile_Self(t *testing.T) {
	fx := createTestStaffService(t)

	ctx := context.Background()
	actor := staffActor(entity.StaffLevelAdmin)
	target := &entity.StaffUserProfile{
		ID:          actor.StaffProfile.ID,
		UserID:      actor.ID,
		Status:      entity.ProfileStatusActive,
		AccessLevel: entity.StaffLevelAdmin,
	}

	fx.onExecute(ctx, errors.Wrap(domainerrors.ErrSelfActionBlocked, "cannot delete own staff profile"), func(factory *mockRepo.MockRepositoryFactory) {
		expectActor(t, factory, ctx, actor)
		staffRepo := mockRepo.NewMockStaffUserProfileRepository(t)
		factory.EXPECT().NewStaffUserProfileRepository().Return(staffRepo)
		staffRepo.EXPECT().FindByID(ctx, target.ID).Return(target, nil)
	})

	err := fx.service.DeleteStaffProfile(ctx, actor.ID, target.ID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrSelfActionBlocked))
}

func TestStaffService_PromoteToAdmin_Success(t *testing.T) {
	fx := createTestStaffService(t)

	ctx := context.Background()
	actor := staffActor(entity.StaffLevelAdmin)
	target := &entity.StaffUserProfile{
		ID:          uuid.New(),
		UserID:      uuid.New(),
		Status:      entity.ProfileStatusActive,
		AccessLevel: entity.StaffLevelAdvanced,
	}

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		expectActor(t, factory, ctx, actor)
		staffRepo := mockRepo.NewMockStaffUserProfileRepository(t)
		factory.EXPECT().NewStaffUserProfileRepository().Return(staffRepo)
		staffRepo.EXPECT().FindByID(ctx, target.ID).Return(target, nil)
		staffRepo.EXPECT().Update(ctx, target).Return(nil)
	})

	promoted, err := fx.service.PromoteToAdmin(ctx, actor.ID, target.ID)

	require.NoError(t, err)
	assert.Equal(t, entity.StaffLevelAdmin, promoted.AccessLevel)
}

func TestStaffService_DemoteFromAdmin_LastAdmin(t *testing.T) {
	fx := createTestStaffService(t)

	ctx := context.Background()
	actor := staffActor(entity.StaffLevelAdmin)
	target := adminProfile()

	fx.onExecute(ctx, errors.Wrap(domainerrors.ErrLastAdminGuard, "cannot demote the last active admin"), func(factory *mockRepo.MockRepositoryFactory) {
		expectActor(t, factory, ctx, actor)
		staffRepo := mockRepo.NewMockStaffUserProfileRepository(t)
		factory.EXPECT().NewStaffUserProfileRepository().Return(staffRepo)
		staffRepo.EXPECT().FindByID(ctx, target.ID).Return(target, nil)
		staffRepo.EXPECT().CountActiveAdminsForUpdate(ctx).Return(int64(1), nil)
	})

	_, err := fx.service.DemoteFromAdmin(ctx, actor.ID, target.ID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrLastAdminGuard))
}

func TestStaffService_DemoteFromAdmin_Success(t *testing.T) {
	fx := createTestStaffService(t)

	ctx := context.Background()
	actor := staffActor(entity.StaffLevelAdmin)
	target := adminProfile()

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		expectActor(t, factory, ctx, actor)
		staffRepo := mockRepo.NewMockStaffUserProfileRepository(t)
		factory.EXPECT().NewStaffUserProfileRepository().Return(staffRepo)
		staffRepo.EXPECT().FindByID(ctx, target.ID).Return(target, nil)
		staffRepo.EXPECT().CountActiveAdminsForUpdate(ctx).Return(int64(3), nil)
		staffRepo.EXPECT().Update(ctx, target).Return(nil)
	})

	demoted, err := fx.service.DemoteFromAdmin(ctx, actor.ID, target.ID)

	require.NoError(t, err)
	assert.Equal(t, entity.StaffLevelAdvanced, demoted.AccessLevel)
}

func TestStaffService_UpdateStaffProfile_SelfAllowed(t *testing.T) {
	fx := createTestStaffService(t)

	ctx := context.Background()
	actor := staffActor(entity.StaffLevelBasic)
	target := &entity.StaffUserProfile{
		ID:          actor.StaffProfile.ID,
		UserID:      actor.ID,
		Status:      entity.ProfileStatusActive,
		AccessLevel: entity.StaffLevelBasic,
	}
	perms := []string{"reports"}

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		expectActor(t, factory, ctx, actor)
		staffRepo := mockRepo.NewMockStaffUserProfileRepository(t)
		factory.EXPECT().NewStaffUserProfileRepository().Return(staffRepo)
		staffRepo.EXPECT().FindByID(ctx, target.ID).Return(target, nil)
		staffRepo.EXPECT().Update(ctx, target).Return(nil)
	})

	updated, err := fx.service.UpdateStaffProfile(ctx, actor.ID, target.ID, &usecase.UpdateStaffProfileInput{
		SystemPermissions: perms,
	})

	require.NoError(t, err)
	assert.Equal(t, perms, updated.SystemPermissions)
}
