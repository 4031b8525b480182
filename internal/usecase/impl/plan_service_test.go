package impl

import (
	"context"
	"testing"

	"plaza/internal/domain/authz"
	"plaza/internal/domain/entity"
	domainerrors "plaza/internal/domain/errors"
	"plaza/internal/domain/repository"
	mockRepo "plaza/internal/mocks/repository"
	"plaza/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type planServiceFixtures struct {
	txFixture
	service usecase.PlanUsecase
}

func createTestPlanService(t *testing.T) planServiceFixtures {
	f := newTxFixture(t)
	service := NewPlanService(PlanServiceParams{
		TxManager: f.txManager,
		Policies:  authz.NewPolicies(),
		Logger:    testLogger(),
	})

	return planServiceFixtures{txFixture: f, service: service}
}

func TestPlanService_CreatePlan_Success(t *testing.T) {
	fx := createTestPlanService(t)

	ctx := context.Background()
	actor := staffActor(entity.StaffLevelAdmin)
	input := &usecase.CreatePlanInput{
		Name:         "Pro",
		Slug:         "pro",
		Price:        99.9,
		BillingCycle: entity.BillingCycleMonthly,
		MaxUsers:     intPtr(10),
	}

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		expectActor(t, factory, ctx, actor)
		planRepo := mockRepo.NewMockPlatformPlanRepository(t)
		factory.EXPECT().NewPlatformPlanRepository().Return(planRepo)
		planRepo.EXPECT().FindBySlug(ctx, "pro").Return(nil, repository.ErrPlanNotFound)
		planRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.PlatformPlan")).Return(nil)
	})

	plan, err := fx.service.CreatePlan(ctx, actor.ID, input)

	require.NoError(t, err)
	assert.Equal(t, "pro", plan.Slug)
	assert.True(t, plan.IsActive)
	assert.Equal(t, intPtr(10), plan.MaxUsers)
}

func TestPlanService_CreatePlan_InvalidBillingCycle(t *testing.T) {
	fx := createTestPlanService(t)

	_, err := fx.service.CreatePlan(context.Background(), uuid.New(), &usecase.CreatePlanInput{
		Name:         "Broken",
		Slug:         "broken",
		BillingCycle: "weekly",
	})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestPlanService_CreatePlan_DuplicateSlug(t *testing.T) {
	fx := createTestPlanService(t)

	ctx := context.Background()
	actor := staffActor(entity.StaffLevelAdmin)
	existing := &entity.PlatformPlan{ID: uuid.New(), Slug: "pro"}

	fx.onExecute(ctx, errors.Wrap(domainerrors.ErrPlanAlreadyExists, "slug already taken"), func(factory *mockRepo.MockRepositoryFactory) {
		expectActor(t, factory, ctx, actor)
		planRepo := mockRepo.NewMockPlatformPlanRepository(t)
		factory.EXPECT().NewPlatformPlanRepository().Return(planRepo)
		planRepo.EXPECT().FindBySlug(ctx, "pro").Return(existing, nil)
	})

	_, err := fx.service.CreatePlan(ctx, actor.ID, &usecase.CreatePlanInput{
		Name:         "Pro",
		Slug:         "pro",
		BillingCycle: entity.BillingCycleMonthly,
	})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPlanAlreadyExists))
}

func TestPlanService_CreatePlan_Forbidden(t *testing.T) {
	fx := createTestPlanService(t)

	ctx := context.Background()
	actor := staffActor(entity.StaffLevelAdvanced)

	fx.onExecute(ctx, errors.Wrap(domainerrors.ErrForbidden, "actor may not create plans"), func(factory *mockRepo.MockRepositoryFactory) {
		expectActor(t, factory, ctx, actor)
	})

	_, err := fx.service.CreatePlan(ctx, actor.ID, &usecase.CreatePlanInput{
		Name:         "Pro",
		Slug:         "pro",
		BillingCycle: entity.BillingCycleMonthly,
	})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestPlanService_UpdatePlan_ClearsCaps(t *testing.T) {
	fx := createTestPlanService(t)

	ctx := context.Background()
	actor := staffActor(entity.StaffLevelAdmin)
	plan := &entity.PlatformPlan{
		ID:           uuid.New(),
		Slug:         "pro",
		BillingCycle: entity.BillingCycleMonthly,
		MaxUsers:     intPtr(10),
		MaxCustomers: intPtr(50),
		IsActive:     true,
	}

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		expectActor(t, factory, ctx, actor)
		planRepo := mockRepo.NewMockPlatformPlanRepository(t)
		factory.EXPECT().NewPlatformPlanRepository().Return(planRepo)
		planRepo.EXPECT().FindByID(ctx, plan.ID).Return(plan, nil)
		planRepo.EXPECT().Update(ctx, plan).Return(nil)
	})

	updated, err := fx.service.UpdatePlan(ctx, actor.ID, plan.ID, &usecase.UpdatePlanInput{
		ClearMaxUsers: true,
		MaxCustomers:  intPtr(100),
	})

	require.NoError(t, err)
	assert.Nil(t, updated.MaxUsers)
	assert.Equal(t, intPtr(100), updated.MaxCustomers)
}

func TestPlanService_DeletePlan_InUse(t *testing.T) {
	fx := createTestPlanService(t)

	ctx := context.Background()
	actor := staffActor(entity.StaffLevelAdmin)
	plan := &entity.PlatformPlan{ID: uuid.New(), Slug: "pro"}

	fx.onExecute(ctx, errors.Wrap(domainerrors.ErrPlanInUse, "plan still assigned to businesses"), func(factory *mockRepo.MockRepositoryFactory) {
		expectActor(t, factory, ctx, actor)
		planRepo := mockRepo.NewMockPlatformPlanRepository(t)
		businessRepo := mockRepo.NewMockBusinessRepository(t)
		factory.EXPECT().NewPlatformPlanRepository().Return(planRepo)
		factory.EXPECT().NewBusinessRepository().Return(businessRepo)
		planRepo.EXPECT().FindByID(ctx, plan.ID).Return(plan, nil)
		businessRepo.EXPECT().CountByPlan(ctx, plan.ID).Return(int64(3), nil)
	})

	err := fx.service.DeletePlan(ctx, actor.ID, plan.ID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPlanInUse))
}

func TestPlanService_DeletePlan_Success(t *testing.T) {
	fx := createTestPlanService(t)

	ctx := context.Background()
	actor := staffActor(entity.StaffLevelAdmin)
	plan := &entity.PlatformPlan{ID: uuid.New(), Slug: "legacy"}

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		expectActor(t, factory, ctx, actor)
		planRepo := mockRepo.NewMockPlatformPlanRepository(t)
		businessRepo := mockRepo.NewMockBusinessRepository(t)
		factory.EXPECT().NewPlatformPlanRepository().Return(planRepo)
		factory.EXPECT().NewBusinessRepository().Return(businessRepo)
		planRepo.EXPECT().FindByID(ctx, plan.ID).Return(plan, nil)
		businessRepo.EXPECT().CountByPlan(ctx, plan.ID).Return(int64(0), nil)
		planRepo.EXPECT().Delete(ctx, plan.ID).Return(nil)
	})

	err := fx.service.DeletePlan(ctx, actor.ID, plan.ID)

	require.NoError(t, err)
}
