package impl

import (
	"context"
	"testing"

	"plaza/internal/domain/entity"
	domainerrors "plaza/internal/domain/errors"
	"plaza/internal/domain/repository"
	"plaza/internal/domain/service"
	mockRepo "plaza/internal/mocks/repository"
	mockSvc "plaza/internal/mocks/service"
	"plaza/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type planLimitFixtures struct {
	txFixture
	gate      usecase.PlanLimitGate
	publisher *mockSvc.MockEventPublisher
}

func createTestPlanLimitService(t *testing.T) planLimitFixtures {
	f := newTxFixture(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	gate := NewPlanLimitService(PlanLimitServiceParams{
		TxManager:      f.txManager,
		EventPublisher: publisher,
		Logger:         testLogger(),
	})

	return planLimitFixtures{txFixture: f, gate: gate, publisher: publisher}
}

// expectDenialEvent registers the denial event publication every refused
// check emits.
func (f planLimitFixtures) expectDenialEvent(ctx context.Context, businessID uuid.UUID, reason string) {
	f.publisher.EXPECT().
		PublishDomainEvent(ctx, mock.MatchedBy(func(event *service.DomainEvent) bool {
			return event.Name == service.EventPlanLimitDenied &&
				event.BusinessID == businessID.String() &&
				event.Attributes["reason"] == reason
		})).
		Return(nil)
}

func businessWithPlan(maxUsers, maxCustomers *int) *entity.Business {
	return &entity.Business{
		ID:     uuid.New(),
		Name:   "Padaria Central",
		Status: entity.BusinessStatusActive,
		PlatformPlan: &entity.PlatformPlan{
			ID:           uuid.New(),
			Name:         "Pro",
			IsActive:     true,
			MaxUsers:     maxUsers,
			MaxCustomers: maxCustomers,
		},
	}
}

func TestPlanLimitService_Check_UsersUnderLimit(t *testing.T) {
	fx := createTestPlanLimitService(t)

	ctx := context.Background()
	business := businessWithPlan(intPtr(5), nil)

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		businessRepo := mockRepo.NewMockBusinessRepository(t)
		memberRepo := mockRepo.NewMockBusinessUserProfileRepository(t)
		factory.EXPECT().NewBusinessRepository().Return(businessRepo)
		factory.EXPECT().NewBusinessUserProfileRepository().Return(memberRepo)
		businessRepo.EXPECT().FindByID(ctx, business.ID).Return(business, nil)
		memberRepo.EXPECT().CountByBusiness(ctx, business.ID).Return(int64(3), nil)
	})

	decision, err := fx.gate.Check(ctx, business.ID, usecase.LimitKindUsers)

	require.NoError(t, err)
	assert.True(t, decision.Allowed)
	assert.Equal(t, 5, decision.CurrentLimit)
	assert.Equal(t, 3, decision.CurrentCount)
}

func TestPlanLimitService_Check_UserLimitReached(t *testing.T) {
	fx := createTestPlanLimitService(t)

	ctx := context.Background()
	business := businessWithPlan(intPtr(2), nil)

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		businessRepo := mockRepo.NewMockBusinessRepository(t)
		memberRepo := mockRepo.NewMockBusinessUserProfileRepository(t)
		factory.EXPECT().NewBusinessRepository().Return(businessRepo)
		factory.EXPECT().NewBusinessUserProfileRepository().Return(memberRepo)
		businessRepo.EXPECT().FindByID(ctx, business.ID).Return(business, nil)
		memberRepo.EXPECT().CountByBusiness(ctx, business.ID).Return(int64(2), nil)
	})
	fx.expectDenialEvent(ctx, business.ID, domainerrors.PlanLimitUserLimitReached)

	decision, err := fx.gate.Check(ctx, business.ID, usecase.LimitKindUsers)

	require.NoError(t, err)
	assert.False(t, decision.Allowed)
	assert.Equal(t, domainerrors.PlanLimitUserLimitReached, decision.Reason)
	assert.Equal(t, 2, decision.CurrentLimit)
	assert.Equal(t, 2, decision.CurrentCount)
}

func TestPlanLimitService_Check_CustomerLimitReached(t *testing.T) {
	fx := createTestPlanLimitService(t)

	ctx := context.Background()
	business := businessWithPlan(nil, intPtr(10))

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		businessRepo := mockRepo.NewMockBusinessRepository(t)
		factory.EXPECT().NewBusinessRepository().Return(businessRepo)
		businessRepo.EXPECT().FindByID(ctx, business.ID).Return(business, nil)
		businessRepo.EXPECT().CountCustomers(ctx, business.ID).Return(int64(12), nil)
	})
	fx.expectDenialEvent(ctx, business.ID, domainerrors.PlanLimitCustomerLimitReached)

	decision, err := fx.gate.Check(ctx, business.ID, usecase.LimitKindCustomers)

	require.NoError(t, err)
	assert.False(t, decision.Allowed)
	assert.Equal(t, domainerrors.PlanLimitCustomerLimitReached, decision.Reason)
	assert.Equal(t, 10, decision.CurrentLimit)
	assert.Equal(t, 12, decision.CurrentCount)
}

func TestPlanLimitService_Check_UnlimitedDimension(t *testing.T) {
	fx := createTestPlanLimitService(t)

	ctx := context.Background()
	business := businessWithPlan(nil, intPtr(10))

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		businessRepo := mockRepo.NewMockBusinessRepository(t)
		factory.EXPECT().NewBusinessRepository().Return(businessRepo)
		businessRepo.EXPECT().FindByID(ctx, business.ID).Return(business, nil)
	})

	decision, err := fx.gate.Check(ctx, business.ID, usecase.LimitKindUsers)

	require.NoError(t, err)
	assert.True(t, decision.Allowed)
	assert.Zero(t, decision.CurrentLimit)
}

func TestPlanLimitService_Check_NoActivePlan(t *testing.T) {
	fx := createTestPlanLimitService(t)

	ctx := context.Background()
	business := &entity.Business{
		ID:     uuid.New(),
		Status: entity.BusinessStatusActive,
	}

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		businessRepo := mockRepo.NewMockBusinessRepository(t)
		factory.EXPECT().NewBusinessRepository().Return(businessRepo)
		businessRepo.EXPECT().FindByID(ctx, business.ID).Return(business, nil)
	})
	fx.expectDenialEvent(ctx, business.ID, domainerrors.PlanLimitNoActivePlan)

	decision, err := fx.gate.Check(ctx, business.ID, usecase.LimitKindUsers)

	require.NoError(t, err)
	assert.False(t, decision.Allowed)
	assert.Equal(t, domainerrors.PlanLimitNoActivePlan, decision.Reason)
}

func TestPlanLimitService_Check_InactivePlanCountsAsMissing(t *testing.T) {
	fx := createTestPlanLimitService(t)

	ctx := context.Background()
	business := businessWithPlan(intPtr(5), nil)
	business.PlatformPlan.IsActive = false

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		businessRepo := mockRepo.NewMockBusinessRepository(t)
		factory.EXPECT().NewBusinessRepository().Return(businessRepo)
		businessRepo.EXPECT().FindByID(ctx, business.ID).Return(business, nil)
	})
	fx.expectDenialEvent(ctx, business.ID, domainerrors.PlanLimitNoActivePlan)

	decision, err := fx.gate.Check(ctx, business.ID, usecase.LimitKindUsers)

	require.NoError(t, err)
	assert.False(t, decision.Allowed)
	assert.Equal(t, domainerrors.PlanLimitNoActivePlan, decision.Reason)
}

func TestPlanLimitService_Check_BusinessNotFound(t *testing.T) {
	fx := createTestPlanLimitService(t)

	ctx := context.Background()
	businessID := uuid.New()

	fx.onExecute(ctx, errors.Wrap(domainerrors.ErrBusinessNotFound, "plan limit check"), func(factory *mockRepo.MockRepositoryFactory) {
		businessRepo := mockRepo.NewMockBusinessRepository(t)
		factory.EXPECT().NewBusinessRepository().Return(businessRepo)
		businessRepo.EXPECT().FindByID(ctx, businessID).Return(nil, repository.ErrBusinessNotFound)
	})

	decision, err := fx.gate.Check(ctx, businessID, usecase.LimitKindUsers)

	assert.Error(t, err)
	assert.Nil(t, decision)
	assert.True(t, errors.Is(err, domainerrors.ErrBusinessNotFound))
}

func TestPlanLimitService_CheckWithFactory_SharesTransaction(t *testing.T) {
	fx := createTestPlanLimitService(t)

	ctx := context.Background()
	business := businessWithPlan(intPtr(4), nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	businessRepo := mockRepo.NewMockBusinessRepository(t)
	memberRepo := mockRepo.NewMockBusinessUserProfileRepository(t)
	factory.EXPECT().NewBusinessRepository().Return(businessRepo)
	factory.EXPECT().NewBusinessUserProfileRepository().Return(memberRepo)
	businessRepo.EXPECT().FindByID(ctx, business.ID).Return(business, nil)
	memberRepo.EXPECT().CountByBusiness(ctx, business.ID).Return(int64(1), nil)

	decision, err := fx.gate.CheckWithFactory(ctx, factory, business.ID, usecase.LimitKindUsers)

	require.NoError(t, err)
	assert.True(t, decision.Allowed)
	assert.Equal(t, 4, decision.CurrentLimit)
	assert.Equal(t, 1, decision.CurrentCount)
}
