package impl

import (
	"context"
	"testing"
	"time"

	"plaza/internal/domain/authz"
	"plaza/internal/domain/entity"
	domainerrors "plaza/internal/domain/errors"
	"plaza/internal/domain/repository"
	"plaza/internal/domain/service"
	mockRepo "plaza/internal/mocks/repository"
	mockSvc "plaza/internal/mocks/service"
	mockUsecase "plaza/internal/mocks/usecase"
	"plaza/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type businessServiceFixtures struct {
	txFixture
	service   usecase.BusinessUsecase
	planGate  *mockUsecase.MockPlanLimitGate
	publisher *mockSvc.MockEventPublisher
	qrService *mockSvc.MockQRCodeService
}

func createTestBusinessService(t *testing.T) businessServiceFixtures {
	f := newTxFixture(t)
	planGate := mockUsecase.NewMockPlanLimitGate(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	qrService := mockSvc.NewMockQRCodeService(t)
	service := NewBusinessService(BusinessServiceParams{
		TxManager:      f.txManager,
		Policies:       authz.NewPolicies(),
		PlanGate:       planGate,
		EventPublisher: publisher,
		QRService:      qrService,
		Logger:         testLogger(),
	})

	return businessServiceFixtures{
		txFixture: f,
		service:   service,
		planGate:  planGate,
		publisher: publisher,
		qrService: qrService,
	}
}

func pendingBusiness() *entity.Business {
	return &entity.Business{
		ID:     uuid.New(),
		Name:   "Padaria Central",
		Slug:   "padaria-central",
		CNPJ:   "11222333000181",
		Email:  "contato@padariacentral.com.br",
		Status: entity.BusinessStatusPending,
	}
}

func approvedBusiness() *entity.Business {
	business := pendingBusiness()
	now := time.Now().Add(-24 * time.Hour)
	business.Status = entity.BusinessStatusActive
	business.ApprovedAt = &now

	return business
}

func expectBusiness(t *testing.T, factory *mockRepo.MockRepositoryFactory, ctx context.Context, business *entity.Business) *mockRepo.MockBusinessRepository {
	t.Helper()

	businessRepo := mockRepo.NewMockBusinessRepository(t)
	factory.EXPECT().NewBusinessRepository().Return(businessRepo)
	businessRepo.EXPECT().FindByID(ctx, business.ID).Return(business, nil)

	return businessRepo
}

func TestBusinessService_CreateBusiness_Success(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	actor := staffActor(entity.StaffLevelAdmin)
	input := &usecase.CreateBusinessInput{
		Name:  "Padaria Central",
		Slug:  "padaria-central",
		CNPJ:  "11222333000181",
		Email: "contato@padariacentral.com.br",
	}

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		expectActor(t, factory, ctx, actor)

		businessRepo := mockRepo.NewMockBusinessRepository(t)
		factory.EXPECT().NewBusinessRepository().Return(businessRepo)
		businessRepo.EXPECT().FindBySlug(ctx, input.Slug).Return(nil, repository.ErrBusinessNotFound)
		businessRepo.EXPECT().FindByCNPJ(ctx, input.CNPJ).Return(nil, repository.ErrBusinessNotFound)
		businessRepo.EXPECT().
			Create(ctx, mock.MatchedBy(func(business *entity.Business) bool {
				return business.Status == entity.BusinessStatusPending && business.Slug == input.Slug
			})).
			Return(nil)
	})

	fx.publisher.EXPECT().
		PublishDomainEvent(ctx, mock.MatchedBy(func(event *service.DomainEvent) bool {
			return event.Name == service.EventBusinessPending &&
				event.Attributes["business_name"] == input.Name
		})).
		Return(nil)

	business, err := fx.service.CreateBusiness(ctx, actor.ID, input)

	require.NoError(t, err)
	assert.Equal(t, entity.BusinessStatusPending, business.Status)
	assert.NotEqual(t, uuid.Nil, business.ID)
}

func TestBusinessService_CreateBusiness_DuplicateSlug(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	actor := staffActor(entity.StaffLevelAdmin)
	existing := approvedBusiness()

	fx.onExecute(ctx, errors.Wrap(domainerrors.ErrBusinessAlreadyExists, "slug already taken"), func(factory *mockRepo.MockRepositoryFactory) {
		expectActor(t, factory, ctx, actor)

		businessRepo := mockRepo.NewMockBusinessRepository(t)
		factory.EXPECT().NewBusinessRepository().Return(businessRepo)
		businessRepo.EXPECT().FindBySlug(ctx, "padaria-central").Return(existing, nil)
	})

	_, err := fx.service.CreateBusiness(ctx, actor.ID, &usecase.CreateBusinessInput{
		Name: "Padaria Central",
		Slug: "padaria-central",
		CNPJ: "99888777000166",
	})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrBusinessAlreadyExists))
}

func TestBusinessService_ApproveBusiness_PublishesEvent(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	actor := staffActor(entity.StaffLevelAdmin)
	business := pendingBusiness()

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		expectActor(t, factory, ctx, actor)

		businessRepo := expectBusiness(t, factory, ctx, business)
		businessRepo.EXPECT().
			Update(ctx, mock.MatchedBy(func(b *entity.Business) bool {
				return b.Status == entity.BusinessStatusActive &&
					b.ApprovedAt != nil &&
					b.ApprovedBy != nil && *b.ApprovedBy == actor.ID
			})).
			Return(nil)
	})

	fx.publisher.EXPECT().
		PublishDomainEvent(ctx, mock.MatchedBy(func(event *service.DomainEvent) bool {
			return event.Name == service.EventBusinessApproved &&
				event.BusinessID == business.ID.String() &&
				event.Attributes["business_name"] == business.Name
		})).
		Return(nil)

	approved, err := fx.service.ApproveBusiness(ctx, actor.ID, business.ID)

	require.NoError(t, err)
	assert.True(t, approved.IsApproved())
	require.NotNil(t, approved.ApprovedBy)
	assert.Equal(t, actor.ID, *approved.ApprovedBy)
}

func TestBusinessService_ApproveBusiness_AlreadyApproved(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	actor := staffActor(entity.StaffLevelAdmin)
	business := approvedBusiness()

	fx.onExecute(ctx, errors.Wrap(domainerrors.ErrBusinessAlreadyApproved, "business already approved"), func(factory *mockRepo.MockRepositoryFactory) {
		expectActor(t, factory, ctx, actor)
		expectBusiness(t, factory, ctx, business)
	})

	_, err := fx.service.ApproveBusiness(ctx, actor.ID, business.ID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrBusinessAlreadyApproved))
}

func TestBusinessService_ApproveBusiness_RequiresStaffAdmin(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	actor := staffActor(entity.StaffLevelAdvanced)
	business := pendingBusiness()

	fx.onExecute(ctx, errors.Wrap(domainerrors.ErrForbidden, "actor may not approve businesses"), func(factory *mockRepo.MockRepositoryFactory) {
		expectActor(t, factory, ctx, actor)
		expectBusiness(t, factory, ctx, business)
	})

	_, err := fx.service.ApproveBusiness(ctx, actor.ID, business.ID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestBusinessService_SuspendBusiness_Success(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	actor := staffActor(entity.StaffLevelAdmin)
	business := approvedBusiness()

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		expectActor(t, factory, ctx, actor)

		businessRepo := expectBusiness(t, factory, ctx, business)
		businessRepo.EXPECT().
			Update(ctx, mock.MatchedBy(func(b *entity.Business) bool {
				return b.Status == entity.BusinessStatusSuspended
			})).
			Return(nil)
	})

	fx.publisher.EXPECT().
		PublishDomainEvent(ctx, mock.MatchedBy(func(event *service.DomainEvent) bool {
			return event.Name == service.EventBusinessSuspended
		})).
		Return(nil)

	suspended, err := fx.service.SuspendBusiness(ctx, actor.ID, business.ID)

	require.NoError(t, err)
	assert.True(t, suspended.IsSuspended())
}

func TestBusinessService_SuspendBusiness_RequiresActive(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	actor := staffActor(entity.StaffLevelAdmin)
	business := pendingBusiness()

	fx.onExecute(ctx, errors.Wrap(domainerrors.ErrBusinessNotApproved, "only active businesses can be suspended"), func(factory *mockRepo.MockRepositoryFactory) {
		expectActor(t, factory, ctx, actor)
		expectBusiness(t, factory, ctx, business)
	})

	_, err := fx.service.SuspendBusiness(ctx, actor.ID, business.ID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrBusinessNotApproved))
}

func TestBusinessService_AssignPlan_Success(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	actor := staffActor(entity.StaffLevelAdmin)
	business := approvedBusiness()
	plan := &entity.PlatformPlan{ID: uuid.New(), Name: "Pro", Slug: "pro", IsActive: true}

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		expectActor(t, factory, ctx, actor)

		businessRepo := expectBusiness(t, factory, ctx, business)

		planRepo := mockRepo.NewMockPlatformPlanRepository(t)
		factory.EXPECT().NewPlatformPlanRepository().Return(planRepo)
		planRepo.EXPECT().FindByID(ctx, plan.ID).Return(plan, nil)

		businessRepo.EXPECT().
			Update(ctx, mock.MatchedBy(func(b *entity.Business) bool {
				return b.PlatformPlanID != nil && *b.PlatformPlanID == plan.ID
			})).
			Return(nil)
	})

	fx.publisher.EXPECT().
		PublishDomainEvent(ctx, mock.MatchedBy(func(event *service.DomainEvent) bool {
			return event.Name == service.EventPlanAssigned &&
				event.Attributes["plan_name"] == "Pro" &&
				event.Attributes["plan_id"] == plan.ID.String()
		})).
		Return(nil)

	updated, err := fx.service.AssignPlan(ctx, actor.ID, business.ID, plan.ID)

	require.NoError(t, err)
	require.NotNil(t, updated.PlatformPlan)
	assert.Equal(t, "Pro", updated.PlatformPlan.Name)
}

func TestBusinessService_AssignPlan_InactivePlan(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	actor := staffActor(entity.StaffLevelAdmin)
	business := approvedBusiness()
	plan := &entity.PlatformPlan{ID: uuid.New(), Name: "Legacy", Slug: "legacy", IsActive: false}

	fx.onExecute(ctx, errors.Wrap(domainerrors.ErrValidationFailed, "cannot assign an inactive plan"), func(factory *mockRepo.MockRepositoryFactory) {
		expectActor(t, factory, ctx, actor)
		expectBusiness(t, factory, ctx, business)

		planRepo := mockRepo.NewMockPlatformPlanRepository(t)
		factory.EXPECT().NewPlatformPlanRepository().Return(planRepo)
		planRepo.EXPECT().FindByID(ctx, plan.ID).Return(plan, nil)
	})

	_, err := fx.service.AssignPlan(ctx, actor.ID, business.ID, plan.ID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestBusinessService_DeleteBusiness_CascadesMembers(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	actor := staffActor(entity.StaffLevelAdmin)
	business := approvedBusiness()
	memberID := uuid.New()

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := expectActor(t, factory, ctx, actor)

		businessRepo := expectBusiness(t, factory, ctx, business)

		profileRepo := mockRepo.NewMockBusinessUserProfileRepository(t)
		factory.EXPECT().NewBusinessUserProfileRepository().Return(profileRepo)
		profileRepo.EXPECT().ListByBusiness(ctx, business.ID).Return([]*entity.BusinessUserProfile{
			{ID: uuid.New(), UserID: memberID, BusinessID: business.ID},
		}, nil)

		tokenRepo := mockRepo.NewMockRefreshTokenRepository(t)
		factory.EXPECT().NewRefreshTokenRepository().Return(tokenRepo)
		tokenRepo.EXPECT().DeleteRefreshTokensByUserID(ctx, memberID).Return(nil)

		userRepo.EXPECT().Delete(ctx, memberID).Return(nil)

		profileRepo.EXPECT().DeleteByBusiness(ctx, business.ID).Return(nil)
		businessRepo.EXPECT().DetachAllCustomers(ctx, business.ID).Return(nil)

		addressRepo := mockRepo.NewMockAddressRepository(t)
		factory.EXPECT().NewAddressRepository().Return(addressRepo)
		addressRepo.EXPECT().DeleteAddressesByOwner(ctx, business.ID, entity.OwnerKindBusiness).Return(nil)

		businessRepo.EXPECT().Delete(ctx, business.ID).Return(nil)
	})

	fx.publisher.EXPECT().
		PublishDomainEvent(ctx, mock.MatchedBy(func(event *service.DomainEvent) bool {
			return event.Name == service.EventBusinessDeleted
		})).
		Return(nil)

	err := fx.service.DeleteBusiness(ctx, actor.ID, business.ID)

	require.NoError(t, err)
}

func TestBusinessService_GetBusinessStats_IncludesPlanLimits(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	business := approvedBusiness()
	business.PlatformPlan = &entity.PlatformPlan{
		ID:           uuid.New(),
		Name:         "Pro",
		MaxUsers:     intPtr(10),
		MaxCustomers: intPtr(500),
		IsActive:     true,
	}
	actor := businessActor(business.ID, entity.BusinessLevelAdmin)

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		expectActor(t, factory, ctx, actor)

		businessRepo := expectBusiness(t, factory, ctx, business)
		businessRepo.EXPECT().CountCustomers(ctx, business.ID).Return(int64(42), nil)

		profileRepo := mockRepo.NewMockBusinessUserProfileRepository(t)
		factory.EXPECT().NewBusinessUserProfileRepository().Return(profileRepo)
		profileRepo.EXPECT().CountByBusiness(ctx, business.ID).Return(int64(7), nil)
	})

	stats, err := fx.service.GetBusinessStats(ctx, actor.ID, business.ID)

	require.NoError(t, err)
	assert.Equal(t, int64(7), stats.UserCount)
	assert.Equal(t, int64(42), stats.CustomerCount)
	require.NotNil(t, stats.UserLimit)
	assert.Equal(t, 10, *stats.UserLimit)
	assert.Equal(t, "Pro", stats.PlanName)
}

func TestBusinessService_AttachCustomer_PlanLimitReached(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	business := approvedBusiness()
	actor := businessActor(business.ID, entity.BusinessLevelAdmin)
	customerProfileID := uuid.New()

	denial := domainerrors.NewPlanLimitError(domainerrors.PlanLimitCustomerLimitReached, 50, 50)

	fx.onExecute(ctx, denial, func(factory *mockRepo.MockRepositoryFactory) {
		expectActor(t, factory, ctx, actor)

		businessRepo := expectBusiness(t, factory, ctx, business)
		businessRepo.EXPECT().HasCustomer(ctx, business.ID, customerProfileID).Return(false, nil)

		customerRepo := mockRepo.NewMockCustomerProfileRepository(t)
		factory.EXPECT().NewCustomerProfileRepository().Return(customerRepo)
		customerRepo.EXPECT().FindByID(ctx, customerProfileID).Return(&entity.CustomerProfile{ID: customerProfileID}, nil)

		fx.planGate.EXPECT().
			CheckWithFactory(ctx, factory, business.ID, usecase.LimitKindCustomers).
			Return(&usecase.LimitDecision{
				Allowed:      false,
				Reason:       domainerrors.PlanLimitCustomerLimitReached,
				CurrentLimit: 50,
				CurrentCount: 50,
			}, nil)
	})

	err := fx.service.AttachCustomer(ctx, actor.ID, business.ID, customerProfileID)

	assert.Error(t, err)

	var limitErr *domainerrors.PlanLimitError
	require.True(t, errors.As(err, &limitErr))
	assert.Equal(t, domainerrors.PlanLimitCustomerLimitReached, limitErr.ErrorCode())
}

func TestBusinessService_AttachCustomer_AlreadyOnRoster(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	business := approvedBusiness()
	actor := businessActor(business.ID, entity.BusinessLevelAdmin)
	customerProfileID := uuid.New()

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		expectActor(t, factory, ctx, actor)

		businessRepo := expectBusiness(t, factory, ctx, business)
		businessRepo.EXPECT().HasCustomer(ctx, business.ID, customerProfileID).Return(true, nil)

		customerRepo := mockRepo.NewMockCustomerProfileRepository(t)
		factory.EXPECT().NewCustomerProfileRepository().Return(customerRepo)
		customerRepo.EXPECT().FindByID(ctx, customerProfileID).Return(&entity.CustomerProfile{ID: customerProfileID}, nil)
	})

	err := fx.service.AttachCustomer(ctx, actor.ID, business.ID, customerProfileID)

	require.NoError(t, err)
}

func TestBusinessService_DetachCustomer_NotOnRoster(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	business := approvedBusiness()
	actor := businessActor(business.ID, entity.BusinessLevelAdmin)
	customerProfileID := uuid.New()

	fx.onExecute(ctx, errors.Wrap(domainerrors.ErrCustomerNotOnRoster, "detach rejected"), func(factory *mockRepo.MockRepositoryFactory) {
		expectActor(t, factory, ctx, actor)

		businessRepo := expectBusiness(t, factory, ctx, business)
		businessRepo.EXPECT().HasCustomer(ctx, business.ID, customerProfileID).Return(false, nil)
	})

	err := fx.service.DetachCustomer(ctx, actor.ID, business.ID, customerProfileID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrCustomerNotOnRoster))
}

func TestBusinessService_GenerateRosterInvite_RequiresApproval(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	business := pendingBusiness()
	actor := businessActor(business.ID, entity.BusinessLevelAdmin)

	fx.onExecute(ctx, errors.Wrap(domainerrors.ErrBusinessNotApproved, "only approved businesses can invite"), func(factory *mockRepo.MockRepositoryFactory) {
		expectActor(t, factory, ctx, actor)
		expectBusiness(t, factory, ctx, business)
	})

	_, err := fx.service.GenerateRosterInvite(ctx, actor.ID, business.ID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrBusinessNotApproved))
}

func TestBusinessService_GenerateRosterInvite_Success(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	business := approvedBusiness()
	actor := businessActor(business.ID, entity.BusinessLevelAdmin)

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		expectActor(t, factory, ctx, actor)
		expectBusiness(t, factory, ctx, business)
	})

	fx.qrService.EXPECT().GenerateRosterInviteQR(business.ID).Return([]byte("png-bytes"), nil)

	qr, err := fx.service.GenerateRosterInvite(ctx, actor.ID, business.ID)

	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), qr)
}

func TestBusinessService_JoinRosterByInvite_Success(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	business := approvedBusiness()
	actor := customerActor()

	fx.qrService.EXPECT().ParseRosterInviteQR("invite-payload").Return(business.ID, nil)

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		expectActor(t, factory, ctx, actor)

		businessRepo := expectBusiness(t, factory, ctx, business)
		businessRepo.EXPECT().HasCustomer(ctx, business.ID, actor.CustomerProfile.ID).Return(false, nil)

		customerRepo := mockRepo.NewMockCustomerProfileRepository(t)
		factory.EXPECT().NewCustomerProfileRepository().Return(customerRepo)
		customerRepo.EXPECT().FindByID(ctx, actor.CustomerProfile.ID).Return(actor.CustomerProfile, nil)

		fx.planGate.EXPECT().
			CheckWithFactory(ctx, factory, business.ID, usecase.LimitKindCustomers).
			Return(&usecase.LimitDecision{Allowed: true, CurrentLimit: 50, CurrentCount: 3}, nil)

		businessRepo.EXPECT().AttachCustomer(ctx, business.ID, actor.CustomerProfile.ID).Return(nil)
	})

	err := fx.service.JoinRosterByInvite(ctx, actor.ID, "invite-payload")

	require.NoError(t, err)
}

func TestBusinessService_JoinRosterByInvite_InvalidPayload(t *testing.T) {
	fx := createTestBusinessService(t)

	fx.qrService.EXPECT().ParseRosterInviteQR("garbage").Return(uuid.Nil, errors.New("unrecognized payload"))

	err := fx.service.JoinRosterByInvite(context.Background(), uuid.New(), "garbage")

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestBusinessService_UpdateBusiness_BusinessAdminAllowed(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	business := approvedBusiness()
	actor := businessActor(business.ID, entity.BusinessLevelAdmin)
	newName := "Padaria Central Matriz"

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		expectActor(t, factory, ctx, actor)

		businessRepo := expectBusiness(t, factory, ctx, business)
		businessRepo.EXPECT().
			Update(ctx, mock.MatchedBy(func(b *entity.Business) bool {
				return b.Name == newName
			})).
			Return(nil)
	})

	updated, err := fx.service.UpdateBusiness(ctx, actor.ID, business.ID, &usecase.UpdateBusinessInput{Name: &newName})

	require.NoError(t, err)
	assert.Equal(t, newName, updated.Name)
}

func TestBusinessService_UpdateBusiness_ForeignBusinessAdminForbidden(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	business := approvedBusiness()
	actor := businessActor(uuid.New(), entity.BusinessLevelAdmin)
	newName := "Hijacked"

	fx.onExecute(ctx, errors.Wrap(domainerrors.ErrForbidden, "actor may not update this business"), func(factory *mockRepo.MockRepositoryFactory) {
		expectActor(t, factory, ctx, actor)
		expectBusiness(t, factory, ctx, business)
	})

	_, err := fx.service.UpdateBusiness(ctx, actor.ID, business.ID, &usecase.UpdateBusinessInput{Name: &newName})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}
