package impl

import (
	"context"
	"testing"

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

type userServiceFixtures struct {
	txFixture
	service   usecase.UserUsecase
	hasher    *mockSvc.MockPasswordHasher
	planGate  *mockUsecase.MockPlanLimitGate
	publisher *mockSvc.MockEventPublisher
}

func createTestUserService(t *testing.T) userServiceFixtures {
	f := newTxFixture(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	planGate := mockUsecase.NewMockPlanLimitGate(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	service := NewUserService(UserServiceParams{
		TxManager:      f.txManager,
		Policies:       authz.NewPolicies(),
		Hasher:         hasher,
		PlanGate:       planGate,
		EventPublisher: publisher,
		Logger:         testLogger(),
	})

	return userServiceFixtures{txFixture: f, service: service, hasher: hasher, planGate: planGate, publisher: publisher}
}

func TestUserService_RegisterCustomer_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	cpf := "52998224725"
	input := &usecase.RegisterCustomerInput{
		Name:     "Maria Silva",
		Email:    "maria@example.com",
		Password: "secret",
		CPF:      &cpf,
	}

	fx.hasher.EXPECT().Hash("secret").Return("hashed", nil)

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		customerRepo := mockRepo.NewMockCustomerProfileRepository(t)
		factory.EXPECT().NewUserRepository().Return(userRepo)
		factory.EXPECT().NewCustomerProfileRepository().Return(customerRepo)
		userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrUserNotFound)
		customerRepo.EXPECT().FindByCPF(ctx, cpf).Return(nil, repository.ErrCustomerProfileNotFound)
		userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(nil)
		customerRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.CustomerProfile")).Return(nil)
	})

	output, err := fx.service.RegisterCustomer(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "hashed", output.User.Password)
	assert.Equal(t, entity.ProfileKindCustomer, output.User.ProfileKind)
	require.NotNil(t, output.User.CustomerProfile)
	assert.Equal(t, output.User.ID, output.User.CustomerProfile.UserID)
	assert.Equal(t, entity.ProfileStatusActive, output.User.CustomerProfile.Status)
}

func TestUserService_RegisterCustomer_DuplicateEmail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterCustomerInput{
		Name:     "Maria Silva",
		Email:    "maria@example.com",
		Password: "secret",
	}

	fx.hasher.EXPECT().Hash("secret").Return("hashed", nil)

	fx.onExecute(ctx, errors.Wrap(domainerrors.ErrUserAlreadyExists, "email already registered"), func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().NewUserRepository().Return(userRepo)
		userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(&entity.User{ID: uuid.New()}, nil)
	})

	_, err := fx.service.RegisterCustomer(ctx, input)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestUserService_CreateBusinessUser_PlanLimitReached(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	businessID := uuid.New()
	actor := businessActor(businessID, entity.BusinessLevelAdmin)
	input := &usecase.CreateBusinessUserInput{
		Name:        "Novo Membro",
		Email:       "membro@example.com",
		Password:    "secret",
		BusinessID:  businessID,
		AccessLevel: entity.BusinessLevelUser,
	}

	fx.hasher.EXPECT().Hash("secret").Return("hashed", nil)

	fx.onExecute(ctx, domainerrors.NewPlanLimitError(domainerrors.PlanLimitUserLimitReached, 5, 5), func(factory *mockRepo.MockRepositoryFactory) {
		expectActor(t, factory, ctx, actor)
		fx.planGate.EXPECT().
			CheckWithFactory(ctx, factory, businessID, usecase.LimitKindUsers).
			Return(&usecase.LimitDecision{
				Allowed:      false,
				Reason:       domainerrors.PlanLimitUserLimitReached,
				CurrentLimit: 5,
				CurrentCount: 5,
			}, nil)
	})

	_, err := fx.service.CreateBusinessUser(ctx, actor.ID, input)

	assert.Error(t, err)
	var limitErr *domainerrors.PlanLimitError
	require.True(t, errors.As(err, &limitErr))
	assert.Equal(t, domainerrors.PlanLimitUserLimitReached, limitErr.ErrorCode())
	assert.Equal(t, 5, limitErr.CurrentLimit())
}

func TestUserService_CreateBusinessUser_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	businessID := uuid.New()
	actor := businessActor(businessID, entity.BusinessLevelAdmin)
	input := &usecase.CreateBusinessUserInput{
		Name:        "Novo Membro",
		Email:       "membro@example.com",
		Password:    "secret",
		BusinessID:  businessID,
		AccessLevel: entity.BusinessLevelUser,
	}

	fx.hasher.EXPECT().Hash("secret").Return("hashed", nil)

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := expectActor(t, factory, ctx, actor)
		memberRepo := mockRepo.NewMockBusinessUserProfileRepository(t)
		factory.EXPECT().NewBusinessUserProfileRepository().Return(memberRepo)
		fx.planGate.EXPECT().
			CheckWithFactory(ctx, factory, businessID, usecase.LimitKindUsers).
			Return(&usecase.LimitDecision{Allowed: true}, nil)
		userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrUserNotFound)
		userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(nil)
		memberRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.BusinessUserProfile")).Return(nil)
	})

	output, err := fx.service.CreateBusinessUser(ctx, actor.ID, input)

	require.NoError(t, err)
	assert.Equal(t, entity.ProfileKindBusiness, output.User.ProfileKind)
	require.NotNil(t, output.User.BusinessProfile)
	assert.Equal(t, businessID, output.User.BusinessProfile.BusinessID)
}

func TestUserService_CreateBusinessUser_ForeignBusiness(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	actor := businessActor(uuid.New(), entity.BusinessLevelAdmin)
	input := &usecase.CreateBusinessUserInput{
		Name:        "Novo Membro",
		Email:       "membro@example.com",
		Password:    "secret",
		BusinessID:  uuid.New(),
		AccessLevel: entity.BusinessLevelUser,
	}

	fx.hasher.EXPECT().Hash("secret").Return("hashed", nil)

	fx.onExecute(ctx, errors.Wrap(domainerrors.ErrForbidden, "actor may not add members to this business"), func(factory *mockRepo.MockRepositoryFactory) {
		expectActor(t, factory, ctx, actor)
	})

	_, err := fx.service.CreateBusinessUser(ctx, actor.ID, input)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestUserService_CreateStaffUser_AdminRequiresAdmin(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	actor := staffActor(entity.StaffLevelAdvanced)
	input := &usecase.CreateStaffUserInput{
		Name:        "Nova Admin",
		Email:       "admin@example.com",
		Password:    "secret",
		AccessLevel: entity.StaffLevelAdmin,
	}

	fx.hasher.EXPECT().Hash("secret").Return("hashed", nil)

	fx.onExecute(ctx, errors.Wrap(domainerrors.ErrForbidden, "actor may not create admin staff"), func(factory *mockRepo.MockRepositoryFactory) {
		expectActor(t, factory, ctx, actor)
	})

	_, err := fx.service.CreateStaffUser(ctx, actor.ID, input)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestUserService_GetUser_SelfAllowed(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	actor := customerActor()

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().NewUserRepository().Return(userRepo)
		userRepo.EXPECT().FindByIDWithMemberships(ctx, actor.ID).Return(actor, nil)
	})

	user, err := fx.service.GetUser(ctx, actor.ID, actor.ID)

	require.NoError(t, err)
	assert.Equal(t, actor, user)
}

func TestUserService_GetUser_CustomerViewingStranger(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	actor := customerActor()
	target := customerActor()

	fx.onExecute(ctx, errors.Wrap(domainerrors.ErrForbidden, "actor may not view this user"), func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().NewUserRepository().Return(userRepo)
		userRepo.EXPECT().FindByIDWithMemberships(ctx, actor.ID).Return(actor, nil)
		userRepo.EXPECT().FindByIDWithMemberships(ctx, target.ID).Return(target, nil)
	})

	_, err := fx.service.GetUser(ctx, actor.ID, target.ID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestUserService_ListUsers_BusinessActorPinnedToOwnBusiness(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	businessID := uuid.New()
	actor := businessActor(businessID, entity.BusinessLevelManager)
	foreign := uuid.New()

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := expectActor(t, factory, ctx, actor)
		userRepo.EXPECT().
			List(ctx, mock.MatchedBy(func(filter repository.UserFilter) bool {
				return filter.BusinessID != nil && *filter.BusinessID == businessID
			})).
			Return([]*entity.User{}, nil)
	})

	_, err := fx.service.ListUsers(ctx, actor.ID, repository.UserFilter{BusinessID: &foreign})

	require.NoError(t, err)
}

func TestUserService_DeleteUser_Self(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	actor := staffActor(entity.StaffLevelAdmin)

	fx.onExecute(ctx, errors.Wrap(domainerrors.ErrSelfActionBlocked, "cannot delete own account"), func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().NewUserRepository().Return(userRepo)
		userRepo.EXPECT().FindByIDWithMemberships(ctx, actor.ID).Return(actor, nil)
	})

	err := fx.service.DeleteUser(ctx, actor.ID, actor.ID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrSelfActionBlocked))
}

func TestUserService_DeactivateUser_RevokesSessions(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	actor := staffActor(entity.StaffLevelAdmin)
	target := customerActor()

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := expectActor(t, factory, ctx, actor)
		userRepo.EXPECT().FindByIDWithMemberships(ctx, target.ID).Return(target, nil)
		userRepo.EXPECT().Update(ctx, target).Return(nil)

		tokenRepo := mockRepo.NewMockRefreshTokenRepository(t)
		factory.EXPECT().NewRefreshTokenRepository().Return(tokenRepo)
		tokenRepo.EXPECT().DeleteRefreshTokensByUserID(ctx, target.ID).Return(nil)
	})

	fx.publisher.EXPECT().
		PublishDomainEvent(ctx, mock.MatchedBy(func(event *service.DomainEvent) bool {
			return event.Name == service.EventUserDeactivated &&
				event.Attributes["target_user_id"] == target.ID.String()
		})).
		Return(nil)

	err := fx.service.DeactivateUser(ctx, actor.ID, target.ID)

	require.NoError(t, err)
	assert.False(t, target.Active)
}
