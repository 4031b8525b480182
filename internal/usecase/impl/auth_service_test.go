package impl

import (
	"context"
	"testing"
	"time"

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

type authServiceFixtures struct {
	txFixture
	service      usecase.AuthUsecase
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	f := newTxFixture(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	service := NewAuthService(AuthServiceParams{
		TxManager:    f.txManager,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       testLogger(),
	})

	return authServiceFixtures{txFixture: f, service: service, hasher: hasher, tokenService: tokenService}
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := customerActor()
	user.Password = "stored-hash"

	fx.hasher.EXPECT().Check("secret", "stored-hash").Return(true)
	fx.tokenService.EXPECT().
		GenerateTokens(user.ID, mock.AnythingOfType("[]string"), mock.AnythingOfType("[]string")).
		Return("access-token", "refresh-token", nil)
	fx.tokenService.EXPECT().HashToken("refresh-token").Return("refresh-hash")
	fx.tokenService.EXPECT().GetRefreshTokenDuration().Return(7 * 24 * time.Hour)

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		tokenRepo := mockRepo.NewMockRefreshTokenRepository(t)
		factory.EXPECT().NewUserRepository().Return(userRepo)
		factory.EXPECT().NewRefreshTokenRepository().Return(tokenRepo)
		userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
		userRepo.EXPECT().FindByIDWithMemberships(ctx, user.ID).Return(user, nil)
		tokenRepo.EXPECT().
			CreateRefreshToken(ctx, mock.MatchedBy(func(token *entity.RefreshToken) bool {
				return token.UserID == user.ID && token.TokenHash == "refresh-hash"
			})).
			Return(nil)
	})

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: user.Email, Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, "access-token", output.AccessToken)
	assert.Equal(t, "refresh-token", output.RefreshToken)
	assert.Contains(t, output.Roles, entity.RoleCustomer.String())
	assert.Contains(t, output.Abilities, "profile:read")
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := customerActor()
	user.Password = "stored-hash"

	fx.hasher.EXPECT().Check("wrong", "stored-hash").Return(false)

	fx.onExecute(ctx, errors.Wrap(domainerrors.ErrInvalidCredentials, "password mismatch"), func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().NewUserRepository().Return(userRepo)
		userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	})

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: user.Email, Password: "wrong"})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_Login_UnknownEmailSameError(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.onExecute(ctx, errors.Wrap(domainerrors.ErrInvalidCredentials, "account lookup"), func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().NewUserRepository().Return(userRepo)
		userRepo.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, repository.ErrUserNotFound)
	})

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ghost@example.com", Password: "whatever"})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_Login_DeactivatedAccount(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := customerActor()
	user.Password = "stored-hash"
	user.Active = false

	fx.hasher.EXPECT().Check("secret", "stored-hash").Return(true)

	fx.onExecute(ctx, errors.Wrap(domainerrors.ErrAccountDisabled, "login rejected"), func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().NewUserRepository().Return(userRepo)
		userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	})

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: user.Email, Password: "secret"})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrAccountDisabled))
}

func TestAuthService_Refresh_RotatesSession(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := customerActor()
	stored := &entity.RefreshToken{
		ID:        uuid.New(),
		UserID:    user.ID,
		TokenHash: "old-hash",
		ExpiresAt: time.Now().Add(time.Hour),
	}

	fx.tokenService.EXPECT().
		ValidateToken("old-refresh").
		Return(&service.Claims{UserID: user.ID, Type: "refresh"}, nil)
	fx.tokenService.EXPECT().HashToken("old-refresh").Return("old-hash")
	fx.tokenService.EXPECT().
		GenerateTokens(user.ID, mock.AnythingOfType("[]string"), mock.AnythingOfType("[]string")).
		Return("new-access", "new-refresh", nil)
	fx.tokenService.EXPECT().HashToken("new-refresh").Return("new-hash")
	fx.tokenService.EXPECT().GetRefreshTokenDuration().Return(7 * 24 * time.Hour)

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		tokenRepo := mockRepo.NewMockRefreshTokenRepository(t)
		factory.EXPECT().NewUserRepository().Return(userRepo)
		factory.EXPECT().NewRefreshTokenRepository().Return(tokenRepo)
		tokenRepo.EXPECT().FindRefreshTokenByHash(ctx, "old-hash").Return(stored, nil)
		userRepo.EXPECT().FindByIDWithMemberships(ctx, user.ID).Return(user, nil)
		tokenRepo.EXPECT().DeleteRefreshToken(ctx, stored.ID).Return(nil)
		tokenRepo.EXPECT().
			CreateRefreshToken(ctx, mock.MatchedBy(func(token *entity.RefreshToken) bool {
				return token.TokenHash == "new-hash"
			})).
			Return(nil)
	})

	output, err := fx.service.Refresh(ctx, "old-refresh")

	require.NoError(t, err)
	assert.Equal(t, "new-access", output.AccessToken)
	assert.Equal(t, "new-refresh", output.RefreshToken)
}

func TestAuthService_Refresh_RejectsAccessToken(t *testing.T) {
	fx := createTestAuthService(t)

	fx.tokenService.EXPECT().
		ValidateToken("access-token").
		Return(&service.Claims{UserID: uuid.New(), Type: "access"}, nil)

	_, err := fx.service.Refresh(context.Background(), "access-token")

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenInvalid))
}

func TestAuthService_Refresh_ExpiredSession(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()
	stored := &entity.RefreshToken{
		ID:        uuid.New(),
		UserID:    userID,
		TokenHash: "old-hash",
		ExpiresAt: time.Now().Add(-time.Hour),
	}

	fx.tokenService.EXPECT().
		ValidateToken("old-refresh").
		Return(&service.Claims{UserID: userID, Type: "refresh"}, nil)
	fx.tokenService.EXPECT().HashToken("old-refresh").Return("old-hash")

	fx.onExecute(ctx, errors.Wrap(domainerrors.ErrRefreshTokenExpired, "session no longer usable"), func(factory *mockRepo.MockRepositoryFactory) {
		tokenRepo := mockRepo.NewMockRefreshTokenRepository(t)
		factory.EXPECT().NewRefreshTokenRepository().Return(tokenRepo)
		tokenRepo.EXPECT().FindRefreshTokenByHash(ctx, "old-hash").Return(stored, nil)
	})

	_, err := fx.service.Refresh(ctx, "old-refresh")

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenExpired))
}

func TestAuthService_Logout_UnknownTokenIsNoop(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.tokenService.EXPECT().HashToken("gone").Return("gone-hash")

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		tokenRepo := mockRepo.NewMockRefreshTokenRepository(t)
		factory.EXPECT().NewRefreshTokenRepository().Return(tokenRepo)
		tokenRepo.EXPECT().FindRefreshTokenByHash(ctx, "gone-hash").Return(nil, repository.ErrRefreshTokenNotFound)
	})

	err := fx.service.Logout(ctx, "gone")

	require.NoError(t, err)
}

func TestAuthService_LogoutAll_RevokesEverySession(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		tokenRepo := mockRepo.NewMockRefreshTokenRepository(t)
		factory.EXPECT().NewRefreshTokenRepository().Return(tokenRepo)
		tokenRepo.EXPECT().DeleteRefreshTokensByUserID(ctx, userID).Return(nil)
	})

	err := fx.service.LogoutAll(ctx, userID)

	require.NoError(t, err)
}
