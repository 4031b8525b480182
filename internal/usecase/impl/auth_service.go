// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "plaza/internal/delivery/context"
	"plaza/internal/domain/authz"
	"plaza/internal/domain/entity"
	domainerrors "plaza/internal/domain/errors"
	"plaza/internal/domain/repository"
	"plaza/internal/domain/service"
	"plaza/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
// Roles and abilities are derived from the user's profile state at token
// issue time, so a profile change takes effect at the next refresh.
type authService struct {
	txManager    repository.TransactionManager
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:    params.TxManager,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login verifies credentials and opens a new session. The failure for a
// missing account and for a wrong password is the same error, so the
// endpoint does not leak which emails exist.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	var output *usecase.LoginOutput

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		user, err := repoFactory.NewUserRepository().FindByEmail(ctx, input.Email)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrInvalidCredentials, "account lookup")
			}

			return errors.Wrap(err, "failed to find user")
		}

		if !srv.hasher.Check(input.Password, user.Password) {
			return errors.Wrap(domainerrors.ErrInvalidCredentials, "password mismatch")
		}

		if !user.Active {
			return errors.Wrap(domainerrors.ErrAccountDisabled, "login rejected")
		}

		user, err = repoFactory.NewUserRepository().FindByIDWithMemberships(ctx, user.ID)
		if err != nil {
			return errors.Wrap(err, "failed to load profiles")
		}

		output, err = srv.issueSession(ctx, repoFactory, user)

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute login")
	}

	srv.log(ctx).Info("User logged in", slog.Any("userID", output.User.ID))

	return output, nil
}

// Refresh rotates a session: the presented refresh token is revoked and a
// fresh pair is issued with roles and abilities re-derived from current
// profile state.
func (srv *authService) Refresh(ctx context.Context, refreshToken string) (*usecase.LoginOutput, error) {
	claims, err := srv.tokenService.ValidateToken(refreshToken)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, err.Error())
	}
	if claims.Type != "refresh" {
		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "not a refresh token")
	}

	var output *usecase.LoginOutput

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		tokenRepo := repoFactory.NewRefreshTokenRepository()

		stored, err := tokenRepo.FindRefreshTokenByHash(ctx, srv.tokenService.HashToken(refreshToken))
		if err != nil {
			if errors.Is(err, repository.ErrRefreshTokenNotFound) {
				return errors.Wrap(domainerrors.ErrRefreshTokenNotFound, "session lookup")
			}

			return errors.Wrap(err, "failed to find refresh token")
		}

		if !stored.IsUsable(time.Now()) {
			return errors.Wrap(domainerrors.ErrRefreshTokenExpired, "session no longer usable")
		}

		user, err := repoFactory.NewUserRepository().FindByIDWithMemberships(ctx, stored.UserID)
		if err != nil {
			return errors.Wrap(err, "failed to load user")
		}
		if !user.Active {
			return errors.Wrap(domainerrors.ErrAccountDisabled, "refresh rejected")
		}

		if err := tokenRepo.DeleteRefreshToken(ctx, stored.ID); err != nil {
			return errors.Wrap(err, "failed to revoke old session")
		}

		output, err = srv.issueSession(ctx, repoFactory, user)

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute token refresh")
	}

	return output, nil
}

// Logout revokes the single session identified by the refresh token.
// Revoking an unknown token is not an error.
func (srv *authService) Logout(ctx context.Context, refreshToken string) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		tokenRepo := repoFactory.NewRefreshTokenRepository()

		stored, err := tokenRepo.FindRefreshTokenByHash(ctx, srv.tokenService.HashToken(refreshToken))
		if err != nil {
			if errors.Is(err, repository.ErrRefreshTokenNotFound) {
				return nil
			}

			return errors.Wrap(err, "failed to find refresh token")
		}

		if err := tokenRepo.DeleteRefreshToken(ctx, stored.ID); err != nil {
			return errors.Wrap(err, "failed to revoke session")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute logout")
	}

	return nil
}

// LogoutAll revokes every session the user holds.
func (srv *authService) LogoutAll(ctx context.Context, userID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewRefreshTokenRepository().DeleteRefreshTokensByUserID(ctx, userID); err != nil {
			return errors.Wrap(err, "failed to revoke sessions")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute logout all")
	}

	srv.log(ctx).Info("Revoked all sessions", slog.Any("userID", userID))

	return nil
}

// issueSession derives roles and abilities, generates the token pair and
// stores the refresh token's hash.
func (srv *authService) issueSession(ctx context.Context, repoFactory repository.RepositoryFactory, user *entity.User) (*usecase.LoginOutput, error) {
	roles := authz.DeriveRoles(user).ToStrings()
	abilities := authz.DeriveAbilities(user)

	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(user.ID, roles, abilities)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	session := &entity.RefreshToken{
		ID:        uuid.New(),
		UserID:    user.ID,
		TokenHash: srv.tokenService.HashToken(refreshToken),
		ExpiresAt: time.Now().Add(srv.tokenService.GetRefreshTokenDuration()),
	}
	if err := repoFactory.NewRefreshTokenRepository().CreateRefreshToken(ctx, session); err != nil {
		return nil, errors.Wrap(err, "failed to store session")
	}

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
		Roles:        roles,
		Abilities:    abilities,
	}, nil
}
