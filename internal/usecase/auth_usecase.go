// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"plaza/internal/domain/entity"

	"github.com/google/uuid"
)

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// LoginOutput returns the generated tokens after a successful login.
// Roles and abilities are derived from the user's profile state at issue time.
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
	Roles        []string
	Abilities    []string
}

// AuthUsecase defines the interface for session management operations.
type AuthUsecase interface {
	// Login verifies credentials and issues an access and refresh token pair
	// carrying the user's derived roles and abilities.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// Refresh exchanges a valid refresh token for a fresh token pair,
	// re-deriving roles and abilities from current profile state.
	Refresh(ctx context.Context, refreshToken string) (*LoginOutput, error)

	// Logout revokes the session identified by the refresh token.
	Logout(ctx context.Context, refreshToken string) error

	// LogoutAll revokes every session of the user.
	LogoutAll(ctx context.Context, userID uuid.UUID) error
}
