// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"plaza/internal/domain/entity"
	"plaza/internal/domain/repository"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterCustomerInput defines the data required to register a new customer account.
type RegisterCustomerInput struct {
	Name      string
	Email     string
	Password  string
	CPF       *string
	BirthDate *time.Time
}

// CreateBusinessUserInput defines the data required to add a staff account to a business.
// The creation is gated by the business's plan user limit.
type CreateBusinessUserInput struct {
	Name        string
	Email       string
	Password    string
	BusinessID  uuid.UUID
	AccessLevel entity.BusinessAccessLevel
	Permissions []string
}

// CreateStaffUserInput defines the data required to create a platform staff account.
type CreateStaffUserInput struct {
	Name              string
	Email             string
	Password          string
	AccessLevel       entity.StaffAccessLevel
	SystemPermissions []string
}

// UpdateUserInput defines the mutable account fields. Nil pointers leave the
// field untouched.
type UpdateUserInput struct {
	Name  *string
	Email *string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user's basic information.
type RegisterOutput struct {
	User *entity.User
}

// UserUsecase defines the interface for user account operations.
// Every method that acts on behalf of an authenticated user takes the actor's
// ID first and resolves it to a full profile before consulting the policies.
type UserUsecase interface {
	// RegisterCustomer creates a user with a customer profile in one transaction.
	// Registration is self-service and requires no actor.
	RegisterCustomer(ctx context.Context, input *RegisterCustomerInput) (*RegisterOutput, error)

	// CreateBusinessUser creates a user with a business membership. The
	// business's plan user limit is checked before the insert.
	CreateBusinessUser(ctx context.Context, actorID uuid.UUID, input *CreateBusinessUserInput) (*RegisterOutput, error)

	// CreateStaffUser creates a user with a platform staff profile.
	CreateStaffUser(ctx context.Context, actorID uuid.UUID, input *CreateStaffUserInput) (*RegisterOutput, error)

	// GetUser retrieves a user the actor is allowed to view.
	GetUser(ctx context.Context, actorID, targetID uuid.UUID) (*entity.User, error)

	// ListUsers retrieves users matching the filter, for actors allowed to list.
	ListUsers(ctx context.Context, actorID uuid.UUID, filter repository.UserFilter) ([]*entity.User, error)

	// UpdateUser modifies a user the actor is allowed to update.
	UpdateUser(ctx context.Context, actorID, targetID uuid.UUID, input *UpdateUserInput) (*entity.User, error)

	// DeactivateUser sets the target's profile inactive and revokes every
	// session of the target.
	DeactivateUser(ctx context.Context, actorID, targetID uuid.UUID) error

	// DeleteUser removes a user the actor is allowed to delete, revoking
	// sessions and detaching profiles in one transaction.
	DeleteUser(ctx context.Context, actorID, targetID uuid.UUID) error
}
