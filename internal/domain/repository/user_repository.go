// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"plaza/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserFilter narrows down user listings.
type UserFilter struct {
	ProfileKind *entity.ProfileKind
	BusinessID  *uuid.UUID
	Email       string
	Name        string
	Limit       int
	Offset      int
}

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID, with the profile
	// matching their profile kind preloaded.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByIDWithMemberships retrieves a user with every business membership
	// preloaded, for ability and role derivation.
	FindByIDWithMemberships(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// List retrieves users matching the filter.
	List(ctx context.Context, filter UserFilter) ([]*entity.User, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing user entity in the storage.
	Update(ctx context.Context, user *entity.User) error

	// Delete removes a user by their ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
