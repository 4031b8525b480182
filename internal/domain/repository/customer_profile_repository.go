// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"plaza/internal/domain/entity"
	"plaza/internal/errors"

	"github.com/google/uuid"
)

// ErrCustomerProfileNotFound is returned when a customer profile is not found.
var ErrCustomerProfileNotFound = errors.New("customer profile not found")

// CustomerProfileRepository defines the interface for customer profile persistence.
type CustomerProfileRepository interface {
	// FindByID retrieves a customer profile by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.CustomerProfile, error)

	// FindByIDWithBusinesses retrieves a customer profile with its roster
	// businesses preloaded, for ownership resolution.
	FindByIDWithBusinesses(ctx context.Context, id uuid.UUID) (*entity.CustomerProfile, error)

	// FindByUserID retrieves the customer profile belonging to a user.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.CustomerProfile, error)

	// FindByCPF retrieves a customer profile by its national ID.
	FindByCPF(ctx context.Context, cpf string) (*entity.CustomerProfile, error)

	// Create persists a new customer profile.
	Create(ctx context.Context, profile *entity.CustomerProfile) error

	// Update modifies an existing customer profile.
	Update(ctx context.Context, profile *entity.CustomerProfile) error

	// Delete removes a customer profile by its ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
