// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"plaza/internal/domain/entity"
	"plaza/internal/errors"

	"github.com/google/uuid"
)

// ErrBusinessUserProfileNotFound is returned when a business membership is not found.
var ErrBusinessUserProfileNotFound = errors.New("business user profile not found")

// BusinessUserProfileRepository defines the interface for business staff membership persistence.
type BusinessUserProfileRepository interface {
	// FindByID retrieves a membership by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.BusinessUserProfile, error)

	// FindByUserAndBusiness retrieves the membership linking a user to a business.
	FindByUserAndBusiness(ctx context.Context, userID, businessID uuid.UUID) (*entity.BusinessUserProfile, error)

	// ListByBusiness retrieves every membership of a business.
	ListByBusiness(ctx context.Context, businessID uuid.UUID) ([]*entity.BusinessUserProfile, error)

	// ListByUser retrieves every membership a user holds.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.BusinessUserProfile, error)

	// CountByBusiness returns the live count of memberships in a business,
	// used by the plan limit gate.
	CountByBusiness(ctx context.Context, businessID uuid.UUID) (int64, error)

	// Create persists a new membership.
	Create(ctx context.Context, profile *entity.BusinessUserProfile) error

	// Update modifies an existing membership.
	Update(ctx context.Context, profile *entity.BusinessUserProfile) error

	// Delete removes a membership by its ID.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteByBusiness removes every membership of a business. Used by cascade deletes.
	DeleteByBusiness(ctx context.Context, businessID uuid.UUID) error
}
