// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"plaza/internal/domain/entity"
	"plaza/internal/errors"

	"github.com/google/uuid"
)

// ErrStaffProfileNotFound is returned when a staff profile is not found.
var ErrStaffProfileNotFound = errors.New("staff user profile not found")

// StaffUserProfileRepository defines the interface for platform staff profile persistence.
type StaffUserProfileRepository interface {
	// FindByID retrieves a staff profile by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.StaffUserProfile, error)

	// FindByUserID retrieves the staff profile belonging to a user.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.StaffUserProfile, error)

	// List retrieves every staff profile.
	List(ctx context.Context) ([]*entity.StaffUserProfile, error)

	// CountActiveAdmins returns the number of active admin-level staff profiles.
	CountActiveAdmins(ctx context.Context) (int64, error)

	// CountActiveAdminsForUpdate returns the number of active admin-level staff
	// profiles while holding row locks on them until the transaction ends. The
	// last-admin guard relies on this read being consistent with the guarded
	// delete or demotion, so it must only be called inside a transaction.
	CountActiveAdminsForUpdate(ctx context.Context) (int64, error)

	// Create persists a new staff profile.
	Create(ctx context.Context, profile *entity.StaffUserProfile) error

	// Update modifies an existing staff profile.
	Update(ctx context.Context, profile *entity.StaffUserProfile) error

	// Delete removes a staff profile by its ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
