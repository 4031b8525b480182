// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"plaza/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdateStaffProfileInput defines the mutable staff profile fields.
// Access level changes go through PromoteToAdmin / DemoteFromAdmin instead.
type UpdateStaffProfileInput struct {
	Status            *entity.ProfileStatus
	SystemPermissions []string
}

// StaffUsecase defines the interface for platform staff management.
// The delete and demote paths hold a locking read on the active admin count
// so the system can never be left without an active admin.
type StaffUsecase interface {
	// ListStaff retrieves every staff profile, for staff admins.
	ListStaff(ctx context.Context, actorID uuid.UUID) ([]*entity.StaffUserProfile, error)

	// GetStaffProfile retrieves a staff profile the actor may view.
	GetStaffProfile(ctx context.Context, actorID, profileID uuid.UUID) (*entity.StaffUserProfile, error)

	// UpdateStaffProfile modifies a staff profile the actor may update.
	UpdateStaffProfile(ctx context.Context, actorID, profileID uuid.UUID, input *UpdateStaffProfileInput) (*entity.StaffUserProfile, error)

	// DeleteStaffProfile removes a staff profile. Self-deletion is blocked,
	// and deleting the last active admin is blocked.
	DeleteStaffProfile(ctx context.Context, actorID, profileID uuid.UUID) error

	// PromoteToAdmin raises a staff profile to the admin level.
	PromoteToAdmin(ctx context.Context, actorID, profileID uuid.UUID) (*entity.StaffUserProfile, error)

	// DemoteFromAdmin lowers an admin profile to the advanced level.
	// Self-demotion is blocked, and demoting the last active admin is blocked.
	DemoteFromAdmin(ctx context.Context, actorID, profileID uuid.UUID) (*entity.StaffUserProfile, error)
}
