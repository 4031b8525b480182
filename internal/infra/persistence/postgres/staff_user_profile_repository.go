// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"plaza/internal/domain/entity"
	domainerrors "plaza/internal/domain/errors"
	"plaza/internal/domain/repository"
	"plaza/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// staffUserProfileRepository implements the domain.StaffUserProfileRepository interface using GORM.
type staffUserProfileRepository struct {
	db *gorm.DB
}

// NewStaffUserProfileRepository is the constructor for staffUserProfileRepository.
func NewStaffUserProfileRepository(db *gorm.DB) repository.StaffUserProfileRepository {
	return &staffUserProfileRepository{db: db}
}

// FindByID retrieves a staff profile by its unique ID.
func (repo *staffUserProfileRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.StaffUserProfile, error) {
	var profileM model.StaffUserProfileModel

	err := repo.db.WithContext(ctx).Where("id = ?", id).First(&profileM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStaffProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find staff profile by id")
	}

	return toStaffProfileDomain(&profileM), nil
}

// FindByUserID retrieves the staff profile belonging to a user.
func (repo *staffUserProfileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.StaffUserProfile, error) {
	var profileM model.StaffUserProfileModel

	err := repo.db.WithContext(ctx).Where("user_id = ?", userID).First(&profileM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStaffProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find staff profile by user id")
	}

	return toStaffProfileDomain(&profileM), nil
}

// List retrieves every staff profile.
func (repo *staffUserProfileRepository) List(ctx context.Context) ([]*entity.StaffUserProfile, error) {
	var profileMs []*model.StaffUserProfileModel

	err := repo.db.WithContext(ctx).Order("created_at, id").Find(&profileMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list staff profiles")
	}

	profiles := make([]*entity.StaffUserProfile, 0, len(profileMs))
	for _, profileM := range profileMs {
		profiles = append(profiles, toStaffProfileDomain(profileM))
	}

	return profiles, nil
}

// CountActiveAdmins returns the number of admin-level staff profiles whose
// account is still active.
func (repo *staffUserProfileRepository) CountActiveAdmins(ctx context.Context) (int64, error) {
	var count int64

	err := repo.db.WithContext(ctx).
		Model(&model.StaffUserProfileModel{}).
		Joins("JOIN users ON users.id = staff_user_profiles.user_id AND users.deleted_at IS NULL").
		Where("staff_user_profiles.access_level = ? AND users.is_active", string(entity.StaffLevelAdmin)).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count active admins")
	}

	return count, nil
}

// CountActiveAdminsForUpdate returns the number of active admin-level staff
// profiles while holding FOR UPDATE row locks on them until the transaction
// ends. The locked read keeps the count consistent with a delete or demotion
// executed in the same transaction.
func (repo *staffUserProfileRepository) CountActiveAdminsForUpdate(ctx context.Context) (int64, error) {
	var ids []uuid.UUID

	err := repo.db.WithContext(ctx).
		Model(&model.StaffUserProfileModel{}).
		Clauses(clause.Locking{Strength: "UPDATE", Table: clause.Table{Name: "staff_user_profiles"}}).
		Joins("JOIN users ON users.id = staff_user_profiles.user_id AND users.deleted_at IS NULL").
		Where("staff_user_profiles.access_level = ? AND users.is_active", string(entity.StaffLevelAdmin)).
		Pluck("staff_user_profiles.id", &ids).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count active admins with lock")
	}

	return int64(len(ids)), nil
}

// Create persists a new staff profile.
func (repo *staffUserProfileRepository) Create(ctx context.Context, profile *entity.StaffUserProfile) error {
	profileM := fromStaffProfileDomain(profile)

	if err := repo.db.WithContext(ctx).Create(profileM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("user already has a staff profile")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("invalid user reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create staff profile")
	}

	profile.ID = profileM.ID
	profile.CreatedAt = profileM.CreatedAt
	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

// Update modifies an existing staff profile.
func (repo *staffUserProfileRepository) Update(ctx context.Context, profile *entity.StaffUserProfile) error {
	profileM := fromStaffProfileDomain(profile)

	result := repo.db.WithContext(ctx).
		Model(&model.StaffUserProfileModel{}).
		Where("id = ?", profile.ID).
		Select("status", "access_level", "system_permissions").
		Updates(profileM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update staff profile")
	}
	if result.RowsAffected == 0 {
		return repository.ErrStaffProfileNotFound
	}

	return nil
}

// Delete removes a staff profile by its ID.
func (repo *staffUserProfileRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.StaffUserProfileModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete staff profile")
	}
	if result.RowsAffected == 0 {
		return repository.ErrStaffProfileNotFound
	}

	return nil
}

// toStaffProfileDomain maps the persistence model back to a pure domain entity.
func toStaffProfileDomain(data *model.StaffUserProfileModel) *entity.StaffUserProfile {
	return &entity.StaffUserProfile{
		ID:                data.ID,
		UserID:            data.UserID,
		Status:            entity.ProfileStatus(data.Status),
		AccessLevel:       entity.StaffAccessLevel(data.AccessLevel),
		SystemPermissions: data.SystemPermissions,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}

// fromStaffProfileDomain maps a pure domain entity to a GORM persistence model.
func fromStaffProfileDomain(data *entity.StaffUserProfile) *model.StaffUserProfileModel {
	return &model.StaffUserProfileModel{
		ID:                data.ID,
		UserID:            data.UserID,
		Status:            string(data.Status),
		AccessLevel:       string(data.AccessLevel),
		SystemPermissions: data.SystemPermissions,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}
