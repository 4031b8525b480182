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
)

// businessUserProfileRepository implements the domain.BusinessUserProfileRepository interface using GORM.
type businessUserProfileRepository struct {
	db *gorm.DB
}

// NewBusinessUserProfileRepository is the constructor for businessUserProfileRepository.
func NewBusinessUserProfileRepository(db *gorm.DB) repository.BusinessUserProfileRepository {
	return &businessUserProfileRepository{db: db}
}

// FindByID retrieves a membership by its unique ID.
func (repo *businessUserProfileRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.BusinessUserProfile, error) {
	var profileM model.BusinessUserProfileModel

	err := repo.db.WithContext(ctx).Where("id = ?", id).First(&profileM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBusinessUserProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find business membership by id")
	}

	return toBusinessUserProfileDomain(&profileM), nil
}

// FindByUserAndBusiness retrieves the membership linking a user to a business.
func (repo *businessUserProfileRepository) FindByUserAndBusiness(ctx context.Context, userID, businessID uuid.UUID) (*entity.BusinessUserProfile, error) {
	var profileM model.BusinessUserProfileModel

	err := repo.db.WithContext(ctx).
		Where("user_id = ? AND business_id = ?", userID, businessID).
		First(&profileM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBusinessUserProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find business membership")
	}

	return toBusinessUserProfileDomain(&profileM), nil
}

// ListByBusiness retrieves every membership of a business.
func (repo *businessUserProfileRepository) ListByBusiness(ctx context.Context, businessID uuid.UUID) ([]*entity.BusinessUserProfile, error) {
	var profileMs []*model.BusinessUserProfileModel

	err := repo.db.WithContext(ctx).
		Where("business_id = ?", businessID).
		Order("created_at, id").
		Find(&profileMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list memberships by business")
	}

	profiles := make([]*entity.BusinessUserProfile, 0, len(profileMs))
	for _, profileM := range profileMs {
		profiles = append(profiles, toBusinessUserProfileDomain(profileM))
	}

	return profiles, nil
}

// ListByUser retrieves every membership a user holds.
func (repo *businessUserProfileRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.BusinessUserProfile, error) {
	var profileMs []*model.BusinessUserProfileModel

	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at, id").
		Find(&profileMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list memberships by user")
	}

	profiles := make([]*entity.BusinessUserProfile, 0, len(profileMs))
	for _, profileM := range profileMs {
		profiles = append(profiles, toBusinessUserProfileDomain(profileM))
	}

	return profiles, nil
}

// CountByBusiness returns the live count of memberships in a business.
func (repo *businessUserProfileRepository) CountByBusiness(ctx context.Context, businessID uuid.UUID) (int64, error) {
	var count int64

	err := repo.db.WithContext(ctx).
		Model(&model.BusinessUserProfileModel{}).
		Where("business_id = ?", businessID).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count memberships")
	}

	return count, nil
}

// Create persists a new membership.
func (repo *businessUserProfileRepository) Create(ctx context.Context, profile *entity.BusinessUserProfile) error {
	profileM := fromBusinessUserProfileDomain(profile)

	if err := repo.db.WithContext(ctx).Create(profileM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("user already belongs to this business")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("invalid user or business reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create business membership")
	}

	profile.ID = profileM.ID
	profile.CreatedAt = profileM.CreatedAt
	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

// Update modifies an existing membership.
func (repo *businessUserProfileRepository) Update(ctx context.Context, profile *entity.BusinessUserProfile) error {
	profileM := fromBusinessUserProfileDomain(profile)

	// Select forces the serialized permissions column to be written even
	// when the slice is empty.
	result := repo.db.WithContext(ctx).
		Model(&model.BusinessUserProfileModel{}).
		Where("id = ?", profile.ID).
		Select("status", "access_level", "permissions").
		Updates(profileM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update business membership")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBusinessUserProfileNotFound
	}

	return nil
}

// Delete removes a membership by its ID.
func (repo *businessUserProfileRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.BusinessUserProfileModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete business membership")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBusinessUserProfileNotFound
	}

	return nil
}

// DeleteByBusiness removes every membership of a business. Used by cascade deletes.
func (repo *businessUserProfileRepository) DeleteByBusiness(ctx context.Context, businessID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Where("business_id = ?", businessID).
		Delete(&model.BusinessUserProfileModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete business memberships")
	}

	return nil
}

// toBusinessUserProfileDomain maps the persistence model back to a pure domain entity.
func toBusinessUserProfileDomain(data *model.BusinessUserProfileModel) *entity.BusinessUserProfile {
	profile := &entity.BusinessUserProfile{
		ID:          data.ID,
		UserID:      data.UserID,
		BusinessID:  data.BusinessID,
		Status:      entity.ProfileStatus(data.Status),
		AccessLevel: entity.BusinessAccessLevel(data.AccessLevel),
		Permissions: data.Permissions,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}

	if data.Business != nil {
		profile.Business = toBusinessDomain(data.Business)
	}

	return profile
}

// fromBusinessUserProfileDomain maps a pure domain entity to a GORM persistence model.
func fromBusinessUserProfileDomain(data *entity.BusinessUserProfile) *model.BusinessUserProfileModel {
	return &model.BusinessUserProfileModel{
		ID:          data.ID,
		UserID:      data.UserID,
		BusinessID:  data.BusinessID,
		Status:      string(data.Status),
		AccessLevel: string(data.AccessLevel),
		Permissions: data.Permissions,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
