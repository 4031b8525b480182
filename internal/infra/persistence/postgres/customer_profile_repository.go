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

// customerProfileRepository implements the domain.CustomerProfileRepository interface using GORM.
type customerProfileRepository struct {
	db *gorm.DB
}

// NewCustomerProfileRepository is the constructor for customerProfileRepository.
func NewCustomerProfileRepository(db *gorm.DB) repository.CustomerProfileRepository {
	return &customerProfileRepository{db: db}
}

// FindByID retrieves a customer profile by its unique ID.
func (repo *customerProfileRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.CustomerProfile, error) {
	var profileM model.CustomerProfileModel

	err := repo.db.WithContext(ctx).Where("id = ?", id).First(&profileM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCustomerProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find customer profile by id")
	}

	return toCustomerProfileDomain(&profileM), nil
}

// FindByIDWithBusinesses retrieves a customer profile with its roster
// businesses preloaded, for ownership resolution.
func (repo *customerProfileRepository) FindByIDWithBusinesses(ctx context.Context, id uuid.UUID) (*entity.CustomerProfile, error) {
	var profileM model.CustomerProfileModel

	err := repo.db.WithContext(ctx).
		Preload("Businesses").
		Where("id = ?", id).
		First(&profileM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCustomerProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find customer profile with businesses")
	}

	return toCustomerProfileDomain(&profileM), nil
}

// FindByUserID retrieves the customer profile belonging to a user.
func (repo *customerProfileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.CustomerProfile, error) {
	var profileM model.CustomerProfileModel

	err := repo.db.WithContext(ctx).Where("user_id = ?", userID).First(&profileM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCustomerProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find customer profile by user id")
	}

	return toCustomerProfileDomain(&profileM), nil
}

// FindByCPF retrieves a customer profile by its national ID.
func (repo *customerProfileRepository) FindByCPF(ctx context.Context, cpf string) (*entity.CustomerProfile, error) {
	var profileM model.CustomerProfileModel

	err := repo.db.WithContext(ctx).Where("cpf = ?", cpf).First(&profileM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCustomerProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find customer profile by cpf")
	}

	return toCustomerProfileDomain(&profileM), nil
}

// Create persists a new customer profile.
func (repo *customerProfileRepository) Create(ctx context.Context, profile *entity.CustomerProfile) error {
	profileM := fromCustomerProfileDomain(profile)

	if err := repo.db.WithContext(ctx).Create(profileM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("cpf already registered")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("invalid user reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create customer profile")
	}

	profile.ID = profileM.ID
	profile.CreatedAt = profileM.CreatedAt
	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

// Update modifies an existing customer profile.
func (repo *customerProfileRepository) Update(ctx context.Context, profile *entity.CustomerProfile) error {
	updates := map[string]any{
		"cpf":          profile.CPF,
		"birth_date":   profile.BirthDate,
		"status":       string(profile.Status),
		"access_level": string(profile.AccessLevel),
	}

	result := repo.db.WithContext(ctx).
		Model(&model.CustomerProfileModel{}).
		Where("id = ?", profile.ID).
		Updates(updates)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("cpf already registered")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update customer profile")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCustomerProfileNotFound
	}

	return nil
}

// Delete removes a customer profile by its ID. Roster rows referencing the
// profile are removed by the database's cascading foreign key.
func (repo *customerProfileRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.CustomerProfileModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete customer profile")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCustomerProfileNotFound
	}

	return nil
}

// toCustomerProfileDomain maps the persistence model back to a pure domain entity.
func toCustomerProfileDomain(data *model.CustomerProfileModel) *entity.CustomerProfile {
	profile := &entity.CustomerProfile{
		ID:          data.ID,
		UserID:      data.UserID,
		CPF:         data.CPF,
		BirthDate:   data.BirthDate,
		Status:      entity.ProfileStatus(data.Status),
		AccessLevel: entity.CustomerAccessLevel(data.AccessLevel),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}

	for _, b := range data.Businesses {
		profile.Businesses = append(profile.Businesses, toBusinessDomain(b))
	}

	return profile
}

// fromCustomerProfileDomain maps a pure domain entity to a GORM persistence model.
func fromCustomerProfileDomain(data *entity.CustomerProfile) *model.CustomerProfileModel {
	return &model.CustomerProfileModel{
		ID:          data.ID,
		UserID:      data.UserID,
		CPF:         data.CPF,
		BirthDate:   data.BirthDate,
		Status:      string(data.Status),
		AccessLevel: string(data.AccessLevel),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
