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

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a domain.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByID retrieves a single user by their unique ID, preloading the profile
// matching their profile kind.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel

	err := repo.db.WithContext(ctx).
		Preload("CustomerProfile").
		Preload("StaffProfile").
		Preload("BusinessMemberships").
		Where("id = ?", id).
		First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toUserDomain(&userM), nil
}

// FindByEmail retrieves a single user by their email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel

	err := repo.db.WithContext(ctx).
		Preload("CustomerProfile").
		Preload("StaffProfile").
		Preload("BusinessMemberships").
		Where("email = ?", email).
		First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

// FindByIDWithMemberships retrieves a user with every business membership and
// its business preloaded, for ability and role derivation.
func (repo *userRepository) FindByIDWithMemberships(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel

	err := repo.db.WithContext(ctx).
		Preload("CustomerProfile").
		Preload("StaffProfile").
		Preload("BusinessMemberships").
		Preload("BusinessMemberships.Business").
		Where("id = ?", id).
		First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user with memberships")
	}

	return toUserDomain(&userM), nil
}

// List retrieves users matching the filter.
func (repo *userRepository) List(ctx context.Context, filter repository.UserFilter) ([]*entity.User, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Preload("CustomerProfile").
		Preload("StaffProfile").
		Preload("BusinessMemberships")

	if filter.ProfileKind != nil {
		query = query.Where("profile_kind = ?", string(*filter.ProfileKind))
	}
	if filter.BusinessID != nil {
		query = query.Where(
			"id IN (SELECT user_id FROM business_user_profiles WHERE business_id = ?)",
			*filter.BusinessID,
		)
	}
	if filter.Email != "" {
		query = query.Where("email ILIKE ?", "%"+filter.Email+"%")
	}
	if filter.Name != "" {
		query = query.Where("name ILIKE ?", "%"+filter.Name+"%")
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var userMs []*model.UserModel
	if err := query.Order("created_at DESC, id").Find(&userMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	users := make([]*entity.User, 0, len(userMs))
	for _, userM := range userMs {
		users = append(users, toUserDomain(userM))
	}

	return users, nil
}

// Create persists a new user entity, including its associated profile, to the
// database. GORM's Create with associations inserts the users row and the
// profile row together.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("missing required user information")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("invalid foreign key reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	if user.CustomerProfile != nil && userM.CustomerProfile != nil {
		user.CustomerProfile.ID = userM.CustomerProfile.ID
		user.CustomerProfile.UserID = userM.CustomerProfile.UserID
	}
	if user.StaffProfile != nil && userM.StaffProfile != nil {
		user.StaffProfile.ID = userM.StaffProfile.ID
		user.StaffProfile.UserID = userM.StaffProfile.UserID
	}

	return nil
}

// Update modifies an existing user entity in the database. Associated
// profiles are updated through their own repositories, not here.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	updates := map[string]any{
		"email":        user.Email,
		"name":         user.Name,
		"password":     user.Password,
		"is_active":    user.Active,
		"profile_kind": string(user.ProfileKind),
	}

	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", user.ID).
		Updates(updates)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email already exists")
		}
		if isNotNullConstraintViolation(result.Error) {
			return domainerrors.ErrUserUpdateFailed.WrapMessage("missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// Delete soft-deletes a user by their ID.
func (repo *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ? AND deleted_at IS NULL", id).
		Update("deleted_at", gorm.Expr("NOW()"))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// toUserDomain maps the persistence model back to a pure domain entity.
func toUserDomain(data *model.UserModel) *entity.User {
	user := &entity.User{
		ID:          data.ID,
		Email:       data.Email,
		Name:        data.Name,
		Password:    data.Password,
		Active:      data.IsActive,
		ProfileKind: entity.ProfileKind(data.ProfileKind),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}

	if data.CustomerProfile != nil {
		user.CustomerProfile = toCustomerProfileDomain(data.CustomerProfile)
	}
	if data.StaffProfile != nil {
		user.StaffProfile = toStaffProfileDomain(data.StaffProfile)
	}
	for _, m := range data.BusinessMemberships {
		user.BusinessMemberships = append(user.BusinessMemberships, toBusinessUserProfileDomain(m))
	}

	// The primary business profile is the first membership, matching how a
	// business account is created with exactly one membership.
	if user.ProfileKind == entity.ProfileKindBusiness && len(user.BusinessMemberships) > 0 {
		user.BusinessProfile = user.BusinessMemberships[0]
	}

	return user
}

// fromUserDomain maps a pure domain entity to a GORM persistence model.
func fromUserDomain(data *entity.User) *model.UserModel {
	userM := &model.UserModel{
		ID:          data.ID,
		Email:       data.Email,
		Name:        data.Name,
		Password:    data.Password,
		IsActive:    data.Active,
		ProfileKind: string(data.ProfileKind),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}

	if data.CustomerProfile != nil {
		userM.CustomerProfile = fromCustomerProfileDomain(data.CustomerProfile)
	}
	if data.StaffProfile != nil {
		userM.StaffProfile = fromStaffProfileDomain(data.StaffProfile)
	}
	for _, m := range data.BusinessMemberships {
		userM.BusinessMemberships = append(userM.BusinessMemberships, fromBusinessUserProfileDomain(m))
	}
	if data.BusinessProfile != nil && len(userM.BusinessMemberships) == 0 {
		userM.BusinessMemberships = append(userM.BusinessMemberships, fromBusinessUserProfileDomain(data.BusinessProfile))
	}

	return userM
}
