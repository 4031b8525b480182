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

// businessRepository implements the domain.BusinessRepository interface using GORM.
type businessRepository struct {
	db *gorm.DB
}

// NewBusinessRepository is the constructor for businessRepository.
func NewBusinessRepository(db *gorm.DB) repository.BusinessRepository {
	return &businessRepository{db: db}
}

// FindByID retrieves a business by its unique ID, with its plan preloaded.
func (repo *businessRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Business, error) {
	var businessM model.BusinessModel

	err := repo.db.WithContext(ctx).
		Preload("PlatformPlan").
		Where("id = ? AND deleted_at IS NULL", id).
		First(&businessM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBusinessNotFound
		}

		return nil, errors.Wrap(err, "failed to find business by id")
	}

	return toBusinessDomain(&businessM), nil
}

// FindBySlug retrieves a business by its slug.
func (repo *businessRepository) FindBySlug(ctx context.Context, slug string) (*entity.Business, error) {
	var businessM model.BusinessModel

	err := repo.db.WithContext(ctx).
		Preload("PlatformPlan").
		Where("slug = ? AND deleted_at IS NULL", slug).
		First(&businessM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBusinessNotFound
		}

		return nil, errors.Wrap(err, "failed to find business by slug")
	}

	return toBusinessDomain(&businessM), nil
}

// FindByCNPJ retrieves a business by its registration number.
func (repo *businessRepository) FindByCNPJ(ctx context.Context, cnpj string) (*entity.Business, error) {
	var businessM model.BusinessModel

	err := repo.db.WithContext(ctx).
		Preload("PlatformPlan").
		Where("cnpj = ? AND deleted_at IS NULL", cnpj).
		First(&businessM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBusinessNotFound
		}

		return nil, errors.Wrap(err, "failed to find business by cnpj")
	}

	return toBusinessDomain(&businessM), nil
}

// List retrieves businesses matching the filter.
func (repo *businessRepository) List(ctx context.Context, filter repository.BusinessFilter) ([]*entity.Business, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.BusinessModel{}).
		Preload("PlatformPlan").
		Where("deleted_at IS NULL")

	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}
	if filter.Name != "" {
		query = query.Where("name ILIKE ?", "%"+filter.Name+"%")
	}
	if filter.CNPJ != "" {
		query = query.Where("cnpj = ?", filter.CNPJ)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var businessMs []*model.BusinessModel
	if err := query.Order("created_at DESC, id").Find(&businessMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list businesses")
	}

	businesses := make([]*entity.Business, 0, len(businessMs))
	for _, businessM := range businessMs {
		businesses = append(businesses, toBusinessDomain(businessM))
	}

	return businesses, nil
}

// Create persists a new business.
func (repo *businessRepository) Create(ctx context.Context, business *entity.Business) error {
	businessM := fromBusinessDomain(business)

	if err := repo.db.WithContext(ctx).Create(businessM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrBusinessAlreadyExists.WrapMessage("slug or cnpj already registered")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required business information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create business")
	}

	business.ID = businessM.ID
	business.CreatedAt = businessM.CreatedAt
	business.UpdatedAt = businessM.UpdatedAt

	return nil
}

// Update modifies an existing business.
func (repo *businessRepository) Update(ctx context.Context, business *entity.Business) error {
	updates := map[string]any{
		"name":             business.Name,
		"email":            business.Email,
		"phone":            business.Phone,
		"description":      business.Description,
		"status":           string(business.Status),
		"approved_at":      business.ApprovedAt,
		"approved_by":      business.ApprovedBy,
		"platform_plan_id": business.PlatformPlanID,
	}

	result := repo.db.WithContext(ctx).
		Model(&model.BusinessModel{}).
		Where("id = ? AND deleted_at IS NULL", business.ID).
		Updates(updates)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrBusinessAlreadyExists.WrapMessage("slug or cnpj already registered")
		}
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrPlanNotFound.WrapMessage("invalid plan reference")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update business")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBusinessNotFound
	}

	return nil
}

// Delete soft-deletes a business by its ID.
func (repo *businessRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.BusinessModel{}).
		Where("id = ? AND deleted_at IS NULL", id).
		Update("deleted_at", gorm.Expr("NOW()"))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete business")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBusinessNotFound
	}

	return nil
}

// CountByPlan returns how many businesses are assigned to the given plan.
func (repo *businessRepository) CountByPlan(ctx context.Context, planID uuid.UUID) (int64, error) {
	var count int64

	err := repo.db.WithContext(ctx).
		Model(&model.BusinessModel{}).
		Where("platform_plan_id = ? AND deleted_at IS NULL", planID).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count businesses by plan")
	}

	return count, nil
}

// AttachCustomer adds a customer profile to the business roster.
// ON CONFLICT DO NOTHING makes a repeated attach a no-op.
func (repo *businessRepository) AttachCustomer(ctx context.Context, businessID, customerProfileID uuid.UUID) error {
	err := repo.db.WithContext(ctx).Exec(
		"INSERT INTO business_customers (business_id, customer_profile_id, created_at) VALUES (?, ?, NOW()) ON CONFLICT DO NOTHING",
		businessID, customerProfileID,
	).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrProfileNotFound.WrapMessage("invalid business or customer reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to attach customer")
	}

	return nil
}

// DetachCustomer removes a customer profile from the business roster.
func (repo *businessRepository) DetachCustomer(ctx context.Context, businessID, customerProfileID uuid.UUID) error {
	err := repo.db.WithContext(ctx).Exec(
		"DELETE FROM business_customers WHERE business_id = ? AND customer_profile_id = ?",
		businessID, customerProfileID,
	).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to detach customer")
	}

	return nil
}

// DetachAllCustomers clears the business roster. Used by cascade deletes.
func (repo *businessRepository) DetachAllCustomers(ctx context.Context, businessID uuid.UUID) error {
	err := repo.db.WithContext(ctx).Exec(
		"DELETE FROM business_customers WHERE business_id = ?",
		businessID,
	).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear roster")
	}

	return nil
}

// HasCustomer reports whether the customer profile is on the business roster.
func (repo *businessRepository) HasCustomer(ctx context.Context, businessID, customerProfileID uuid.UUID) (bool, error) {
	var count int64

	err := repo.db.WithContext(ctx).
		Table("business_customers").
		Where("business_id = ? AND customer_profile_id = ?", businessID, customerProfileID).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "failed to check roster")
	}

	return count > 0, nil
}

// ListCustomers retrieves the customer profiles on the business roster.
func (repo *businessRepository) ListCustomers(ctx context.Context, businessID uuid.UUID) ([]*entity.CustomerProfile, error) {
	var profileMs []*model.CustomerProfileModel

	err := repo.db.WithContext(ctx).
		Joins("JOIN business_customers bc ON bc.customer_profile_id = customer_profiles.id").
		Where("bc.business_id = ?", businessID).
		Order("bc.created_at, customer_profiles.id").
		Find(&profileMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list roster customers")
	}

	customers := make([]*entity.CustomerProfile, 0, len(profileMs))
	for _, profileM := range profileMs {
		customers = append(customers, toCustomerProfileDomain(profileM))
	}

	return customers, nil
}

// CountCustomers returns the live size of the business roster.
func (repo *businessRepository) CountCustomers(ctx context.Context, businessID uuid.UUID) (int64, error) {
	var count int64

	err := repo.db.WithContext(ctx).
		Table("business_customers").
		Where("business_id = ?", businessID).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count roster customers")
	}

	return count, nil
}

// toBusinessDomain maps the persistence model back to a pure domain entity.
func toBusinessDomain(data *model.BusinessModel) *entity.Business {
	business := &entity.Business{
		ID:             data.ID,
		Name:           data.Name,
		Slug:           data.Slug,
		CNPJ:           data.CNPJ,
		Email:          data.Email,
		Phone:          data.Phone,
		Description:    data.Description,
		Status:         entity.BusinessStatus(data.Status),
		ApprovedAt:     data.ApprovedAt,
		ApprovedBy:     data.ApprovedBy,
		PlatformPlanID: data.PlatformPlanID,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
		DeletedAt:      data.DeletedAt,
	}

	if data.PlatformPlan != nil {
		business.PlatformPlan = toPlatformPlanDomain(data.PlatformPlan)
	}
	for _, c := range data.Customers {
		business.Customers = append(business.Customers, toCustomerProfileDomain(c))
	}

	return business
}

// fromBusinessDomain maps a pure domain entity to a GORM persistence model.
func fromBusinessDomain(data *entity.Business) *model.BusinessModel {
	return &model.BusinessModel{
		ID:             data.ID,
		Name:           data.Name,
		Slug:           data.Slug,
		CNPJ:           data.CNPJ,
		Email:          data.Email,
		Phone:          data.Phone,
		Description:    data.Description,
		Status:         string(data.Status),
		ApprovedAt:     data.ApprovedAt,
		ApprovedBy:     data.ApprovedBy,
		PlatformPlanID: data.PlatformPlanID,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
		DeletedAt:      data.DeletedAt,
	}
}
