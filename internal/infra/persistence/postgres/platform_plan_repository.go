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

// platformPlanRepository implements the domain.PlatformPlanRepository interface using GORM.
type platformPlanRepository struct {
	db *gorm.DB
}

// NewPlatformPlanRepository is the constructor for platformPlanRepository.
func NewPlatformPlanRepository(db *gorm.DB) repository.PlatformPlanRepository {
	return &platformPlanRepository{db: db}
}

// FindByID retrieves a plan by its unique ID.
func (repo *platformPlanRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.PlatformPlan, error) {
	var planM model.PlatformPlanModel

	err := repo.db.WithContext(ctx).Where("id = ?", id).First(&planM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPlanNotFound
		}

		return nil, errors.Wrap(err, "failed to find plan by id")
	}

	return toPlatformPlanDomain(&planM), nil
}

// FindBySlug retrieves a plan by its slug.
func (repo *platformPlanRepository) FindBySlug(ctx context.Context, slug string) (*entity.PlatformPlan, error) {
	var planM model.PlatformPlanModel

	err := repo.db.WithContext(ctx).Where("slug = ?", slug).First(&planM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPlanNotFound
		}

		return nil, errors.Wrap(err, "failed to find plan by slug")
	}

	return toPlatformPlanDomain(&planM), nil
}

// List retrieves every plan ordered by sort order then name.
func (repo *platformPlanRepository) List(ctx context.Context) ([]*entity.PlatformPlan, error) {
	var planMs []*model.PlatformPlanModel

	err := repo.db.WithContext(ctx).Order("sort_order, name").Find(&planMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list plans")
	}

	plans := make([]*entity.PlatformPlan, 0, len(planMs))
	for _, planM := range planMs {
		plans = append(plans, toPlatformPlanDomain(planM))
	}

	return plans, nil
}

// ListActive retrieves only currently offered plans.
func (repo *platformPlanRepository) ListActive(ctx context.Context) ([]*entity.PlatformPlan, error) {
	var planMs []*model.PlatformPlanModel

	err := repo.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("sort_order, name").
		Find(&planMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list active plans")
	}

	plans := make([]*entity.PlatformPlan, 0, len(planMs))
	for _, planM := range planMs {
		plans = append(plans, toPlatformPlanDomain(planM))
	}

	return plans, nil
}

// Create persists a new plan.
func (repo *platformPlanRepository) Create(ctx context.Context, plan *entity.PlatformPlan) error {
	planM := fromPlatformPlanDomain(plan)

	if err := repo.db.WithContext(ctx).Create(planM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrPlanAlreadyExists.WrapMessage("slug already taken")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required plan information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create plan")
	}

	plan.ID = planM.ID
	plan.CreatedAt = planM.CreatedAt
	plan.UpdatedAt = planM.UpdatedAt

	return nil
}

// Update modifies an existing plan. Every mutable column is written so that
// limit caps can be set back to NULL, meaning unlimited.
func (repo *platformPlanRepository) Update(ctx context.Context, plan *entity.PlatformPlan) error {
	planM := fromPlatformPlanDomain(plan)

	result := repo.db.WithContext(ctx).
		Model(&model.PlatformPlanModel{}).
		Where("id = ?", plan.ID).
		Select(
			"name", "description", "price", "billing_cycle", "features",
			"max_users", "max_customers", "is_active", "is_featured", "sort_order",
		).
		Updates(planM)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrPlanAlreadyExists.WrapMessage("slug already taken")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update plan")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPlanNotFound
	}

	return nil
}

// Delete removes a plan by its ID.
func (repo *platformPlanRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.PlatformPlanModel{})
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrPlanInUse.WrapMessage("businesses still reference this plan")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete plan")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPlanNotFound
	}

	return nil
}

// toPlatformPlanDomain maps the persistence model back to a pure domain entity.
func toPlatformPlanDomain(data *model.PlatformPlanModel) *entity.PlatformPlan {
	return &entity.PlatformPlan{
		ID:           data.ID,
		Name:         data.Name,
		Slug:         data.Slug,
		Description:  data.Description,
		Price:        data.Price,
		BillingCycle: data.BillingCycle,
		Features:     data.Features,
		MaxUsers:     data.MaxUsers,
		MaxCustomers: data.MaxCustomers,
		IsActive:     data.IsActive,
		IsFeatured:   data.IsFeatured,
		SortOrder:    data.SortOrder,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromPlatformPlanDomain maps a pure domain entity to a GORM persistence model.
func fromPlatformPlanDomain(data *entity.PlatformPlan) *model.PlatformPlanModel {
	return &model.PlatformPlanModel{
		ID:           data.ID,
		Name:         data.Name,
		Slug:         data.Slug,
		Description:  data.Description,
		Price:        data.Price,
		BillingCycle: data.BillingCycle,
		Features:     data.Features,
		MaxUsers:     data.MaxUsers,
		MaxCustomers: data.MaxCustomers,
		IsActive:     data.IsActive,
		IsFeatured:   data.IsFeatured,
		SortOrder:    data.SortOrder,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
