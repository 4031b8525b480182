// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "plaza/internal/delivery/context"
	"plaza/internal/domain/authz"
	"plaza/internal/domain/entity"
	domainerrors "plaza/internal/domain/errors"
	"plaza/internal/domain/repository"
	"plaza/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// planService implements the PlanUsecase interface.
type planService struct {
	txManager repository.TransactionManager
	policies  *authz.Policies
	logger    *slog.Logger
}

// PlanServiceParams holds dependencies for planService, injected by Fx.
type PlanServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Policies  *authz.Policies
	Logger    *slog.Logger
}

// NewPlanService is the constructor for planService.
func NewPlanService(params PlanServiceParams) usecase.PlanUsecase {
	return &planService{
		txManager: params.TxManager,
		policies:  params.Policies,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *planService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListPlans retrieves every subscription plan for a staff admin.
func (srv *planService) ListPlans(ctx context.Context, actorID uuid.UUID) ([]*entity.PlatformPlan, error) {
	var plans []*entity.PlatformPlan

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		actor, err := loadActor(ctx, repoFactory, actorID)
		if err != nil {
			return err
		}
		if !srv.policies.PlatformPlan.ViewAny(actor) {
			return errors.Wrap(domainerrors.ErrForbidden, "actor may not list plans")
		}

		plans, err = repoFactory.NewPlatformPlanRepository().List(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to list plans")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list plans")
	}

	return plans, nil
}

// GetPlan retrieves a single plan for a staff admin.
func (srv *planService) GetPlan(ctx context.Context, actorID, planID uuid.UUID) (*entity.PlatformPlan, error) {
	var plan *entity.PlatformPlan

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		actor, err := loadActor(ctx, repoFactory, actorID)
		if err != nil {
			return err
		}

		found, err := srv.findPlan(ctx, repoFactory, planID)
		if err != nil {
			return err
		}

		if !srv.policies.PlatformPlan.View(actor, found) {
			return errors.Wrap(domainerrors.ErrForbidden, "actor may not view this plan")
		}

		plan = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get plan")
	}

	return plan, nil
}

// CreatePlan creates a subscription plan. Slugs are unique across plans.
func (srv *planService) CreatePlan(ctx context.Context, actorID uuid.UUID, input *usecase.CreatePlanInput) (*entity.PlatformPlan, error) {
	if !isValidBillingCycle(input.BillingCycle) {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "invalid billing cycle")
	}

	var plan *entity.PlatformPlan

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		actor, err := loadActor(ctx, repoFactory, actorID)
		if err != nil {
			return err
		}
		if !srv.policies.PlatformPlan.Create(actor) {
			return errors.Wrap(domainerrors.ErrForbidden, "actor may not create plans")
		}

		planRepo := repoFactory.NewPlatformPlanRepository()

		if _, err := planRepo.FindBySlug(ctx, input.Slug); err == nil {
			return errors.Wrap(domainerrors.ErrPlanAlreadyExists, "slug already taken")
		} else if !errors.Is(err, repository.ErrPlanNotFound) {
			return errors.Wrap(err, "failed to check plan slug")
		}

		plan = &entity.PlatformPlan{
			ID:           uuid.New(),
			Name:         input.Name,
			Slug:         input.Slug,
			Description:  input.Description,
			Price:        input.Price,
			BillingCycle: input.BillingCycle,
			Features:     input.Features,
			MaxUsers:     input.MaxUsers,
			MaxCustomers: input.MaxCustomers,
			IsActive:     true,
			IsFeatured:   input.IsFeatured,
			SortOrder:    input.SortOrder,
		}

		if err := planRepo.Create(ctx, plan); err != nil {
			return errors.Wrap(err, "failed to create plan")
		}

		srv.log(ctx).Info("Created plan", slog.Any("planID", plan.ID), slog.String("slug", plan.Slug))

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute plan creation")
	}

	return plan, nil
}

// UpdatePlan modifies an existing plan.
func (srv *planService) UpdatePlan(ctx context.Context, actorID, planID uuid.UUID, input *usecase.UpdatePlanInput) (*entity.PlatformPlan, error) {
	if input.BillingCycle != nil && !isValidBillingCycle(*input.BillingCycle) {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "invalid billing cycle")
	}

	var updated *entity.PlatformPlan

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		actor, err := loadActor(ctx, repoFactory, actorID)
		if err != nil {
			return err
		}

		plan, err := srv.findPlan(ctx, repoFactory, planID)
		if err != nil {
			return err
		}

		if !srv.policies.PlatformPlan.Update(actor, plan) {
			return errors.Wrap(domainerrors.ErrForbidden, "actor may not update this plan")
		}

		applyPlanUpdate(plan, input)

		if err := repoFactory.NewPlatformPlanRepository().Update(ctx, plan); err != nil {
			return errors.Wrap(err, "failed to update plan")
		}

		updated = plan

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute plan update")
	}

	return updated, nil
}

// DeletePlan removes a plan. The assignment count is read inside the same
// transaction as the delete so a concurrent plan assignment cannot slip past
// the in-use check.
func (srv *planService) DeletePlan(ctx context.Context, actorID, planID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		actor, err := loadActor(ctx, repoFactory, actorID)
		if err != nil {
			return err
		}

		plan, err := srv.findPlan(ctx, repoFactory, planID)
		if err != nil {
			return err
		}

		assigned, err := repoFactory.NewBusinessRepository().CountByPlan(ctx, plan.ID)
		if err != nil {
			return errors.Wrap(err, "failed to count plan assignments")
		}

		if !srv.policies.PlatformPlan.Delete(actor, plan, assigned) {
			if assigned > 0 {
				return errors.Wrap(domainerrors.ErrPlanInUse, "plan still assigned to businesses")
			}

			return errors.Wrap(domainerrors.ErrForbidden, "actor may not delete this plan")
		}

		if err := repoFactory.NewPlatformPlanRepository().Delete(ctx, plan.ID); err != nil {
			return errors.Wrap(err, "failed to delete plan")
		}

		srv.log(ctx).Info("Deleted plan", slog.Any("planID", plan.ID), slog.Any("actorID", actor.ID))

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute plan deletion")
	}

	return nil
}

func (srv *planService) findPlan(ctx context.Context, factory repository.RepositoryFactory, id uuid.UUID) (*entity.PlatformPlan, error) {
	plan, err := factory.NewPlatformPlanRepository().FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPlanNotFound) {
			return nil, errors.Wrap(domainerrors.ErrPlanNotFound, "plan lookup")
		}

		return nil, errors.Wrap(err, "failed to find plan")
	}

	return plan, nil
}

func applyPlanUpdate(plan *entity.PlatformPlan, input *usecase.UpdatePlanInput) {
	if input.Name != nil {
		plan.Name = *input.Name
	}
	if input.Description != nil {
		plan.Description = *input.Description
	}
	if input.Price != nil {
		plan.Price = *input.Price
	}
	if input.BillingCycle != nil {
		plan.BillingCycle = *input.BillingCycle
	}
	if input.Features != nil {
		plan.Features = input.Features
	}
	if input.ClearMaxUsers {
		plan.MaxUsers = nil
	} else if input.MaxUsers != nil {
		plan.MaxUsers = input.MaxUsers
	}
	if input.ClearMaxCustomers {
		plan.MaxCustomers = nil
	} else if input.MaxCustomers != nil {
		plan.MaxCustomers = input.MaxCustomers
	}
	if input.IsActive != nil {
		plan.IsActive = *input.IsActive
	}
	if input.IsFeatured != nil {
		plan.IsFeatured = *input.IsFeatured
	}
	if input.SortOrder != nil {
		plan.SortOrder = *input.SortOrder
	}
}

func isValidBillingCycle(cycle string) bool {
	switch cycle {
	case entity.BillingCycleFree, entity.BillingCycleMonthly, entity.BillingCycleYearly, entity.BillingCycleLifetime:
		return true
	default:
		return false
	}
}
