// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "plaza/internal/delivery/context"
	"plaza/internal/domain/authz"
	"plaza/internal/domain/entity"
	domainerrors "plaza/internal/domain/errors"
	"plaza/internal/domain/repository"
	"plaza/internal/domain/service"
	"plaza/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// businessService implements the BusinessUsecase interface.
// Lifecycle transitions publish domain events after the transaction commits;
// a failed publish is logged but never rolls the transition back.
type businessService struct {
	txManager      repository.TransactionManager
	policies       *authz.Policies
	planGate       usecase.PlanLimitGate
	eventPublisher service.EventPublisher
	qrService      service.QRCodeService
	logger         *slog.Logger
}

// BusinessServiceParams holds dependencies for businessService, injected by Fx.
type BusinessServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	Policies       *authz.Policies
	PlanGate       usecase.PlanLimitGate
	EventPublisher service.EventPublisher
	QRService      service.QRCodeService
	Logger         *slog.Logger
}

// NewBusinessService is the constructor for businessService.
func NewBusinessService(params BusinessServiceParams) usecase.BusinessUsecase {
	return &businessService{
		txManager:      params.TxManager,
		policies:       params.Policies,
		planGate:       params.PlanGate,
		eventPublisher: params.EventPublisher,
		qrService:      params.QRService,
		logger:         params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *businessService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateBusiness registers a new business in the pending state. Slug and
// CNPJ are unique across businesses.
func (srv *businessService) CreateBusiness(ctx context.Context, actorID uuid.UUID, input *usecase.CreateBusinessInput) (*entity.Business, error) {
	var business *entity.Business

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		actor, err := loadActor(ctx, repoFactory, actorID)
		if err != nil {
			return err
		}
		if !srv.policies.Business.Create(actor) {
			return errors.Wrap(domainerrors.ErrForbidden, "actor may not create businesses")
		}

		businessRepo := repoFactory.NewBusinessRepository()

		if _, err := businessRepo.FindBySlug(ctx, input.Slug); err == nil {
			return errors.Wrap(domainerrors.ErrBusinessAlreadyExists, "slug already taken")
		} else if !errors.Is(err, repository.ErrBusinessNotFound) {
			return errors.Wrap(err, "failed to check business slug")
		}
		if _, err := businessRepo.FindByCNPJ(ctx, input.CNPJ); err == nil {
			return errors.Wrap(domainerrors.ErrBusinessAlreadyExists, "cnpj already registered")
		} else if !errors.Is(err, repository.ErrBusinessNotFound) {
			return errors.Wrap(err, "failed to check business cnpj")
		}

		business = &entity.Business{
			ID:          uuid.New(),
			Name:        input.Name,
			Slug:        input.Slug,
			CNPJ:        input.CNPJ,
			Email:       input.Email,
			Phone:       input.Phone,
			Description: input.Description,
			Status:      entity.BusinessStatusPending,
		}
		if err := businessRepo.Create(ctx, business); err != nil {
			return errors.Wrap(err, "failed to create business")
		}

		srv.log(ctx).Info("Created business", slog.Any("businessID", business.ID), slog.String("slug", business.Slug))

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute business creation")
	}

	srv.publishEvent(ctx, service.EventBusinessPending, business.ID, actorID, map[string]string{
		"business_name": business.Name,
	})

	return business, nil
}

// GetBusiness retrieves a business the actor may view.
func (srv *businessService) GetBusiness(ctx context.Context, actorID, businessID uuid.UUID) (*entity.Business, error) {
	var business *entity.Business

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		actor, err := loadActor(ctx, repoFactory, actorID)
		if err != nil {
			return err
		}

		found, err := srv.findBusiness(ctx, repoFactory, businessID)
		if err != nil {
			return err
		}

		if !srv.policies.Business.View(actor, found) {
			return errors.Wrap(domainerrors.ErrForbidden, "actor may not view this business")
		}

		business = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get business")
	}

	return business, nil
}

// ListBusinesses retrieves businesses matching the filter.
func (srv *businessService) ListBusinesses(ctx context.Context, actorID uuid.UUID, filter repository.BusinessFilter) ([]*entity.Business, error) {
	var businesses []*entity.Business

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		actor, err := loadActor(ctx, repoFactory, actorID)
		if err != nil {
			return err
		}
		if !srv.policies.Business.ViewAny(actor) {
			return errors.Wrap(domainerrors.ErrForbidden, "actor may not list businesses")
		}

		businesses, err = repoFactory.NewBusinessRepository().List(ctx, filter)
		if err != nil {
			return errors.Wrap(err, "failed to list businesses")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list businesses")
	}

	return businesses, nil
}

// UpdateBusiness modifies a business the actor may update.
func (srv *businessService) UpdateBusiness(ctx context.Context, actorID, businessID uuid.UUID, input *usecase.UpdateBusinessInput) (*entity.Business, error) {
	var updated *entity.Business

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		actor, err := loadActor(ctx, repoFactory, actorID)
		if err != nil {
			return err
		}

		business, err := srv.findBusiness(ctx, repoFactory, businessID)
		if err != nil {
			return err
		}

		if !srv.policies.Business.Update(actor, business) {
			return errors.Wrap(domainerrors.ErrForbidden, "actor may not update this business")
		}

		if input.Name != nil {
			business.Name = *input.Name
		}
		if input.Email != nil {
			business.Email = *input.Email
		}
		if input.Phone != nil {
			business.Phone = *input.Phone
		}
		if input.Description != nil {
			business.Description = *input.Description
		}

		if err := repoFactory.NewBusinessRepository().Update(ctx, business); err != nil {
			return errors.Wrap(err, "failed to update business")
		}

		updated = business

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute business update")
	}

	return updated, nil
}

// ApproveBusiness marks a pending business approved and active and records
// the approving staff member. Consumers of the published event notify the
// business's admins.
func (srv *businessService) ApproveBusiness(ctx context.Context, actorID, businessID uuid.UUID) (*entity.Business, error) {
	var business *entity.Business

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		actor, err := loadActor(ctx, repoFactory, actorID)
		if err != nil {
			return err
		}

		found, err := srv.findBusiness(ctx, repoFactory, businessID)
		if err != nil {
			return err
		}

		if !srv.policies.Business.Approve(actor, found) {
			return errors.Wrap(domainerrors.ErrForbidden, "actor may not approve businesses")
		}
		if found.IsApproved() {
			return errors.Wrap(domainerrors.ErrBusinessAlreadyApproved, "business already approved")
		}

		now := time.Now()
		found.Status = entity.BusinessStatusActive
		found.ApprovedAt = &now
		found.ApprovedBy = &actor.ID

		if err := repoFactory.NewBusinessRepository().Update(ctx, found); err != nil {
			return errors.Wrap(err, "failed to approve business")
		}

		business = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute business approval")
	}

	srv.publishEvent(ctx, service.EventBusinessApproved, business.ID, actorID, map[string]string{
		"business_name": business.Name,
	})

	srv.log(ctx).Info("Approved business", slog.Any("businessID", business.ID), slog.Any("actorID", actorID))

	return business, nil
}

// SuspendBusiness suspends an active business.
func (srv *businessService) SuspendBusiness(ctx context.Context, actorID, businessID uuid.UUID) (*entity.Business, error) {
	var business *entity.Business

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		actor, err := loadActor(ctx, repoFactory, actorID)
		if err != nil {
			return err
		}

		found, err := srv.findBusiness(ctx, repoFactory, businessID)
		if err != nil {
			return err
		}

		if !srv.policies.Business.Approve(actor, found) {
			return errors.Wrap(domainerrors.ErrForbidden, "actor may not suspend businesses")
		}
		if !found.IsActive() {
			return errors.Wrap(domainerrors.ErrBusinessNotApproved, "only active businesses can be suspended")
		}

		found.Status = entity.BusinessStatusSuspended

		if err := repoFactory.NewBusinessRepository().Update(ctx, found); err != nil {
			return errors.Wrap(err, "failed to suspend business")
		}

		business = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute business suspension")
	}

	srv.publishEvent(ctx, service.EventBusinessSuspended, business.ID, actorID, nil)

	srv.log(ctx).Info("Suspended business", slog.Any("businessID", business.ID), slog.Any("actorID", actorID))

	return business, nil
}

// AssignPlan attaches a platform plan to the business.
func (srv *businessService) AssignPlan(ctx context.Context, actorID, businessID, planID uuid.UUID) (*entity.Business, error) {
	var business *entity.Business
	var planName string

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		actor, err := loadActor(ctx, repoFactory, actorID)
		if err != nil {
			return err
		}

		found, err := srv.findBusiness(ctx, repoFactory, businessID)
		if err != nil {
			return err
		}

		if !srv.policies.Business.ManagePlans(actor, found) {
			return errors.Wrap(domainerrors.ErrForbidden, "actor may not assign plans")
		}

		plan, err := repoFactory.NewPlatformPlanRepository().FindByID(ctx, planID)
		if err != nil {
			if errors.Is(err, repository.ErrPlanNotFound) {
				return errors.Wrap(domainerrors.ErrPlanNotFound, "plan lookup")
			}

			return errors.Wrap(err, "failed to find plan")
		}
		if !plan.IsActive {
			return errors.Wrap(domainerrors.ErrValidationFailed, "cannot assign an inactive plan")
		}

		found.PlatformPlanID = &plan.ID
		found.PlatformPlan = plan

		if err := repoFactory.NewBusinessRepository().Update(ctx, found); err != nil {
			return errors.Wrap(err, "failed to assign plan")
		}

		business = found
		planName = plan.Name

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute plan assignment")
	}

	srv.publishEvent(ctx, service.EventPlanAssigned, business.ID, actorID, map[string]string{
		"plan_id":   planID.String(),
		"plan_name": planName,
	})

	return business, nil
}

// DeleteBusiness removes a business and all its dependents in one
// transaction. The order matters: sessions first so no member keeps a live
// login, then the member accounts, the memberships, the roster links, the
// addresses, and last the business row.
func (srv *businessService) DeleteBusiness(ctx context.Context, actorID, businessID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		actor, err := loadActor(ctx, repoFactory, actorID)
		if err != nil {
			return err
		}

		business, err := srv.findBusiness(ctx, repoFactory, businessID)
		if err != nil {
			return err
		}

		if !srv.policies.Business.Delete(actor, business) {
			return errors.Wrap(domainerrors.ErrForbidden, "actor may not delete businesses")
		}

		memberships, err := repoFactory.NewBusinessUserProfileRepository().ListByBusiness(ctx, business.ID)
		if err != nil {
			return errors.Wrap(err, "failed to list memberships")
		}

		for _, m := range memberships {
			if err := repoFactory.NewRefreshTokenRepository().DeleteRefreshTokensByUserID(ctx, m.UserID); err != nil {
				return errors.Wrap(err, "failed to revoke member sessions")
			}
			if err := repoFactory.NewUserRepository().Delete(ctx, m.UserID); err != nil {
				return errors.Wrap(err, "failed to delete member account")
			}
		}

		if err := repoFactory.NewBusinessUserProfileRepository().DeleteByBusiness(ctx, business.ID); err != nil {
			return errors.Wrap(err, "failed to delete memberships")
		}
		if err := repoFactory.NewBusinessRepository().DetachAllCustomers(ctx, business.ID); err != nil {
			return errors.Wrap(err, "failed to clear roster")
		}
		if err := repoFactory.NewAddressRepository().DeleteAddressesByOwner(ctx, business.ID, entity.OwnerKindBusiness); err != nil {
			return errors.Wrap(err, "failed to delete addresses")
		}
		if err := repoFactory.NewBusinessRepository().Delete(ctx, business.ID); err != nil {
			return errors.Wrap(err, "failed to delete business")
		}

		srv.log(ctx).Info("Deleted business", slog.Any("businessID", business.ID), slog.Any("actorID", actor.ID))

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute business deletion")
	}

	srv.publishEvent(ctx, service.EventBusinessDeleted, businessID, actorID, nil)

	return nil
}

// GetBusinessStats returns live usage counts against the plan limits.
func (srv *businessService) GetBusinessStats(ctx context.Context, actorID, businessID uuid.UUID) (*usecase.BusinessStats, error) {
	var stats *usecase.BusinessStats

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		actor, err := loadActor(ctx, repoFactory, actorID)
		if err != nil {
			return err
		}

		business, err := srv.findBusiness(ctx, repoFactory, businessID)
		if err != nil {
			return err
		}

		if !srv.policies.Business.View(actor, business) {
			return errors.Wrap(domainerrors.ErrForbidden, "actor may not view this business")
		}

		userCount, err := repoFactory.NewBusinessUserProfileRepository().CountByBusiness(ctx, business.ID)
		if err != nil {
			return errors.Wrap(err, "failed to count members")
		}
		customerCount, err := repoFactory.NewBusinessRepository().CountCustomers(ctx, business.ID)
		if err != nil {
			return errors.Wrap(err, "failed to count roster customers")
		}

		stats = &usecase.BusinessStats{
			UserCount:     userCount,
			CustomerCount: customerCount,
		}
		if business.PlatformPlan != nil {
			stats.UserLimit = business.PlatformPlan.MaxUsers
			stats.CustomerLimit = business.PlatformPlan.MaxCustomers
			stats.PlanName = business.PlatformPlan.Name
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get business stats")
	}

	return stats, nil
}

// AttachCustomer adds a customer to the business roster. The plan's customer
// limit is re-checked inside the insert transaction.
func (srv *businessService) AttachCustomer(ctx context.Context, actorID, businessID, customerProfileID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		actor, err := loadActor(ctx, repoFactory, actorID)
		if err != nil {
			return err
		}

		business, err := srv.findBusiness(ctx, repoFactory, businessID)
		if err != nil {
			return err
		}

		if !srv.policies.Business.Update(actor, business) {
			return errors.Wrap(domainerrors.ErrForbidden, "actor may not manage this roster")
		}

		return srv.attachToRoster(ctx, repoFactory, business, customerProfileID)
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute roster attach")
	}

	return nil
}

// DetachCustomer removes a customer from the business roster.
func (srv *businessService) DetachCustomer(ctx context.Context, actorID, businessID, customerProfileID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		actor, err := loadActor(ctx, repoFactory, actorID)
		if err != nil {
			return err
		}

		business, err := srv.findBusiness(ctx, repoFactory, businessID)
		if err != nil {
			return err
		}

		if !srv.policies.Business.Update(actor, business) {
			return errors.Wrap(domainerrors.ErrForbidden, "actor may not manage this roster")
		}

		onRoster, err := repoFactory.NewBusinessRepository().HasCustomer(ctx, business.ID, customerProfileID)
		if err != nil {
			return errors.Wrap(err, "failed to check roster")
		}
		if !onRoster {
			return errors.Wrap(domainerrors.ErrCustomerNotOnRoster, "detach rejected")
		}

		if err := repoFactory.NewBusinessRepository().DetachCustomer(ctx, business.ID, customerProfileID); err != nil {
			return errors.Wrap(err, "failed to detach customer")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute roster detach")
	}

	return nil
}

// ListRosterCustomers retrieves the customer profiles on the roster.
func (srv *businessService) ListRosterCustomers(ctx context.Context, actorID, businessID uuid.UUID) ([]*entity.CustomerProfile, error) {
	var customers []*entity.CustomerProfile

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		actor, err := loadActor(ctx, repoFactory, actorID)
		if err != nil {
			return err
		}

		business, err := srv.findBusiness(ctx, repoFactory, businessID)
		if err != nil {
			return err
		}

		if !srv.policies.Business.View(actor, business) {
			return errors.Wrap(domainerrors.ErrForbidden, "actor may not view this roster")
		}

		customers, err = repoFactory.NewBusinessRepository().ListCustomers(ctx, business.ID)
		if err != nil {
			return errors.Wrap(err, "failed to list roster customers")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list roster customers")
	}

	return customers, nil
}

// GenerateRosterInvite renders a QR code customers scan to join the roster.
func (srv *businessService) GenerateRosterInvite(ctx context.Context, actorID, businessID uuid.UUID) ([]byte, error) {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		actor, err := loadActor(ctx, repoFactory, actorID)
		if err != nil {
			return err
		}

		business, err := srv.findBusiness(ctx, repoFactory, businessID)
		if err != nil {
			return err
		}

		if !srv.policies.Business.Update(actor, business) {
			return errors.Wrap(domainerrors.ErrForbidden, "actor may not invite to this roster")
		}
		if !business.IsApproved() {
			return errors.Wrap(domainerrors.ErrBusinessNotApproved, "only approved businesses can invite")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to authorize roster invite")
	}

	qr, err := srv.qrService.GenerateRosterInviteQR(businessID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate invite qr")
	}

	return qr, nil
}

// JoinRosterByInvite parses an invite QR payload and attaches the calling
// customer to the encoded business's roster.
func (srv *businessService) JoinRosterByInvite(ctx context.Context, actorID uuid.UUID, qrData string) error {
	businessID, err := srv.qrService.ParseRosterInviteQR(qrData)
	if err != nil {
		return errors.Wrap(domainerrors.ErrValidationFailed, "invalid invite payload")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		actor, err := loadActor(ctx, repoFactory, actorID)
		if err != nil {
			return err
		}
		if !actor.IsCustomer() {
			return errors.Wrap(domainerrors.ErrForbidden, "only customers can join a roster")
		}

		business, err := srv.findBusiness(ctx, repoFactory, businessID)
		if err != nil {
			return err
		}
		if !business.IsApproved() {
			return errors.Wrap(domainerrors.ErrBusinessNotApproved, "business cannot accept customers")
		}

		return srv.attachToRoster(ctx, repoFactory, business, actor.CustomerProfile.ID)
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute roster join")
	}

	return nil
}

// attachToRoster runs the customer limit gate and the idempotent attach
// inside the caller's transaction.
func (srv *businessService) attachToRoster(ctx context.Context, repoFactory repository.RepositoryFactory, business *entity.Business, customerProfileID uuid.UUID) error {
	if _, err := repoFactory.NewCustomerProfileRepository().FindByID(ctx, customerProfileID); err != nil {
		if errors.Is(err, repository.ErrCustomerProfileNotFound) {
			return errors.Wrap(domainerrors.ErrProfileNotFound, "customer lookup")
		}

		return errors.Wrap(err, "failed to find customer profile")
	}

	onRoster, err := repoFactory.NewBusinessRepository().HasCustomer(ctx, business.ID, customerProfileID)
	if err != nil {
		return errors.Wrap(err, "failed to check roster")
	}
	if onRoster {
		return nil
	}

	decision, err := srv.planGate.CheckWithFactory(ctx, repoFactory, business.ID, usecase.LimitKindCustomers)
	if err != nil {
		return errors.Wrap(err, "failed to check plan customer limit")
	}
	if !decision.Allowed {
		return domainerrors.NewPlanLimitError(decision.Reason, decision.CurrentLimit, decision.CurrentCount)
	}

	if err := repoFactory.NewBusinessRepository().AttachCustomer(ctx, business.ID, customerProfileID); err != nil {
		return errors.Wrap(err, "failed to attach customer")
	}

	return nil
}

// publishEvent emits a domain event after a committed transition. Publish
// failures are logged and swallowed.
func (srv *businessService) publishEvent(ctx context.Context, name string, businessID, actorID uuid.UUID, attributes map[string]string) {
	event := &service.DomainEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Name:       name,
		BusinessID: businessID.String(),
		UserID:     actorID.String(),
		OccurredAt: time.Now(),
		Attributes: attributes,
	}
	if err := srv.eventPublisher.PublishDomainEvent(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to publish domain event", slog.String("event", name), slog.Any("error", err))
	}
}

func (srv *businessService) findBusiness(ctx context.Context, factory repository.RepositoryFactory, id uuid.UUID) (*entity.Business, error) {
	business, err := factory.NewBusinessRepository().FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return nil, errors.Wrap(domainerrors.ErrBusinessNotFound, "business lookup")
		}

		return nil, errors.Wrap(err, "failed to find business")
	}

	return business, nil
}
