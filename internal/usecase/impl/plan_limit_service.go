// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	deliverycontext "plaza/internal/delivery/context"
	domainerrors "plaza/internal/domain/errors"
	"plaza/internal/domain/repository"
	"plaza/internal/domain/service"
	"plaza/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// planLimitService implements the PlanLimitGate interface.
type planLimitService struct {
	txManager      repository.TransactionManager
	eventPublisher service.EventPublisher
	logger         *slog.Logger
}

// PlanLimitServiceParams holds dependencies for planLimitService, injected by Fx.
type PlanLimitServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	EventPublisher service.EventPublisher
	Logger         *slog.Logger
}

// NewPlanLimitService is the constructor for planLimitService.
func NewPlanLimitService(params PlanLimitServiceParams) usecase.PlanLimitGate {
	return &planLimitService{
		txManager:      params.TxManager,
		eventPublisher: params.EventPublisher,
		logger:         params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *planLimitService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Check runs the gate in its own short transaction.
func (srv *planLimitService) Check(ctx context.Context, businessID uuid.UUID, kind usecase.LimitKind) (*usecase.LimitDecision, error) {
	var decision *usecase.LimitDecision

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		d, err := srv.check(ctx, repoFactory, businessID, kind)
		if err != nil {
			return err
		}
		decision = d

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute plan limit check")
	}

	return decision, nil
}

// CheckWithFactory runs the gate through repositories bound to the caller's transaction.
func (srv *planLimitService) CheckWithFactory(ctx context.Context, factory repository.RepositoryFactory, businessID uuid.UUID, kind usecase.LimitKind) (*usecase.LimitDecision, error) {
	return srv.check(ctx, factory, businessID, kind)
}

func (srv *planLimitService) check(ctx context.Context, factory repository.RepositoryFactory, businessID uuid.UUID, kind usecase.LimitKind) (*usecase.LimitDecision, error) {
	businessRepo := factory.NewBusinessRepository()

	business, err := businessRepo.FindByID(ctx, businessID)
	if err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return nil, errors.Wrap(domainerrors.ErrBusinessNotFound, "plan limit check")
		}

		return nil, errors.Wrap(err, "failed to load business for plan limit check")
	}

	if !business.HasActivePlan() {
		srv.log(ctx).Debug("Plan limit check denied, no active plan", slog.Any("businessID", businessID))

		decision := &usecase.LimitDecision{
			Allowed: false,
			Reason:  domainerrors.PlanLimitNoActivePlan,
		}
		srv.publishDenial(ctx, businessID, kind, decision)

		return decision, nil
	}

	var (
		max        *int
		count      int64
		reasonCode string
	)

	switch kind {
	case usecase.LimitKindUsers:
		max = business.PlatformPlan.MaxUsers
		reasonCode = domainerrors.PlanLimitUserLimitReached
		if max != nil {
			count, err = factory.NewBusinessUserProfileRepository().CountByBusiness(ctx, businessID)
		}
	case usecase.LimitKindCustomers:
		max = business.PlatformPlan.MaxCustomers
		reasonCode = domainerrors.PlanLimitCustomerLimitReached
		if max != nil {
			count, err = businessRepo.CountCustomers(ctx, businessID)
		}
	default:
		return nil, errors.Errorf("unknown limit kind %q", kind)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to count usage for plan limit check")
	}

	if max == nil {
		return &usecase.LimitDecision{Allowed: true}, nil
	}

	if count >= int64(*max) {
		srv.log(ctx).Info("Plan limit reached",
			slog.Any("businessID", businessID),
			slog.String("kind", string(kind)),
			slog.Int("limit", *max),
			slog.Int64("count", count),
		)

		decision := &usecase.LimitDecision{
			Allowed:      false,
			Reason:       reasonCode,
			CurrentLimit: *max,
			CurrentCount: int(count),
		}
		srv.publishDenial(ctx, businessID, kind, decision)

		return decision, nil
	}

	return &usecase.LimitDecision{
		Allowed:      true,
		CurrentLimit: *max,
		CurrentCount: int(count),
	}, nil
}

// publishDenial emits a denial event so billing can surface upgrade prompts.
// Publish failures are logged and swallowed, the decision itself stands.
func (srv *planLimitService) publishDenial(ctx context.Context, businessID uuid.UUID, kind usecase.LimitKind, decision *usecase.LimitDecision) {
	event := &service.DomainEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Name:       service.EventPlanLimitDenied,
		BusinessID: businessID.String(),
		OccurredAt: time.Now(),
		Attributes: map[string]string{
			"kind":   string(kind),
			"reason": decision.Reason,
			"limit":  strconv.Itoa(decision.CurrentLimit),
			"count":  strconv.Itoa(decision.CurrentCount),
		},
	}
	if err := srv.eventPublisher.PublishDomainEvent(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to publish domain event", slog.String("event", event.Name), slog.Any("error", err))
	}
}
