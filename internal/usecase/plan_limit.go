// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"plaza/internal/domain/repository"

	"github.com/google/uuid"
)

// LimitKind selects which plan dimension the gate checks.
type LimitKind string

const (
	// LimitKindUsers gates adding business staff accounts.
	LimitKindUsers LimitKind = "users"
	// LimitKindCustomers gates adding roster customers.
	LimitKindCustomers LimitKind = "customers"
)

// LimitDecision is the structured outcome of a plan limit check. On denial
// the reason code and, except for missing plans, the limit and live count
// are set for client display.
type LimitDecision struct {
	Allowed      bool
	Reason       string
	CurrentLimit int
	CurrentCount int
}

// PlanLimitGate decides whether a business may take one more user or roster
// customer. The check is point-in-time with no reservation: two concurrent
// creations racing for the last slot may both pass. Callers needing the
// stronger guarantee run CheckWithFactory inside the same transaction as
// the insert.
type PlanLimitGate interface {
	// Check runs the gate against the business's current plan and counts.
	Check(ctx context.Context, businessID uuid.UUID, kind LimitKind) (*LimitDecision, error)

	// CheckWithFactory runs the same gate through repositories bound to the
	// caller's transaction.
	CheckWithFactory(ctx context.Context, factory repository.RepositoryFactory, businessID uuid.UUID, kind LimitKind) (*LimitDecision, error)
}
