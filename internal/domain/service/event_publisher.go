package service

import (
	"context"
	"time"
)

// Domain event names published to the message queue.
const (
	EventBusinessPending   = "business.pending"
	EventBusinessApproved  = "business.approved"
	EventBusinessSuspended = "business.suspended"
	EventBusinessDeleted   = "business.deleted"
	EventUserDeactivated   = "user.deactivated"
	EventPlanAssigned      = "business.plan_assigned"
	EventPlanLimitDenied   = "plan.limit_denied"
)

// DomainEvent represents a business fact published for async consumers,
// such as billing, CRM sync and audit trails.
type DomainEvent struct {
	RequestID  string            `json:"request_id,omitempty"` // For distributed tracing
	Name       string            `json:"name"`
	BusinessID string            `json:"business_id,omitempty"`
	UserID     string            `json:"user_id,omitempty"`
	OccurredAt time.Time         `json:"occurred_at"`
	Attributes map[string]string `json:"attributes,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishDomainEvent publishes a domain event for async processing
	PublishDomainEvent(ctx context.Context, event *DomainEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
