package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"plaza/config"
	deliverycontext "plaza/internal/delivery/context"
	"plaza/internal/domain/constants"
	"plaza/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

// newRetryableError wraps an error as retryable
func newRetryableError(err error) error {
	return &retryableError{err: err}
}

// isRetryableError checks if an error is retryable
func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// PushHandler handles Pub/Sub push messages carrying domain events
type PushHandler struct {
	verifyPushAuth  bool
	logger          *slog.Logger
	notificationSvc service.NotificationService
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config          *config.Config
	Logger          *slog.Logger
	NotificationSvc service.NotificationService `optional:"true"`
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Determine if we need to verify push auth based on config
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &PushHandler{
		verifyPushAuth:  verifyPushAuth,
		logger:          params.Logger,
		notificationSvc: params.NotificationSvc,
	}
}

// HandlePush handles incoming Pub/Sub push messages
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	// Verify Pub/Sub token in production for Google provider
	if h.verifyPushAuth {
		if err := verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	// Parse Pub/Sub message
	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Decode base64 message data
	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Parse domain event
	var event service.DomainEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse domain event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Extract request_id for distributed tracing
	// Priority: message attributes > event field > existing context
	requestID := h.extractRequestID(ctx, &pushMsg, &event)

	// Create request-scoped logger with request_id
	reqLogger := h.logger.With(slog.String("request_id", requestID))

	// Update context with request_id and logger
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing domain event",
		slog.String("event_name", event.Name),
		slog.String("business_id", event.BusinessID),
	)

	// Process the event
	if err := h.processEvent(ctx, &event); err != nil {
		reqLogger.Error("[Worker] Failed to process domain event",
			slog.String("event_name", event.Name),
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)
		// Return 503 for retryable errors to trigger Pub/Sub retry
		// Return 200 for non-retryable errors to prevent infinite retries
		if isRetryableError(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("[Worker] Domain event processed successfully",
		slog.String("event_name", event.Name),
	)

	return c.NoContent(http.StatusOK)
}

// extractRequestID extracts request_id from message attributes, event, or generates a new one
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *service.DomainEvent) string {
	// 1. Try message attributes (from Pub/Sub)
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	// 2. Try event field (from JSON payload)
	if event.RequestID != "" {
		return event.RequestID
	}

	// 3. Try existing context (from RequestIDMiddleware via X-Request-Id header)
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	// 4. Generate new UUID as fallback
	return uuid.New().String()
}

// processEvent routes a domain event to its side effects. Events with no
// push-facing consequence are acknowledged and dropped.
func (h *PushHandler) processEvent(ctx context.Context, event *service.DomainEvent) error {
	switch event.Name {
	case service.EventBusinessApproved,
		service.EventBusinessSuspended,
		service.EventPlanAssigned:
		return h.notifyBusinessTopic(ctx, event)
	case service.EventBusinessPending:
		return h.notifyStaffTopic(ctx, event)
	case service.EventBusinessDeleted, service.EventUserDeactivated, service.EventPlanLimitDenied:
		// Audit-only events; billing and CRM consume them from their own
		// subscriptions.
		return nil
	default:
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Warn("[Worker] Unknown event name",
			slog.String("event_name", event.Name),
		)

		return nil
	}
}

// notifyBusinessTopic pushes a notification to the business's device topic.
// Business apps subscribe to "business-<id>" on login.
func (h *PushHandler) notifyBusinessTopic(ctx context.Context, event *service.DomainEvent) error {
	if h.notificationSvc == nil {
		// Firebase is optional in local setups.
		return nil
	}

	if event.BusinessID == "" {
		return errors.Errorf("event %s is missing a business id", event.Name)
	}
	if _, err := uuid.Parse(event.BusinessID); err != nil {
		return errors.Wrap(err, "invalid business id in event")
	}

	title, body := notificationContent(event)
	topic := "business-" + event.BusinessID

	data := map[string]string{
		"event_name":  event.Name,
		"business_id": event.BusinessID,
	}
	if planName, ok := event.Attributes["plan_name"]; ok {
		data["plan_name"] = planName
	}

	if err := h.notificationSvc.SendTopicNotification(ctx, topic, title, body, data); err != nil {
		return newRetryableError(errors.WithStack(err))
	}

	return nil
}

// notifyStaffTopic alerts platform staff that a business is waiting for
// approval. Staff consoles subscribe to the shared "platform-staff" topic.
func (h *PushHandler) notifyStaffTopic(ctx context.Context, event *service.DomainEvent) error {
	if h.notificationSvc == nil {
		// Firebase is optional in local setups.
		return nil
	}

	if event.BusinessID == "" {
		return errors.Errorf("event %s is missing a business id", event.Name)
	}
	if _, err := uuid.Parse(event.BusinessID); err != nil {
		return errors.Wrap(err, "invalid business id in event")
	}

	body := "A new business is waiting for approval."
	if name := event.Attributes["business_name"]; name != "" {
		body = fmt.Sprintf("%s is waiting for approval.", name)
	}

	data := map[string]string{
		"event_name":  event.Name,
		"business_id": event.BusinessID,
	}

	if err := h.notificationSvc.SendTopicNotification(ctx, "platform-staff", "Approval requested", body, data); err != nil {
		return newRetryableError(errors.WithStack(err))
	}

	return nil
}

// notificationContent maps an event to a human-facing title and body.
func notificationContent(event *service.DomainEvent) (title, body string) {
	switch event.Name {
	case service.EventBusinessApproved:
		return "Business approved", "Your business has been approved and is now visible on the platform."
	case service.EventBusinessSuspended:
		reason := event.Attributes["reason"]
		if reason != "" {
			return "Business suspended", fmt.Sprintf("Your business has been suspended: %s", reason)
		}

		return "Business suspended", "Your business has been suspended. Contact support for details."
	case service.EventPlanAssigned:
		if planName := event.Attributes["plan_name"]; planName != "" {
			return "Plan updated", fmt.Sprintf("Your business is now on the %s plan.", planName)
		}

		return "Plan updated", "Your business subscription plan has changed."
	default:
		return "Account update", "There is an update on your business account."
	}
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	// Get the Authorization header
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	// Extract Bearer token
	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// Construct the expected audience (the push endpoint URL)
	// The audience should be the URL of this endpoint
	scheme := "https"
	if req.TLS == nil {
		scheme = "http" // For local development
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	// Validate the token using Google's ID token validator
	ctx := req.Context()
	payload, err := idtoken.Validate(ctx, token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	// Verify the token is from Google Pub/Sub
	// The issuer should be accounts.google.com
	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	// Verify email is verified (if email claim exists)
	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
