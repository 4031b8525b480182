package service

import (
	"context"
)

// NotificationService defines the interface for push notification services.
// Notifications are addressed to topics; each business has a topic its
// members' apps subscribe to, so no device registry is needed server-side.
type NotificationService interface {
	// SendTopicNotification sends a push notification to every device
	// subscribed to the given topic
	SendTopicNotification(ctx context.Context, topic, title, body string, data map[string]string) error
}
