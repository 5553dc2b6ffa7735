package service

import "context"

// PushNotifier sends push notifications to topic subscribers. Clients
// subscribe to their per-user order topic on sign-in; the server never
// stores device tokens.
type PushNotifier interface {
	// SendToTopic sends one notification to every device subscribed to topic.
	SendToTopic(ctx context.Context, topic, title, body string, data map[string]string) error
}
