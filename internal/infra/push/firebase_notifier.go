// Package push delivers order push notifications through Firebase Cloud
// Messaging topics.
package push

import (
	"context"
	"fmt"

	"storefront/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

type firebaseNotifier struct {
	client *messaging.Client
}

// NewFirebaseNotifier creates a new Firebase push notifier instance
func NewFirebaseNotifier(ctx context.Context, credentialsPath string) (service.PushNotifier, error) {
	opt := option.WithCredentialsFile(credentialsPath)
	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get messaging client: %w", err)
	}

	return &firebaseNotifier{
		client: client,
	}, nil
}

// SendToTopic sends one notification to every device subscribed to topic
func (s *firebaseNotifier) SendToTopic(ctx context.Context, topic, title, body string, data map[string]string) error {
	message := &messaging.Message{
		Topic: topic,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	_, err := s.client.Send(ctx, message)
	if err != nil {
		return fmt.Errorf("failed to send notification: %w", err)
	}

	return nil
}
