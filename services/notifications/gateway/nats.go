package gateway

import (
	"context"
	"fmt"

	"github.com/gstransportes/frota/internal/pkg/constants"
	"github.com/gstransportes/frota/internal/pkg/models"

	natspkg "github.com/gstransportes/frota/internal/pkg/nats"
)

// NotificationGW publishes notification broadcast events to NATS
type NotificationGW struct {
	client *natspkg.Client
}

// NewNotificationGW creates a new notification gateway
func NewNotificationGW(client *natspkg.Client) *NotificationGW {
	return &NotificationGW{client: client}
}

// PublishBroadcast publishes the broadcast for the live-push consumer
func (g *NotificationGW) PublishBroadcast(_ context.Context, event *models.NotificationBroadcast) error {
	if err := g.client.PublishJSON(constants.SubjectNotificationBroadcast, event); err != nil {
		return fmt.Errorf("failed to publish notification broadcast: %w", err)
	}

	return nil
}
