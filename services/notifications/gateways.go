package notifications

import (
	"context"

	"github.com/gstransportes/frota/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/gstransportes/frota/services/notifications NotificationGW

// NotificationGW publishes broadcast events for the live-push consumer.
// Publishing happens after the fan-out is persisted; a publish failure only
// costs the real-time delivery, never the durable record.
type NotificationGW interface {
	PublishBroadcast(ctx context.Context, event *models.NotificationBroadcast) error
}
