package notifications

import (
	"context"

	"github.com/google/uuid"
	"github.com/gstransportes/frota/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/gstransportes/frota/services/notifications NotificationUC

// NotificationUC is the notification fan-out interface. Other services
// depend on it to escalate checklists and occurrence activity.
type NotificationUC interface {
	// NotifyRoles fans a broadcast out to every active user holding one of
	// the given roles.
	NotifyRoles(ctx context.Context, req *models.NotificationRequest, roles []string) (*models.Notification, error)

	// NotifyUsers fans a broadcast out to a specific recipient set.
	// Recipients are deduplicated.
	NotifyUsers(ctx context.Context, req *models.NotificationRequest, userIDs []uuid.UUID) (*models.Notification, error)

	// List returns the user's notifications, newest first. With unreadOnly
	// false the full history is returned.
	List(ctx context.Context, userID uuid.UUID, unreadOnly bool) ([]*models.UserNotification, error)

	// MarkRead marks one recipient row as read after verifying ownership.
	MarkRead(ctx context.Context, recipientID, userID uuid.UUID) error

	// MarkAllRead marks every unread row belonging to the user.
	MarkAllRead(ctx context.Context, userID uuid.UUID) error
}
