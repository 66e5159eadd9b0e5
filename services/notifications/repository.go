package notifications

import (
	"context"

	"github.com/google/uuid"
	"github.com/gstransportes/frota/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/gstransportes/frota/services/notifications NotificationRepo

// NotificationRepo is the persistence interface for notifications
type NotificationRepo interface {
	// CreateWithRecipients inserts the notification and one recipient row
	// per user in a single transaction.
	CreateWithRecipients(ctx context.Context, notification *models.Notification, recipientIDs []uuid.UUID) error

	// GetActiveUserIDsByRoles returns the IDs of all active users holding
	// one of the given roles.
	GetActiveUserIDsByRoles(ctx context.Context, roles []string) ([]uuid.UUID, error)

	ListByUser(ctx context.Context, userID uuid.UUID, unreadOnly bool) ([]*models.UserNotification, error)
	GetRecipient(ctx context.Context, recipientID uuid.UUID) (*models.NotificationRecipient, error)
	MarkRead(ctx context.Context, recipientID uuid.UUID) error
	MarkAllRead(ctx context.Context, userID uuid.UUID) error
}
