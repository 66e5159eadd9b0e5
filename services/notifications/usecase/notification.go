package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/gstransportes/frota/internal/pkg/apperr"
	"github.com/gstransportes/frota/internal/pkg/logger"
	"github.com/gstransportes/frota/internal/pkg/models"
	"github.com/gstransportes/frota/services/notifications"
)

// NotificationUC implements the notification fan-out
type NotificationUC struct {
	repo notifications.NotificationRepo
	gw   notifications.NotificationGW
}

// NewNotificationUC creates a new notification usecase instance
func NewNotificationUC(repo notifications.NotificationRepo, gw notifications.NotificationGW) *NotificationUC {
	return &NotificationUC{
		repo: repo,
		gw:   gw,
	}
}

// NotifyRoles fans a broadcast out to every active user holding one of the given roles
func (uc *NotificationUC) NotifyRoles(ctx context.Context, req *models.NotificationRequest, roles []string) (*models.Notification, error) {
	userIDs, err := uc.repo.GetActiveUserIDsByRoles(ctx, roles)
	if err != nil {
		return nil, err
	}

	return uc.NotifyUsers(ctx, req, userIDs)
}

// NotifyUsers persists the broadcast plus one recipient row per user, then
// hands the event to the live-push pipeline. The persisted rows are the
// durable record; a publish failure is logged and swallowed.
func (uc *NotificationUC) NotifyUsers(ctx context.Context, req *models.NotificationRequest, userIDs []uuid.UUID) (*models.Notification, error) {
	if req.Title == "" || req.Message == "" {
		return nil, apperr.Validation("notification title and message are required")
	}

	recipients := dedupe(userIDs)
	if len(recipients) == 0 {
		logger.Warn("notification has no recipients, skipping",
			logger.String("title", req.Title))
		return nil, nil
	}

	notification := &models.Notification{
		ID:           uuid.New(),
		Title:        req.Title,
		Message:      req.Message,
		OccurrenceID: req.OccurrenceID,
		CreatedAt:    time.Now(),
	}

	if err := uc.repo.CreateWithRecipients(ctx, notification, recipients); err != nil {
		return nil, err
	}

	event := &models.NotificationBroadcast{
		Notification: notification,
		RecipientIDs: recipients,
	}
	if err := uc.gw.PublishBroadcast(ctx, event); err != nil {
		logger.Warn("failed to publish notification broadcast",
			logger.String("notification_id", notification.ID.String()),
			logger.Err(err))
	}

	return notification, nil
}

// List returns the user's notifications, newest first
func (uc *NotificationUC) List(ctx context.Context, userID uuid.UUID, unreadOnly bool) ([]*models.UserNotification, error) {
	return uc.repo.ListByUser(ctx, userID, unreadOnly)
}

// MarkRead marks one recipient row as read after verifying it belongs to the user
func (uc *NotificationUC) MarkRead(ctx context.Context, recipientID, userID uuid.UUID) error {
	recipient, err := uc.repo.GetRecipient(ctx, recipientID)
	if err != nil {
		return err
	}

	if recipient.UserID != userID {
		return apperr.Forbidden("notification does not belong to this user")
	}

	return uc.repo.MarkRead(ctx, recipientID)
}

// MarkAllRead marks every unread row belonging to the user
func (uc *NotificationUC) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	return uc.repo.MarkAllRead(ctx, userID)
}

func dedupe(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]bool, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if id == uuid.Nil || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
