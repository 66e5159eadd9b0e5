package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/gstransportes/frota/internal/pkg/apperr"
	"github.com/gstransportes/frota/internal/pkg/models"
	"github.com/jmoiron/sqlx"
)

// NotificationRepo is the PostgreSQL notification repository
type NotificationRepo struct {
	db *sqlx.DB
}

// NewNotificationRepo creates a new notification repository
func NewNotificationRepo(db *sqlx.DB) *NotificationRepo {
	return &NotificationRepo{db: db}
}

// CreateWithRecipients inserts the notification row and one recipient row
// per user inside a single transaction.
func (r *NotificationRepo) CreateWithRecipients(ctx context.Context, notification *models.Notification, recipientIDs []uuid.UUID) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO notifications (id, title, message, occurrence_id, created_at)
		VALUES (:id, :title, :message, :occurrence_id, :created_at)
	`
	if _, err = tx.NamedExecContext(ctx, query, notification); err != nil {
		return fmt.Errorf("failed to insert notification: %w", err)
	}

	recipientQuery := `
		INSERT INTO notification_recipients (id, notification_id, user_id, read)
		VALUES ($1, $2, $3, false)
	`
	for _, userID := range recipientIDs {
		if _, err = tx.ExecContext(ctx, recipientQuery, uuid.New(), notification.ID, userID); err != nil {
			return fmt.Errorf("failed to insert notification recipient: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetActiveUserIDsByRoles returns the IDs of all active users holding one of the given roles
func (r *NotificationRepo) GetActiveUserIDsByRoles(ctx context.Context, roles []string) ([]uuid.UUID, error) {
	query, args, err := sqlx.In(`
		SELECT id FROM users WHERE role IN (?) AND active = true
	`, roles)
	if err != nil {
		return nil, fmt.Errorf("failed to build role query: %w", err)
	}

	var ids []uuid.UUID
	if err := r.db.SelectContext(ctx, &ids, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to get users by roles: %w", err)
	}

	return ids, nil
}

// ListByUser returns the user's recipient rows joined with their notification, newest first
func (r *NotificationRepo) ListByUser(ctx context.Context, userID uuid.UUID, unreadOnly bool) ([]*models.UserNotification, error) {
	query := `
		SELECT nr.id AS recipient_id, n.id AS notification_id, n.title, n.message,
			n.occurrence_id, nr.read, n.created_at
		FROM notification_recipients nr
		JOIN notifications n ON n.id = nr.notification_id
		WHERE nr.user_id = $1
	`
	if unreadOnly {
		query += ` AND nr.read = false`
	}
	query += ` ORDER BY n.created_at DESC`

	notifications := []*models.UserNotification{}
	if err := r.db.SelectContext(ctx, &notifications, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}

	return notifications, nil
}

// GetRecipient retrieves a recipient row by ID
func (r *NotificationRepo) GetRecipient(ctx context.Context, recipientID uuid.UUID) (*models.NotificationRecipient, error) {
	query := `
		SELECT id, notification_id, user_id, read, read_at
		FROM notification_recipients
		WHERE id = $1
	`

	var recipient models.NotificationRecipient
	err := r.db.GetContext(ctx, &recipient, query, recipientID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("notification not found")
		}
		return nil, fmt.Errorf("failed to get notification recipient: %w", err)
	}

	return &recipient, nil
}

// MarkRead marks a single recipient row as read
func (r *NotificationRepo) MarkRead(ctx context.Context, recipientID uuid.UUID) error {
	query := `
		UPDATE notification_recipients
		SET read = true, read_at = $2
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query, recipientID, time.Now())
	if err != nil {
		return fmt.Errorf("failed to mark notification as read: %w", err)
	}

	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		return apperr.NotFound("notification not found")
	}

	return nil
}

// MarkAllRead bulk-sets all of the user's unread rows
func (r *NotificationRepo) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	query := `
		UPDATE notification_recipients
		SET read = true, read_at = $2
		WHERE user_id = $1 AND read = false
	`

	if _, err := r.db.ExecContext(ctx, query, userID, time.Now()); err != nil {
		return fmt.Errorf("failed to mark all notifications as read: %w", err)
	}

	return nil
}
