package models

import (
	"time"

	"github.com/google/uuid"
)

// Notification is a broadcast message, optionally linked to an occurrence.
// The notification row itself is create-once; per-user read state lives on
// the recipient rows.
type Notification struct {
	ID           uuid.UUID  `json:"id" db:"id"`
	Title        string     `json:"title" db:"title"`
	Message      string     `json:"message" db:"message"`
	OccurrenceID *uuid.UUID `json:"occurrence_id,omitempty" db:"occurrence_id"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
}

// NotificationRecipient tracks one addressed user and their read state
type NotificationRecipient struct {
	ID             uuid.UUID  `json:"id" db:"id"`
	NotificationID uuid.UUID  `json:"notification_id" db:"notification_id"`
	UserID         uuid.UUID  `json:"user_id" db:"user_id"`
	Read           bool       `json:"read" db:"read"`
	ReadAt         *time.Time `json:"read_at,omitempty" db:"read_at"`
}

// UserNotification is a recipient row joined with its notification body,
// flattened for listing.
type UserNotification struct {
	RecipientID    uuid.UUID  `json:"recipient_id" db:"recipient_id"`
	NotificationID uuid.UUID  `json:"notification_id" db:"notification_id"`
	Title          string     `json:"title" db:"title"`
	Message        string     `json:"message" db:"message"`
	OccurrenceID   *uuid.UUID `json:"occurrence_id,omitempty" db:"occurrence_id"`
	Read           bool       `json:"read" db:"read"`
	CreatedAt      time.Time  `json:"created_at" db:"created_at"`
}

// NotificationRequest describes a broadcast to be fanned out
type NotificationRequest struct {
	Title        string     `json:"title"`
	Message      string     `json:"message"`
	OccurrenceID *uuid.UUID `json:"occurrence_id,omitempty"`
}

// NotificationBroadcast is the event published after the fan-out is
// persisted; the live-push consumer delivers it to connected recipients.
type NotificationBroadcast struct {
	Notification *Notification `json:"notification"`
	RecipientIDs []uuid.UUID   `json:"recipient_ids"`
}
