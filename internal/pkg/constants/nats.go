package constants

// NATS Subjects
const (
	// Notification fan-out: published after recipient rows are persisted,
	// consumed by the live-push handler.
	SubjectNotificationBroadcast = "notification.broadcast"
)
