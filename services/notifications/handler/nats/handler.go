package nats

import (
	"encoding/json"

	"github.com/gstransportes/frota/internal/pkg/constants"
	"github.com/gstransportes/frota/internal/pkg/logger"
	"github.com/gstransportes/frota/internal/pkg/models"
	"github.com/gstransportes/frota/internal/pkg/websocket"
	"github.com/nats-io/nats.go"

	natspkg "github.com/gstransportes/frota/internal/pkg/nats"
)

// NatsHandler consumes notification broadcasts and pushes them to connected
// recipients over WebSocket.
type NatsHandler struct {
	client    *natspkg.Client
	wsManager *websocket.Manager
}

// NewNatsHandler creates a new NATS handler
func NewNatsHandler(client *natspkg.Client, wsManager *websocket.Manager) *NatsHandler {
	return &NatsHandler{
		client:    client,
		wsManager: wsManager,
	}
}

// InitConsumers subscribes to the notification broadcast subject
func (h *NatsHandler) InitConsumers() error {
	_, err := h.client.Subscribe(constants.SubjectNotificationBroadcast, h.handleBroadcast)
	return err
}

// handleBroadcast delivers one broadcast to every connected recipient.
// Delivery is best effort and isolated per recipient; a failed or absent
// connection never blocks the others, the persisted rows remain the durable
// record either way.
func (h *NatsHandler) handleBroadcast(msg *nats.Msg) {
	var event models.NotificationBroadcast
	if err := json.Unmarshal(msg.Data, &event); err != nil {
		logger.Warn("failed to unmarshal notification broadcast",
			logger.Err(err))
		return
	}

	for _, userID := range event.RecipientIDs {
		h.wsManager.NotifyClient(userID.String(), constants.EventNotification, event.Notification)
	}
}
