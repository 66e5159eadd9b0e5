package websocket

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/gstransportes/frota/internal/pkg/constants"
	"github.com/gstransportes/frota/internal/pkg/logger"
	"github.com/gstransportes/frota/internal/pkg/models"
	"github.com/labstack/echo/v4"
)

// Client is one live connection belonging to an authenticated user
type Client struct {
	UserID string
	Role   string
	Conn   *websocket.Conn

	mu sync.Mutex
}

// Manager manages WebSocket connections and client state. At most one live
// connection is tracked per user; a newer connection replaces the older one.
type Manager struct {
	sync.RWMutex
	clients  map[string]*Client
	upgrader websocket.Upgrader
}

// NewManager creates a new WebSocket manager
func NewManager() *Manager {
	return &Manager{
		clients: make(map[string]*Client),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// HandleConnection upgrades an authenticated request and tracks the client
// until the connection closes. Identity must already be set on the context
// by the JWT middleware.
func (m *Manager) HandleConnection(c echo.Context, userID, role string) error {
	ws, err := m.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}
	defer ws.Close()

	client := &Client{UserID: userID, Role: role, Conn: ws}
	m.AddClient(client)
	defer m.releaseClient(client)

	logger.Info("WebSocket client connected",
		logger.String("user_id", userID),
		logger.String("role", role))

	// Read loop: the client only sends pings; everything else is ignored.
	for {
		var msg models.WSMessage
		if err := ws.ReadJSON(&msg); err != nil {
			logger.Debug("WebSocket client disconnected",
				logger.String("user_id", userID),
				logger.Err(err))
			return nil
		}

		if msg.Event == constants.EventPing {
			if err := m.SendMessage(client, constants.EventPong, nil); err != nil {
				return nil
			}
		}
	}
}

// AddClient safely adds a client to the manager
func (m *Manager) AddClient(client *Client) {
	m.Lock()
	defer m.Unlock()
	m.clients[client.UserID] = client
}

// RemoveClient safely removes a client from the manager
func (m *Manager) RemoveClient(userID string) {
	m.Lock()
	defer m.Unlock()
	delete(m.clients, userID)
}

// releaseClient removes the client only while it is still the tracked
// connection for its user. A stale handler closing down must not evict the
// newer connection that replaced it.
func (m *Manager) releaseClient(client *Client) {
	m.Lock()
	defer m.Unlock()
	if m.clients[client.UserID] == client {
		delete(m.clients, client.UserID)
	}
}

// GetClient returns a client by ID
func (m *Manager) GetClient(userID string) (*Client, bool) {
	m.RLock()
	defer m.RUnlock()
	client, exists := m.clients[userID]
	return client, exists
}

// SendMessage sends an event to a WebSocket client
func (m *Manager) SendMessage(client *Client, event string, data interface{}) error {
	if client == nil || client.Conn == nil {
		return nil
	}

	rawData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("error marshaling message data: %w", err)
	}

	client.mu.Lock()
	defer client.mu.Unlock()

	return client.Conn.WriteJSON(models.WSMessage{
		Event: event,
		Data:  rawData,
	})
}

// NotifyClient pushes an event to the user's live connection if one exists.
// Delivery is best effort: a missing or failing connection is not an error
// for the caller.
func (m *Manager) NotifyClient(userID string, event string, data interface{}) {
	m.RLock()
	client, exists := m.clients[userID]
	m.RUnlock()

	if !exists {
		return
	}

	if err := m.SendMessage(client, event, data); err != nil {
		logger.Warn("Error sending message to client",
			logger.String("user_id", userID),
			logger.String("event", event),
			logger.Err(err))
	}
}
