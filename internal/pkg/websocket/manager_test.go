package websocket

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestManager_AddAndGetClient(t *testing.T) {
	manager := NewManager()
	userID := uuid.New().String()

	client := &Client{UserID: userID, Role: "DRIVER"}
	manager.AddClient(client)

	got, exists := manager.GetClient(userID)
	assert.True(t, exists)
	assert.Equal(t, client, got)
}

func TestManager_NewerConnectionReplacesOlder(t *testing.T) {
	manager := NewManager()
	userID := uuid.New().String()

	first := &Client{UserID: userID, Role: "DRIVER"}
	second := &Client{UserID: userID, Role: "DRIVER"}
	manager.AddClient(first)
	manager.AddClient(second)

	got, exists := manager.GetClient(userID)
	assert.True(t, exists)
	assert.Same(t, second, got)
}

func TestManager_StaleReleaseKeepsNewerConnection(t *testing.T) {
	manager := NewManager()
	userID := uuid.New().String()

	first := &Client{UserID: userID, Role: "DRIVER"}
	second := &Client{UserID: userID, Role: "DRIVER"}
	manager.AddClient(first)
	manager.AddClient(second)

	// the first handler shutting down must not evict its replacement
	manager.releaseClient(first)

	got, exists := manager.GetClient(userID)
	assert.True(t, exists)
	assert.Same(t, second, got)

	manager.releaseClient(second)
	_, exists = manager.GetClient(userID)
	assert.False(t, exists)
}

func TestManager_RemoveClient(t *testing.T) {
	manager := NewManager()
	userID := uuid.New().String()

	manager.AddClient(&Client{UserID: userID, Role: "ADMIN"})
	manager.RemoveClient(userID)

	_, exists := manager.GetClient(userID)
	assert.False(t, exists)
}

func TestManager_NotifyAbsentClientIsNoop(t *testing.T) {
	manager := NewManager()

	// must not panic or block when the user has no live connection
	manager.NotifyClient(uuid.New().String(), "notification", map[string]string{"title": "test"})
}

func TestManager_SendMessageNilConn(t *testing.T) {
	manager := NewManager()

	err := manager.SendMessage(&Client{UserID: uuid.New().String()}, "notification", nil)
	assert.NoError(t, err)

	err = manager.SendMessage(nil, "notification", nil)
	assert.NoError(t, err)
}
