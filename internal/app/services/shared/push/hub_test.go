package push

import (
	"lifelink-service/internal/app/models"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func dialTestClient(t *testing.T, hub *Hub, userID string) *websocket.Conn {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ws, err := upgrader.Upgrade(w, r, nil)
		require.NoError(t, err)
		hub.Register(userID, ws)
	}))
	t.Cleanup(server.Close)

	hub.mu.RLock()
	before := len(hub.clients[userID])
	hub.mu.RUnlock()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http")
	client, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })

	waitForConnections(t, hub, userID, before+1)
	return client
}

// waitForConnections blocks until the hub has at least n live connections
// for the user; registration races the dialer's handshake.
func waitForConnections(t *testing.T, hub *Hub, userID string, n int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		hub.mu.RLock()
		registered := len(hub.clients[userID])
		hub.mu.RUnlock()
		if registered >= n {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("connection for %s never registered", userID)
}

func readPushMessage(t *testing.T, client *websocket.Conn) models.PushMessage {
	t.Helper()
	client.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, payload, err := client.ReadMessage()
	require.NoError(t, err)

	var message models.PushMessage
	require.NoError(t, json.Unmarshal(payload, &message))
	return message
}

func TestHubPublish(t *testing.T) {
	hub := NewHub(time.Second, zap.NewNop())

	t.Run("delivers to every connection of the user", func(t *testing.T) {
		first := dialTestClient(t, hub, "donor-1")
		second := dialTestClient(t, hub, "donor-1")

		err := hub.Publish("donor-1", models.PushMessage{Type: "request_matched", RequestID: "req-1"})
		require.NoError(t, err)

		for _, client := range []*websocket.Conn{first, second} {
			message := readPushMessage(t, client)
			assert.Equal(t, "request_matched", message.Type)
			assert.Equal(t, "req-1", message.RequestID)
		}
	})

	t.Run("unknown user is a no-op", func(t *testing.T) {
		err := hub.Publish("nobody", models.PushMessage{Type: "request_matched"})
		assert.NoError(t, err)
	})
}

func TestHubBroadcast(t *testing.T) {
	hub := NewHub(time.Second, zap.NewNop())

	donor := dialTestClient(t, hub, "donor-1")
	facility := dialTestClient(t, hub, "facility-1")

	err := hub.Broadcast(models.PushMessage{Type: "refresh"})
	require.NoError(t, err)

	for _, client := range []*websocket.Conn{donor, facility} {
		message := readPushMessage(t, client)
		assert.Equal(t, "refresh", message.Type)
		assert.Empty(t, message.RequestID, "the refresh signal carries no payload")
	}
}

func TestHubUnregister(t *testing.T) {
	hub := NewHub(time.Second, zap.NewNop())

	unregistered := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ws, err := upgrader.Upgrade(w, r, nil)
		require.NoError(t, err)
		conn := hub.Register("donor-1", ws)
		hub.Unregister("donor-1", conn)
		close(unregistered)
	}))
	defer server.Close()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http")
	client, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer client.Close()

	select {
	case <-unregistered:
	case <-time.After(2 * time.Second):
		t.Fatal("handler never unregistered the connection")
	}

	err = hub.Publish("donor-1", models.PushMessage{Type: "request_matched"})
	assert.NoError(t, err, "publishing to an unregistered user is a no-op")

	client.SetReadDeadline(time.Now().Add(200 * time.Millisecond))
	_, _, err = client.ReadMessage()
	assert.Error(t, err, "no frame arrives after unregistration")
}
