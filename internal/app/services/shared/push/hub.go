package push

import (
	"lifelink-service/internal/app/contracts"
	"lifelink-service/internal/app/models"
	"lifelink-service/internal/pkg/constvars"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// connection pairs a websocket with its own write lock. Gorilla permits
// only one concurrent writer per connection.
type connection struct {
	ws *websocket.Conn
	mu sync.Mutex
}

func (c *connection) write(messageType int, payload []byte, deadline time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ws.SetWriteDeadline(time.Now().Add(deadline))
	return c.ws.WriteMessage(messageType, payload)
}

// Hub is the in-process channel registry. A user may hold several live
// connections at once (multiple devices); each registered connection
// receives every message addressed to that user.
type Hub struct {
	mu           sync.RWMutex
	clients      map[string][]*connection
	writeTimeout time.Duration
	log          *zap.Logger
}

func NewHub(writeTimeout time.Duration, logger *zap.Logger) *Hub {
	return &Hub{
		clients:      make(map[string][]*connection),
		writeTimeout: writeTimeout,
		log:          logger,
	}
}

var _ contracts.PushBroker = (*Hub)(nil)

func (h *Hub) Register(userID string, ws *websocket.Conn) *connection {
	conn := &connection{ws: ws}
	h.mu.Lock()
	h.clients[userID] = append(h.clients[userID], conn)
	total := len(h.clients[userID])
	h.mu.Unlock()

	h.log.Info("websocket client registered",
		zap.String(constvars.LoggingUserIDKey, userID),
		zap.Int(constvars.LoggingConnectionsKey, total),
	)
	return conn
}

func (h *Hub) Unregister(userID string, conn *connection) {
	h.mu.Lock()
	conns := h.clients[userID]
	for i, candidate := range conns {
		if candidate == conn {
			conns = append(conns[:i], conns[i+1:]...)
			break
		}
	}
	if len(conns) == 0 {
		delete(h.clients, userID)
	} else {
		h.clients[userID] = conns
	}
	h.mu.Unlock()

	h.log.Info("websocket client unregistered",
		zap.String(constvars.LoggingUserIDKey, userID),
	)
}

// Publish delivers to every registered connection of the user. A user
// with no live connection is a no-op; the durable notification already
// covers them.
func (h *Hub) Publish(userID string, message models.PushMessage) error {
	payload, err := json.Marshal(message)
	if err != nil {
		return err
	}

	h.mu.RLock()
	conns := make([]*connection, len(h.clients[userID]))
	copy(conns, h.clients[userID])
	h.mu.RUnlock()

	for _, conn := range conns {
		if err := conn.write(websocket.TextMessage, payload, h.writeTimeout); err != nil {
			h.log.Warn("websocket push failed",
				zap.String(constvars.LoggingUserIDKey, userID),
				zap.Error(err),
			)
		}
	}
	return nil
}

// Broadcast delivers to every registered connection regardless of
// identity. The payload never carries request details.
func (h *Hub) Broadcast(message models.PushMessage) error {
	payload, err := json.Marshal(message)
	if err != nil {
		return err
	}

	h.mu.RLock()
	conns := make([]*connection, 0, len(h.clients))
	for _, userConns := range h.clients {
		conns = append(conns, userConns...)
	}
	h.mu.RUnlock()

	for _, conn := range conns {
		if err := conn.write(websocket.TextMessage, payload, h.writeTimeout); err != nil {
			h.log.Warn("websocket broadcast write failed", zap.Error(err))
		}
	}
	return nil
}
