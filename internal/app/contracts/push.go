package contracts

import (
	"lifelink-service/internal/app/models"
)

// PushBroker is the channel registry capability injected into fanout and
// the request usecase. Implementations must be safe for concurrent use
// and must never block a caller beyond a short write deadline.
type PushBroker interface {
	// Publish delivers to every registered connection of the user.
	// Zero registered connections is a no-op, not an error.
	Publish(userID string, message models.PushMessage) error

	// Broadcast delivers to all registered connections regardless of
	// identity. Used only for the payload-free refresh signal.
	Broadcast(message models.PushMessage) error
}
