package models

import "time"

// Notification is the durable fanout artifact. The push delivered through
// the hub is best-effort; this record is the authoritative fallback.
type Notification struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	RecipientID string    `json:"recipientId" bson:"recipientId"`
	Type        string    `json:"type" bson:"type"`
	Title       string    `json:"title" bson:"title"`
	Message     string    `json:"message" bson:"message"`
	RequestID   string    `json:"requestId,omitempty" bson:"requestId,omitempty"`
	IsRead      bool      `json:"isRead" bson:"isRead"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
}
