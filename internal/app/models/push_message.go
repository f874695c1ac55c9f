package models

// PushMessage is the wire schema delivered through the channel registry.
// A message with Type "refresh" carries no other fields.
type PushMessage struct {
	Type      string `json:"type"`
	Title     string `json:"title,omitempty"`
	Message   string `json:"message,omitempty"`
	RequestID string `json:"requestId,omitempty"`
}
