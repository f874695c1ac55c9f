package models

import "time"

// Session is issued by the identity collaborator and stored in Redis;
// this service only reads it.
type Session struct {
	SessionID string    `json:"session_id"`
	UserID    string    `json:"user_id"`
	Role      string    `json:"role"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (s *Session) IsFacility() bool {
	return s.Role == "facility"
}

func (s *Session) IsDonor() bool {
	return s.Role == "donor"
}
