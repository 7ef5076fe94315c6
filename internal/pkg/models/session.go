package models

import (
	"time"

	"github.com/google/uuid"
)

// EventType classifies why an access token was issued
type EventType string

const (
	EventLogin       EventType = "LOGIN"
	EventSetPassword EventType = "SET_PASSWORD"
)

// SessionEvent is one logged token issuance for a (user, role) pair.
// At most one event per pair is active; recording a new one deactivates
// the rest.
type SessionEvent struct {
	ID          uuid.UUID `json:"id" db:"id"`
	UserID      uuid.UUID `json:"user_id" db:"user_id"`
	Role        Role      `json:"role" db:"role"`
	AccessToken string    `json:"access_token" db:"access_token"`
	EventType   EventType `json:"event_type" db:"event_type"`
	Active      bool      `json:"active" db:"active"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
