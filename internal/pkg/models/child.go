package models

import (
	"time"

	"github.com/google/uuid"
)

// Child is a child record linked to a parent identity
type Child struct {
	ID        uuid.UUID `json:"id" db:"id"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	FirstName string    `json:"first_name" db:"first_name"`
	LastName  string    `json:"last_name" db:"last_name"`
	Gender    string    `json:"gender" db:"gender"`
	BirthDate string    `json:"birth_date" db:"birth_date"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// ChildInput is the payload for adding a child under a parent
type ChildInput struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name"`
	Gender    string `json:"gender"`
	BirthDate string `json:"birth_date"`
}
