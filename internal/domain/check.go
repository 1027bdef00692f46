package domain

import (
	"time"

	"github.com/google/uuid"
)

// Check is a single check-in entry recorded at the venue.
type Check struct {
	ID        uuid.UUID `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Number    string    `json:"number"`
	CreatedAt time.Time `json:"created_at"`
}
