package db

import (
	"time"

	"github.com/google/uuid"
)

// Session represents a stored analysis session
type Session struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// StoredZone represents a persisted tagged zone belonging to a session.
// Position mirrors the zone's index in the session registry.
type StoredZone struct {
	ID        uuid.UUID `json:"id"`
	SessionID uuid.UUID `json:"session_id"`
	Position  int       `json:"position"`
	Text      string    `json:"text"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"created_at"`
}
