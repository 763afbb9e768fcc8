package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// SavedSearch is a named filter set a renter can re-run later.
// Filters holds the composed filter document as stored, so re-running a
// saved search skips extraction and goes straight to dispatch.
type SavedSearch struct {
	ID        uuid.UUID       `json:"id"`
	UserID    uuid.UUID       `json:"user_id"`
	Name      string          `json:"name"`
	Filters   json.RawMessage `json:"filters"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
