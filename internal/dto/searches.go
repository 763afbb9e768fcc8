package dto

import "encoding/json"

// SaveSearchRequest names a filter set for later reuse.
type SaveSearchRequest struct {
	Name    string          `json:"name"`
	Filters json.RawMessage `json:"filters"`
}

// SavedSearchResponse represents a stored search returned to clients.
type SavedSearchResponse struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Filters json.RawMessage `json:"filters"`
}
