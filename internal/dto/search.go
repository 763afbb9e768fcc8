package dto

import "encoding/json"

// UserTier values carried in JWT claims.
const (
	TierFree    = "free"
	TierPremium = "premium"
)

// RawFilters is the explicit filter-panel state as submitted by UI controls.
// Numeric fields arrive as strings because form inputs do; the normalizer
// parses them and drops anything unparsable.
type RawFilters struct {
	City         string `json:"city,omitempty"`
	Locality     string `json:"locality,omitempty"`
	MinPrice     string `json:"min_price,omitempty"`
	MaxPrice     string `json:"max_price,omitempty"`
	BHKType      string `json:"bhk_type,omitempty"`
	PropertyType string `json:"property_type,omitempty"`
	Furnishing   string `json:"furnishing,omitempty"`
	SortBy       string `json:"sort_by,omitempty"`
}

// LifestylePanel is the premium slider panel state. Values are clamped by the
// normalizer; nil means the slider was not touched.
type LifestylePanel struct {
	MaxAQI         *int  `json:"max_aqi,omitempty"`
	MaxNoise       *int  `json:"max_noise,omitempty"`
	MinWalkability *int  `json:"min_walkability,omitempty"`
	NearParks      *bool `json:"near_parks,omitempty"`
	PetFriendly    *bool `json:"pet_friendly,omitempty"`
}

// SearchRequest is the payload for POST /search. Query is optional free text;
// Page is set only for explicit pagination of an unchanged search.
type SearchRequest struct {
	Query     string          `json:"query,omitempty"`
	Filters   RawFilters      `json:"filters"`
	Lifestyle *LifestylePanel `json:"lifestyle,omitempty"`
	Page      *int            `json:"page,omitempty"`
	Limit     *int            `json:"limit,omitempty"`
}

// FilterSet is the canonical structured query sent to the search-execution
// service. Pointer fields are omitted from the wire when absent, which is how
// free-tier requests stay indistinguishable from ones that never set a
// lifestyle field.
type FilterSet struct {
	City           string `json:"city"`
	Locality       string `json:"locality,omitempty"`
	MinPrice       *int   `json:"min_price,omitempty"`
	MaxPrice       *int   `json:"max_price,omitempty"`
	BHKType        string `json:"bhk_type,omitempty"`
	PropertyType   string `json:"property_type,omitempty"`
	Furnishing     string `json:"furnishing,omitempty"`
	SortBy         string `json:"sort_by"`
	MaxAQI         *int   `json:"max_aqi,omitempty"`
	MaxNoise       *int   `json:"max_noise,omitempty"`
	MinWalkability *int   `json:"min_walkability,omitempty"`
	NearParks      *bool  `json:"near_parks,omitempty"`
	PetFriendly    *bool  `json:"pet_friendly,omitempty"`
	Page           int    `json:"page"`
	Limit          int    `json:"limit"`
}

// SearchOutcome is the search-execution service's reply. Property records pass
// through untouched.
type SearchOutcome struct {
	Properties []json.RawMessage `json:"properties"`
	TotalCount int               `json:"total_count"`
	HasMore    bool              `json:"has_more"`
}

// SearchResponse is returned to the client alongside the filters that were
// actually dispatched, so the UI can reflect the interpreted query.
type SearchResponse struct {
	Filters    FilterSet         `json:"filters"`
	Properties []json.RawMessage `json:"properties"`
	TotalCount int               `json:"total_count"`
	HasMore    bool              `json:"has_more"`
}
