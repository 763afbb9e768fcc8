// Package nlquery converts free-text rental queries into structured filter
// fragments using deterministic keyword and pattern rules. No inference is
// involved: the same input always produces the same result.
package nlquery

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/urbanest/rental-search/api/internal/gazetteer"
)

var (
	bhkPattern    = regexp.MustCompile(`(?i)([1-9])\s*bhk`)
	budgetPattern = regexp.MustCompile(`(?i)\bunder\s+(\d+)\s*k?\b`)
)

const (
	quietNoiseCeiling    = 50
	lowNoiseCeiling      = 55
	goodAirCeiling       = 60
	walkableFloor        = 70
	shorthandBudgetLimit = 1000
)

// Result is the partial filter set derived from free text. Pointer fields
// distinguish "not mentioned" from "explicitly set"; string fields use the
// empty string for absence.
type Result struct {
	BHKType        string
	MaxPrice       *int
	Locality       string
	MaxNoise       *int
	NearParks      *bool
	MaxAQI         *int
	MinWalkability *int
	PetFriendly    *bool
	Furnishing     string
}

// Empty reports whether no rule matched.
func (r Result) Empty() bool {
	return r.BHKType == "" && r.MaxPrice == nil && r.Locality == "" &&
		r.MaxNoise == nil && r.NearParks == nil && r.MaxAQI == nil &&
		r.MinWalkability == nil && r.PetFriendly == nil && r.Furnishing == ""
}

// Extract runs every rule over the query. Rules fire independently; malformed
// or empty input yields an empty Result, never an error.
func Extract(query string) Result {
	var res Result

	query = strings.TrimSpace(query)
	if query == "" {
		return res
	}
	lower := strings.ToLower(query)

	if m := bhkPattern.FindStringSubmatch(query); len(m) > 1 {
		res.BHKType = bhkLabel(m[1])
	}

	if m := budgetPattern.FindStringSubmatch(query); len(m) > 1 {
		if amount, err := strconv.Atoi(m[1]); err == nil {
			// Colloquial shorthand: "under 25" and "under 25k" both mean 25000.
			if amount <= shorthandBudgetLimit {
				amount *= 1000
			}
			res.MaxPrice = intPtr(amount)
		}
	}

	if locality, ok := gazetteer.Match(query); ok {
		res.Locality = locality
	}

	// "low noise" is checked after "quiet" and overwrites it when both appear.
	// Deliberate order dependency, pinned by tests.
	if strings.Contains(lower, "quiet") {
		res.MaxNoise = intPtr(quietNoiseCeiling)
	}
	if strings.Contains(lower, "low noise") {
		res.MaxNoise = intPtr(lowNoiseCeiling)
	}

	if strings.Contains(lower, "park") || strings.Contains(lower, "green") {
		res.NearParks = boolPtr(true)
	}

	if strings.Contains(lower, "good air") || strings.Contains(lower, "low aqi") {
		res.MaxAQI = intPtr(goodAirCeiling)
	}

	if strings.Contains(lower, "walkable") || strings.Contains(lower, "walking distance") {
		res.MinWalkability = intPtr(walkableFloor)
	}

	if strings.Contains(lower, "pet") || strings.Contains(lower, "dog") || strings.Contains(lower, "cat") {
		res.PetFriendly = boolPtr(true)
	}

	if strings.Contains(lower, "furnished") {
		// "unfurnished" contains "furnished", so it must be checked first.
		switch {
		case strings.Contains(lower, "unfurnished"):
			res.Furnishing = "unfurnished"
		case strings.Contains(lower, "semi"):
			res.Furnishing = "semi-furnished"
		default:
			res.Furnishing = "furnished"
		}
	}

	return res
}

// bhkLabel maps a leading digit to the UI's bedroom buckets. Four or more
// bedrooms collapse into the open-ended top bucket.
func bhkLabel(digit string) string {
	switch digit {
	case "1", "2", "3":
		return digit + "BHK"
	default:
		return "4BHK+"
	}
}

func intPtr(v int) *int    { return &v }
func boolPtr(v bool) *bool { return &v }
