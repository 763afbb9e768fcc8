package service

import (
	"strconv"
	"strings"

	"github.com/urbanest/rental-search/api/internal/dto"
)

// Declared ranges and defaults for bounded filter fields.
const (
	maxAQIFloor   = 0
	maxAQICeil    = 200
	maxAQIDefault = 100

	maxNoiseFloor   = 0
	maxNoiseCeil    = 100
	maxNoiseDefault = 70

	minWalkFloor   = 0
	minWalkCeil    = 100
	minWalkDefault = 50

	defaultPage    = 1
	defaultPerPage = 20
	maxPerPage     = 100
)

var bhkTypes = map[string]bool{
	"1BHK":  true,
	"2BHK":  true,
	"3BHK":  true,
	"4BHK+": true,
}

var propertyTypes = map[string]bool{
	"apartment":         true,
	"villa":             true,
	"independent_house": true,
	"pg":                true,
}

var furnishingValues = map[string]bool{
	"furnished":      true,
	"semi-furnished": true,
	"unfurnished":    true,
}

var sortValues = map[string]bool{
	"default":    true,
	"price_low":  true,
	"price_high": true,
	"recent":     true,
}

// NormalizeFilters converts raw UI filter state into a typed partial filter
// set. Unparsable numbers and unknown enum values degrade to "absent"; a
// reversed price range is swapped rather than rejected.
func NormalizeFilters(raw dto.RawFilters) dto.FilterSet {
	out := dto.FilterSet{
		City:         strings.TrimSpace(raw.City),
		Locality:     strings.TrimSpace(raw.Locality),
		MinPrice:     parsePrice(raw.MinPrice),
		MaxPrice:     parsePrice(raw.MaxPrice),
		BHKType:      normalizeEnum(strings.ToUpper(strings.TrimSpace(raw.BHKType)), bhkTypes),
		PropertyType: normalizeEnum(strings.ToLower(strings.TrimSpace(raw.PropertyType)), propertyTypes),
		Furnishing:   normalizeEnum(strings.ToLower(strings.TrimSpace(raw.Furnishing)), furnishingValues),
		SortBy:       normalizeEnum(strings.ToLower(strings.TrimSpace(raw.SortBy)), sortValues),
	}
	out.MinPrice, out.MaxPrice = orderedPrices(out.MinPrice, out.MaxPrice)
	return out
}

// NormalizeLifestyle clamps slider values into their declared ranges. Nil
// fields stay nil so the composer can tell untouched sliders apart.
func NormalizeLifestyle(panel dto.LifestylePanel) dto.LifestylePanel {
	out := dto.LifestylePanel{
		NearParks:   panel.NearParks,
		PetFriendly: panel.PetFriendly,
	}
	if panel.MaxAQI != nil {
		out.MaxAQI = intPtr(clampInt(*panel.MaxAQI, maxAQIFloor, maxAQICeil))
	}
	if panel.MaxNoise != nil {
		out.MaxNoise = intPtr(clampInt(*panel.MaxNoise, maxNoiseFloor, maxNoiseCeil))
	}
	if panel.MinWalkability != nil {
		out.MinWalkability = intPtr(clampInt(*panel.MinWalkability, minWalkFloor, minWalkCeil))
	}
	return out
}

func parsePrice(value string) *int {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return nil
	}
	if n < 0 {
		n = 0
	}
	return &n
}

func orderedPrices(minP, maxP *int) (*int, *int) {
	if minP != nil && maxP != nil && *minP > *maxP {
		return maxP, minP
	}
	return minP, maxP
}

func normalizeEnum(value string, allowed map[string]bool) string {
	if allowed[value] {
		return value
	}
	return ""
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func intPtr(v int) *int    { return &v }
func boolPtr(v bool) *bool { return &v }
