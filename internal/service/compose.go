package service

import (
	"strings"

	"github.com/urbanest/rental-search/api/internal/dto"
	"github.com/urbanest/rental-search/api/internal/service/nlquery"
)

const defaultCityFallback = "Bangalore"

// Composer merges the filter sources of one search action into a single
// FilterSet. Composition is a pure per-field last-write-wins merge: explicit
// UI filters are seeded first, the lifestyle panel is layered on top, and
// free-text extraction last, since the text box is the most recent intent
// when present.
type Composer struct {
	DefaultCity string
}

// NewComposer builds a composer with the platform default city.
func NewComposer(defaultCity string) *Composer {
	if strings.TrimSpace(defaultCity) == "" {
		defaultCity = defaultCityFallback
	}
	return &Composer{DefaultCity: defaultCity}
}

// ComposeInput carries the raw sources for one search action.
type ComposeInput struct {
	Filters   dto.RawFilters
	Lifestyle *dto.LifestylePanel
	Text      nlquery.Result
	Tier      string
	Page      *int
	Limit     *int
}

// Compose produces a fresh FilterSet. Absent fields fall back to their
// defaults, bounded fields are clamped, and for free-tier callers every
// lifestyle field is removed entirely so the dispatched request is
// indistinguishable from one that never set them.
func (cp *Composer) Compose(in ComposeInput) dto.FilterSet {
	out := NormalizeFilters(in.Filters)

	if in.Lifestyle != nil {
		panel := NormalizeLifestyle(*in.Lifestyle)
		if panel.MaxAQI != nil {
			out.MaxAQI = panel.MaxAQI
		}
		if panel.MaxNoise != nil {
			out.MaxNoise = panel.MaxNoise
		}
		if panel.MinWalkability != nil {
			out.MinWalkability = panel.MinWalkability
		}
		if panel.NearParks != nil {
			out.NearParks = panel.NearParks
		}
		if panel.PetFriendly != nil {
			out.PetFriendly = panel.PetFriendly
		}
	}

	overlayExtraction(&out, in.Text)
	out.MinPrice, out.MaxPrice = orderedPrices(out.MinPrice, out.MaxPrice)

	if out.City == "" {
		out.City = cp.DefaultCity
	}
	if out.SortBy == "" {
		out.SortBy = "default"
	}

	// A search action always restarts at the first page; only an explicit
	// pagination request carries a page forward.
	out.Page = defaultPage
	if in.Page != nil && *in.Page > 0 {
		out.Page = *in.Page
	}
	out.Limit = defaultPerPage
	if in.Limit != nil && *in.Limit > 0 {
		out.Limit = clampInt(*in.Limit, 1, maxPerPage)
	}

	if in.Tier == dto.TierPremium {
		fillLifestyleDefaults(&out)
	} else {
		stripLifestyle(&out)
	}

	return out
}

func overlayExtraction(out *dto.FilterSet, text nlquery.Result) {
	if text.BHKType != "" {
		out.BHKType = text.BHKType
	}
	if text.MaxPrice != nil {
		price := *text.MaxPrice
		if price < 0 {
			price = 0
		}
		out.MaxPrice = &price
	}
	if text.Locality != "" {
		out.Locality = text.Locality
	}
	if text.MaxNoise != nil {
		out.MaxNoise = intPtr(clampInt(*text.MaxNoise, maxNoiseFloor, maxNoiseCeil))
	}
	if text.NearParks != nil {
		out.NearParks = text.NearParks
	}
	if text.MaxAQI != nil {
		out.MaxAQI = intPtr(clampInt(*text.MaxAQI, maxAQIFloor, maxAQICeil))
	}
	if text.MinWalkability != nil {
		out.MinWalkability = intPtr(clampInt(*text.MinWalkability, minWalkFloor, minWalkCeil))
	}
	if text.PetFriendly != nil {
		out.PetFriendly = text.PetFriendly
	}
	if text.Furnishing != "" {
		out.Furnishing = text.Furnishing
	}
}

func fillLifestyleDefaults(out *dto.FilterSet) {
	if out.MaxAQI == nil {
		out.MaxAQI = intPtr(maxAQIDefault)
	}
	if out.MaxNoise == nil {
		out.MaxNoise = intPtr(maxNoiseDefault)
	}
	if out.MinWalkability == nil {
		out.MinWalkability = intPtr(minWalkDefault)
	}
	if out.NearParks == nil {
		out.NearParks = boolPtr(false)
	}
	if out.PetFriendly == nil {
		out.PetFriendly = boolPtr(false)
	}
}

func stripLifestyle(out *dto.FilterSet) {
	out.MaxAQI = nil
	out.MaxNoise = nil
	out.MinWalkability = nil
	out.NearParks = nil
	out.PetFriendly = nil
}
