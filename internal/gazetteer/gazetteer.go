package gazetteer

import "strings"

// localities is the fixed list of recognized locality names. Iteration order is
// part of the matching contract: when a query mentions several localities, the
// one appearing latest in this list wins.
var localities = []string{
	"indiranagar",
	"koramangala",
	"whitefield",
	"hsr layout",
	"jayanagar",
	"electronic city",
	"marathahalli",
	"hebbal",
	"jp nagar",
	"btm layout",
	"malleshwaram",
	"rajajinagar",
	"yelahanka",
	"sarjapur road",
	"bellandur",
	"banashankari",
	"bannerghatta road",
	"kr puram",
	"mg road",
	"frazer town",
}

// Canonical returns the title-cased form used in filters and responses.
func Canonical(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	parts := strings.Fields(strings.ToLower(name))
	for i, p := range parts {
		if isInitialism(p) {
			parts[i] = strings.ToUpper(p)
			continue
		}
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, " ")
}

// Match scans the text for known localities using case-insensitive substring
// matching and returns the canonical form of the last entry (in list order)
// that appears. The second return reports whether anything matched.
func Match(text string) (string, bool) {
	lower := strings.ToLower(text)
	found := ""
	for _, name := range localities {
		if strings.Contains(lower, name) {
			found = name
		}
	}
	if found == "" {
		return "", false
	}
	return Canonical(found), true
}

// Suggest returns canonical locality names starting with the given prefix, in
// list order, capped at limit. An empty prefix returns the first limit entries.
func Suggest(prefix string, limit int) []string {
	if limit <= 0 {
		limit = 10
	}
	prefix = strings.ToLower(strings.TrimSpace(prefix))
	var out []string
	for _, name := range localities {
		if prefix != "" && !strings.HasPrefix(name, prefix) {
			continue
		}
		out = append(out, Canonical(name))
		if len(out) >= limit {
			break
		}
	}
	return out
}

// All returns every known locality in canonical form, preserving list order.
func All() []string {
	out := make([]string, 0, len(localities))
	for _, name := range localities {
		out = append(out, Canonical(name))
	}
	return out
}

func isInitialism(token string) bool {
	switch token {
	case "hsr", "btm", "jp", "kr", "mg":
		return true
	}
	return false
}
