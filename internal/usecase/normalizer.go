package usecase

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/cultural-sites-service/internal/domain"
)

// Rejection signals produced by the normalizer. Rejected features are
// skipped and counted by the import pipeline, never fatal to a batch.
var (
	ErrInvalidGeometry     = errors.New("feature has no valid two-element coordinate pair")
	ErrUnrecognizedFeature = errors.New("feature has neither a name nor a recognized tag group")
)

// tagGroups are the OSM classification keys inspected for category
// inference, in fixed order.
var tagGroups = []struct {
	key   string
	label string
}{
	{"tourism", "Tourism"},
	{"amenity", "Amenity"},
	{"historic", "Historic"},
	{"shop", "Shop"},
	{"leisure", "Leisure"},
}

// nameKeywords is the fallback keyword table scanned against the name
// when no tag group is present. First match wins.
var nameKeywords = []struct {
	keywords []string
	category string
	group    string
}{
	{[]string{"museum"}, "Museum", "Cultural"},
	{[]string{"theater", "theatre"}, "Theatre", "Cultural"},
	{[]string{"gallery", "kunst"}, "Art Gallery", "Cultural"},
	{[]string{"park"}, "Park", "Leisure"},
	{[]string{"restaurant", "cafe"}, "Restaurant", "Amenity"},
}

// metadataTags is the secondary tag bag carried alongside the core fields
var metadataTags = []string{
	"tourism", "amenity", "historic", "shop", "leisure",
	"cuisine", "capacity", "smoking", "outdoor_seating", "takeaway", "delivery",
}

// NormalizeFeature transforms one raw GeoJSON feature into a site record
// candidate, or returns a rejection signal. Pure: no I/O, no persistence.
func NormalizeFeature(f domain.Feature, fallbackAddress string) (*domain.SiteCandidate, error) {
	lon, lat, ok := f.Coordinates()
	if !ok {
		return nil, ErrInvalidGeometry
	}

	if !f.HasProp("name") && !hasTagGroup(f) {
		return nil, ErrUnrecognizedFeature
	}

	categories, types := inferCategories(f)

	name := f.Prop("name")
	if name == "" {
		name = fmt.Sprintf("%s (%s)", categories, types)
	}

	candidate := &domain.SiteCandidate{
		Name:        name,
		Description: buildDescription(f, categories, fallbackAddress),
		Latitude:    lat,
		Longitude:   lon,
		Category:    categories,
		Type:        types,
		Address:     buildAddress(f, fallbackAddress),
		Website:     NormalizeWebsite(f.Prop("website")),
		ImageUrl:    optProp(f, "image"),

		OSMId:        optProp(f, "@id"),
		OpeningHours: optProp(f, "opening_hours"),
		Wheelchair:   f.Prop("wheelchair") == "yes",
		Phone:        optProp(f, "phone"),
		Email:        optProp(f, "email"),
		Tags:         collectTags(f),
	}

	return candidate, nil
}

// inferCategories accumulates a label and group per present tag group;
// results concatenate with ", ". Falls back to a keyword scan of the
// name, then to "Point of Interest" / "Other".
func inferCategories(f domain.Feature) (string, string) {
	var categories, types []string

	for _, g := range tagGroups {
		if v := f.Prop(g.key); v != "" {
			categories = append(categories, titleCase(v))
			types = append(types, g.label)
		}
	}

	if len(categories) == 0 && f.HasProp("name") {
		name := strings.ToLower(f.Prop("name"))
	scan:
		for _, entry := range nameKeywords {
			for _, kw := range entry.keywords {
				if strings.Contains(name, kw) {
					categories = append(categories, entry.category)
					types = append(types, entry.group)
					break scan
				}
			}
		}
	}

	if len(categories) == 0 {
		categories = append(categories, "Point of Interest")
		types = append(types, "Other")
	}

	return strings.Join(categories, ", "), strings.Join(types, ", ")
}

// buildAddress joins the structured address parts in fixed order,
// skipping absent ones. All absent - use the configured fallback.
func buildAddress(f domain.Feature, fallback string) string {
	var parts []string
	for _, key := range []string{"addr:street", "addr:housenumber", "addr:postcode", "addr:city"} {
		if v := f.Prop(key); v != "" {
			parts = append(parts, v)
		}
	}

	if len(parts) == 0 {
		return fallback
	}
	return strings.Join(parts, ", ")
}

// buildDescription prefers an explicit description or wiki reference,
// otherwise synthesizes one from the name (or categories) and the
// locality of the fallback address.
func buildDescription(f domain.Feature, categories, fallbackAddress string) string {
	if v := f.Prop("description"); v != "" {
		return v
	}
	if v := f.Prop("wikipedia"); v != "" {
		return v
	}

	subject := f.Prop("name")
	if subject == "" {
		subject = categories
	}

	description := fmt.Sprintf("%s in %s.", subject, locality(fallbackAddress))
	if hours := f.Prop("opening_hours"); hours != "" {
		description += fmt.Sprintf(" Opening hours: %s", hours)
	}
	return description
}

// NormalizeWebsite trims the value, prepends https:// when no scheme is
// present and validates the result. An unparseable URL drops the field
// rather than rejecting the record.
func NormalizeWebsite(raw string) *string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	lower := strings.ToLower(raw)
	if !strings.HasPrefix(lower, "http://") && !strings.HasPrefix(lower, "https://") {
		raw = "https://" + raw
	}

	parsed, err := url.Parse(raw)
	if err != nil || parsed.Host == "" || !strings.Contains(parsed.Host, ".") {
		return nil
	}

	return &raw
}

func hasTagGroup(f domain.Feature) bool {
	for _, g := range tagGroups {
		if f.HasProp(g.key) {
			return true
		}
	}
	return false
}

// titleCase formats an OSM tag value: underscores become spaces, each
// word is capitalized ("fast_food" -> "Fast Food"). The first rune is
// decoded as UTF-8 so values like "über" survive intact.
func titleCase(v string) string {
	words := strings.Split(v, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}

// locality is the first segment of the fallback address
// ("Chemnitz, Germany" -> "Chemnitz")
func locality(fallbackAddress string) string {
	if idx := strings.Index(fallbackAddress, ","); idx >= 0 {
		return strings.TrimSpace(fallbackAddress[:idx])
	}
	return strings.TrimSpace(fallbackAddress)
}

func collectTags(f domain.Feature) map[string]string {
	tags := make(map[string]string)
	for _, key := range metadataTags {
		if v := f.Prop(key); v != "" {
			tags[key] = v
		}
	}
	if len(tags) == 0 {
		return nil
	}
	return tags
}

func optProp(f domain.Feature, key string) *string {
	if v := f.Prop(key); v != "" {
		return &v
	}
	return nil
}
