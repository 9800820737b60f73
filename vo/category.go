package vo

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Category of a directory bucket. Values outside the known set are carried
// around as raw keys, see Known.
type Category string

const (
	CategoryRestaurants Category = "restaurants"
	CategoryDelis       Category = "delis"
	CategoryShops       Category = "shops"
)

// Categories known to the directory in navigation order
var Categories = []Category{CategoryRestaurants, CategoryDelis, CategoryShops}

const (
	SchemaTypeRestaurant    = "Restaurant"
	SchemaTypeStore         = "Store"
	SchemaTypeLocalBusiness = "LocalBusiness"
)

// NormalizeCategory accepts exactly the lowercase category keys. Anything
// else is reported as not ok, callers still use the raw key for lookups.
func NormalizeCategory(raw string) (c Category, ok bool) {
	switch Category(raw) {
	case CategoryRestaurants:
		return CategoryRestaurants, true
	case CategoryDelis:
		return CategoryDelis, true
	case CategoryShops:
		return CategoryShops, true
	}
	return "", false
}

func (c Category) Known() bool {
	_, ok := NormalizeCategory(string(c))
	return ok
}

// Label is the non localized fallback label: the raw key in title case
func (c Category) Label() string {
	return TitleCase(string(c))
}

// SchemaType selects the schema.org LocalBusiness subtype for listings of
// this category.
func (c Category) SchemaType() string {
	switch c {
	case CategoryRestaurants, CategoryDelis:
		return SchemaTypeRestaurant
	case CategoryShops:
		return SchemaTypeStore
	default:
		// unknown buckets are never specialised
		return SchemaTypeLocalBusiness
	}
}

// ServesCuisine is only set for restaurant typed businesses
func (c Category) ServesCuisine() string {
	if c.SchemaType() == SchemaTypeRestaurant {
		return "Italian"
	}
	return ""
}

// TitleCase turns slugs like "milton-keynes" into "Milton Keynes"
func TitleCase(slug string) string {
	runes := []rune(slug)
	for i, r := range runes {
		if r == '-' || r == '_' {
			runes[i] = ' '
		}
	}
	// a Caser keeps state, one per call
	return cases.Title(language.Und).String(string(runes))
}
