// Package store holds the directory listings as an immutable snapshot that
// is loaded once and read by any number of requests.
package store

import (
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/foomo/resinaro/vo"
)

var (
	ErrEmptySlug     = errors.New("listing without slug")
	ErrEmptyName     = errors.New("listing without name")
	ErrDuplicateSlug = errors.New("duplicate slug")
	ErrInvalidBadge  = errors.New("invalid badge")
	ErrInvalidURL    = errors.New("invalid url")
	ErrDuplicateKey  = errors.New("duplicate bucket")
)

// Buckets is the raw shape of the data: city -> category -> listings
type Buckets map[string]map[string][]vo.Listing

// Store is read only after New returned, it needs no locking
type Store struct {
	buckets Buckets
	cities  []string
}

// New validates the buckets and takes a deep copy of them. City and
// category keys are stored the way Key normalizes path segments, two keys
// that only differ in case are a load error.
func New(buckets Buckets) (s *Store, err error) {
	s = &Store{
		buckets: make(Buckets, len(buckets)),
	}
	for rawCity, categories := range buckets {
		city := lower(rawCity)
		copied, ok := s.buckets[city]
		if !ok {
			copied = make(map[string][]vo.Listing, len(categories))
			s.buckets[city] = copied
			s.cities = append(s.cities, city)
		}
		for rawCategory, listings := range categories {
			category := lower(rawCategory)
			if _, exists := copied[category]; exists {
				return nil, fmt.Errorf("%s/%s: %w", rawCity, rawCategory, ErrDuplicateKey)
			}
			if errValidate := validateBucket(city, category, listings); errValidate != nil {
				return nil, errValidate
			}
			bucket := make([]vo.Listing, len(listings))
			for i, l := range listings {
				bucket[i] = l.Clone()
			}
			copied[category] = bucket
		}
	}
	sort.Strings(s.cities)
	return s, nil
}

func validateBucket(city, category string, listings []vo.Listing) error {
	slugs := make(map[string]int, len(listings))
	for i, l := range listings {
		where := fmt.Sprint(city, "/", category, "[", i, "]")
		if l.Slug == "" {
			return fmt.Errorf("%s: %w", where, ErrEmptySlug)
		}
		if l.Name == "" {
			return fmt.Errorf("%s %q: %w", where, l.Slug, ErrEmptyName)
		}
		if first, ok := slugs[l.Slug]; ok {
			return fmt.Errorf("%s %q already used at index %d: %w", where, l.Slug, first, ErrDuplicateSlug)
		}
		slugs[l.Slug] = i
		for _, b := range l.Badges {
			if !b.Valid() {
				return fmt.Errorf("%s %q badge %q: %w", where, l.Slug, b, ErrInvalidBadge)
			}
		}
		for _, field := range [][2]string{{"website", l.Website}, {"mapsUrl", l.MapsURL}, {"menuUrl", l.MenuURL}} {
			if field[1] != "" && !absoluteURL(field[1]) {
				return fmt.Errorf("%s %q %s %q: %w", where, l.Slug, field[0], field[1], ErrInvalidURL)
			}
		}
		// images may live on the site itself
		if l.Image != "" && !absoluteURL(l.Image) && !sitePath(l.Image) {
			return fmt.Errorf("%s %q image %q: %w", where, l.Slug, l.Image, ErrInvalidURL)
		}
	}
	return nil
}

// absoluteURL accepts http and https urls with a host, the only links the
// structured data may carry
func absoluteURL(raw string) bool {
	u, errParse := url.Parse(raw)
	if errParse != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func sitePath(raw string) bool {
	return strings.HasPrefix(raw, "/") && !strings.HasPrefix(raw, "//")
}

// Lookup returns the listings of a bucket in source order. ok is false when
// the bucket does not exist or is empty.
func (s *Store) Lookup(city, category string) (listings []vo.Listing, ok bool) {
	bucket := s.buckets[city][category]
	if len(bucket) == 0 {
		return nil, false
	}
	listings = make([]vo.Listing, len(bucket))
	for i, l := range bucket {
		listings[i] = l.Clone()
	}
	return listings, true
}

// Cities with at least one non empty bucket, sorted
func (s *Store) Cities() []string {
	cities := []string{}
	for _, city := range s.cities {
		if len(s.Categories(city)) > 0 {
			cities = append(cities, city)
		}
	}
	return cities
}

// HasCity is true when the city has at least one non empty bucket
func (s *Store) HasCity(city string) bool {
	return len(s.Categories(city)) > 0
}

// Categories of a city that have listings. Known categories come first in
// navigation order, unknown keys follow sorted.
func (s *Store) Categories(city string) []string {
	categories := []string{}
	bucketKeys := s.buckets[city]
	for _, c := range vo.Categories {
		if len(bucketKeys[string(c)]) > 0 {
			categories = append(categories, string(c))
		}
	}
	unknown := []string{}
	for key, listings := range bucketKeys {
		if len(listings) > 0 && !vo.Category(key).Known() {
			unknown = append(unknown, key)
		}
	}
	sort.Strings(unknown)
	return append(categories, unknown...)
}

// Count of all listings in the store
func (s *Store) Count() (n int) {
	for _, categories := range s.buckets {
		for _, listings := range categories {
			n += len(listings)
		}
	}
	return
}
