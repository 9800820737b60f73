package vo

type Badge string

const (
	BadgeEditorsPick Badge = "editors-pick"
	BadgeHandChecked Badge = "hand-checked"
	BadgeCommunity   Badge = "community"
)

// Valid reports whether b is one of the enumerated badges
func (b Badge) Valid() bool {
	switch b {
	case BadgeEditorsPick, BadgeHandChecked, BadgeCommunity:
		return true
	}
	return false
}

type Review struct {
	Snippet string `yaml:"snippet" json:"snippet"`
	Author  string `yaml:"author" json:"author"`
	Source  string `yaml:"source" json:"source"`
}

// Listing is one business in a (city, category) bucket. Slug is unique
// within its bucket, it is the anchor id on the page.
type Listing struct {
	Slug    string   `yaml:"slug" json:"slug"`
	Name    string   `yaml:"name" json:"name"`
	Short   string   `yaml:"short" json:"short"`
	Address string   `yaml:"address,omitempty" json:"address,omitempty"`
	Phone   string   `yaml:"phone,omitempty" json:"phone,omitempty"`
	Price   string   `yaml:"price,omitempty" json:"price,omitempty"`
	Tags    []string `yaml:"tags,omitempty" json:"tags,omitempty"`
	Website string   `yaml:"website,omitempty" json:"website,omitempty"`
	MenuURL string   `yaml:"menuUrl,omitempty" json:"menuUrl,omitempty"`
	MapsURL string   `yaml:"mapsUrl,omitempty" json:"mapsUrl,omitempty"`
	Image   string   `yaml:"image,omitempty" json:"image,omitempty"`
	Badges  []Badge  `yaml:"badges,omitempty" json:"badges,omitempty"`
	Review  *Review  `yaml:"review,omitempty" json:"review,omitempty"`
}

const (
	// ImageFallback is shown for listings without an image
	ImageFallback = "/images/directory/placeholder.jpg"
	// MaxDisplayTags on a listing card
	MaxDisplayTags = 3
)

func (l Listing) DisplayTags() []string {
	if len(l.Tags) > MaxDisplayTags {
		return l.Tags[:MaxDisplayTags]
	}
	return l.Tags
}

func (l Listing) ImageOrFallback() string {
	if l.Image != "" {
		return l.Image
	}
	return ImageFallback
}

// PrimaryURL is the website, the maps link otherwise
func (l Listing) PrimaryURL() string {
	if l.Website != "" {
		return l.Website
	}
	return l.MapsURL
}

// SameAs lists the present external profiles in a stable order
func (l Listing) SameAs() []string {
	sameAs := []string{}
	for _, u := range []string{l.Website, l.MapsURL} {
		if u != "" {
			sameAs = append(sameAs, u)
		}
	}
	return sameAs
}

func (l Listing) HasBadge(b Badge) bool {
	for _, lb := range l.Badges {
		if lb == b {
			return true
		}
	}
	return false
}

// Clone deep copies the slices and the review
func (l Listing) Clone() Listing {
	c := l
	if l.Tags != nil {
		c.Tags = append([]string(nil), l.Tags...)
	}
	if l.Badges != nil {
		c.Badges = append([]Badge(nil), l.Badges...)
	}
	if l.Review != nil {
		r := *l.Review
		c.Review = &r
	}
	return c
}
