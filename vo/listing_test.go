package vo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListingDisplayTags(t *testing.T) {
	l := Listing{Tags: []string{"pizza", "pasta", "wine", "gelato"}}
	assert.Equal(t, []string{"pizza", "pasta", "wine"}, l.DisplayTags())
	l.Tags = []string{"pizza"}
	assert.Equal(t, []string{"pizza"}, l.DisplayTags())
	assert.Empty(t, Listing{}.DisplayTags())
}

func TestListingURLs(t *testing.T) {
	l := Listing{MapsURL: "https://maps.example/x"}
	assert.Equal(t, "https://maps.example/x", l.PrimaryURL())
	assert.Equal(t, []string{"https://maps.example/x"}, l.SameAs())

	l.Website = "https://x.example"
	assert.Equal(t, "https://x.example", l.PrimaryURL())
	assert.Equal(t, []string{"https://x.example", "https://maps.example/x"}, l.SameAs())

	assert.Equal(t, []string{}, Listing{}.SameAs())
}

func TestListingImageOrFallback(t *testing.T) {
	assert.Equal(t, ImageFallback, Listing{}.ImageOrFallback())
	assert.Equal(t, "https://img.example/a.jpg", Listing{Image: "https://img.example/a.jpg"}.ImageOrFallback())
}

func TestListingClone(t *testing.T) {
	l := Listing{
		Slug:   "a",
		Tags:   []string{"x"},
		Badges: []Badge{BadgeCommunity},
		Review: &Review{Author: "Gio"},
	}
	c := l.Clone()
	c.Tags[0] = "y"
	c.Badges[0] = BadgeEditorsPick
	c.Review.Author = "Ada"
	assert.Equal(t, "x", l.Tags[0])
	assert.True(t, l.HasBadge(BadgeCommunity))
	assert.False(t, l.HasBadge(BadgeEditorsPick))
	assert.Equal(t, "Gio", l.Review.Author)
}

func TestBadgeValid(t *testing.T) {
	assert.True(t, BadgeEditorsPick.Valid())
	assert.True(t, BadgeHandChecked.Valid())
	assert.True(t, BadgeCommunity.Valid())
	assert.False(t, Badge("sponsored").Valid())
}
