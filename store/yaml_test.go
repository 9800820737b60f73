package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foomo/resinaro/vo"
)

const listingsYAML = `
---
cities:
  london:
    restaurants:
      - slug: trattoria-x
        name: Trattoria X
        website: https://x.example
        tags: [roman, pasta]
        badges: [editors-pick]
        review:
          snippet: great
          author: Gio
          source: Resinaro
      - slug: pizzeria-y
        name: Pizzeria Y
        mapsUrl: https://maps.example/y
...
`

func TestLoad(t *testing.T) {
	s, err := Load([]byte(listingsYAML))
	require.NoError(t, err)
	listings, ok := s.Lookup("london", "restaurants")
	require.True(t, ok)
	require.Len(t, listings, 2)
	assert.Equal(t, vo.Listing{
		Slug:    "trattoria-x",
		Name:    "Trattoria X",
		Website: "https://x.example",
		Tags:    []string{"roman", "pasta"},
		Badges:  []vo.Badge{vo.BadgeEditorsPick},
		Review:  &vo.Review{Snippet: "great", Author: "Gio", Source: "Resinaro"},
	}, listings[0])
	assert.Equal(t, "https://maps.example/y", listings[1].MapsURL)
}

func TestLoadMixedCaseKeys(t *testing.T) {
	s, err := Load([]byte(`
cities:
  London:
    Restaurants:
      - slug: trattoria-x
        name: Trattoria X
`))
	require.NoError(t, err)
	listings, ok := s.Lookup("london", "restaurants")
	require.True(t, ok)
	assert.Equal(t, "trattoria-x", listings[0].Slug)
	_, ok = s.Lookup("London", "Restaurants")
	assert.False(t, ok)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load([]byte("cities: [this is not a map"))
	assert.Error(t, err)

	_, err = Load([]byte(`
cities:
  london:
    shops:
      - slug: a
        name: A
      - slug: a
        name: B
`))
	assert.ErrorIs(t, err, ErrDuplicateSlug)
}

func TestLoadFile(t *testing.T) {
	s, err := LoadFile(getDataDir("listings.yaml"))
	require.NoError(t, err)
	assert.Equal(t, []string{"london", "manchester"}, s.Cities())
	_, ok := s.Lookup("manchester", "shops")
	assert.False(t, ok)
	listings, ok := s.Lookup("london", "restaurants")
	require.True(t, ok)
	assert.Equal(t, "trattoria-da-gianni", listings[0].Slug)

	_, err = LoadFile(getDataDir("does-not-exist.yaml"))
	assert.Error(t, err)
}
