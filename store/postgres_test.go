package store

import (
	"context"
	"errors"
	"testing"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foomo/resinaro/vo"
)

func listingRows() *pgxmock.Rows {
	return pgxmock.NewRows([]string{
		"city", "category", "slug", "name", "short", "address", "phone", "price", "tags",
		"website", "menu_url", "maps_url", "image", "badges",
		"review_snippet", "review_author", "review_source",
	})
}

func TestListingsQuery(t *testing.T) {
	query, args, err := listingsQuery()
	require.NoError(t, err)
	assert.Contains(t, query, "FROM listings WHERE published = $1 ORDER BY city, category, position")
	assert.Equal(t, []any{true}, args)
}

func TestLoadPostgres(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("SELECT (.+) FROM listings").
		WithArgs(true).
		WillReturnRows(listingRows().
			AddRow("London", "Restaurants", "trattoria-x", "Trattoria X", "Roman food", "", "", "££", []string{"roman"},
				"https://x.example", "", "", "", []string{"editors-pick"},
				"great", "Gio", "Resinaro").
			AddRow("london", "restaurants", "pizzeria-y", "Pizzeria Y", "", "", "", "", []string{},
				"", "", "https://maps.example/y", "", []string{},
				"", "", ""))

	s, err := LoadPostgres(context.Background(), mock)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())

	listings, ok := s.Lookup("london", "restaurants")
	require.True(t, ok)
	require.Len(t, listings, 2)
	assert.Equal(t, vo.Listing{
		Slug:    "trattoria-x",
		Name:    "Trattoria X",
		Short:   "Roman food",
		Price:   "££",
		Tags:    []string{"roman"},
		Website: "https://x.example",
		Badges:  []vo.Badge{vo.BadgeEditorsPick},
		Review:  &vo.Review{Snippet: "great", Author: "Gio", Source: "Resinaro"},
	}, listings[0])
	assert.Nil(t, listings[1].Review)
	assert.Nil(t, listings[1].Tags)
	assert.Equal(t, "https://maps.example/y", listings[1].MapsURL)
}

func TestLoadPostgresQueryError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("SELECT (.+) FROM listings").
		WithArgs(true).
		WillReturnError(errors.New("connection refused"))

	_, err = LoadPostgres(context.Background(), mock)
	assert.ErrorContains(t, err, "connection refused")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadPostgresInvalidData(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("SELECT (.+) FROM listings").
		WithArgs(true).
		WillReturnRows(listingRows().
			AddRow("london", "shops", "a", "A", "", "", "", "", []string{}, "", "", "", "", []string{}, "", "", "").
			AddRow("london", "shops", "a", "A again", "", "", "", "", []string{}, "", "", "", "", []string{}, "", "", ""))

	_, err = LoadPostgres(context.Background(), mock)
	assert.ErrorIs(t, err, ErrDuplicateSlug)
}
