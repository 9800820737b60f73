package audit

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/temoto/robotstxt"
)

func TestNormalizeLink(t *testing.T) {
	pageURL, err := url.Parse("https://resinaro.example/en/directory/london")
	require.NoError(t, err)
	for link, expected := range map[string]string{
		"/it/directory#top":                  "https://resinaro.example/it/directory",
		"london/restaurants":                 "https://resinaro.example/en/directory/london/restaurants",
		"//resinaro.example/en/directory":    "https://resinaro.example/en/directory",
		"https://x.example":                  "https://x.example/",
		"mailto:ciao@resinaro.example":       "mailto:ciao@resinaro.example",
		"?page=2":                            "https://resinaro.example/en/directory/london?page=2",
		"https://resinaro.example/en/a?b=c#d": "https://resinaro.example/en/a?b=c",
	} {
		normalized, errNormalize := normalizeLink(pageURL, link)
		require.NoError(t, errNormalize, link)
		assert.Equal(t, expected, normalized.String(), link)
	}
}

func TestFilterLinks(t *testing.T) {
	pageURL, err := url.Parse("https://resinaro.example/en/directory")
	require.NoError(t, err)
	robotsData, err := robotstxt.FromString("User-agent: *\nDisallow: /api/\n")
	require.NoError(t, err)
	linkList := map[string]int{
		"/en/directory/london":                    1,
		"/en/directory/london#trattoria-x":        2,
		"https://x.example/menu":                  1,
		"/api/en/directory/london/restaurants":    1,
		"/admin/login":                            1,
		"/en/directory/london/restaurants?utm=x":  1,
		"/en/directory/london/restaurants":        1,
		"/en/directory/london/restaurants/deeper": 1,
		"/en/directory?page=2":                    1,
		"tel:+44200000":                           1,
	}
	links := filterLinks(
		linkList,
		pageURL,
		"https://resinaro.example/en/directory?page=2",
		"",
		linkLimitations{
			depth:               4,
			includePathPrefixes: []string{"/en/directory", "/api"},
			ignoreQueriesWith:   []string{"utm"},
		},
		robotsData.FindGroup("resinaro-audit"),
	)
	assert.Equal(t, map[string]int{
		"https://resinaro.example/en/directory/london":             3,
		"https://resinaro.example/en/directory/london/restaurants": 1,
	}, links)
}
