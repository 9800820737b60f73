package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foomo/resinaro/i18n"
	"github.com/foomo/resinaro/vo"
)

func testCategoryView(locale vo.Locale) CategoryView {
	return CategoryView{
		Meta: Meta{
			Title:       "Italian restaurants in London | Resinaro",
			Description: "desc",
			Canonical:   "https://resinaro.example/en/directory/london/restaurants",
			Locale:      locale,
			Alternates: []vo.Alternate{
				{HrefLang: "en", Href: "https://resinaro.example/en/directory/london/restaurants"},
				{HrefLang: "it", Href: "https://resinaro.example/it/directory/london/restaurants"},
			},
			LinkedData: [][]byte{[]byte(`{"@context":"https://schema.org","@type":"ItemList","name":"Trattoria \u003cX\u003e"}`)},
		},
		Copy:     i18n.Project(locale),
		Heading:  "Italian restaurants in London",
		Back:     Link{Href: "/en/directory/london", Label: "London"},
		Listings: []vo.Listing{
			{
				Slug:    "trattoria-x",
				Name:    "Trattoria X",
				Short:   "Roman classics",
				Address: "1 Via Roma",
				Phone:   "+44 20 0000",
				Tags:    []string{"pasta", "wine", "terrace", "late"},
				Website: "https://x.example/?a=1&b=2",
				MapsURL: "https://maps.example/x",
				Image:   "/images/x.jpg",
				Badges:  []vo.Badge{vo.BadgeEditorsPick},
				Review:  &vo.Review{Snippet: "Like nonna", Author: "Gio", Source: "Resinaro"},
			},
			{Slug: "bar-z", Name: "Bar Z", Short: "Espresso"},
		},
	}
}

func render(t *testing.T, r *Renderer, view CategoryView) *goquery.Document {
	t.Helper()
	buf := &bytes.Buffer{}
	require.NoError(t, r.Category(buf, view))
	doc, err := goquery.NewDocumentFromReader(buf)
	require.NoError(t, err)
	return doc
}

func TestCategoryPage(t *testing.T) {
	r, err := New(Options{NewsletterEndpoint: "https://news.example/subscribe"})
	require.NoError(t, err)
	doc := render(t, r, testCategoryView(vo.LocaleEN))

	assert.Equal(t, "en-GB", doc.Find("html").AttrOr("lang", ""))
	assert.Equal(t, "Italian restaurants in London | Resinaro", doc.Find("title").Text())
	assert.Equal(t, "https://resinaro.example/en/directory/london/restaurants", doc.Find(`link[rel="canonical"]`).AttrOr("href", ""))
	assert.Equal(t, 2, doc.Find(`link[rel="alternate"][hreflang]`).Length())
	assert.Equal(t, 1, doc.Find("h1").Length())

	scripts := doc.Find(`script[type="application/ld+json"]`)
	require.Equal(t, 1, scripts.Length())
	assert.Equal(t, `{"@context":"https://schema.org","@type":"ItemList","name":"Trattoria \u003cX\u003e"}`, scripts.Text())

	cards := doc.Find("li.listing")
	require.Equal(t, 2, cards.Length())
	first := cards.First()
	assert.Equal(t, "trattoria-x", first.AttrOr("id", ""))
	assert.Contains(t, first.Find(".rank").Text(), "#1")
	assert.Equal(t, "Editor's pick", first.Find(".badge").Text())
	assert.Equal(t, 3, first.Find(".tag").Length())
	assert.Equal(t, "https://x.example/?a=1&b=2", first.Find("a.website").AttrOr("href", ""))
	assert.Equal(t, "https://maps.example/x", first.Find("a.maps").AttrOr("href", ""))
	assert.Equal(t, "/images/x.jpg", first.Find("img").AttrOr("src", ""))
	assert.Equal(t, "Like nonna", strings.TrimSpace(first.Find(".review p").Text()))

	second := cards.Eq(1)
	assert.Contains(t, second.Find(".rank").Text(), "#2")
	assert.Equal(t, vo.ImageFallback, second.Find("img").AttrOr("src", ""))
	for _, absent := range []string{".address", ".phone", ".price", "a.website", "a.menu", "a.maps", ".badges", ".tags", ".review"} {
		assert.Equal(t, 0, second.Find(absent).Length(), absent)
	}

	form := doc.Find("form")
	require.Equal(t, 1, form.Length())
	assert.Equal(t, "POST", form.AttrOr("method", ""))
	assert.Equal(t, "https://news.example/subscribe", form.AttrOr("action", ""))
	inputs := form.Find("input")
	require.Equal(t, 1, inputs.Length())
	assert.Equal(t, "email", inputs.AttrOr("name", ""))
}

func TestNewsletterFallback(t *testing.T) {
	r, err := New(Options{})
	require.NoError(t, err)
	doc := render(t, r, testCategoryView(vo.LocaleIT))
	assert.Equal(t, NewsletterFallback, doc.Find("form").AttrOr("action", ""))
	assert.Equal(t, "it-IT", doc.Find("html").AttrOr("lang", ""))
	assert.Equal(t, "Scelto dalla redazione", doc.Find("li.listing .badge").First().Text())
}

func TestMinify(t *testing.T) {
	plain, err := New(Options{})
	require.NoError(t, err)
	minified, err := New(Options{Minify: true})
	require.NoError(t, err)

	plainBuf := &bytes.Buffer{}
	require.NoError(t, plain.Category(plainBuf, testCategoryView(vo.LocaleEN)))
	minifiedBuf := &bytes.Buffer{}
	require.NoError(t, minified.Category(minifiedBuf, testCategoryView(vo.LocaleEN)))
	assert.Less(t, minifiedBuf.Len(), plainBuf.Len())

	doc, err := goquery.NewDocumentFromReader(minifiedBuf)
	require.NoError(t, err)
	assert.Equal(t, 1, doc.Find("h1").Length())
	assert.Equal(t, 2, doc.Find("li.listing").Length())
	assert.Equal(t, "en-GB", doc.Find("html").AttrOr("lang", ""))
	assert.Equal(t, 1, doc.Find(`script[type="application/ld+json"]`).Length())
}

func TestIndexAndNotFound(t *testing.T) {
	r, err := New(Options{})
	require.NoError(t, err)
	copyBag := i18n.Project(vo.LocaleEN)

	buf := &bytes.Buffer{}
	require.NoError(t, r.Index(buf, IndexView{
		Meta:        Meta{Title: "Directory", Locale: vo.LocaleEN},
		Copy:        copyBag,
		Heading:     copyBag.Directory.Heading,
		ListHeading: copyBag.Directory.CitiesHeading,
		Links: []Link{
			{Href: "/en/directory/london", Label: "London", Count: 4},
			{Href: "/en/directory/manchester", Label: "Manchester", Count: 1},
		},
	}))
	doc, err := goquery.NewDocumentFromReader(buf)
	require.NoError(t, err)
	assert.Equal(t, 1, doc.Find("h1").Length())
	assert.Equal(t, 2, doc.Find("section.index li").Length())
	assert.Equal(t, 0, doc.Find("nav.breadcrumbs").Length())
	assert.Equal(t, len(copyBag.HowTo.Steps), doc.Find("section.howto li").Length())

	buf.Reset()
	require.NoError(t, r.NotFound(buf, NotFoundView{
		Meta: Meta{Title: copyBag.NotFound.Title, Locale: vo.LocaleEN},
		Copy: copyBag,
		Back: Link{Href: "/en/directory", Label: copyBag.NotFound.Back},
	}))
	doc, err = goquery.NewDocumentFromReader(buf)
	require.NoError(t, err)
	assert.Equal(t, copyBag.NotFound.Heading, doc.Find("h1").Text())
	assert.Equal(t, 0, doc.Find("form").Length())
}
