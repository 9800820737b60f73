// Package render turns resolved directory pages into html. It knows nothing
// about routing or the store, the caller hands in fully resolved views.
package render

import (
	"bytes"
	"embed"
	"html/template"
	"io"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/html"

	"github.com/foomo/resinaro/i18n"
	"github.com/foomo/resinaro/vo"
)

//go:embed templates/*.html
var templateFS embed.FS

const mimeHTML = "text/html"

// NewsletterFallback is the form action when no endpoint is configured
const NewsletterFallback = "#"

type Options struct {
	NewsletterEndpoint string
	Minify             bool
}

type Renderer struct {
	templates  *template.Template
	newsletter string
	minifier   *minify.M
}

func New(options Options) (r *Renderer, err error) {
	templates, errParse := template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
	if errParse != nil {
		return nil, errParse
	}
	r = &Renderer{
		templates:  templates,
		newsletter: options.NewsletterEndpoint,
	}
	if r.newsletter == "" {
		r.newsletter = NewsletterFallback
	}
	if options.Minify {
		r.minifier = minify.New()
		r.minifier.Add(mimeHTML, &html.Minifier{
			KeepDefaultAttrVals: true,
			KeepDocumentTags:    true,
			KeepEndTags:         true,
			KeepQuotes:          true,
		})
	}
	return r, nil
}

// Meta is everything that goes into <head>
type Meta struct {
	Title       string
	Description string
	Canonical   string
	Robots      string
	Locale      vo.Locale
	Alternates  []vo.Alternate
	// LinkedData are marshalled json-ld documents
	LinkedData [][]byte
}

type Link struct {
	Href  string
	Label string
	Count int
}

// CategoryView is a ranked list of listings in one city
type CategoryView struct {
	Meta
	Copy          i18n.CopyBag
	Heading       string
	Intro         string
	Back          Link
	OtherLanguage Link
	Listings      []vo.Listing
}

// IndexView lists links, the cities of the directory or the categories of
// a city.
type IndexView struct {
	Meta
	Copy          i18n.CopyBag
	Heading       string
	Intro         string
	ListHeading   string
	Links         []Link
	Back          *Link
	OtherLanguage Link
}

type NotFoundView struct {
	Meta
	Copy i18n.CopyBag
	Back Link
}

type page struct {
	View       any
	Newsletter string
}

func (r *Renderer) Category(w io.Writer, view CategoryView) error {
	return r.execute(w, "category.html", view)
}

func (r *Renderer) Index(w io.Writer, view IndexView) error {
	return r.execute(w, "index.html", view)
}

func (r *Renderer) NotFound(w io.Writer, view NotFoundView) error {
	return r.execute(w, "notfound.html", view)
}

func (r *Renderer) execute(w io.Writer, name string, view any) error {
	buf := &bytes.Buffer{}
	if errExecute := r.templates.ExecuteTemplate(buf, name, page{View: view, Newsletter: r.newsletter}); errExecute != nil {
		return errExecute
	}
	if r.minifier != nil {
		return r.minifier.Minify(mimeHTML, w, buf)
	}
	_, errWrite := buf.WriteTo(w)
	return errWrite
}
