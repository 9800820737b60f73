package resinaro

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/foomo/resinaro/i18n"
	"github.com/foomo/resinaro/jsonld"
	"github.com/foomo/resinaro/render"
	"github.com/foomo/resinaro/store"
	"github.com/foomo/resinaro/vo"
)

// ErrNotFound is the only user visible error: nothing to show for a
// (city, category) pair or an unknown city
var ErrNotFound = errors.New("not found")

type PageKind string

const (
	PageKindCategory  PageKind = "category"
	PageKindCity      PageKind = "city"
	PageKindDirectory PageKind = "directory"
	PageKindNotFound  PageKind = "notfound"
)

// Page is a resolved directory page, ready to be rendered or served as json
type Page struct {
	Kind        PageKind
	Locale      vo.Locale
	City        string
	Category    vo.Category
	Copy        i18n.CopyBag
	Listings    []vo.Listing
	Documents   []jsonld.Document
	Validations vo.Validations
	Meta        render.Meta
	Heading     string
	Intro       string
	Links       []render.Link
}

type Service struct {
	store    *store.Store
	builder  *jsonld.Builder
	renderer *render.Renderer
	metrics  *Metrics
	logger   *slog.Logger
}

func NewService(listings *store.Store, baseURL string, renderer *render.Renderer, metrics *Metrics, logger *slog.Logger) *Service {
	return &Service{
		store:    listings,
		builder:  jsonld.NewBuilder(baseURL),
		renderer: renderer,
		metrics:  metrics,
		logger:   logger,
	}
}

// Resolve runs a category page request: locale and category are resolved
// independently, the store is asked for the bucket and an absent or empty
// bucket ends in ErrNotFound. city and category are expected lowercase.
func (s *Service) Resolve(ctx context.Context, rawLocale, city, category string) (*Page, error) {
	ctx, span := otel.Tracer("DirectoryService").Start(ctx, "Resolve")
	defer span.End()

	l := s.logger.With(slog.String("method", "Resolve"), slog.String("city", city), slog.String("category", category))

	locale := s.resolveLocale(ctx, l, rawLocale)
	resolvedCategory, known := vo.NormalizeCategory(category)
	if !known {
		// unknown keys are still looked up
		resolvedCategory = vo.Category(category)
		l.DebugContext(ctx, "unknown category")
	}
	span.SetAttributes(
		attribute.String("directory.locale", locale.String()),
		attribute.String("directory.city", city),
		attribute.String("directory.category", category),
		attribute.Bool("directory.category.known", known),
	)

	listings, ok := s.store.Lookup(city, string(resolvedCategory))
	if !ok {
		s.metrics.notFound.Inc()
		span.SetAttributes(attribute.Bool("directory.found", false))
		span.SetStatus(codes.Ok, "nothing listed")
		l.InfoContext(ctx, "no listings")
		return nil, fmt.Errorf("%s/%s: %w", city, category, ErrNotFound)
	}

	copyBag := i18n.Project(locale)
	cityName := vo.TitleCase(city)
	categoryCopy := copyBag.CategoryCopy(resolvedCategory)
	heading := categoryCopy.Heading
	if !known {
		heading = copyBag.Directory.CategoryHeading
	}

	page := &Page{
		Kind:     PageKindCategory,
		Locale:   locale,
		City:     city,
		Category: resolvedCategory,
		Copy:     copyBag,
		Listings: listings,
		Heading:  copyBag.Format(heading, cityName, categoryCopy.Label),
		Intro:    copyBag.Format(categoryCopy.Intro, cityName, categoryCopy.Label),
		Meta: s.meta(
			locale,
			copyBag.Format(copyBag.Meta.CategoryTitle, cityName, categoryCopy.Label),
			copyBag.Format(copyBag.Meta.CategoryDescription, cityName, categoryCopy.Label),
			city, string(resolvedCategory),
		),
	}
	docs := s.builder.Directory(listings, locale, city, resolvedCategory)
	docs = append(docs, s.builder.FAQ(locale, copyBag.FAQs))
	if errLinkedData := s.linkedData(ctx, l, page, docs); errLinkedData != nil {
		span.RecordError(errLinkedData)
		span.SetStatus(codes.Error, "structured data")
		return nil, errLinkedData
	}

	span.SetAttributes(attribute.Bool("directory.found", true), attribute.Int("directory.listings", len(listings)))
	l.InfoContext(ctx, "resolved", slog.Int("count", len(listings)), slog.String("locale", locale.String()))
	return page, nil
}

// ResolveCity lists the categories of a city, ErrNotFound when the city
// has no listings at all
func (s *Service) ResolveCity(ctx context.Context, rawLocale, city string) (*Page, error) {
	ctx, span := otel.Tracer("DirectoryService").Start(ctx, "ResolveCity")
	defer span.End()

	l := s.logger.With(slog.String("method", "ResolveCity"), slog.String("city", city))
	locale := s.resolveLocale(ctx, l, rawLocale)
	span.SetAttributes(attribute.String("directory.locale", locale.String()), attribute.String("directory.city", city))

	if !s.store.HasCity(city) {
		s.metrics.notFound.Inc()
		l.InfoContext(ctx, "unknown city")
		return nil, fmt.Errorf("%s: %w", city, ErrNotFound)
	}

	copyBag := i18n.Project(locale)
	cityName := vo.TitleCase(city)
	links := []render.Link{}
	for _, category := range s.store.Categories(city) {
		listings, _ := s.store.Lookup(city, category)
		links = append(links, render.Link{
			Href:  jsonld.DirectoryPath(locale, city, category),
			Label: copyBag.CategoryLabel(vo.Category(category)),
			Count: len(listings),
		})
	}
	page := &Page{
		Kind:    PageKindCity,
		Locale:  locale,
		City:    city,
		Copy:    copyBag,
		Links:   links,
		Heading: copyBag.Format(copyBag.Directory.CityHeading, cityName, ""),
		Intro:   copyBag.Format(copyBag.Directory.CityIntro, cityName, ""),
		Meta: s.meta(
			locale,
			copyBag.Format(copyBag.Meta.CityTitle, cityName, ""),
			copyBag.Format(copyBag.Meta.CityDescription, cityName, ""),
			city,
		),
	}
	docs := []jsonld.Document{
		s.builder.Breadcrumbs(locale, city),
		s.builder.Article(locale, page.Heading, page.Meta.Description, page.Meta.Canonical),
	}
	if errLinkedData := s.linkedData(ctx, l, page, docs); errLinkedData != nil {
		span.RecordError(errLinkedData)
		span.SetStatus(codes.Error, "structured data")
		return nil, errLinkedData
	}
	return page, nil
}

// ResolveIndex is the directory root listing all cities
func (s *Service) ResolveIndex(ctx context.Context, rawLocale string) (*Page, error) {
	ctx, span := otel.Tracer("DirectoryService").Start(ctx, "ResolveIndex")
	defer span.End()

	l := s.logger.With(slog.String("method", "ResolveIndex"))
	locale := s.resolveLocale(ctx, l, rawLocale)
	copyBag := i18n.Project(locale)

	links := []render.Link{}
	for _, city := range s.store.Cities() {
		count := 0
		for _, category := range s.store.Categories(city) {
			listings, _ := s.store.Lookup(city, category)
			count += len(listings)
		}
		links = append(links, render.Link{
			Href:  jsonld.DirectoryPath(locale, city),
			Label: vo.TitleCase(city),
			Count: count,
		})
	}
	span.SetAttributes(attribute.String("directory.locale", locale.String()), attribute.Int("directory.cities", len(links)))

	page := &Page{
		Kind:    PageKindDirectory,
		Locale:  locale,
		Copy:    copyBag,
		Links:   links,
		Heading: copyBag.Directory.Heading,
		Intro:   copyBag.Directory.Intro,
		Meta:    s.meta(locale, copyBag.Meta.DirectoryTitle, copyBag.Meta.DirectoryDescription),
	}
	docs := []jsonld.Document{
		s.builder.Breadcrumbs(locale),
		s.builder.HowTo(locale, copyBag.HowTo),
	}
	if errLinkedData := s.linkedData(ctx, l, page, docs); errLinkedData != nil {
		span.RecordError(errLinkedData)
		span.SetStatus(codes.Error, "structured data")
		return nil, errLinkedData
	}
	return page, nil
}

// NotFound is the page shown for ErrNotFound
func (s *Service) NotFound(rawLocale string) *Page {
	locale, _ := vo.ResolveLocale(rawLocale)
	copyBag := i18n.Project(locale)
	return &Page{
		Kind:    PageKindNotFound,
		Locale:  locale,
		Copy:    copyBag,
		Heading: copyBag.NotFound.Heading,
		Meta: render.Meta{
			Title:       copyBag.NotFound.Title,
			Description: copyBag.NotFound.Text,
			Robots:      "noindex",
			Locale:      locale,
		},
	}
}

// Render writes the html of a page
func (s *Service) Render(w io.Writer, page *Page) error {
	start := time.Now()
	defer func() {
		s.metrics.renderDuration.WithLabelValues(string(page.Kind)).Observe(time.Since(start).Seconds())
	}()
	otherLocale := vo.LocaleIT
	if page.Locale == vo.LocaleIT {
		otherLocale = vo.LocaleEN
	}
	otherLanguage := render.Link{Label: otherLocale.String()}
	switch page.Kind {
	case PageKindCategory:
		otherLanguage.Href = jsonld.DirectoryPath(otherLocale, page.City, string(page.Category))
		return s.renderer.Category(w, render.CategoryView{
			Meta:    page.Meta,
			Copy:    page.Copy,
			Heading: page.Heading,
			Intro:   page.Intro,
			Back: render.Link{
				Href:  jsonld.DirectoryPath(page.Locale, page.City),
				Label: page.Copy.Format(page.Copy.Directory.BackToCity, vo.TitleCase(page.City), ""),
			},
			OtherLanguage: otherLanguage,
			Listings:      page.Listings,
		})
	case PageKindCity:
		otherLanguage.Href = jsonld.DirectoryPath(otherLocale, page.City)
		return s.renderer.Index(w, render.IndexView{
			Meta:          page.Meta,
			Copy:          page.Copy,
			Heading:       page.Heading,
			Intro:         page.Intro,
			ListHeading:   page.Copy.Directory.CategoriesHeading,
			Links:         page.Links,
			Back:          &render.Link{Href: jsonld.DirectoryPath(page.Locale), Label: page.Copy.Directory.Name},
			OtherLanguage: otherLanguage,
		})
	case PageKindDirectory:
		otherLanguage.Href = jsonld.DirectoryPath(otherLocale)
		return s.renderer.Index(w, render.IndexView{
			Meta:          page.Meta,
			Copy:          page.Copy,
			Heading:       page.Heading,
			Intro:         page.Intro,
			ListHeading:   page.Copy.Directory.CitiesHeading,
			Links:         page.Links,
			OtherLanguage: otherLanguage,
		})
	case PageKindNotFound:
		return s.renderer.NotFound(w, render.NotFoundView{
			Meta: page.Meta,
			Copy: page.Copy,
			Back: render.Link{Href: jsonld.DirectoryPath(page.Locale), Label: page.Copy.NotFound.Back},
		})
	}
	return fmt.Errorf("unknown page kind %q", page.Kind)
}

func (s *Service) resolveLocale(ctx context.Context, l *slog.Logger, rawLocale string) vo.Locale {
	locale, ok := vo.ResolveLocale(rawLocale)
	if !ok {
		s.metrics.localeFallback.Inc()
		l.WarnContext(ctx, "unexpected locale, using en", slog.String("locale", rawLocale))
	}
	return locale
}

// meta builds canonical and hreflang alternates for the directory path of
// segments in every locale
func (s *Service) meta(locale vo.Locale, title, description string, segments ...string) render.Meta {
	alternates := make([]vo.Alternate, 0, len(vo.Locales)+1)
	for _, alternateLocale := range vo.Locales {
		alternates = append(alternates, vo.Alternate{
			HrefLang: alternateLocale.String(),
			Href:     s.builder.DirectoryURL(alternateLocale, segments...),
		})
	}
	alternates = append(alternates, vo.Alternate{
		HrefLang: "x-default",
		Href:     s.builder.DirectoryURL(vo.LocaleEN, segments...),
	})
	return render.Meta{
		Title:       title,
		Description: description,
		Canonical:   s.builder.DirectoryURL(locale, segments...),
		Locale:      locale,
		Alternates:  alternates,
	}
}

// linkedData validates docs, drops the invalid ones and marshals the rest
// into the page
func (s *Service) linkedData(ctx context.Context, l *slog.Logger, page *Page, docs []jsonld.Document) error {
	valid, validations := jsonld.Valid(docs)
	s.metrics.trackValidations(validations)
	if len(valid) < len(docs) {
		for _, doc := range docs {
			if jsonld.Validate(doc).HasErrors() {
				s.metrics.droppedDocuments.WithLabelValues(doc.SchemaType()).Inc()
			}
		}
		l.WarnContext(ctx, "dropped invalid structured data",
			slog.Int("dropped", len(docs)-len(valid)),
			slog.Any("error", validations.Err()),
		)
	}
	page.Documents = valid
	page.Validations = validations
	page.Meta.LinkedData = make([][]byte, 0, len(valid))
	for _, doc := range valid {
		docJSON, errMarshal := jsonld.Marshal(doc)
		if errMarshal != nil {
			return fmt.Errorf("marshal %s: %w", doc.SchemaType(), errMarshal)
		}
		page.Meta.LinkedData = append(page.Meta.LinkedData, docJSON)
	}
	return nil
}
