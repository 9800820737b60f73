package jsonld

import (
	"net/url"
	"strings"

	"github.com/foomo/resinaro/i18n"
	"github.com/foomo/resinaro/vo"
)

// Builder knows the public base url, everything else comes in per call
type Builder struct {
	baseURL  string
	siteName string
}

func NewBuilder(baseURL string) *Builder {
	return &Builder{
		baseURL:  strings.TrimRight(baseURL, "/"),
		siteName: "Resinaro",
	}
}

// DirectoryURL of the directory root, a city or a category page depending
// on how many segments are given.
func (b *Builder) DirectoryURL(locale vo.Locale, segments ...string) string {
	return b.baseURL + DirectoryPath(locale, segments...)
}

// DirectoryPath is DirectoryURL without scheme and host
func DirectoryPath(locale vo.Locale, segments ...string) string {
	p := "/" + string(locale) + "/directory"
	for _, s := range segments {
		p += "/" + url.PathEscape(s)
	}
	return p
}

// Directory builds the documents of a category page: an ItemList, a three
// level BreadcrumbList and one business per listing, in that order.
func (b *Builder) Directory(listings []vo.Listing, locale vo.Locale, city string, category vo.Category) []Document {
	copyBag := i18n.Project(locale)
	cityName := vo.TitleCase(city)
	pageURL := b.DirectoryURL(locale, city, string(category))
	docs := make([]Document, 0, len(listings)+2)
	docs = append(docs,
		b.itemList(listings, copyBag, pageURL, cityName, category),
		b.Breadcrumbs(locale, city, string(category)),
	)
	for _, l := range listings {
		docs = append(docs, b.business(l, pageURL, category))
	}
	return docs
}

func (b *Builder) itemList(listings []vo.Listing, copyBag i18n.CopyBag, pageURL, cityName string, category vo.Category) ItemList {
	elements := make([]ListItem, len(listings))
	for i, l := range listings {
		itemURL := l.PrimaryURL()
		if itemURL == "" {
			itemURL = pageURL + "#" + l.Slug
		}
		elements[i] = ListItem{
			Type:     TypeListItem,
			Position: i + 1,
			Name:     l.Name,
			URL:      itemURL,
		}
	}
	return ItemList{
		Context:         Context,
		Type:            TypeItemList,
		Name:            copyBag.Format(copyBag.Directory.CategoryHeading, cityName, copyBag.CategoryLabel(category)),
		NumberOfItems:   len(elements),
		ItemListElement: elements,
	}
}

// Breadcrumbs from the directory root down to the last given segment
func (b *Builder) Breadcrumbs(locale vo.Locale, segments ...string) BreadcrumbList {
	copyBag := i18n.Project(locale)
	elements := []ListItem{{
		Type:     TypeListItem,
		Position: 1,
		Name:     copyBag.Directory.Name,
		Item:     b.DirectoryURL(locale),
	}}
	for i, s := range segments {
		name := vo.TitleCase(s)
		if i == 1 {
			name = copyBag.CategoryLabel(vo.Category(s))
		}
		elements = append(elements, ListItem{
			Type:     TypeListItem,
			Position: i + 2,
			Name:     name,
			Item:     b.DirectoryURL(locale, segments[:i+1]...),
		})
	}
	return BreadcrumbList{
		Context:         Context,
		Type:            TypeBreadcrumbList,
		ItemListElement: elements,
	}
}

func (b *Builder) business(l vo.Listing, pageURL string, category vo.Category) LocalBusiness {
	lb := LocalBusiness{
		Context:       Context,
		Type:          category.SchemaType(),
		ID:            pageURL + "#" + l.Slug,
		Name:          l.Name,
		Description:   l.Short,
		Image:         b.absolute(l.Image),
		Telephone:     l.Phone,
		Address:       l.Address,
		PriceRange:    l.Price,
		URL:           l.Website,
		SameAs:        l.SameAs(),
		ServesCuisine: category.ServesCuisine(),
	}
	if lb.Type == vo.SchemaTypeRestaurant {
		lb.HasMenu = l.MenuURL
	}
	if l.Review != nil && l.Review.Snippet != "" {
		lb.Review = &Review{
			Type:       TypeReview,
			ReviewBody: l.Review.Snippet,
			Author:     Person{Type: TypePerson, Name: l.Review.Author},
		}
		if l.Review.Source != "" {
			lb.Review.Publisher = &Organization{Type: TypeOrganization, Name: l.Review.Source}
		}
	}
	return lb
}

// absolute resolves site relative paths against the base url
func (b *Builder) absolute(ref string) string {
	if strings.HasPrefix(ref, "/") && !strings.HasPrefix(ref, "//") {
		return b.baseURL + ref
	}
	return ref
}

func (b *Builder) FAQ(locale vo.Locale, faqs []i18n.FAQ) FAQPage {
	questions := make([]Question, len(faqs))
	for i, faq := range faqs {
		questions[i] = Question{
			Type:           TypeQuestion,
			Name:           faq.Question,
			AcceptedAnswer: Answer{Type: TypeAnswer, Text: faq.Answer},
		}
	}
	return FAQPage{
		Context:    Context,
		Type:       TypeFAQPage,
		InLanguage: locale.HTMLLang(),
		MainEntity: questions,
	}
}

func (b *Builder) HowTo(locale vo.Locale, howTo i18n.HowToCopy) HowTo {
	steps := make([]HowToStep, len(howTo.Steps))
	for i, s := range howTo.Steps {
		steps[i] = HowToStep{
			Type:     TypeHowToStep,
			Position: i + 1,
			Name:     s.Name,
			Text:     s.Text,
		}
	}
	return HowTo{
		Context:     Context,
		Type:        TypeHowTo,
		Name:        howTo.Name,
		Description: howTo.Description,
		InLanguage:  locale.HTMLLang(),
		Step:        steps,
	}
}

// Article describes an editorial page like a city overview
func (b *Builder) Article(locale vo.Locale, headline, description, pageURL string) Article {
	return Article{
		Context:          Context,
		Type:             TypeArticle,
		Headline:         headline,
		Description:      description,
		InLanguage:       locale.HTMLLang(),
		URL:              pageURL,
		MainEntityOfPage: pageURL,
		Publisher: Organization{
			Type: TypeOrganization,
			Name: b.siteName,
			URL:  b.baseURL,
		},
	}
}
