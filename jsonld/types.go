// Package jsonld builds the schema.org documents embedded into the
// directory pages. Documents are plain structs, encoding/json keeps the
// field order so equal input gives byte identical output.
package jsonld

import "encoding/json"

const Context = "https://schema.org"

const (
	TypeItemList       = "ItemList"
	TypeListItem       = "ListItem"
	TypeBreadcrumbList = "BreadcrumbList"
	TypeFAQPage        = "FAQPage"
	TypeQuestion       = "Question"
	TypeAnswer         = "Answer"
	TypeHowTo          = "HowTo"
	TypeHowToStep      = "HowToStep"
	TypeArticle        = "Article"
	TypeReview         = "Review"
	TypePerson         = "Person"
	TypeOrganization   = "Organization"
)

// Document is any top level json-ld object
type Document interface {
	SchemaType() string
}

type ListItem struct {
	Type     string `json:"@type"`
	Position int    `json:"position"`
	Name     string `json:"name,omitempty"`
	URL      string `json:"url,omitempty"`
	Item     string `json:"item,omitempty"`
}

type ItemList struct {
	Context         string     `json:"@context"`
	Type            string     `json:"@type"`
	Name            string     `json:"name,omitempty"`
	NumberOfItems   int        `json:"numberOfItems"`
	ItemListElement []ListItem `json:"itemListElement"`
}

func (ItemList) SchemaType() string { return TypeItemList }

type BreadcrumbList struct {
	Context         string     `json:"@context"`
	Type            string     `json:"@type"`
	ItemListElement []ListItem `json:"itemListElement"`
}

func (BreadcrumbList) SchemaType() string { return TypeBreadcrumbList }

type Person struct {
	Type string `json:"@type"`
	Name string `json:"name"`
}

type Organization struct {
	Type string `json:"@type"`
	Name string `json:"name"`
	URL  string `json:"url,omitempty"`
}

type Review struct {
	Type       string        `json:"@type"`
	ReviewBody string        `json:"reviewBody"`
	Author     Person        `json:"author"`
	Publisher  *Organization `json:"publisher,omitempty"`
}

// LocalBusiness covers Restaurant and Store, Type carries the subtype
type LocalBusiness struct {
	Context       string   `json:"@context"`
	Type          string   `json:"@type"`
	ID            string   `json:"@id"`
	Name          string   `json:"name"`
	Description   string   `json:"description,omitempty"`
	Image         string   `json:"image,omitempty"`
	Telephone     string   `json:"telephone,omitempty"`
	Address       string   `json:"address,omitempty"`
	PriceRange    string   `json:"priceRange,omitempty"`
	URL           string   `json:"url,omitempty"`
	HasMenu       string   `json:"hasMenu,omitempty"`
	SameAs        []string `json:"sameAs,omitempty"`
	ServesCuisine string   `json:"servesCuisine,omitempty"`
	Review        *Review  `json:"review,omitempty"`
}

func (b LocalBusiness) SchemaType() string { return b.Type }

type Answer struct {
	Type string `json:"@type"`
	Text string `json:"text"`
}

type Question struct {
	Type           string `json:"@type"`
	Name           string `json:"name"`
	AcceptedAnswer Answer `json:"acceptedAnswer"`
}

type FAQPage struct {
	Context    string     `json:"@context"`
	Type       string     `json:"@type"`
	InLanguage string     `json:"inLanguage,omitempty"`
	MainEntity []Question `json:"mainEntity"`
}

func (FAQPage) SchemaType() string { return TypeFAQPage }

type HowToStep struct {
	Type     string `json:"@type"`
	Position int    `json:"position"`
	Name     string `json:"name"`
	Text     string `json:"text"`
}

type HowTo struct {
	Context     string      `json:"@context"`
	Type        string      `json:"@type"`
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
	InLanguage  string      `json:"inLanguage,omitempty"`
	Step        []HowToStep `json:"step"`
}

func (HowTo) SchemaType() string { return TypeHowTo }

type Article struct {
	Context          string       `json:"@context"`
	Type             string       `json:"@type"`
	Headline         string       `json:"headline"`
	Description      string       `json:"description,omitempty"`
	InLanguage       string       `json:"inLanguage,omitempty"`
	URL              string       `json:"url,omitempty"`
	MainEntityOfPage string       `json:"mainEntityOfPage,omitempty"`
	Publisher        Organization `json:"publisher"`
}

func (Article) SchemaType() string { return TypeArticle }

// Marshal a document for a <script type="application/ld+json"> tag. The
// default json escaping of <, > and & keeps the payload inert inside html.
func Marshal(doc Document) ([]byte, error) {
	return json.Marshal(doc)
}
