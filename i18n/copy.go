// Package i18n holds every display string of the directory pages. Both
// locales share one struct type so a missing field can not compile, and
// CheckParity guards the lengths of the parallel tables.
package i18n

import (
	"strings"

	"github.com/foomo/resinaro/vo"
)

type CategoryCopy struct {
	Label   string
	Heading string
	Intro   string
}

type CategoryLabels struct {
	Restaurants CategoryCopy
	Delis       CategoryCopy
	Shops       CategoryCopy
}

type BadgeLabels struct {
	EditorsPick string
	HandChecked string
	Community   string
}

type FAQ struct {
	Question string
	Answer   string
}

type Step struct {
	Name string
	Text string
}

type HowToCopy struct {
	Name        string
	Description string
	Steps       []Step
}

type DirectoryCopy struct {
	Name              string
	Heading           string
	Intro             string
	CitiesHeading     string
	CategoriesHeading string
	CityHeading       string
	CityIntro         string
	CategoryHeading   string
	RankLabel         string
	AddressLabel      string
	PhoneLabel        string
	PriceLabel        string
	WebsiteLabel      string
	MenuLabel         string
	MapsLabel         string
	ReviewLabel       string
	TagsLabel         string
	FAQHeading        string
	BackToCity        string
	OtherLanguage     string
}

type NewsletterCopy struct {
	Heading     string
	Text        string
	EmailLabel  string
	Placeholder string
	Submit      string
}

type NotFoundCopy struct {
	Title   string
	Heading string
	Text    string
	Back    string
}

// MetaCopy templates may contain {city} and {category}
type MetaCopy struct {
	DirectoryTitle       string
	DirectoryDescription string
	CityTitle            string
	CityDescription      string
	CategoryTitle        string
	CategoryDescription  string
}

// CopyBag is every string a directory page needs in one locale
type CopyBag struct {
	Locale     vo.Locale
	SiteName   string
	Directory  DirectoryCopy
	Categories CategoryLabels
	Badges     BadgeLabels
	FAQs       []FAQ
	HowTo      HowToCopy
	Newsletter NewsletterCopy
	NotFound   NotFoundCopy
	Meta       MetaCopy
}

// Project returns the copy of a resolved locale. The result is a fresh
// value, callers may keep or change it.
func Project(locale vo.Locale) CopyBag {
	if locale == vo.LocaleIT {
		return italian()
	}
	return english()
}

// CategoryCopy for known categories, the raw key in title case otherwise
func (c CopyBag) CategoryCopy(category vo.Category) CategoryCopy {
	switch category {
	case vo.CategoryRestaurants:
		return c.Categories.Restaurants
	case vo.CategoryDelis:
		return c.Categories.Delis
	case vo.CategoryShops:
		return c.Categories.Shops
	default:
		label := category.Label()
		return CategoryCopy{Label: label, Heading: label}
	}
}

func (c CopyBag) CategoryLabel(category vo.Category) string {
	return c.CategoryCopy(category).Label
}

func (c CopyBag) BadgeLabel(b vo.Badge) string {
	switch b {
	case vo.BadgeEditorsPick:
		return c.Badges.EditorsPick
	case vo.BadgeHandChecked:
		return c.Badges.HandChecked
	case vo.BadgeCommunity:
		return c.Badges.Community
	}
	return string(b)
}

// Format fills the {city} and {category} placeholders of a template
func (c CopyBag) Format(template, city, category string) string {
	return strings.NewReplacer("{city}", city, "{category}", category).Replace(template)
}
