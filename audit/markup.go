package audit

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/foomo/resinaro/vo"
)

// Unbounded as MarkupRule.Max allows any number of matches
const Unbounded = -1

const groupMarkup = "markup"

// MarkupRule expects Min to Max elements matching Selector below each match
// of the parent rule. Lengths apply to the trimmed text, 0 skips the check.
type MarkupRule struct {
	Selector  string
	Min       int
	Max       int
	MinLength int
	MaxLength int
	Attrs     map[string]*regexp.Regexp
	Children  []MarkupRule
}

var (
	notEmpty   = regexp.MustCompile(`\S`)
	methodPost = regexp.MustCompile(`(?i)^post$`)
)

// DirectoryMarkup describes what every directory page has to contain
var DirectoryMarkup = []MarkupRule{
	{
		Selector: ".newsletter form",
		Min:      1,
		Max:      1,
		Attrs: map[string]*regexp.Regexp{
			"method": methodPost,
			"action": notEmpty,
		},
		Children: []MarkupRule{
			{Selector: "input", Min: 1, Max: 1, Attrs: map[string]*regexp.Regexp{
				"name": regexp.MustCompile(`^email$`),
				"type": regexp.MustCompile(`^email$`),
			}},
		},
	},
	{
		Selector: "li.listing",
		Min:      0,
		Max:      Unbounded,
		Attrs:    map[string]*regexp.Regexp{"id": notEmpty},
		Children: []MarkupRule{
			{Selector: ".rank", Min: 1, Max: 1, MinLength: 2},
			{Selector: "h2", Min: 1, Max: 1, MinLength: 1},
			{Selector: "img", Min: 1, Max: 1, Attrs: map[string]*regexp.Regexp{
				"src": notEmpty,
				"alt": notEmpty,
			}},
			{Selector: ".tags li", Min: 0, Max: vo.MaxDisplayTags},
			{Selector: "a[href]", Min: 0, Max: Unbounded, Attrs: map[string]*regexp.Regexp{"href": notEmpty}},
		},
	},
}

// CheckMarkup validates a document against rules
func CheckMarkup(doc *goquery.Document, rules []MarkupRule) (validations vo.Validations) {
	for _, rule := range rules {
		rule.check(doc.Selection, rule.Selector, &validations)
	}
	return validations
}

func (rule MarkupRule) check(parent *goquery.Selection, path string, validations *vo.Validations) {
	matches := parent.Find(rule.Selector)
	count := matches.Length()
	switch {
	case rule.Max > Unbounded && count > rule.Max:
		validations.Error(groupMarkup, fmt.Sprint(path, ": too many elements got ", count, " expected not more than ", rule.Max))
	case count < rule.Min:
		validations.Error(groupMarkup, fmt.Sprint(path, ": too few elements got ", count, " expected at least ", rule.Min))
	}
	attrNames := make([]string, 0, len(rule.Attrs))
	for name := range rule.Attrs {
		attrNames = append(attrNames, name)
	}
	sort.Strings(attrNames)
	matches.Each(func(i int, s *goquery.Selection) {
		elementPath := path
		if count > 1 {
			elementPath = fmt.Sprint(path, "[", i, "]")
		}
		text := strings.TrimSpace(s.Text())
		if rule.MinLength > 0 && len(text) < rule.MinLength {
			validations.Error(groupMarkup, fmt.Sprint(elementPath, ": content too short got ", len(text), " expected ", rule.MinLength))
		}
		if rule.MaxLength > 0 && len(text) > rule.MaxLength {
			validations.Error(groupMarkup, fmt.Sprint(elementPath, ": content too long got ", len(text), " expected ", rule.MaxLength))
		}
		for _, name := range attrNames {
			value, _ := s.Attr(name)
			if !rule.Attrs[name].MatchString(value) {
				validations.Error(groupMarkup, fmt.Sprint(elementPath, "@", name, ": invalid attribute value ", `"`, value, `"`))
			}
		}
		for _, child := range rule.Children {
			child.check(s, elementPath+" "+child.Selector, validations)
		}
	})
}
