package jsonld

import (
	"fmt"
	"net/url"

	"github.com/foomo/resinaro/vo"
)

// Validate checks the fields search engines require for a document type
func Validate(doc Document) (validations vo.Validations) {
	switch d := doc.(type) {
	case LocalBusiness:
		validateBusiness(d, &validations)
	case ItemList:
		validateItemList(d, &validations)
	case BreadcrumbList:
		errFn, _, _ := validations.Group(TypeBreadcrumbList)
		if len(d.ItemListElement) == 0 {
			errFn("no elements")
		}
		validatePositions(d.ItemListElement, errFn)
		for _, el := range d.ItemListElement {
			if el.Name == "" {
				errFn(fmt.Sprint("element ", el.Position, " without name"))
			}
			if !absoluteURL(el.Item) {
				errFn(fmt.Sprint("element ", el.Position, " item is not an absolute url: ", el.Item))
			}
		}
	case FAQPage:
		errFn, _, _ := validations.Group(TypeFAQPage)
		if len(d.MainEntity) == 0 {
			errFn("no questions")
		}
		for i, q := range d.MainEntity {
			if q.Name == "" || q.AcceptedAnswer.Text == "" {
				errFn(fmt.Sprint("question ", i+1, " is incomplete"))
			}
		}
	case HowTo:
		errFn, _, _ := validations.Group(TypeHowTo)
		if d.Name == "" {
			errFn("missing name")
		}
		if len(d.Step) == 0 {
			errFn("no steps")
		}
	case Article:
		errFn, _, _ := validations.Group(TypeArticle)
		if d.Headline == "" {
			errFn("missing headline")
		}
		if !absoluteURL(d.URL) {
			errFn("url is not absolute: " + d.URL)
		}
	default:
		validations.Warning(doc.SchemaType(), "no rules for this type")
	}
	return validations
}

func validateBusiness(d LocalBusiness, validations *vo.Validations) {
	errFn, warnFn, _ := validations.Group(d.Type + " " + d.ID)
	switch d.Type {
	case vo.SchemaTypeRestaurant, vo.SchemaTypeStore, vo.SchemaTypeLocalBusiness:
	default:
		errFn("unexpected type " + d.Type)
	}
	if d.Name == "" {
		errFn("missing name")
	}
	if !absoluteURL(d.ID) {
		errFn("@id is not an absolute url: " + d.ID)
	}
	for _, field := range [][2]string{{"url", d.URL}, {"image", d.Image}, {"hasMenu", d.HasMenu}} {
		if field[1] != "" && !absoluteURL(field[1]) {
			errFn(field[0] + " is not an absolute url: " + field[1])
		}
	}
	for _, s := range d.SameAs {
		if !absoluteURL(s) {
			errFn("sameAs is not an absolute url: " + s)
		}
	}
	if d.Address == "" {
		warnFn("no address")
	}
	if len(d.SameAs) == 0 {
		warnFn("no website or maps link")
	}
	if d.Review != nil && d.Review.Author.Name == "" {
		errFn("review without author")
	}
}

func validateItemList(d ItemList, validations *vo.Validations) {
	errFn, _, _ := validations.Group(TypeItemList)
	if d.NumberOfItems != len(d.ItemListElement) {
		errFn(fmt.Sprint("numberOfItems ", d.NumberOfItems, " does not match ", len(d.ItemListElement), " elements"))
	}
	validatePositions(d.ItemListElement, errFn)
	for _, el := range d.ItemListElement {
		if !absoluteURL(el.URL) {
			errFn(fmt.Sprint("element ", el.Position, " url is not absolute: ", el.URL))
		}
	}
}

func validatePositions(elements []ListItem, errFn func(msg string)) {
	for i, el := range elements {
		if el.Position != i+1 {
			errFn(fmt.Sprint("element ", i, " has position ", el.Position))
		}
	}
}

func absoluteURL(raw string) bool {
	u, errParse := url.Parse(raw)
	if errParse != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// Valid keeps the documents without error level findings and returns all
// findings of all documents.
func Valid(docs []Document) (valid []Document, validations vo.Validations) {
	valid = make([]Document, 0, len(docs))
	for _, doc := range docs {
		docValidations := Validate(doc)
		validations = append(validations, docValidations...)
		if !docValidations.HasErrors() {
			valid = append(valid, doc)
		}
	}
	return valid, validations
}
