package audit

import (
	"strings"

	"github.com/foomo/resinaro/vo"
)

const (
	groupHead       = "head"
	groupHeadings   = "headings"
	groupLinkedData = "json-ld"
	groupAlternates = "hreflang"
)

// MaxTitleLength is where search engines start to cut titles off
const MaxTitleLength = 70

// Check looks at a page the way the directory expects every page to look.
// Pages with a noindex robots directive are only checked for the basics.
func Check(s vo.Structure) (validations vo.Validations) {
	errHead, warnHead, _ := validations.Group(groupHead)
	if s.Title == "" {
		errHead("missing title")
	} else if len([]rune(s.Title)) > MaxTitleLength {
		warnHead("title is longer than 70 characters")
	}
	if s.Description == "" {
		errHead("missing meta description")
	}
	if s.Lang == "" {
		warnHead("missing html lang")
	}
	if strings.Contains(s.Robots, "noindex") {
		return validations
	}
	if s.Canonical == "" {
		errHead("missing canonical")
	}

	errHeadings, _, _ := validations.Group(groupHeadings)
	switch h1s := s.H1s(); len(h1s) {
	case 0:
		errHeadings("missing h1")
	case 1:
	default:
		errHeadings("multiple h1: " + strings.Join(h1s, ", "))
	}

	if len(s.LinkedData) == 0 {
		validations.Warning(groupLinkedData, "no json-ld")
	}
	for _, ld := range s.LinkedData {
		if ld.Type == "" {
			validations.Error(groupLinkedData, "json-ld without @type")
		}
	}

	errAlternates, _, _ := validations.Group(groupAlternates)
	hrefLangs := map[string]bool{}
	for _, alternate := range s.Alternates {
		hrefLangs[alternate.HrefLang] = true
	}
	for _, locale := range vo.Locales {
		if !hrefLangs[locale.String()] {
			errAlternates("missing alternate for " + locale.String())
		}
	}
	return validations
}
