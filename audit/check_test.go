package audit

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/foomo/resinaro/vo"
)

func completeStructure() vo.Structure {
	return vo.Structure{
		Title:       "Italian restaurants in London | Resinaro",
		Description: "desc",
		Lang:        "en-GB",
		Canonical:   "https://resinaro.example/en/directory/london/restaurants",
		Headings:    []vo.Heading{{Level: 1, Text: "Italian restaurants in London"}, {Level: 2, Text: "Trattoria X"}},
		LinkedData:  []vo.LinkedData{{Context: "https://schema.org", Type: "ItemList"}},
		Alternates: []vo.Alternate{
			{HrefLang: "en", Href: "https://resinaro.example/en/directory/london/restaurants"},
			{HrefLang: "it", Href: "https://resinaro.example/it/directory/london/restaurants"},
		},
	}
}

func TestCheckComplete(t *testing.T) {
	assert.Empty(t, Check(completeStructure()))
}

func TestCheckFindings(t *testing.T) {
	s := completeStructure()
	s.Title = strings.Repeat("x", MaxTitleLength+1)
	s.Description = ""
	s.Canonical = ""
	s.Headings = append(s.Headings, vo.Heading{Level: 1, Text: "again"})
	s.LinkedData = nil
	s.Alternates = s.Alternates[:1]
	validations := Check(s)
	// description, canonical, multiple h1, missing it alternate
	assert.Equal(t, 4, validations.Count(vo.ValidationLevelError), validations)
	// long title, no json-ld
	assert.Equal(t, 2, validations.Count(vo.ValidationLevelWarning), validations)
}

func TestCheckNoIndex(t *testing.T) {
	validations := Check(vo.Structure{Title: "Page not found", Description: "nothing here", Lang: "en-GB", Robots: "noindex"})
	assert.Empty(t, validations)

	validations = Check(vo.Structure{Robots: "noindex"})
	assert.Equal(t, 2, validations.Count(vo.ValidationLevelError))
}
