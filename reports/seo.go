package reports

import (
	"io"
	"net/url"
	"sort"
	"strings"

	"github.com/foomo/resinaro/vo"
)

// normalizeCanonical resolves a relative canonical against the page url
func normalizeCanonical(target, canonical string) string {
	if canonical == "" {
		return ""
	}
	targetURL, errParse := url.Parse(target)
	if errParse != nil {
		return ""
	}
	canonicalURL, errParse := url.Parse(canonical)
	if errParse != nil {
		return ""
	}
	if canonicalURL.Scheme != "" {
		return canonical
	}
	return targetURL.ResolveReference(canonicalURL).String()
}

func reportSEO(status vo.Status, w io.Writer, filter crawlResultFilter) {
	printh, println, _ := printers(w)
	h1s := duplications{}
	titles := duplications{}
	descriptions := duplications{}
	missingTitles := uniqueList{}
	missingH1 := uniqueList{}
	missingDescriptions := uniqueList{}
	missingAlternates := uniqueList{}
	printh("SEO duplications")
	for _, r := range sortedResults(status, filter) {
		if !strings.Contains(r.ContentType, "html") || r.Code != 200 {
			continue
		}
		if strings.Contains(r.Structure.Robots, "noindex") {
			continue
		}
		finalURL := r.TargetURL
		if normalizedCanonical := normalizeCanonical(r.TargetURL, r.Structure.Canonical); normalizedCanonical != "" {
			finalURL = normalizedCanonical
		}
		if r.Structure.Title != "" {
			titles.add(r.Structure.Title, finalURL)
		} else {
			missingTitles.add(finalURL)
		}
		if r.Structure.Description != "" {
			descriptions.add(r.Structure.Description, finalURL)
		} else {
			missingDescriptions.add(finalURL)
		}
		foundH1 := false
		for _, h1 := range r.Structure.H1s() {
			if h1 != "" {
				h1s.add(h1, finalURL)
				foundH1 = true
			}
		}
		if !foundH1 {
			missingH1.add(finalURL)
		}
		hrefLangs := map[string]bool{}
		for _, alternate := range r.Structure.Alternates {
			hrefLangs[alternate.HrefLang] = true
		}
		for _, locale := range vo.Locales {
			if !hrefLangs[locale.String()] {
				missingAlternates.add(finalURL)
			}
		}
	}
	printDuplicates := func(title string, d duplications) {
		if len(d) > 0 {
			printh(title)
			d.printlnDuplications(w)
		}
	}
	printDuplicates("duplicate h1", h1s)
	printDuplicates("duplicate titles", titles)
	printDuplicates("duplicate descriptions", descriptions)

	printList := func(name string, list []string) {
		if len(list) > 0 {
			printh(name)
			sort.Strings(list)
			for _, l := range list {
				println("	", l)
			}
		}
	}
	printList("missing titles", missingTitles)
	printList("missing descriptions", missingDescriptions)
	printList("missing h1", missingH1)
	printList("missing hreflang alternates", missingAlternates)
}
