package resinaro

import (
	"encoding/xml"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/foomo/resinaro/vo"
)

const (
	sitemapNS = "http://www.sitemaps.org/schemas/sitemap/0.9"
	xhtmlNS   = "http://www.w3.org/1999/xhtml"
)

type SitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	XHTML   string       `xml:"xmlns:xhtml,attr"`
	URLs    []SitemapURL `xml:"url"`
}

type SitemapURL struct {
	Loc        string        `xml:"loc"`
	Alternates []SitemapLink `xml:"xhtml:link"`
}

type SitemapLink struct {
	Rel      string `xml:"rel,attr"`
	HrefLang string `xml:"hreflang,attr"`
	Href     string `xml:"href,attr"`
}

// Sitemap lists every directory page in every locale: the roots, the
// cities and their non empty categories
func (s *Service) Sitemap() SitemapURLSet {
	paths := [][]string{{}}
	for _, city := range s.store.Cities() {
		paths = append(paths, []string{city})
		for _, category := range s.store.Categories(city) {
			paths = append(paths, []string{city, category})
		}
	}
	urlSet := SitemapURLSet{XMLNS: sitemapNS, XHTML: xhtmlNS}
	for _, segments := range paths {
		alternates := make([]SitemapLink, 0, len(vo.Locales))
		for _, locale := range vo.Locales {
			alternates = append(alternates, SitemapLink{
				Rel:      "alternate",
				HrefLang: locale.String(),
				Href:     s.builder.DirectoryURL(locale, segments...),
			})
		}
		for _, locale := range vo.Locales {
			urlSet.URLs = append(urlSet.URLs, SitemapURL{
				Loc:        s.builder.DirectoryURL(locale, segments...),
				Alternates: alternates,
			})
		}
	}
	return urlSet
}

func (h *handler) sitemap(w http.ResponseWriter, r *http.Request) {
	xmlBytes, errMarshal := xml.MarshalIndent(h.service.Sitemap(), "", "  ")
	if errMarshal != nil {
		h.logger.ErrorContext(r.Context(), "sitemap failed", slog.Any("error", errMarshal))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	_, _ = w.Write([]byte(xml.Header))
	_, _ = w.Write(xmlBytes)
}

func (h *handler) robots(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintf(w, "User-agent: *\nAllow: /\nDisallow: /api/\n\nSitemap: %s/sitemap.xml\n", h.baseURL)
}
