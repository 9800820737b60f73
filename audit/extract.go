package audit

import (
	"encoding/json"
	"io"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/foomo/resinaro/vo"
)

// Parse reads an html document the way browsers do
func Parse(r io.Reader) (*goquery.Document, error) {
	node, errParse := html.Parse(r)
	if errParse != nil {
		return nil, errParse
	}
	return goquery.NewDocumentFromNode(node), nil
}

var headingLevels = map[atom.Atom]int{
	atom.H1: 1,
	atom.H2: 2,
	atom.H3: 3,
	atom.H4: 4,
	atom.H5: 5,
	atom.H6: 6,
}

// Extract pulls out what search engines read from a page. Broken json-ld
// scripts are reported as validations instead of failing the extraction.
func Extract(doc *goquery.Document) (s vo.Structure, validations vo.Validations) {
	description, _ := doc.Find("meta[name=description]").First().Attr("content")
	robots, _ := doc.Find("meta[name=robots]").First().Attr("content")
	lang, _ := doc.Find("html").First().Attr("lang")
	s = vo.Structure{
		Title:       strings.TrimSpace(doc.Find("title").First().Text()),
		Description: description,
		Robots:      robots,
		Lang:        lang,
	}
	doc.Find("link[rel=prev], link[rel=next], link[rel=canonical], link[rel=alternate][hreflang]").Each(func(i int, sel *goquery.Selection) {
		attrRelVal, attrRelOK := sel.Attr("rel")
		attrHref, attrHrefOK := sel.Attr("href")
		if !attrRelOK || !attrHrefOK {
			return
		}
		switch attrRelVal {
		case "canonical":
			s.Canonical = attrHref
		case "prev":
			s.LinkPrev = attrHref
		case "next":
			s.LinkNext = attrHref
		case "alternate":
			s.Alternates = append(s.Alternates, vo.Alternate{
				HrefLang: sel.AttrOr("hreflang", ""),
				Href:     attrHref,
			})
		}
	})
	doc.Find(`script[type="application/ld+json"]`).Each(func(i int, sel *goquery.Selection) {
		ld := vo.LinkedData{}
		if errDoc := json.Unmarshal([]byte(sel.Text()), &ld); errDoc != nil {
			validations.Error("json-ld", "script "+strconv.Itoa(i)+" is not valid json: "+errDoc.Error())
			return
		}
		s.LinkedData = append(s.LinkedData, ld)
	})
	doc.Find("h1, h2, h3, h4, h5, h6").Each(func(i int, sel *goquery.Selection) {
		s.Headings = append(s.Headings, vo.Heading{
			Level: headingLevels[sel.Get(0).DataAtom],
			Text:  strings.TrimSpace(sel.Text()),
		})
	})
	return s, validations
}

// ExtractLinks counts the hrefs of all anchors
func ExtractLinks(doc *goquery.Document) vo.LinkList {
	linkList := vo.LinkList{}
	doc.Find("a[href]").Each(func(i int, sel *goquery.Selection) {
		if href := strings.TrimSpace(sel.AttrOr("href", "")); href != "" {
			linkList[href]++
		}
	})
	return linkList
}
