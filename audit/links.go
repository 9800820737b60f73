package audit

import (
	"net/url"
	"strings"

	"github.com/temoto/robotstxt"
)

type linkLimitations struct {
	depth               int
	paging              bool
	ignorePathPrefixes  []string
	includePathPrefixes []string
	ignoreAllQueries    bool
	ignoreQueriesWith   []string
}

func normalizeLink(baseURL *url.URL, linkURL string) (normalizedLink *url.URL, err error) {
	// let us ditch anchors
	linkURL, _, _ = strings.Cut(linkURL, "#")
	link, errParseLink := url.Parse(linkURL)
	if errParseLink != nil {
		return nil, errParseLink
	}
	if link.Scheme != "" && link.Scheme != "http" && link.Scheme != "https" {
		// mailto:, tel: and friends stay as they are
		return link, nil
	}
	if link.Host == "" {
		link = baseURL.ResolveReference(link)
	}
	if link.Scheme == "" {
		link.Scheme = baseURL.Scheme
	}
	if link.Path == "" {
		link.Path = "/"
	}
	return link, nil
}

// filterLinks keeps the links a crawler of this site should follow
func filterLinks(
	linkList map[string]int,
	pageURL *url.URL,
	linkNextNormalized string,
	linkPrevNormalized string,
	ll linkLimitations,
	robotsGroup *robotstxt.Group,
) (links map[string]int) {
	links = map[string]int{}
LinkLoop:
	for linkURL, count := range linkList {
		linkU, errParseLinkU := normalizeLink(pageURL, linkURL)
		if errParseLinkU != nil {
			continue
		}
		normalized := linkU.String()

		// is it a pager link
		if !ll.paging && (normalized == linkNextNormalized || normalized == linkPrevNormalized) {
			continue
		}

		if linkU.Host != pageURL.Host || linkU.Scheme != pageURL.Scheme {
			// ignoring external links
			continue
		}

		// too deep?
		if ll.depth > 0 && len(strings.Split(strings.Trim(linkU.Path, "/"), "/")) > ll.depth {
			continue
		}

		for _, ignorePrefix := range ll.ignorePathPrefixes {
			if strings.HasPrefix(linkU.Path, ignorePrefix) {
				continue LinkLoop
			}
		}

		// robots say no
		if robotsGroup != nil && !robotsGroup.Test(linkU.Path) {
			continue
		}

		if query := linkU.Query(); len(query) > 0 {
			if ll.ignoreAllQueries {
				continue
			}
			for _, ignoreP := range ll.ignoreQueriesWith {
				if query.Has(ignoreP) {
					continue LinkLoop
				}
			}
		}

		if len(ll.includePathPrefixes) > 0 {
			foundPath := false
			for _, p := range ll.includePathPrefixes {
				if strings.HasPrefix(linkU.Path, p) {
					foundPath = true
					break
				}
			}
			if !foundPath {
				continue
			}
		}

		links[normalized] += count
	}
	return links
}
