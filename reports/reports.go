// Package reports prints plain text reports over the results of a crawl.
package reports

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"

	"github.com/foomo/resinaro/vo"
)

var ErrUnknownReport = errors.New("unknown report")

type crawlResultFilter func(res vo.CrawlResult) bool
type reporter func(status vo.Status, w io.Writer, filter crawlResultFilter)

// Names of all reports in menu order
var Names = []string{
	"summary",
	"list",
	"highscore",
	"broken-links",
	"seo",
	"structured-data",
	"validations",
	"errors",
	"redirects",
	"links",
	"results",
}

var reporters = map[string]reporter{
	"summary":         reportSummary,
	"list":            reportList,
	"highscore":       reportHighscore,
	"broken-links":    reportBrokenLinks,
	"seo":             reportSEO,
	"structured-data": reportStructuredData,
	"validations":     reportValidations,
	"errors":          reportErrors,
	"redirects":       reportRedirects,
	"links":           reportLinks,
	"results":         reportResults,
}

func GetReportHandlerMenuHTML(basePath string) string {
	return `
	<p>directory audit reports</p>
	<ul>
		<li><a href="` + basePath + `/summary">summary of status codes and performance overview</a></li>
		<li><a href="` + basePath + `/list">list of all results</a></li>
		<li><a href="` + basePath + `/highscore">highscore - all results sorted by request duration</a></li>
		<li><a href="` + basePath + `/broken-links">broken links</a></li>
		<li><a href="` + basePath + `/seo">seo - duplicate and missing titles, descriptions, h1 and hreflang</a></li>
		<li><a href="` + basePath + `/structured-data">json-ld types per page</a></li>
		<li><a href="` + basePath + `/validations">validations</a></li>
		<li><a href="` + basePath + `/errors">errors - calls that returned error status codes</a></li>
		<li><a href="` + basePath + `/redirects">redirects</a></li>
		<li><a href="` + basePath + `/links">links where are pages being linked from</a></li>
		<li><a href="` + basePath + `/results">all plain results (this can be a very long doc)</a></li>
	</ul>
	<p>query parameters</p>
	<table>
		<tr>
			<td>url paramter</td>
			<td>function</td>
			<td>examples</td>
		</tr>
		<tr>
			<td>url</td>
			<td>filter only for that one url</td>
			<td>?url=http...</td>
		</tr>
		<tr>
			<td>prefix</td>
			<td>filter all urls with given prefix</td>
			<td>?prefix=http...</td>
		</tr>
	</table>
	`
}

// GetReportHandler serves the reports below basePath, the menu on basePath
// itself. getStatus returns nil as long as there is no crawl.
func GetReportHandler(basePath string, getStatus func() *vo.Status) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		path := strings.Trim(strings.TrimPrefix(r.URL.Path, basePath), "/")
		if path == "" {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			_, _ = io.WriteString(w, GetReportHandlerMenuHTML(basePath))
			return
		}
		rep, ok := reporters[path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		status := getStatus()
		if status == nil {
			http.Error(w, "no crawl yet", http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		rep(*status, w, filterFromQuery(r.URL.Query()))
	}
}

func filterFromQuery(query url.Values) (f crawlResultFilter) {
	if u := query.Get("url"); u != "" {
		f = func(res vo.CrawlResult) bool {
			return res.TargetURL == u
		}
	}
	if prefix := query.Get("prefix"); prefix != "" {
		f = func(res vo.CrawlResult) bool {
			return strings.HasPrefix(res.TargetURL, prefix)
		}
	}
	return f
}

// Write prints the named report, prefix limits it to urls starting with it
func Write(name string, status vo.Status, w io.Writer, prefix string) error {
	rep, ok := reporters[name]
	if !ok {
		return fmt.Errorf("%q: %w", name, ErrUnknownReport)
	}
	query := url.Values{}
	if prefix != "" {
		query.Set("prefix", prefix)
	}
	rep(status, w, filterFromQuery(query))
	return nil
}

func printers(w io.Writer) (printh func(header ...interface{}), println func(a ...interface{}), printsep func()) {
	printsep = func() {
		fmt.Fprintln(w, "-----------------------------------------------------------------------------")
	}
	println = func(a ...interface{}) { fmt.Fprintln(w, a...) }
	printh = func(header ...interface{}) {
		println()
		println(header...)
		printsep()
	}
	return
}

// sortedResults applies the filter and orders by url
func sortedResults(status vo.Status, filter crawlResultFilter) []vo.CrawlResult {
	results := make([]vo.CrawlResult, 0, len(status.Results))
	for _, res := range status.Results {
		if filter != nil && !filter(res) {
			continue
		}
		results = append(results, res)
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].TargetURL < results[j].TargetURL
	})
	return results
}

// linkTargets resolves the raw hrefs of a result to absolute urls without
// fragments
func linkTargets(res vo.CrawlResult) map[string]bool {
	targets := map[string]bool{}
	base, errParse := url.Parse(res.TargetURL)
	if errParse != nil {
		return targets
	}
	for link := range res.Links {
		link, _, _ = strings.Cut(link, "#")
		linkURL, errParseLink := url.Parse(link)
		if errParseLink != nil {
			continue
		}
		targets[base.ResolveReference(linkURL).String()] = true
	}
	return targets
}

type duplications map[string][]string

func (d duplications) add(value, url string) {
	existingURLs, ok := d[value]
	if ok {
		for _, existingURL := range existingURLs {
			if existingURL == url {
				return
			}
		}
	}
	d[value] = append(d[value], url)
}

func (d duplications) printlnDuplications(w io.Writer) {
	_, println, _ := printers(w)
	values := make([]string, 0, len(d))
	for value := range d {
		values = append(values, value)
	}
	sort.Strings(values)
	for _, value := range values {
		urls := d[value]
		sort.Strings(urls)
		if len(urls) > 1 {
			println(value)
			for _, url := range urls {
				println("	", url)
			}
		}
	}
}

type uniqueList []string

func (ul *uniqueList) add(v string) {
	for _, ev := range *ul {
		if ev == v {
			return
		}
	}
	*ul = append(*ul, v)
}
