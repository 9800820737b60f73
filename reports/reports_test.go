package reports

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foomo/resinaro/vo"
)

const base = "http://example.com"

func page(path, title, h1 string, links ...string) vo.CrawlResult {
	linkList := vo.LinkList{}
	for _, l := range links {
		linkList[l]++
	}
	return vo.CrawlResult{
		TargetURL:   base + path,
		Code:        200,
		Status:      "200 OK",
		ContentType: "text/html; charset=utf-8",
		Links:       linkList,
		Duration:    30 * time.Millisecond,
		Structure: vo.Structure{
			Title:       title,
			Description: "about " + title,
			Canonical:   path,
			Headings:    []vo.Heading{{Level: 1, Text: h1}},
			LinkedData:  []vo.LinkedData{{Context: "https://schema.org", Type: "BreadcrumbList"}},
			Alternates: []vo.Alternate{
				{HrefLang: "en", Href: base + path},
				{HrefLang: "it", Href: base + path},
			},
		},
	}
}

func testStatus() vo.Status {
	started := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	results := []vo.CrawlResult{
		page("/en/directory", "Directory", "Directory", "/en/directory/london", "/en/directory/gone#top"),
		page("/en/directory/london", "London", "London", "/en/directory/london/restaurants", "/en/directory/gone"),
		page("/en/directory/london/restaurants", "London", "Restaurants in London"),
		{
			TargetURL: base + "/en/directory/gone",
			Code:      404,
			Status:    "404 Not Found",
			Duration:  700 * time.Millisecond,
		},
		{
			TargetURL: base + "/",
			Code:      302,
			Status:    "302 Found",
			Location:  "/en/directory",
		},
	}
	results[2].Structure.Alternates = results[2].Structure.Alternates[:1]
	results[2].Structure.LinkedData = nil
	results[2].Validations.Warning("json-ld", "no json-ld found")
	status := vo.Status{
		Results: map[string]vo.CrawlResult{},
		Started: started,
		Done:    started.Add(2 * time.Second),
	}
	for _, r := range results {
		status.Results[r.TargetURL] = r
	}
	return status
}

func writeReport(t *testing.T, name, prefix string) string {
	t.Helper()
	buf := &bytes.Buffer{}
	require.NoError(t, Write(name, testStatus(), buf, prefix))
	return buf.String()
}

func TestNormalizeCanonical(t *testing.T) {
	assert.Equal(t, "", normalizeCanonical(base+"/a", ""))
	assert.Equal(t, base+"/b", normalizeCanonical(base+"/a", "/b"))
	assert.Equal(t, "https://other.org/b", normalizeCanonical(base+"/a", "https://other.org/b"))
	assert.Equal(t, "http://localhost:8080/b", normalizeCanonical("http://localhost:8080/a/", "/b"))
}

func TestWriteUnknown(t *testing.T) {
	err := Write("nope", testStatus(), &bytes.Buffer{}, "")
	assert.ErrorIs(t, err, ErrUnknownReport)
}

func TestAllReportsWrite(t *testing.T) {
	for _, name := range Names {
		t.Run(name, func(t *testing.T) {
			assert.NotEmpty(t, writeReport(t, name, ""))
		})
	}
}

func TestReportSummary(t *testing.T) {
	out := writeReport(t, "summary", "")
	assert.Contains(t, out, "pages: 5 crawl took: 2s")
	assert.Contains(t, out, "200 3")
	assert.Contains(t, out, "404 1")
	assert.Contains(t, out, "warning 1")
	assert.Contains(t, out, "awesome < 50 ms")
}

func TestReportBrokenLinks(t *testing.T) {
	out := writeReport(t, "broken-links", "")
	assert.Contains(t, out, base+"/en/directory/gone  ( 2 ):")
	assert.Contains(t, out, "\t "+base+"/en/directory/london\n")
}

func TestReportSEO(t *testing.T) {
	out := writeReport(t, "seo", "")
	assert.Contains(t, out, "duplicate titles\n")
	assert.Contains(t, out, "London\n\t "+base+"/en/directory/london\n\t "+base+"/en/directory/london/restaurants\n")
	assert.NotContains(t, out, "duplicate h1")
	assert.Contains(t, out, "missing hreflang alternates")
}

func TestReportRedirects(t *testing.T) {
	out := writeReport(t, "redirects", "")
	assert.Contains(t, out, base+"/  =>  /en/directory")
}

func TestReportErrorsWithPrefix(t *testing.T) {
	assert.Contains(t, writeReport(t, "errors", ""), "404 :")
	assert.NotContains(t, writeReport(t, "errors", base+"/en/directory/london"), "404 :")
}

func TestReportLinks(t *testing.T) {
	out := writeReport(t, "links", base+"/en/directory/london/restaurants")
	assert.Contains(t, out, base+"/en/directory/london/restaurants\n\t "+base+"/en/directory/london\n")
}

func TestReportStructuredData(t *testing.T) {
	out := writeReport(t, "structured-data", "")
	assert.Contains(t, out, "BreadcrumbList 2")
	assert.Contains(t, out, "pages without json-ld")
}

func TestGetReportHandler(t *testing.T) {
	status := testStatus()
	var current *vo.Status
	handler := GetReportHandler("/reports", func() *vo.Status { return current })

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodGet, "/reports", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `href="/reports/summary"`)

	rec = httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodGet, "/reports/summary", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	current = &status
	rec = httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodGet, "/reports/list?url="+base+"/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "results 1")

	rec = httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodGet, "/reports/nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
