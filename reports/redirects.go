package reports

import (
	"io"
	"sort"

	"github.com/foomo/resinaro/vo"
)

func reportRedirects(status vo.Status, w io.Writer, filter crawlResultFilter) {
	printh, println, _ := printers(w)
	printh("redirects")
	redirects := map[int][]vo.CrawlResult{}
	codes := sort.IntSlice{}
	for _, r := range sortedResults(status, filter) {
		if r.Location == "" {
			continue
		}
		if _, ok := redirects[r.Code]; !ok {
			codes = append(codes, r.Code)
		}
		redirects[r.Code] = append(redirects[r.Code], r)
	}
	sort.Sort(codes)
	for _, code := range codes {
		println(code)
		for _, r := range redirects[code] {
			println("	", r.TargetURL, " => ", r.Location)
		}
	}
}
