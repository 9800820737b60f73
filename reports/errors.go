package reports

import (
	"io"
	"sort"

	"github.com/foomo/resinaro/vo"
)

func reportErrors(status vo.Status, w io.Writer, filter crawlResultFilter) {
	printh, println, _ := printers(w)
	printh("errors")
	errorBuckets := map[int][]vo.CrawlResult{}
	codes := sort.IntSlice{}
	for _, res := range sortedResults(status, filter) {
		// transport errors have no code
		if res.Code >= 400 || res.Error != "" {
			if _, ok := errorBuckets[res.Code]; !ok {
				codes = append(codes, res.Code)
			}
			errorBuckets[res.Code] = append(errorBuckets[res.Code], res)
		}
	}
	sort.Sort(codes)
	for _, code := range codes {
		println(code, ":")
		for _, res := range errorBuckets[code] {
			if res.Error != "" {
				println("	", res.TargetURL, res.Error)
				continue
			}
			println("	", res.TargetURL)
		}
	}
}
