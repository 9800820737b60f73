package reports

import (
	"io"
	"sort"
	"strings"

	"github.com/foomo/resinaro/vo"
)

func reportStructuredData(status vo.Status, w io.Writer, filter crawlResultFilter) {
	printh, println, _ := printers(w)
	printh("structured data")
	pagesByType := map[string]int{}
	missing := uniqueList{}
	for _, r := range sortedResults(status, filter) {
		if !strings.Contains(r.ContentType, "html") || r.Code != 200 {
			continue
		}
		if len(r.Structure.LinkedData) == 0 {
			missing.add(r.TargetURL)
		}
		seen := map[string]bool{}
		for _, ld := range r.Structure.LinkedData {
			if !seen[ld.Type] {
				seen[ld.Type] = true
				pagesByType[ld.Type]++
			}
		}
	}
	types := make([]string, 0, len(pagesByType))
	for t := range pagesByType {
		types = append(types, t)
	}
	sort.Strings(types)
	for _, t := range types {
		println(t, pagesByType[t])
	}
	if len(missing) > 0 {
		printh("pages without json-ld")
		for _, targetURL := range missing {
			println("	", targetURL)
		}
	}
}
