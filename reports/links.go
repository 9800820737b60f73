package reports

import (
	"io"

	"github.com/foomo/resinaro/vo"
)

func reportLinks(status vo.Status, w io.Writer, filter crawlResultFilter) {
	printh, println, _ := printers(w)
	all := sortedResults(status, nil)
	targets := make([]map[string]bool, len(all))
	for i, r := range all {
		targets[i] = linkTargets(r)
	}
	results := sortedResults(status, filter)
	printh("links", len(results))
	for _, res := range results {
		println(res.TargetURL)
		for i, r := range all {
			if targets[i][res.TargetURL] {
				println("	", r.TargetURL)
			}
		}
	}
}
