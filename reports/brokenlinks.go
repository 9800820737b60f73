package reports

import (
	"io"
	"net/http"
	"sort"

	"github.com/foomo/resinaro/vo"
)

func reportBrokenLinks(status vo.Status, w io.Writer, filter crawlResultFilter) {
	printh, println, _ := printers(w)
	printh("broken links")
	broken := map[string][]string{}
	// collect 404s
	for _, res := range sortedResults(status, filter) {
		if res.Code == http.StatusNotFound {
			broken[res.TargetURL] = []string{}
		}
	}
	// see where they link from
	for _, res := range sortedResults(status, nil) {
		for target := range linkTargets(res) {
			if from, ok := broken[target]; ok {
				broken[target] = append(from, res.TargetURL)
			}
		}
	}
	brokenKeys := make([]string, 0, len(broken))
	for k := range broken {
		brokenKeys = append(brokenKeys, k)
	}
	sort.Strings(brokenKeys)
	for _, brokenKey := range brokenKeys {
		println(brokenKey, " (", len(broken[brokenKey]), "):")
		for i, from := range broken[brokenKey] {
			if i > 19 {
				println("	...")
				break
			}
			println("	", from)
		}
	}
}
