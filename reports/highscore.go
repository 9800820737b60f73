package reports

import (
	"io"
	"sort"

	"github.com/foomo/resinaro/vo"
)

func reportHighscore(status vo.Status, w io.Writer, filter crawlResultFilter) {
	printh, println, _ := printers(w)
	printh("high score")
	results := sortedResults(status, filter)
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Duration < results[j].Duration
	})
	for i, r := range results {
		println(i, r.Code, r.TargetURL, r.Duration)
	}
}
