package reports

import (
	"io"
	"math"
	"sort"
	"time"

	"github.com/foomo/resinaro/vo"
)

type bucket struct {
	Name string
	From time.Duration
	To   time.Duration
}

var buckets = []bucket{
	{Name: "awesome < 50 ms", From: 0, To: 50 * time.Millisecond},
	{Name: "great < 100 ms", From: 50 * time.Millisecond, To: 100 * time.Millisecond},
	{Name: "ok < 200 ms", From: 100 * time.Millisecond, To: 200 * time.Millisecond},
	{Name: "not too good < 300 ms", From: 200 * time.Millisecond, To: 300 * time.Millisecond},
	{Name: "meh < 500 ms", From: 300 * time.Millisecond, To: 500 * time.Millisecond},
	{Name: "bad < 1 s", From: 500 * time.Millisecond, To: time.Second},
	{Name: "really bad < 3 s", From: time.Second, To: 3 * time.Second},
	{Name: "ouch < 5 s", From: 3 * time.Second, To: 5 * time.Second},
	{Name: "catastrophic < 10 s", From: 5 * time.Second, To: 10 * time.Second},
	{Name: "end of the world > 10 s", From: 10 * time.Second, To: time.Hour},
}

func reportSummary(status vo.Status, w io.Writer, filter crawlResultFilter) {
	printh, println, _ := printers(w)
	printh("summary")
	results := sortedResults(status, filter)
	println("pages:", len(results), "crawl took:", status.Duration())

	printh("status codes")
	statusMap := map[int]int{}
	for _, r := range results {
		statusMap[r.Code]++
	}
	codes := sort.IntSlice{}
	for code := range statusMap {
		codes = append(codes, code)
	}
	sort.Sort(codes)
	for _, code := range codes {
		println(code, statusMap[code])
	}

	printh("validations")
	for _, level := range []vo.ValidationLevel{vo.ValidationLevelError, vo.ValidationLevelWarning, vo.ValidationLevelInfo} {
		count := 0
		for _, r := range results {
			count += r.Validations.Count(level)
		}
		println(level, count)
	}

	printh("performance buckets")
	if len(results) == 0 {
		return
	}
	for _, b := range buckets {
		bucketI := 0
		for _, result := range results {
			if result.Duration >= b.From && result.Duration < b.To {
				bucketI++
			}
		}
		println(
			bucketI,
			"	",
			math.Round(float64(bucketI)/float64(len(results))*100),
			"%	(", b.From, "=>", b.To, ")",
			b.Name,
		)
	}
}

func reportList(status vo.Status, w io.Writer, filter crawlResultFilter) {
	printh, println, _ := printers(w)
	results := sortedResults(status, filter)
	printh("results", len(results))
	for i, r := range results {
		println(i, r.Code, r.TargetURL)
	}
}
