package reports

import (
	"io"

	"github.com/foomo/resinaro/vo"
)

func reportValidations(status vo.Status, w io.Writer, filter crawlResultFilter) {
	printh, println, _ := printers(w)
	printh("validations")
	for _, r := range sortedResults(status, filter) {
		if len(r.Validations) > 0 {
			println(r.TargetURL)
			for _, v := range r.Validations {
				println("	", v.Group, v.Level, v.Message)
			}
		}
	}
}
