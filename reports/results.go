package reports

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/foomo/resinaro/vo"
)

func reportResults(status vo.Status, w io.Writer, filter crawlResultFilter) {
	printh, println, _ := printers(w)
	results := sortedResults(status, filter)
	printh("results", len(results))
	for _, res := range results {
		yamlBytes, errYaml := yaml.Marshal(res)
		if errYaml != nil {
			println("could not print", res.TargetURL, errYaml)
		} else {
			println(string(yamlBytes))
		}
	}
}
