package vo

import "time"

type LinkList map[string]int

// CrawlResult of fetching one page of the site
type CrawlResult struct {
	TargetURL   string        `yaml:"targetURL"`
	Error       string        `yaml:"error,omitempty"`
	Code        int           `yaml:"code"`
	Status      string        `yaml:"status"`
	ContentType string        `yaml:"contentType"`
	Location    string        `yaml:"location,omitempty"`
	Links       LinkList      `yaml:"links,omitempty"`
	Duration    time.Duration `yaml:"duration"`
	Time        time.Time     `yaml:"time"`
	Structure   Structure     `yaml:"structure"`
	Validations Validations   `yaml:"validations,omitempty"`
}

// Status of a crawl, results are keyed by target url
type Status struct {
	Results map[string]CrawlResult
	Started time.Time
	Done    time.Time
}

func (s Status) Duration() time.Duration {
	return s.Done.Sub(s.Started)
}
