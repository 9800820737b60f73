package vo

type Heading struct {
	Level int    `yaml:"level"`
	Text  string `yaml:"text"`
}

// LinkedData is the head of a json-ld script, enough to tell what was emitted
type LinkedData struct {
	Context string `json:"@context" yaml:"context"`
	Type    string `json:"@type" yaml:"type"`
}

// Alternate is a <link rel="alternate" hreflang="..."> entry
type Alternate struct {
	HrefLang string `yaml:"hreflang"`
	Href     string `yaml:"href"`
}

// Structure is what a search engine sees of a page
type Structure struct {
	Title       string       `yaml:"title"`
	Description string       `yaml:"description"`
	Lang        string       `yaml:"lang"`
	Headings    []Heading    `yaml:"headings"`
	Robots      string       `yaml:"robots"`
	LinkedData  []LinkedData `yaml:"linkedData"`
	Canonical   string       `yaml:"canonical"`
	LinkPrev    string       `yaml:"linkPrev"`
	LinkNext    string       `yaml:"linkNext"`
	Alternates  []Alternate  `yaml:"alternates"`
}

// H1s lists the texts of all level one headings
func (s Structure) H1s() []string {
	h1s := []string{}
	for _, h := range s.Headings {
		if h.Level == 1 {
			h1s = append(h1s, h.Text)
		}
	}
	return h1s
}

// HasLinkedDataType is true when a json-ld document of type t was found
func (s Structure) HasLinkedDataType(t string) bool {
	for _, ld := range s.LinkedData {
		if ld.Type == t {
			return true
		}
	}
	return false
}
