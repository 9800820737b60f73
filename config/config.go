package config

import (
	"errors"
	"io/fs"
	"net/url"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	EnvNewsletterEndpoint = "NEXT_PUBLIC_NEWSLETTER_ENDPOINT"
	EnvAddr               = "RESINARO_ADDR"
	EnvBaseURL            = "RESINARO_BASE_URL"
	EnvData               = "RESINARO_DATA"
	EnvPostgresDSN        = "RESINARO_POSTGRES_DSN"
)

const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Target is where the auditor starts, in yaml either a plain url or
// baseurl + paths
type Target struct {
	BaseURL string   `yaml:"baseurl"`
	Paths   []string `yaml:"paths"`
}

func (t *Target) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		t.BaseURL = value.Value
		return nil
	}
	type plain Target
	return value.Decode((*plain)(t))
}

type Audit struct {
	Target            Target   `yaml:"target"`
	Concurrency       int      `yaml:"concurrency"`
	RequestsPerSecond float64  `yaml:"requestspersecond"`
	Agent             string   `yaml:"agent"`
	Ignore            []string `yaml:"ignore"`
	IgnoreQueriesWith []string `yaml:"ignorequerieswith"`
	IgnoreAllQueries  bool     `yaml:"ignoreallqueries"`
	IgnoreRobots      bool     `yaml:"ignorerobots"`
	Depth             int      `yaml:"depth"`
	Paging            bool     `yaml:"paging"`
	MaxPages          int      `yaml:"maxpages"`
}

type Config struct {
	Addr               string   `yaml:"addr"`
	BaseURL            string   `yaml:"baseurl"`
	Data               string   `yaml:"data"`
	PostgresDSN        string   `yaml:"postgresdsn"`
	NewsletterEndpoint string   `yaml:"newsletterendpoint"`
	Minify             bool     `yaml:"minify"`
	CORSOrigins        []string `yaml:"corsorigins"`
	LogFormat          string   `yaml:"logformat"`
	Debug              bool     `yaml:"debug"`
	Audit              Audit    `yaml:"audit"`
}

func defaults() *Config {
	return &Config{
		Addr:               ":8080",
		BaseURL:            "http://localhost:8080",
		Data:               "data/listings.yaml",
		NewsletterEndpoint: "#",
		CORSOrigins:        []string{"*"},
		LogFormat:          LogFormatText,
		Audit: Audit{
			Concurrency:       2,
			RequestsPerSecond: 10,
			Agent:             "resinaro-audit",
			MaxPages:          10000,
		},
	}
}

func Load(yamlBytes []byte) (conf *Config, err error) {
	conf = defaults()
	if errUnmarshal := yaml.Unmarshal(yamlBytes, conf); errUnmarshal != nil {
		return nil, errUnmarshal
	}
	if errTarget := conf.Audit.Target.normalize(); errTarget != nil {
		return nil, errTarget
	}
	conf.BaseURL = strings.TrimRight(conf.BaseURL, "/")
	return conf, nil
}

// Get reads a config file, no filename means defaults
func Get(filename string) (conf *Config, err error) {
	if filename == "" {
		return Load(nil)
	}
	yamlBytes, errRead := os.ReadFile(filename)
	if errRead != nil {
		return nil, errRead
	}
	return Load(yamlBytes)
}

// ParseTarget reads a target given as a plain url e.g. on the command line
func ParseTarget(raw string) (t Target, err error) {
	t.BaseURL = raw
	err = t.normalize()
	return t, err
}

// normalize splits a target url with a path into base url and paths
func (t *Target) normalize() error {
	if t.BaseURL == "" {
		return nil
	}
	u, errParse := url.Parse(t.BaseURL)
	if errParse != nil {
		return errParse
	}
	if u.Path != "" && u.Path != "/" && len(t.Paths) == 0 {
		t.Paths = []string{u.Path}
	}
	u.Path = ""
	u.RawQuery = ""
	t.BaseURL = u.String()
	if len(t.Paths) == 0 {
		t.Paths = []string{"/"}
	}
	return nil
}

// LoadEnv reads .env style files into the environment, missing files are
// fine. Without filenames .env in the working directory is tried.
func LoadEnv(filenames ...string) error {
	errLoad := godotenv.Load(filenames...)
	if errLoad != nil && !errors.Is(errLoad, fs.ErrNotExist) {
		return errLoad
	}
	return nil
}

// ApplyEnv lets set environment variables win over the file
func (conf *Config) ApplyEnv() {
	for env, field := range map[string]*string{
		EnvNewsletterEndpoint: &conf.NewsletterEndpoint,
		EnvAddr:               &conf.Addr,
		EnvBaseURL:            &conf.BaseURL,
		EnvData:               &conf.Data,
		EnvPostgresDSN:        &conf.PostgresDSN,
	} {
		if value := os.Getenv(env); value != "" {
			*field = value
		}
	}
	conf.BaseURL = strings.TrimRight(conf.BaseURL, "/")
	if conf.NewsletterEndpoint == "" {
		conf.NewsletterEndpoint = "#"
	}
}
