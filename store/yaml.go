package store

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type yamlDocument struct {
	Cities Buckets `yaml:"cities"`
}

// Load a store from a yaml document of the form
//
//	cities:
//	  london:
//	    restaurants:
//	      - slug: trattoria-x
//	        name: Trattoria X
func Load(yamlBytes []byte) (*Store, error) {
	doc := yamlDocument{}
	if errUnmarshal := yaml.Unmarshal(yamlBytes, &doc); errUnmarshal != nil {
		return nil, fmt.Errorf("could not parse listings: %w", errUnmarshal)
	}
	return New(doc.Cities)
}

// LoadFile reads a yaml listings file
func LoadFile(filename string) (*Store, error) {
	yamlBytes, errRead := os.ReadFile(filename)
	if errRead != nil {
		return nil, errRead
	}
	s, errLoad := Load(yamlBytes)
	if errLoad != nil {
		return nil, fmt.Errorf("%s: %w", filename, errLoad)
	}
	return s, nil
}
