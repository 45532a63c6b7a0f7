package config

import (
	"os"

	"github.com/gruntwork-io/go-commons/errors"
	"gopkg.in/yaml.v3"
)

// LoadShow reads a show script from a YAML file.
func LoadShow(path string) (*Show, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WithStackTrace(err)
	}

	var show Show
	if err := yaml.Unmarshal(data, &show); err != nil {
		return nil, errors.WithStackTrace(err)
	}

	return &show, nil
}

// WriteShow writes a show script to a YAML file.
func WriteShow(show Show, path string) error {
	data, err := yaml.Marshal(show)
	if err != nil {
		return errors.WithStackTrace(err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.WithStackTrace(err)
	}
	return nil
}
