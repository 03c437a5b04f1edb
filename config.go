package main

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigFile = "boxlist.yaml"
	DefaultPrefix     = "content of list "
)

// Config represents the optional boxlist.yaml configuration.
type Config struct {
	List   []int64 `yaml:"list,omitempty"`
	Prefix *string `yaml:"prefix,omitempty"`
	Trace  bool    `yaml:"trace,omitempty"`
	Stat   bool    `yaml:"stat,omitempty"`
}

// LoadConfig reads the config file at path. With an empty path the default
// file is tried and its absence is not an error.
func LoadConfig(path string) (*Config, error) {
	optional := path == ""
	if optional {
		path = DefaultConfigFile
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if optional && errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %v: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %v: %w", path, err)
	}
	return &cfg, nil
}

func (c *Config) ListPrefix() string {
	if c.Prefix == nil {
		return DefaultPrefix
	}
	return *c.Prefix
}
