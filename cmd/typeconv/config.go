package main

import (
	"fmt"
	"os"

	"github.com/viant/typeconv/conv"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Config represents registry options file
type Config struct {
	DateFormat string `yaml:"dateFormat"`
	DateLayout string `yaml:"dateLayout"`
	TimeFormat string `yaml:"timeFormat"`
	Delimiter  string `yaml:"delimiter"`
	Quote      string `yaml:"quote"`
}

// LoadConfig loads YAML config, empty path returns empty config
func LoadConfig(path string) (*Config, error) {
	ret := &Config{}
	if path == "" {
		return ret, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %v: %w", path, err)
	}
	if err = yaml.Unmarshal(data, ret); err != nil {
		return nil, fmt.Errorf("failed to decode config %v: %w", path, err)
	}
	return ret, nil
}

// Options returns registry options, unset values fall back to defaults
func (c *Config) Options(logger *zap.Logger) (conv.Options, error) {
	ret := conv.DefaultOptions()
	ret.Logger = logger
	if c.DateLayout != "" {
		ret.DateLayout = c.DateLayout
	}
	switch {
	case c.TimeFormat != "":
		ret.TimeFormat = c.TimeFormat
	case c.DateFormat != "":
		ret.TimeFormat = c.DateFormat
	}
	var err error
	if ret.Delimiter, err = singleByte("delimiter", c.Delimiter, ret.Delimiter); err != nil {
		return ret, err
	}
	if ret.Quote, err = singleByte("quote", c.Quote, ret.Quote); err != nil {
		return ret, err
	}
	return ret, nil
}

func singleByte(name, value string, defaultValue byte) (byte, error) {
	switch len(value) {
	case 0:
		return defaultValue, nil
	case 1:
		return value[0], nil
	}
	return 0, fmt.Errorf("invalid %v %q: expected single character", name, value)
}
