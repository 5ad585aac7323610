package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Symbol     string          `yaml:"symbol" validate:"required"`
	Date       string          `yaml:"date" validate:"required"`
	Investment float64         `yaml:"investment" validate:"gt=0"`
	Frequency  string          `yaml:"frequency"`
	Timezone   string          `yaml:"timezone"`
	Report     string          `yaml:"report"`
	Chart      string          `yaml:"chart"`
	Database   string          `yaml:"database"`
	Dump       string          `yaml:"dump"`
	SourceRef  SourceReference `yaml:"source"`
}

func Read(r io.Reader) (*Config, error) {
	var cfg Config
	d := yaml.NewDecoder(r)
	err := d.Decode(&cfg)
	if err != nil {
		return nil, fmt.Errorf("unable to parse config file: %w", err)
	}

	return &cfg, nil
}

func ReadFromFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read config file: %w", err)
	}
	defer f.Close()

	return Read(f)
}

// source configs

type Polygon struct {
	ApiKey string `yaml:"api_key"`
}

type Alpaca struct {
	BaseUrl string `yaml:"base_url"`
	ApiKey  string `yaml:"api_key"`
	Secret  string `yaml:"secret"`
}

type CsvFile struct {
	Path string `yaml:"path"`
}

type Source interface{}

type SourceReference struct {
	Source Source
}

func (w *SourceReference) UnmarshalYAML(value *yaml.Node) error {
	if len(value.Content) == 0 {
		return nil
	}

	if value.Kind != yaml.MappingNode || len(value.Content) != 2 {
		return errors.New("invalid source yaml format")
	}

	key := value.Content[0].Value
	switch key {
	case "polygon":
		var polygon Polygon
		if err := value.Content[1].Decode(&polygon); err != nil {
			return fmt.Errorf("failed parsing polygon source config: %w", err)
		}
		w.Source = polygon
	case "alpaca":
		var alpaca Alpaca
		if err := value.Content[1].Decode(&alpaca); err != nil {
			return fmt.Errorf("failed parsing alpaca source config: %w", err)
		}
		w.Source = alpaca
	case "csv":
		var csv CsvFile
		if err := value.Content[1].Decode(&csv); err != nil {
			return fmt.Errorf("failed parsing csv source config: %w", err)
		}
		w.Source = csv
	default:
		return fmt.Errorf("unknown source type: %s", key)
	}

	return nil
}
