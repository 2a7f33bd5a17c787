package monkey

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadConfig reads engine limits from a YAML file. Unknown keys are
// rejected so a misspelt limit does not silently leave evaluation unbounded.
func LoadConfig(path string) (Config, error) {
	if path == "" {
		return Config{}, fmt.Errorf("config: empty path")
	}
	file, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer file.Close()

	cfg, err := DecodeConfig(file)
	if err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// DecodeConfig decodes a YAML config document from r. An empty document
// yields the zero Config.
func DecodeConfig(r io.Reader) (Config, error) {
	var cfg Config
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, err
	}
	if cfg.StepQuota < 0 || cfg.RecursionLimit < 0 {
		return Config{}, fmt.Errorf("limits must be non-negative")
	}
	return cfg, nil
}
