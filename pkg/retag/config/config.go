package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Run represents a pipeline run configuration
type Run struct {
	Sample      string   `yaml:"sample"`
	ParseRadix  int      `yaml:"parse_radix"`
	RenderRadix int      `yaml:"render_radix"`
	Tags        TagRange `yaml:"tags"`
}

// TagRange represents the inclusive tag alphabet range. Start and End are
// single-rune strings, e.g. "a" and "z".
type TagRange struct {
	Start string `yaml:"start"`
	End   string `yaml:"end"`
}

// LoadRun loads a run configuration from a YAML file
func LoadRun(path string) (*Run, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var run Run
	if err := yaml.Unmarshal(data, &run); err != nil {
		return nil, err
	}

	return &run, nil
}
