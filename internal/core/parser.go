package core

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed stages.yaml
var defaultStages []byte

// ParsePipeline parses YAML content into a validated Pipeline
func ParsePipeline(data []byte) (*Pipeline, error) {
	var pipeline Pipeline
	if err := yaml.Unmarshal(data, &pipeline); err != nil {
		return nil, fmt.Errorf("decode pipeline: %w", err)
	}
	if err := pipeline.Validate(); err != nil {
		return nil, err
	}
	return &pipeline, nil
}

// LoadPipeline reads a pipeline document from disk
func LoadPipeline(path string) (*Pipeline, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParsePipeline(data)
}

// DefaultPipeline returns the eight stages compiled into the binary.
// Every call returns a fresh copy.
func DefaultPipeline() *Pipeline {
	p, err := ParsePipeline(defaultStages)
	if err != nil {
		// stages.yaml is embedded at build time
		panic(fmt.Sprintf("embedded pipeline is invalid: %v", err))
	}
	return p
}
