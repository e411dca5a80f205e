package core

import (
	"errors"
	"fmt"
)

var (
	ErrNoStages        = errors.New("pipeline has no stages")
	ErrEmptyStageField = errors.New("stage name and description must be set")
)

// Pipeline is the ordered list of CI/CD stages shown on the home view.
// Order is display order.
type Pipeline struct {
	Name   string  `yaml:"name" json:"name"`
	Stages []Stage `yaml:"stages" json:"stages"`
}

// Stage describes one step of the delivery pipeline.
type Stage struct {
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description" json:"description"`
}

// NumberedStage is a stage with its 1-based position.
type NumberedStage struct {
	Position int `json:"position"`
	Stage
}

// Validate checks that every stage has a name and a description
func (p *Pipeline) Validate() error {
	if len(p.Stages) == 0 {
		return ErrNoStages
	}
	for i, s := range p.Stages {
		if s.Name == "" || s.Description == "" {
			return fmt.Errorf("stage %d: %w", i+1, ErrEmptyStageField)
		}
	}
	return nil
}

// Numbered returns the stages with positions starting at 1.
func (p *Pipeline) Numbered() []NumberedStage {
	out := make([]NumberedStage, 0, len(p.Stages))
	for i, s := range p.Stages {
		out = append(out, NumberedStage{Position: i + 1, Stage: s})
	}
	return out
}
