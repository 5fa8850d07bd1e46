// Package scenario provides canned deconfliction situations: a primary
// mission plus surrounding traffic, runnable against a fresh registry.
package scenario

import (
	"context"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"uav-deconflict/internal/config"
	"uav-deconflict/internal/deconflict"
)

// Scenario bundles one mission check setup: detection parameters, the
// primary mission flight, and the traffic it is checked against.
type Scenario struct {
	Name          string          `yaml:"name"`
	Description   string          `yaml:"description,omitempty"`
	SafetyBufferM float64         `yaml:"safety_buffer_m"`
	SampleStep    config.Duration `yaml:"sample_step,omitempty"`
	Mission       config.Flight   `yaml:"mission"`
	Traffic       []config.Flight `yaml:"traffic"`

	// ExpectConflict records the reference outcome for built-in scenarios.
	ExpectConflict bool `yaml:"expect_conflict,omitempty"`
}

// Load reads a YAML scenario definition from disk.
func Load(path string) (*Scenario, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	var s Scenario
	if err := yaml.Unmarshal(b, &s); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	return &s, nil
}

// Run registers the scenario's traffic in a fresh registry and checks the
// primary mission against it.
func (s *Scenario) Run(ctx context.Context) (*deconflict.Report, error) {
	step := s.SampleStep.Std()
	if step <= 0 {
		step = 30 * time.Second
	}
	reg := deconflict.NewRegistry(s.SafetyBufferM, step)
	for _, f := range s.Traffic {
		tr, err := f.Trajectory()
		if err != nil {
			return nil, fmt.Errorf("scenario %s: %w", s.Name, err)
		}
		reg.Register(tr)
	}
	mission, err := s.Mission.Trajectory()
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", s.Name, err)
	}
	return reg.Check(ctx, mission)
}
