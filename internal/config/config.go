// YAML airspace configuration with CUE validation integration
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"uav-deconflict/internal/traj"
)

// Duration wraps time.Duration so YAML values like "30s" parse directly.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// Std returns the wrapped time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// Flight declares one vehicle's planned path and mission window.
// End may be omitted when the last waypoint carries its own timestamp.
type Flight struct {
	VehicleID string          `yaml:"vehicle_id"`
	Start     time.Time       `yaml:"start"`
	End       time.Time       `yaml:"end,omitempty"`
	Waypoints []traj.Waypoint `yaml:"waypoints"`
}

// Trajectory builds the flight's trajectory, resolving its time schedule.
func (f Flight) Trajectory() (*traj.Trajectory, error) {
	return traj.New(f.VehicleID, f.Waypoints, f.Start, f.End)
}

// AirspaceConfig is the root configuration: detection parameters, the
// candidate mission, and the already-registered traffic.
type AirspaceConfig struct {
	SafetyBufferM float64  `yaml:"safety_buffer_m"`
	SampleStep    Duration `yaml:"sample_step"`
	Mission       Flight   `yaml:"mission"`
	Flights       []Flight `yaml:"flights"`
}

// Load loads YAML config and validates it against a CUE schema.
func Load(configPath, cueSchemaPath string) (*AirspaceConfig, error) {
	if err := ValidateWithCue(configPath, cueSchemaPath); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}
	var cfg AirspaceConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
