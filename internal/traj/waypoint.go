// Package traj holds the trajectory data model: timed 3D waypoints and
// the interpolated flight paths built from them.
package traj

import (
	"math"
	"time"
)

// Waypoint is a point in 3D space with an optional timestamp.
// Z is 0 for 2D scenarios; a zero Time means the waypoint carries no
// explicit arrival time. Waypoints are held by value and never mutated.
type Waypoint struct {
	X    float64   `json:"x" yaml:"x"`
	Y    float64   `json:"y" yaml:"y"`
	Z    float64   `json:"z" yaml:"z"`
	Time time.Time `json:"t,omitempty" yaml:"t,omitempty"`
}

// HasTime reports whether the waypoint carries an explicit timestamp.
func (w Waypoint) HasTime() bool {
	return !w.Time.IsZero()
}

// DistanceTo returns the 3D Euclidean distance to other.
func (w Waypoint) DistanceTo(other Waypoint) float64 {
	dx := w.X - other.X
	dy := w.Y - other.Y
	dz := w.Z - other.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// Midpoint returns the point halfway between w and other, stamped with t.
func (w Waypoint) Midpoint(other Waypoint, t time.Time) Waypoint {
	return Waypoint{
		X:    (w.X + other.X) / 2,
		Y:    (w.Y + other.Y) / 2,
		Z:    (w.Z + other.Z) / 2,
		Time: t,
	}
}
