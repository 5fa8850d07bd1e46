// Package deconflict evaluates planned missions against registered traffic
// and reports separation violations.
package deconflict

import (
	"time"

	"uav-deconflict/internal/traj"
)

// Status summarizes the outcome of a mission check.
type Status string

const (
	StatusClear    Status = "clear"
	StatusConflict Status = "conflict detected"
)

// Conflict records one sampled instant at which two vehicles were closer
// than the safety buffer. Location is the midpoint between the two
// interpolated positions. Conflicts are produced only by the detection
// algorithm and never modified afterwards.
type Conflict struct {
	VehicleA string        `json:"vehicle_a"`
	VehicleB string        `json:"vehicle_b"`
	Location traj.Waypoint `json:"location"`
	Time     time.Time     `json:"time"`
	Distance float64       `json:"distance"`
}

// Report is the result of checking one mission against the registry.
type Report struct {
	Status    Status     `json:"status"`
	Conflicts []Conflict `json:"conflicts"`
}

// Clear reports whether the check found no conflicts.
func (r *Report) Clear() bool {
	return len(r.Conflicts) == 0
}
