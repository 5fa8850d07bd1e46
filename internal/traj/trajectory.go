package traj

import (
	"errors"
	"fmt"
	"time"
)

// Construction errors.
var (
	ErrTooFewWaypoints = errors.New("trajectory needs at least 2 waypoints")
	ErrWindowInverted  = errors.New("mission end time before start time")
	ErrTimesNotOrdered = errors.New("waypoint timestamps not in ascending order")
	ErrNoEndTime       = errors.New("no end time given and last waypoint has no timestamp")
)

// Trajectory is an ordered flight path for one vehicle with a resolved
// per-waypoint time schedule. The schedule is computed once at construction
// and is immutable afterwards.
type Trajectory struct {
	vehicleID string
	waypoints []Waypoint
	schedule  []time.Time
}

// New builds a trajectory from an ordered waypoint sequence and a mission
// window. A zero end time falls back to the last waypoint's own timestamp.
//
// The schedule is resolved as follows: if every waypoint carries an explicit
// timestamp, those are used verbatim; otherwise arrival times are spread over
// the mission window in proportion to distance flown, which models constant
// ground speed. A zero-length path collapses every arrival to the start time.
func New(vehicleID string, waypoints []Waypoint, start, end time.Time) (*Trajectory, error) {
	if len(waypoints) < 2 {
		return nil, fmt.Errorf("trajectory %s: %w", vehicleID, ErrTooFewWaypoints)
	}
	if end.IsZero() {
		last := waypoints[len(waypoints)-1]
		if !last.HasTime() {
			return nil, fmt.Errorf("trajectory %s: %w", vehicleID, ErrNoEndTime)
		}
		end = last.Time
	}
	if end.Before(start) {
		return nil, fmt.Errorf("trajectory %s: %w", vehicleID, ErrWindowInverted)
	}

	t := &Trajectory{
		vehicleID: vehicleID,
		waypoints: append([]Waypoint(nil), waypoints...),
	}
	schedule, err := resolveSchedule(t.waypoints, start, end)
	if err != nil {
		return nil, fmt.Errorf("trajectory %s: %w", vehicleID, err)
	}
	t.schedule = schedule
	return t, nil
}

// resolveSchedule assigns one arrival time per waypoint.
func resolveSchedule(waypoints []Waypoint, start, end time.Time) ([]time.Time, error) {
	if allTimed(waypoints) {
		schedule := make([]time.Time, len(waypoints))
		for i, wp := range waypoints {
			if i > 0 && wp.Time.Before(schedule[i-1]) {
				return nil, ErrTimesNotOrdered
			}
			schedule[i] = wp.Time
		}
		return schedule, nil
	}

	total := 0.0
	segments := make([]float64, 0, len(waypoints)-1)
	for i := 0; i < len(waypoints)-1; i++ {
		d := waypoints[i].DistanceTo(waypoints[i+1])
		segments = append(segments, d)
		total += d
	}

	duration := end.Sub(start)
	schedule := make([]time.Time, 0, len(waypoints))
	schedule = append(schedule, start)
	elapsed := time.Duration(0)
	for _, seg := range segments {
		// Degenerate path: zero total distance collapses all arrivals
		// to the start time.
		if total > 0 {
			elapsed += time.Duration(seg / total * float64(duration))
		}
		schedule = append(schedule, start.Add(elapsed))
	}
	return schedule, nil
}

func allTimed(waypoints []Waypoint) bool {
	for _, wp := range waypoints {
		if !wp.HasTime() {
			return false
		}
	}
	return true
}

// VehicleID returns the vehicle identifier this trajectory belongs to.
func (t *Trajectory) VehicleID() string { return t.vehicleID }

// Waypoints returns a copy of the waypoint sequence.
func (t *Trajectory) Waypoints() []Waypoint {
	return append([]Waypoint(nil), t.waypoints...)
}

// Start returns the first scheduled arrival time.
func (t *Trajectory) Start() time.Time { return t.schedule[0] }

// End returns the last scheduled arrival time.
func (t *Trajectory) End() time.Time { return t.schedule[len(t.schedule)-1] }

// Schedule returns a copy of the per-waypoint arrival times.
func (t *Trajectory) Schedule() []time.Time {
	return append([]time.Time(nil), t.schedule...)
}

// PositionAt returns the interpolated position at query time, or ok=false
// when the time falls outside the trajectory's flight window. Positions are
// interpolated linearly within the bracketing schedule interval; there is no
// extrapolation.
func (t *Trajectory) PositionAt(query time.Time) (Waypoint, bool) {
	if query.Before(t.schedule[0]) || query.After(t.schedule[len(t.schedule)-1]) {
		return Waypoint{}, false
	}

	for i := 0; i < len(t.schedule)-1; i++ {
		t1, t2 := t.schedule[i], t.schedule[i+1]
		if query.Before(t1) || query.After(t2) {
			continue
		}
		wp1, wp2 := t.waypoints[i], t.waypoints[i+1]
		if t1.Equal(t2) {
			// Zero-width interval, no progress to interpolate.
			return Waypoint{X: wp1.X, Y: wp1.Y, Z: wp1.Z, Time: query}, true
		}
		f := float64(query.Sub(t1)) / float64(t2.Sub(t1))
		return Waypoint{
			X:    wp1.X + f*(wp2.X-wp1.X),
			Y:    wp1.Y + f*(wp2.Y-wp1.Y),
			Z:    wp1.Z + f*(wp2.Z-wp1.Z),
			Time: query,
		}, true
	}
	return Waypoint{}, false
}
