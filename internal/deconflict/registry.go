package deconflict

import (
	"context"
	"sync"
	"time"

	"uav-deconflict/internal/traj"
)

// Defaults applied by NewRegistry for non-positive arguments. The buffer is
// a toy value; operational deployments must supply their own.
const (
	DefaultSafetyBuffer = 10.0
	DefaultSampleStep   = time.Second
)

// Registry holds registered trajectories and checks candidate missions
// against them. Registration is append-only; checks are read-only, so
// concurrent checks may run while no registration is in progress.
//
// Vehicle ids are not deduplicated: registering two trajectories with the
// same id keeps both, and callers are expected to avoid it.
type Registry struct {
	safetyBuffer float64
	sampleStep   time.Duration

	mu           sync.RWMutex
	trajectories []*traj.Trajectory
}

// NewRegistry creates a registry with the given minimum separation distance
// and sampling time step, substituting defaults for non-positive values.
func NewRegistry(safetyBuffer float64, sampleStep time.Duration) *Registry {
	if safetyBuffer <= 0 {
		safetyBuffer = DefaultSafetyBuffer
	}
	if sampleStep <= 0 {
		sampleStep = DefaultSampleStep
	}
	return &Registry{safetyBuffer: safetyBuffer, sampleStep: sampleStep}
}

// SafetyBuffer returns the configured minimum separation distance.
func (r *Registry) SafetyBuffer() float64 { return r.safetyBuffer }

// SampleStep returns the configured sampling interval.
func (r *Registry) SampleStep() time.Duration { return r.sampleStep }

// Register adds a trajectory to the registry.
func (r *Registry) Register(t *traj.Trajectory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.trajectories = append(r.trajectories, t)
}

// Len returns the number of registered trajectories.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.trajectories)
}

// Check compares mission against every registered trajectory, skipping any
// that shares the mission's vehicle id, and aggregates per-pair conflicts in
// registration order. The only error condition is ctx being cancelled while
// sampling.
func (r *Registry) Check(ctx context.Context, mission *traj.Trajectory) (*Report, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	report := &Report{Status: StatusClear}
	for _, other := range r.trajectories {
		if other.VehicleID() == mission.VehicleID() {
			continue
		}
		conflicts, err := findConflicts(ctx, mission, other, r.safetyBuffer, r.sampleStep)
		if err != nil {
			return nil, err
		}
		report.Conflicts = append(report.Conflicts, conflicts...)
	}
	if len(report.Conflicts) > 0 {
		report.Status = StatusConflict
	}
	return report, nil
}

// findConflicts samples the overlapping time window of a and b at fixed
// increments and emits one Conflict per sample where the separation falls
// below buffer. Conflicts shorter than one step can be missed; that is the
// accepted cost of fixed-step sampling.
func findConflicts(ctx context.Context, a, b *traj.Trajectory, buffer float64, step time.Duration) ([]Conflict, error) {
	windowStart := a.Start()
	if b.Start().After(windowStart) {
		windowStart = b.Start()
	}
	windowEnd := a.End()
	if b.End().Before(windowEnd) {
		windowEnd = b.End()
	}
	// No temporal overlap: the vehicles never share airspace in time.
	if windowStart.After(windowEnd) {
		return nil, nil
	}

	var conflicts []Conflict
	for t := windowStart; !t.After(windowEnd); t = t.Add(step) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		posA, okA := a.PositionAt(t)
		posB, okB := b.PositionAt(t)
		if !okA || !okB {
			// Inside the overlap window both should resolve; skip the
			// sample rather than fail.
			continue
		}
		dist := posA.DistanceTo(posB)
		if dist < buffer {
			conflicts = append(conflicts, Conflict{
				VehicleA: a.VehicleID(),
				VehicleB: b.VehicleID(),
				Location: posA.Midpoint(posB, t),
				Time:     t,
				Distance: dist,
			})
		}
	}
	return conflicts, nil
}
