package deconflict

import (
	"context"
	"math"
	"testing"
	"time"

	"uav-deconflict/internal/traj"
)

var (
	baseStart = time.Date(2025, 4, 7, 10, 0, 0, 0, time.UTC)
	baseEnd   = time.Date(2025, 4, 7, 10, 30, 0, 0, time.UTC)
)

func mustTrajectory(t *testing.T, id string, wps []traj.Waypoint, start, end time.Time) *traj.Trajectory {
	t.Helper()
	tr, err := traj.New(id, wps, start, end)
	if err != nil {
		t.Fatalf("trajectory %s: %v", id, err)
	}
	return tr
}

func diagonalPath(offset float64) []traj.Waypoint {
	return []traj.Waypoint{
		{X: offset, Y: 0, Z: 100},
		{X: offset + 100, Y: 100, Z: 100},
		{X: offset + 200, Y: 200, Z: 100},
	}
}

func TestCheckEmptyRegistryIsClear(t *testing.T) {
	reg := NewRegistry(50, time.Minute)
	mission := mustTrajectory(t, "primary", diagonalPath(0), baseStart, baseEnd)

	rep, err := reg.Check(context.Background(), mission)
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if rep.Status != StatusClear || !rep.Clear() {
		t.Errorf("expected clear report, got %+v", rep)
	}
}

func TestCheckSkipsSameVehicleID(t *testing.T) {
	reg := NewRegistry(50, time.Minute)
	mission := mustTrajectory(t, "primary", diagonalPath(0), baseStart, baseEnd)
	// Same id, same path: would conflict everywhere if compared.
	reg.Register(mustTrajectory(t, "primary", diagonalPath(0), baseStart, baseEnd))

	rep, err := reg.Check(context.Background(), mission)
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if rep.Status != StatusClear {
		t.Errorf("self-comparison must be skipped, got %s with %d conflicts",
			rep.Status, len(rep.Conflicts))
	}
}

func TestIdenticalPathsConflict(t *testing.T) {
	reg := NewRegistry(50, time.Minute)
	reg.Register(mustTrajectory(t, "other", diagonalPath(0), baseStart, baseEnd))
	mission := mustTrajectory(t, "primary", diagonalPath(0), baseStart, baseEnd)

	rep, err := reg.Check(context.Background(), mission)
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if rep.Status != StatusConflict {
		t.Fatalf("expected conflict, got %s", rep.Status)
	}
	if len(rep.Conflicts) == 0 {
		t.Fatal("expected at least one conflict")
	}
	for _, c := range rep.Conflicts {
		if c.Distance > 1e-9 {
			t.Errorf("identical paths should give distance 0, got %f at %v", c.Distance, c.Time)
		}
		if c.VehicleA != "primary" || c.VehicleB != "other" {
			t.Errorf("unexpected vehicle pair: %s / %s", c.VehicleA, c.VehicleB)
		}
	}
}

func TestAltitudeSeparation(t *testing.T) {
	low := []traj.Waypoint{
		{X: 0, Y: 0, Z: 50}, {X: 100, Y: 100, Z: 50}, {X: 200, Y: 200, Z: 50},
	}
	high := []traj.Waypoint{
		{X: 0, Y: 0, Z: 150}, {X: 100, Y: 100, Z: 150}, {X: 200, Y: 200, Z: 150},
	}

	// 100 units of vertical separation against an 80-unit buffer: clear.
	reg := NewRegistry(80, time.Minute)
	reg.Register(mustTrajectory(t, "other", high, baseStart, baseEnd))
	mission := mustTrajectory(t, "primary", low, baseStart, baseEnd)
	rep, err := reg.Check(context.Background(), mission)
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if rep.Status != StatusClear {
		t.Errorf("buffer 80: expected clear, got %d conflicts", len(rep.Conflicts))
	}

	// The same geometry with a 120-unit buffer must conflict.
	reg = NewRegistry(120, time.Minute)
	reg.Register(mustTrajectory(t, "other", high, baseStart, baseEnd))
	rep, err = reg.Check(context.Background(), mission)
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if rep.Status != StatusConflict {
		t.Error("buffer 120: expected conflict")
	}
}

func TestTemporalSeparation(t *testing.T) {
	reg := NewRegistry(20, time.Minute)
	reg.Register(mustTrajectory(t, "other", diagonalPath(0),
		baseStart.Add(20*time.Minute), baseEnd))
	mission := mustTrajectory(t, "primary", diagonalPath(0),
		baseStart, baseStart.Add(10*time.Minute))

	rep, err := reg.Check(context.Background(), mission)
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if rep.Status != StatusClear {
		t.Errorf("disjoint windows must never conflict, got %d conflicts", len(rep.Conflicts))
	}
}

func TestBarelyWithinSafetyBuffer(t *testing.T) {
	straight := func(y float64) []traj.Waypoint {
		return []traj.Waypoint{
			{X: 0, Y: y, Z: 100}, {X: 100, Y: y, Z: 100}, {X: 200, Y: y, Z: 100},
		}
	}
	step := time.Minute

	reg := NewRegistry(20, step)
	reg.Register(mustTrajectory(t, "other", straight(19), baseStart, baseEnd))
	mission := mustTrajectory(t, "primary", straight(0), baseStart, baseEnd)
	rep, err := reg.Check(context.Background(), mission)
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	// Constant 19-unit offset: every sample across the shared window violates.
	wantSamples := int(baseEnd.Sub(baseStart)/step) + 1
	if len(rep.Conflicts) != wantSamples {
		t.Errorf("offset 19: got %d conflicts, want one per sample (%d)",
			len(rep.Conflicts), wantSamples)
	}
	for _, c := range rep.Conflicts {
		if math.Abs(c.Distance-19) > 1e-9 {
			t.Errorf("distance = %f, want 19", c.Distance)
		}
	}

	reg = NewRegistry(20, step)
	reg.Register(mustTrajectory(t, "other", straight(21), baseStart, baseEnd))
	rep, err = reg.Check(context.Background(), mission)
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if len(rep.Conflicts) != 0 {
		t.Errorf("offset 21: expected zero conflicts, got %d", len(rep.Conflicts))
	}
}

func TestFindConflictsSymmetry(t *testing.T) {
	a := mustTrajectory(t, "a", diagonalPath(0), baseStart, baseEnd)
	b := mustTrajectory(t, "b", diagonalPath(10), baseStart, baseEnd)

	ctx := context.Background()
	ab, err := findConflicts(ctx, a, b, 30, time.Minute)
	if err != nil {
		t.Fatalf("findConflicts(a,b): %v", err)
	}
	ba, err := findConflicts(ctx, b, a, 30, time.Minute)
	if err != nil {
		t.Fatalf("findConflicts(b,a): %v", err)
	}

	if len(ab) == 0 {
		t.Fatal("expected conflicts for 10-unit offset under 30-unit buffer")
	}
	if len(ab) != len(ba) {
		t.Fatalf("conflict counts differ: %d vs %d", len(ab), len(ba))
	}
	for i := range ab {
		if !ab[i].Time.Equal(ba[i].Time) {
			t.Errorf("conflict %d: times differ: %v vs %v", i, ab[i].Time, ba[i].Time)
		}
		if math.Abs(ab[i].Distance-ba[i].Distance) > 1e-9 {
			t.Errorf("conflict %d: distances differ: %f vs %f", i, ab[i].Distance, ba[i].Distance)
		}
		if ab[i].VehicleA != ba[i].VehicleB || ab[i].VehicleB != ba[i].VehicleA {
			t.Errorf("conflict %d: vehicle ids not swapped: %+v vs %+v", i, ab[i], ba[i])
		}
	}
}

func TestConflictLocationIsMidpoint(t *testing.T) {
	straight := func(y float64) []traj.Waypoint {
		return []traj.Waypoint{{X: 0, Y: y, Z: 100}, {X: 200, Y: y, Z: 100}}
	}
	a := mustTrajectory(t, "a", straight(0), baseStart, baseEnd)
	b := mustTrajectory(t, "b", straight(10), baseStart, baseEnd)

	conflicts, err := findConflicts(context.Background(), a, b, 20, time.Minute)
	if err != nil {
		t.Fatalf("findConflicts: %v", err)
	}
	if len(conflicts) == 0 {
		t.Fatal("expected conflicts")
	}
	for _, c := range conflicts {
		if math.Abs(c.Location.Y-5) > 1e-9 {
			t.Errorf("midpoint Y = %f, want 5", c.Location.Y)
		}
		if math.Abs(c.Location.Z-100) > 1e-9 {
			t.Errorf("midpoint Z = %f, want 100", c.Location.Z)
		}
	}
}

func TestRegistrationOrderPreserved(t *testing.T) {
	reg := NewRegistry(50, 5*time.Minute)
	reg.Register(mustTrajectory(t, "first", diagonalPath(0), baseStart, baseEnd))
	reg.Register(mustTrajectory(t, "second", diagonalPath(0), baseStart, baseEnd))
	mission := mustTrajectory(t, "primary", diagonalPath(0), baseStart, baseEnd)

	rep, err := reg.Check(context.Background(), mission)
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if len(rep.Conflicts) == 0 {
		t.Fatal("expected conflicts")
	}
	seenSecond := false
	for _, c := range rep.Conflicts {
		if c.VehicleB == "second" {
			seenSecond = true
		}
		if c.VehicleB == "first" && seenSecond {
			t.Fatal("conflicts not in registration order")
		}
	}
	if !seenSecond {
		t.Error("expected conflicts against both registrations")
	}
}

func TestCheckHonorsCancellation(t *testing.T) {
	reg := NewRegistry(50, time.Millisecond)
	reg.Register(mustTrajectory(t, "other", diagonalPath(0), baseStart, baseEnd))
	mission := mustTrajectory(t, "primary", diagonalPath(0), baseStart, baseEnd)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := reg.Check(ctx, mission); err == nil {
		t.Fatal("expected context error")
	}
}

func TestRegistryDefaults(t *testing.T) {
	reg := NewRegistry(0, 0)
	if reg.SafetyBuffer() != DefaultSafetyBuffer {
		t.Errorf("buffer = %f, want default", reg.SafetyBuffer())
	}
	if reg.SampleStep() != DefaultSampleStep {
		t.Errorf("step = %v, want default", reg.SampleStep())
	}
}

func TestConcurrentChecks(t *testing.T) {
	reg := NewRegistry(50, time.Minute)
	reg.Register(mustTrajectory(t, "other", diagonalPath(0), baseStart, baseEnd))
	mission := mustTrajectory(t, "primary", diagonalPath(5), baseStart, baseEnd)

	done := make(chan error, 8)
	for i := 0; i < 8; i++ {
		go func() {
			_, err := reg.Check(context.Background(), mission)
			done <- err
		}()
	}
	for i := 0; i < 8; i++ {
		if err := <-done; err != nil {
			t.Errorf("concurrent check failed: %v", err)
		}
	}
}
