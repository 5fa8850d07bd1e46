package traj

import (
	"math"
	"testing"
	"time"
)

func TestDistanceTo3D(t *testing.T) {
	a := Waypoint{X: 0, Y: 0, Z: 0}
	b := Waypoint{X: 3, Y: 4, Z: 12}
	if got := a.DistanceTo(b); got != 13 {
		t.Errorf("DistanceTo = %f, want 13", got)
	}
	if got := b.DistanceTo(a); got != 13 {
		t.Errorf("distance not symmetric: %f", got)
	}
}

func TestDistanceToMixed2D3D(t *testing.T) {
	// A 2D waypoint is just a 3D waypoint at Z=0.
	flat := Waypoint{X: 1, Y: 1}
	high := Waypoint{X: 1, Y: 1, Z: 50}
	if got := flat.DistanceTo(high); got != 50 {
		t.Errorf("DistanceTo = %f, want 50", got)
	}
}

func TestMidpoint(t *testing.T) {
	ts := time.Date(2025, 4, 7, 10, 0, 0, 0, time.UTC)
	a := Waypoint{X: 0, Y: 10, Z: 100}
	b := Waypoint{X: 10, Y: 20, Z: 200}
	mid := a.Midpoint(b, ts)
	if mid.X != 5 || mid.Y != 15 || mid.Z != 150 {
		t.Errorf("unexpected midpoint: %+v", mid)
	}
	if !mid.Time.Equal(ts) {
		t.Errorf("midpoint time = %v, want %v", mid.Time, ts)
	}
}

func TestHasTime(t *testing.T) {
	if (Waypoint{X: 1}).HasTime() {
		t.Error("zero time should report no timestamp")
	}
	wp := Waypoint{Time: time.Unix(1, 0)}
	if !wp.HasTime() {
		t.Error("expected timestamp to be reported")
	}
}

func TestDistanceFinite(t *testing.T) {
	a := Waypoint{X: -1e9, Y: 1e9, Z: 0.5}
	b := Waypoint{X: 1e9, Y: -1e9, Z: -0.5}
	if d := a.DistanceTo(b); math.IsNaN(d) || math.IsInf(d, 0) {
		t.Errorf("distance not finite: %f", d)
	}
}
