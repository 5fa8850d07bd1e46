package scenario

import (
	"time"

	"uav-deconflict/internal/config"
	"uav-deconflict/internal/traj"
)

var (
	refStart = time.Date(2025, 4, 7, 10, 0, 0, 0, time.UTC)
	refEnd   = time.Date(2025, 4, 7, 10, 30, 0, 0, time.UTC)
)

func flight(id string, start, end time.Time, wps ...traj.Waypoint) config.Flight {
	return config.Flight{VehicleID: id, Start: start, End: end, Waypoints: wps}
}

func wp(x, y, z float64) traj.Waypoint {
	return traj.Waypoint{X: x, Y: y, Z: z}
}

// BuiltIn returns the reference scenario set, keyed by name. The set covers
// the interesting separation cases: guaranteed conflicts, near misses, and
// spatial or temporal clearance.
func BuiltIn() map[string]*Scenario {
	diagonal := []traj.Waypoint{wp(0, 0, 100), wp(100, 100, 100), wp(200, 200, 100)}
	eastbound := []traj.Waypoint{wp(0, 0, 100), wp(100, 0, 100), wp(200, 0, 100)}

	scenarios := []*Scenario{
		{
			Name:           "identical-paths",
			Description:    "Two vehicles flying the exact same diagonal over the same window.",
			SafetyBufferM:  50,
			Mission:        flight("primary", refStart, refEnd, diagonal...),
			Traffic:        []config.Flight{flight("other", refStart, refEnd, diagonal...)},
			ExpectConflict: true,
		},
		{
			Name:           "parallel-paths",
			Description:    "Parallel diagonals offset by 20 units under a 30-unit buffer.",
			SafetyBufferM:  30,
			Mission:        flight("primary", refStart, refEnd, diagonal...),
			Traffic:        []config.Flight{flight("other", refStart, refEnd, wp(20, 0, 100), wp(120, 100, 100), wp(220, 200, 100))},
			ExpectConflict: true,
		},
		{
			Name:           "crossing-paths",
			Description:    "Perpendicular paths meeting mid-window at (100,100).",
			SafetyBufferM:  20,
			Mission:        flight("primary", refStart, refEnd, wp(0, 100, 100), wp(100, 100, 100), wp(200, 100, 100)),
			Traffic:        []config.Flight{flight("other", refStart, refEnd, wp(100, 0, 100), wp(100, 100, 100), wp(100, 200, 100))},
			ExpectConflict: true,
		},
		{
			Name:          "altitude-separation",
			Description:   "Identical horizontal paths 100 units apart vertically, 80-unit buffer.",
			SafetyBufferM: 80,
			Mission:       flight("primary", refStart, refEnd, wp(0, 0, 50), wp(100, 100, 50), wp(200, 200, 50)),
			Traffic:       []config.Flight{flight("other", refStart, refEnd, wp(0, 0, 150), wp(100, 100, 150), wp(200, 200, 150))},
		},
		{
			Name:          "temporal-separation",
			Description:   "Same path flown in disjoint 10-minute windows.",
			SafetyBufferM: 20,
			Mission:       flight("primary", refStart, refStart.Add(10*time.Minute), diagonal...),
			Traffic:       []config.Flight{flight("other", refStart.Add(20*time.Minute), refEnd, diagonal...)},
		},
		{
			Name:          "multiple-drones",
			Description:   "Primary against three traffic flights, two of them crossing.",
			SafetyBufferM: 25,
			Mission:       flight("primary", refStart, refEnd, diagonal...),
			Traffic: []config.Flight{
				flight("drone1", refStart, refEnd, wp(0, 200, 100), wp(100, 100, 100), wp(200, 0, 100)),
				flight("drone2", refStart, refEnd, wp(200, 0, 100), wp(100, 100, 110), wp(0, 200, 100)),
				flight("drone3", refStart, refEnd, wp(300, 300, 90), wp(350, 350, 90), wp(400, 400, 90)),
			},
			ExpectConflict: true,
		},
		{
			Name:          "brief-encounter",
			Description:   "A crossing flight active for only a third of the mission window.",
			SafetyBufferM: 20,
			Mission:       flight("primary", refStart, refEnd, eastbound...),
			Traffic: []config.Flight{
				flight("other", refStart.Add(10*time.Minute), refStart.Add(20*time.Minute),
					wp(100, -100, 100), wp(100, 100, 100)),
			},
			ExpectConflict: true,
		},
		{
			Name:           "barely-within-safety",
			Description:    "Straight parallel paths 19 units apart under a 20-unit buffer.",
			SafetyBufferM:  20,
			Mission:        flight("primary", refStart, refEnd, eastbound...),
			Traffic:        []config.Flight{flight("other", refStart, refEnd, wp(0, 19, 100), wp(100, 19, 100), wp(200, 19, 100))},
			ExpectConflict: true,
		},
	}

	byName := make(map[string]*Scenario, len(scenarios))
	for _, s := range scenarios {
		byName[s.Name] = s
	}
	return byName
}

// Names returns the built-in scenario names in their reference order.
func Names() []string {
	return []string{
		"identical-paths",
		"parallel-paths",
		"crossing-paths",
		"altitude-separation",
		"temporal-separation",
		"multiple-drones",
		"brief-encounter",
		"barely-within-safety",
	}
}
