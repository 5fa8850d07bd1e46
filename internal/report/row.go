// Package report serializes conflict reports for external consumers:
// JSONL streams, human-readable summaries, and a GreptimeDB sink.
package report

import (
	"os"
	"time"

	"uav-deconflict/internal/deconflict"
)

// ConflictRow is one exported conflict record.
type ConflictRow struct {
	CheckID   string    `json:"check_id"`  // TAG
	VehicleA  string    `json:"vehicle_a"` // TAG
	VehicleB  string    `json:"vehicle_b"` // TAG
	X         float64   `json:"x"`         // FIELD
	Y         float64   `json:"y"`         // FIELD
	Z         float64   `json:"z"`         // FIELD
	Distance  float64   `json:"distance"`  // FIELD
	Timestamp time.Time `json:"ts"`        // TIME INDEX
}

// ConflictTableName holds the table name used when writing to GreptimeDB.
// It defaults to "uav_conflicts" but can be overridden via the
// GREPTIMEDB_TABLE environment variable.
var ConflictTableName = func() string {
	if env := os.Getenv("GREPTIMEDB_TABLE"); env != "" {
		return env
	}
	return "uav_conflicts"
}()

func (ConflictRow) TableName() string {
	return ConflictTableName
}

// Rows flattens a report into exportable rows, stamping each with checkID.
func Rows(checkID string, rep *deconflict.Report) []ConflictRow {
	rows := make([]ConflictRow, 0, len(rep.Conflicts))
	for _, c := range rep.Conflicts {
		rows = append(rows, ConflictRow{
			CheckID:   checkID,
			VehicleA:  c.VehicleA,
			VehicleB:  c.VehicleB,
			X:         c.Location.X,
			Y:         c.Location.Y,
			Z:         c.Location.Z,
			Distance:  c.Distance,
			Timestamp: c.Time,
		})
	}
	return rows
}
