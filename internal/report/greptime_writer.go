package report

import (
	"context"
	"net"
	"strconv"

	gpb "github.com/GreptimeTeam/greptime-proto/go/greptime/v1"
	greptime "github.com/GreptimeTeam/greptimedb-ingester-go"
	"github.com/GreptimeTeam/greptimedb-ingester-go/table"
	"github.com/GreptimeTeam/greptimedb-ingester-go/table/types"
)

const defaultGreptimePort = 4001

// ingestClient abstracts the greptime ingester client for testing.
type ingestClient interface {
	Write(ctx context.Context, tables ...*table.Table) (*gpb.GreptimeResponse, error)
}

// GreptimeDBWriter exports conflict rows to a GreptimeDB time-series table.
// The table is auto-created by the ingester on first write.
type GreptimeDBWriter struct {
	client ingestClient
	table  string
}

// NewGreptimeDBWriter connects to a GreptimeDB endpoint ("host" or
// "host:port") and database.
func NewGreptimeDBWriter(endpoint, database string) (*GreptimeDBWriter, error) {
	host := endpoint
	port := defaultGreptimePort
	if h, p, err := net.SplitHostPort(endpoint); err == nil {
		host = h
		if n, err := strconv.Atoi(p); err == nil {
			port = n
		}
	}

	cfg := greptime.NewConfig(host).WithPort(port).WithDatabase(database)
	client, err := greptime.NewClient(cfg)
	if err != nil {
		return nil, err
	}
	return &GreptimeDBWriter{client: client, table: ConflictTableName}, nil
}

// WriteConflict inserts a single conflict row.
func (w *GreptimeDBWriter) WriteConflict(row ConflictRow) error {
	return w.WriteConflicts([]ConflictRow{row})
}

// WriteConflicts inserts multiple conflict rows.
func (w *GreptimeDBWriter) WriteConflicts(rows []ConflictRow) error {
	if len(rows) == 0 {
		return nil
	}

	tbl, err := table.New(w.table)
	if err != nil {
		return err
	}
	if err := tbl.AddTagColumn("check_id", types.STRING); err != nil {
		return err
	}
	if err := tbl.AddTagColumn("vehicle_a", types.STRING); err != nil {
		return err
	}
	if err := tbl.AddTagColumn("vehicle_b", types.STRING); err != nil {
		return err
	}
	if err := tbl.AddFieldColumn("x", types.FLOAT64); err != nil {
		return err
	}
	if err := tbl.AddFieldColumn("y", types.FLOAT64); err != nil {
		return err
	}
	if err := tbl.AddFieldColumn("z", types.FLOAT64); err != nil {
		return err
	}
	if err := tbl.AddFieldColumn("distance", types.FLOAT64); err != nil {
		return err
	}
	if err := tbl.AddTimestampColumn("ts", types.TIMESTAMP_MILLISECOND); err != nil {
		return err
	}

	for _, r := range rows {
		if err := tbl.AddRow(r.CheckID, r.VehicleA, r.VehicleB, r.X, r.Y, r.Z, r.Distance, r.Timestamp); err != nil {
			return err
		}
	}

	_, err = w.client.Write(context.Background(), tbl)
	return err
}
