package main

import (
	"os"

	"uav-deconflict/internal/report"
)

// newConflictWriter sets up the conflict row sink based on flags and env
// vars. It returns the writer and a cleanup function to close any resources.
func newConflictWriter(jsonOut bool, logFile string) (report.ConflictWriter, func(), error) {
	cleanup := func() {}

	var writers []report.ConflictWriter
	if jsonOut {
		writers = append(writers, &report.StdoutWriter{})
	}
	if endpoint := os.Getenv("GREPTIMEDB_ENDPOINT"); endpoint != "" {
		database := os.Getenv("GREPTIMEDB_DATABASE")
		if database == "" {
			database = "public"
		}
		gw, err := report.NewGreptimeDBWriter(endpoint, database)
		if err != nil {
			return nil, nil, err
		}
		writers = append(writers, gw)
	}
	if logFile != "" {
		fw, err := report.NewFileWriter(logFile)
		if err != nil {
			return nil, nil, err
		}
		cleanup = func() { fw.Close() }
		writers = append(writers, fw)
	}

	if len(writers) == 1 {
		return writers[0], cleanup, nil
	}
	return report.NewMultiWriter(writers...), cleanup, nil
}
