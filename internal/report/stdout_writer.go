// Writer implementation printing conflict rows to STDOUT
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// StdoutWriter prints conflict rows as JSON lines.
type StdoutWriter struct {
	Out io.Writer // defaults to os.Stdout
}

func (w *StdoutWriter) out() io.Writer {
	if w.Out != nil {
		return w.Out
	}
	return os.Stdout
}

// WriteConflict outputs a single conflict row.
func (w *StdoutWriter) WriteConflict(row ConflictRow) error {
	data, err := json.Marshal(row)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w.out(), string(data))
	return err
}

// WriteConflicts outputs multiple conflict rows.
func (w *StdoutWriter) WriteConflicts(rows []ConflictRow) error {
	for _, r := range rows {
		if err := w.WriteConflict(r); err != nil {
			return err
		}
	}
	return nil
}
