package report

// MultiWriter fan-outs conflict rows to multiple writers.
type MultiWriter struct {
	writers []ConflictWriter
}

// NewMultiWriter creates a new MultiWriter.
func NewMultiWriter(ws ...ConflictWriter) *MultiWriter {
	return &MultiWriter{writers: ws}
}

// WriteConflict sends a conflict row to all writers.
func (mw *MultiWriter) WriteConflict(row ConflictRow) error {
	for _, w := range mw.writers {
		if err := w.WriteConflict(row); err != nil {
			return err
		}
	}
	return nil
}

// WriteConflicts sends multiple rows to all writers, using batch if supported.
func (mw *MultiWriter) WriteConflicts(rows []ConflictRow) error {
	for _, w := range mw.writers {
		if err := WriteAll(w, rows); err != nil {
			return err
		}
	}
	return nil
}
