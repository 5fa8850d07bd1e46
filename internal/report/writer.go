package report

// ConflictWriter handles exported conflict rows.
type ConflictWriter interface {
	WriteConflict(ConflictRow) error
}

// Optional: writers may support batch mode for conflict rows.
type batchConflictWriter interface {
	WriteConflicts([]ConflictRow) error
}

// WriteAll sends rows to w, using batch mode when supported.
func WriteAll(w ConflictWriter, rows []ConflictRow) error {
	if bw, ok := w.(batchConflictWriter); ok {
		return bw.WriteConflicts(rows)
	}
	for _, r := range rows {
		if err := w.WriteConflict(r); err != nil {
			return err
		}
	}
	return nil
}
