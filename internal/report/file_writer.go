package report

import (
	"encoding/json"
	"os"
)

// FileWriter appends conflict rows to a JSONL file.
type FileWriter struct {
	file *os.File
	enc  *json.Encoder
}

// NewFileWriter creates (or truncates) the target file.
func NewFileWriter(path string) (*FileWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	return &FileWriter{file: f, enc: json.NewEncoder(f)}, nil
}

// WriteConflict logs a single conflict row.
func (f *FileWriter) WriteConflict(row ConflictRow) error {
	return f.enc.Encode(row)
}

// WriteConflicts logs multiple conflict rows.
func (f *FileWriter) WriteConflicts(rows []ConflictRow) error {
	for _, r := range rows {
		if err := f.WriteConflict(r); err != nil {
			return err
		}
	}
	return nil
}

// Close closes the underlying file.
func (f *FileWriter) Close() error {
	return f.file.Close()
}
