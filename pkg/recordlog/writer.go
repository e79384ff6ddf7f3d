// Package recordlog appends finalized enrollment records to a plain-text,
// append-only log file.
//
// The persisted layout is the compatibility surface for anything consuming
// the file and must stay stable across versions:
//
//	<timestamp> | <firstName> <lastName> | <building> | <department>
//
// with the timestamp formatted as 2006-01-02 15:04:05 (locale independent).
// Lines are only ever appended; the file is never rewritten or deleted.
package recordlog

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/goliatone/go-enroll/pkg/enroll"
)

// TimestampLayout is the fixed, locale-independent timestamp format used in
// every persisted line.
const TimestampLayout = "2006-01-02 15:04:05"

const fieldDelimiter = " | "

// FileWriter appends one line per record to the configured path. The file
// is created on first write. Each Write opens the file in append mode,
// writes the whole line in a single call, and syncs before closing, so a
// failed write never leaves a partial line behind.
type FileWriter struct {
	path  string
	clock func() time.Time
}

var _ enroll.Writer = (*FileWriter)(nil)

// WriterOption configures a FileWriter.
type WriterOption func(*FileWriter)

// WithClock overrides the timestamp source used when the record carries no
// submission time. Intended for tests.
func WithClock(clock func() time.Time) WriterOption {
	return func(w *FileWriter) {
		if clock != nil {
			w.clock = clock
		}
	}
}

// NewFileWriter constructs a writer targeting path.
func NewFileWriter(path string, options ...WriterOption) (*FileWriter, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("recordlog: output path is required")
	}

	w := &FileWriter{
		path:  path,
		clock: time.Now,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(w)
	}
	return w, nil
}

// Path returns the target file path.
func (w *FileWriter) Path() string {
	return w.path
}

// Write appends record as one line and guarantees it reaches storage before
// returning. Failures come back as *enroll.PersistenceError and are
// terminal for the current submission attempt.
func (w *FileWriter) Write(record enroll.Record) error {
	line := FormatLine(record, w.clock)

	f, err := os.OpenFile(w.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return &enroll.PersistenceError{Path: w.path, Err: err}
	}

	if _, err := f.WriteString(line); err != nil {
		_ = f.Close()
		return &enroll.PersistenceError{Path: w.path, Err: err}
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		return &enroll.PersistenceError{Path: w.path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &enroll.PersistenceError{Path: w.path, Err: err}
	}
	return nil
}

// FormatLine renders the stable line layout for record, including the
// trailing newline. The record's own submission time wins; clock only fills
// in when the record carries none.
func FormatLine(record enroll.Record, clock func() time.Time) string {
	stamp := record.SubmittedAt
	if stamp.IsZero() {
		if clock == nil {
			clock = time.Now
		}
		stamp = clock()
	}

	fields := []string{
		stamp.Format(TimestampLayout),
		record.FullName(),
		record.Building,
		record.Department,
	}
	return strings.Join(fields, fieldDelimiter) + "\n"
}
