package recordlog

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/goliatone/go-enroll/pkg/enroll"
)

func fixedClock() time.Time {
	return time.Date(2024, 3, 9, 14, 30, 5, 0, time.UTC)
}

func TestFormatLine(t *testing.T) {
	record := enroll.Record{
		FirstName:  "Jane",
		LastName:   "Doe",
		Building:   "Library",
		Department: "IT",
	}

	got := FormatLine(record, fixedClock)
	want := "2024-03-09 14:30:05 | Jane Doe | Library | IT\n"
	if got != want {
		t.Fatalf("line = %q, want %q", got, want)
	}
}

func TestFormatLine_RecordTimestampWins(t *testing.T) {
	record := enroll.Record{
		FirstName:   "Jane",
		LastName:    "Doe",
		Building:    "Library",
		Department:  "IT",
		SubmittedAt: time.Date(2023, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	got := FormatLine(record, fixedClock)
	if !strings.HasPrefix(got, "2023-01-02 03:04:05") {
		t.Fatalf("expected record timestamp, got %q", got)
	}
}

func TestFileWriter_AppendsOneLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "user_input.txt")
	w, err := NewFileWriter(path, WithClock(fixedClock))
	if err != nil {
		t.Fatalf("new writer: %v", err)
	}

	record := enroll.Record{
		FirstName:  "Jane",
		LastName:   "Doe",
		Building:   "Library",
		Department: "IT",
	}
	if err := w.Write(record); err != nil {
		t.Fatalf("write: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d: %q", len(lines), string(data))
	}
	if lines[0] != "2024-03-09 14:30:05 | Jane Doe | Library | IT" {
		t.Fatalf("unexpected line: %q", lines[0])
	}
}

func TestFileWriter_SecondWritePreservesFirst(t *testing.T) {
	path := filepath.Join(t.TempDir(), "user_input.txt")
	w, err := NewFileWriter(path, WithClock(fixedClock))
	if err != nil {
		t.Fatalf("new writer: %v", err)
	}

	first := enroll.Record{FirstName: "Jane", LastName: "Doe", Building: "Library", Department: "IT"}
	second := enroll.Record{FirstName: "John", LastName: "Smith", Building: "Annex", Department: "Math"}

	if err := w.Write(first); err != nil {
		t.Fatalf("write first: %v", err)
	}
	if err := w.Write(second); err != nil {
		t.Fatalf("write second: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "Jane Doe") {
		t.Fatalf("first line altered: %q", lines[0])
	}
	if !strings.Contains(lines[1], "John Smith") {
		t.Fatalf("second line missing: %q", lines[1])
	}
}

func TestFileWriter_UnwritablePath(t *testing.T) {
	// Target a path whose parent directory does not exist.
	path := filepath.Join(t.TempDir(), "absent", "user_input.txt")
	w, err := NewFileWriter(path)
	if err != nil {
		t.Fatalf("new writer: %v", err)
	}

	record := enroll.Record{FirstName: "Jane", LastName: "Doe", Building: "Library", Department: "IT"}
	err = w.Write(record)
	if err == nil {
		t.Fatalf("expected persistence error")
	}

	var perr *enroll.PersistenceError
	if !errors.As(err, &perr) {
		t.Fatalf("expected *enroll.PersistenceError, got %T: %v", err, err)
	}
	if perr.Path != path {
		t.Fatalf("error path = %q, want %q", perr.Path, path)
	}
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Fatalf("no file should exist after a failed write")
	}
}

func TestNewFileWriter_EmptyPath(t *testing.T) {
	if _, err := NewFileWriter("  "); err == nil {
		t.Fatalf("expected error for empty path")
	}
}
