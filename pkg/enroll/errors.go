package enroll

import (
	"fmt"
	"sort"
	"strings"
)

// Field identifiers used as keys in validation error maps. They match the
// persisted record's documented field names.
const (
	FieldFirstName  = "firstName"
	FieldLastName   = "lastName"
	FieldBuilding   = "building"
	FieldDepartment = "department"
)

// ValidationError reports recoverable input problems. Fields maps field
// identifiers to one or more messages; Form carries messages that are not
// tied to a single field (for example, calling an operation from the wrong
// step). The wizard session survives a ValidationError; the user corrects
// input and retries the same step.
type ValidationError struct {
	Fields map[string][]string
	Form   []string
}

// NewValidationError builds an empty error ready to collect messages.
func NewValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string][]string)}
}

// AddField appends a message for the given field identifier.
func (e *ValidationError) AddField(field, message string) {
	if e.Fields == nil {
		e.Fields = make(map[string][]string)
	}
	e.Fields[field] = append(e.Fields[field], message)
}

// AddForm appends a form-level message.
func (e *ValidationError) AddForm(message string) {
	e.Form = append(e.Form, message)
}

// Empty reports whether no messages have been collected.
func (e *ValidationError) Empty() bool {
	return e == nil || (len(e.Fields) == 0 && len(e.Form) == 0)
}

func (e *ValidationError) Error() string {
	if e.Empty() {
		return "enroll: validation failed"
	}

	parts := make([]string, 0, len(e.Fields)+len(e.Form))
	parts = append(parts, e.Form...)

	fields := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	for _, field := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, strings.Join(e.Fields[field], "; ")))
	}

	return "enroll: validation failed: " + strings.Join(parts, ", ")
}

// PersistenceError signals that the write path failed after validation
// passed. The in-memory record is preserved so the caller may retry the
// write without re-entering data.
type PersistenceError struct {
	Path string
	Err  error
}

func (e *PersistenceError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("enroll: persist record to %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("enroll: persist record: %v", e.Err)
}

// Unwrap exposes the underlying cause for errors.Is/As.
func (e *PersistenceError) Unwrap() error {
	return e.Err
}
