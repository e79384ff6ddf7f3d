package enroll

import (
	"errors"
	"fmt"
	"time"

	"github.com/goliatone/go-enroll/internal/scrub"
	"github.com/goliatone/go-enroll/pkg/catalog"
)

// Writer persists a finalized record. Implementations must append exactly
// one entry per call and surface failures as *PersistenceError.
type Writer interface {
	Write(Record) error
}

// SequencerOption configures a Sequencer at construction time.
type SequencerOption func(*Sequencer)

// WithClock overrides the timestamp source used at submission. Intended for
// tests.
func WithClock(clock func() time.Time) SequencerOption {
	return func(s *Sequencer) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// Sequencer gates transitions between wizard steps. It owns the in-progress
// record; presentation layers forward user actions into it and read the
// current step back. Not safe for concurrent use, matching the wizard's
// one-action-at-a-time dispatch model.
type Sequencer struct {
	catalog *catalog.Catalog
	writer  Writer
	clock   func() time.Time

	step     Step
	record   Record
	lastErrs *ValidationError
}

// NewSequencer constructs a sequencer at the acknowledgement step.
func NewSequencer(cat *catalog.Catalog, writer Writer, options ...SequencerOption) (*Sequencer, error) {
	if cat == nil {
		return nil, errors.New("enroll: catalog is required")
	}
	if writer == nil {
		return nil, errors.New("enroll: writer is required")
	}

	s := &Sequencer{
		catalog: cat,
		writer:  writer,
		clock:   time.Now,
		step:    StepAcknowledgement,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	return s, nil
}

// Catalog exposes the configured option lists so presentation layers can
// render the selection page.
func (s *Sequencer) Catalog() *catalog.Catalog {
	return s.catalog
}

// CurrentStep returns the wizard's current page.
func (s *Sequencer) CurrentStep() Step {
	return s.step
}

// IsComplete reports whether the session reached the terminal step.
func (s *Sequencer) IsComplete() bool {
	return s.step.Terminal()
}

// Record returns a copy of the in-progress record so presentation layers
// can show confirmations without being able to mutate wizard state.
func (s *Sequencer) Record() Record {
	return s.record
}

// ValidationErrors returns the field messages from the last failed
// operation, or nil after a successful transition.
func (s *Sequencer) ValidationErrors() map[string][]string {
	if s.lastErrs.Empty() {
		return nil
	}
	return s.lastErrs.Fields
}

// Acknowledge moves from the acknowledgement page to name input.
func (s *Sequencer) Acknowledge() error {
	if s.step != StepAcknowledgement {
		return s.wrongStep("acknowledge", StepAcknowledgement)
	}
	s.lastErrs = nil
	s.step = StepNameInput
	return nil
}

// SubmitName validates and stores the operator's name, then advances to the
// selection page. Empty or whitespace-only values fail validation and leave
// state unchanged. Input is scrubbed of markup and control characters
// before it is stored.
func (s *Sequencer) SubmitName(first, last string) error {
	if s.step != StepNameInput {
		return s.wrongStep("submit name", StepNameInput)
	}

	cleanFirst := scrub.Text(first)
	cleanLast := scrub.Text(last)

	verr := NewValidationError()
	if cleanFirst == "" {
		verr.AddField(FieldFirstName, "is required")
	}
	if cleanLast == "" {
		verr.AddField(FieldLastName, "is required")
	}
	if !verr.Empty() {
		s.lastErrs = verr
		return verr
	}

	s.record.FirstName = cleanFirst
	s.record.LastName = cleanLast
	s.lastErrs = nil
	s.step = StepSelection
	return nil
}

// SubmitSelection validates the building and department against the
// configured catalog, stamps the submission time, persists the record, and
// advances to the terminal step. A validation failure leaves state
// unchanged. A persistence failure keeps the session at the selection step
// with the record intact so the write can be retried without re-entry.
func (s *Sequencer) SubmitSelection(building, department string) error {
	if s.step != StepSelection {
		return s.wrongStep("submit selection", StepSelection)
	}

	verr := NewValidationError()
	if !s.catalog.ContainsBuilding(building) {
		verr.AddField(FieldBuilding, fmt.Sprintf("%q is not a configured building", building))
	}
	if !s.catalog.ContainsDepartment(department) {
		verr.AddField(FieldDepartment, fmt.Sprintf("%q is not a configured department", department))
	}
	if !verr.Empty() {
		s.lastErrs = verr
		return verr
	}

	s.record.Building = building
	s.record.Department = department
	s.record.SubmittedAt = s.clock()

	if err := s.record.Validate(); err != nil {
		var validation *ValidationError
		if errors.As(err, &validation) {
			s.lastErrs = validation
		}
		return err
	}

	if err := s.writer.Write(s.record); err != nil {
		var persistence *PersistenceError
		if errors.As(err, &persistence) {
			return persistence
		}
		return &PersistenceError{Err: err}
	}

	s.lastErrs = nil
	s.step = StepSubmitted
	return nil
}

// Back moves one page backward without discarding previously entered
// values. It is a no-op at the initial step and after submission.
func (s *Sequencer) Back() {
	if s.step.Terminal() {
		return
	}
	if idx := stepIndex(s.step); idx > 0 {
		s.lastErrs = nil
		s.step = stepOrder[idx-1]
	}
}

// Reset discards the session and returns to the acknowledgement step with a
// fresh record, ready for the next enrollment.
func (s *Sequencer) Reset() {
	s.record = Record{}
	s.lastErrs = nil
	s.step = StepAcknowledgement
}

func (s *Sequencer) wrongStep(op string, want Step) error {
	verr := NewValidationError()
	verr.AddForm(fmt.Sprintf("cannot %s from step %q (expected %q)", op, s.step, want))
	s.lastErrs = verr
	return verr
}
