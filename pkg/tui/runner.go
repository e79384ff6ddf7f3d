// Package tui is the terminal presentation layer for the enrollment wizard.
// It drives the page sequencer through survey-backed prompts, re-prompting
// on validation failures and offering a retry when persistence fails. The
// PromptDriver abstraction keeps the flow testable without a terminal.
package tui

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/goliatone/go-enroll/pkg/enroll"
)

// Runner walks an operator through one enrollment session: acknowledgement,
// name entry, building/department selection, and confirmation. It dispatches
// one prompt at a time and runs synchronously to completion.
type Runner struct {
	driver     PromptDriver
	theme      Theme
	logger     *zap.Logger
	ackMessage string
}

// NewRunner constructs a runner with defaults (survey driver, no logging).
func NewRunner(options ...Option) (*Runner, error) {
	driver, err := newSurveyDriver()
	if err != nil {
		return nil, err
	}

	r := &Runner{
		driver:     driver,
		logger:     zap.NewNop(),
		ackMessage: DefaultAckMessage,
	}

	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}

	if r.driver == nil {
		r.driver, err = newSurveyDriver()
		if err != nil {
			return nil, err
		}
	}

	return r, nil
}

// Run drives seq through a full session and returns the persisted record.
// The context is checked before every prompt; an interrupt surfaces as
// ErrAborted with nothing written.
func (r *Runner) Run(ctx context.Context, seq *enroll.Sequencer) (enroll.Record, error) {
	if ctx == nil {
		return enroll.Record{}, errors.New("tui: context is required")
	}
	if seq == nil {
		return enroll.Record{}, errors.New("tui: sequencer is required")
	}

	log := r.logger.With(zap.String("session_id", uuid.NewString()))
	log.Debug("session started", zap.String("step", string(seq.CurrentStep())))

	for !seq.IsComplete() {
		if err := ctx.Err(); err != nil {
			return enroll.Record{}, err
		}

		var err error
		switch seq.CurrentStep() {
		case enroll.StepAcknowledgement:
			err = r.acknowledgementPage(ctx, seq)
		case enroll.StepNameInput:
			err = r.namePage(ctx, seq)
		case enroll.StepSelection:
			err = r.selectionPage(ctx, seq, log)
		default:
			err = fmt.Errorf("tui: unexpected step %q", seq.CurrentStep())
		}
		if err != nil {
			return enroll.Record{}, err
		}
	}

	record := seq.Record()
	log.Info("enrollment recorded",
		zap.String("name", record.FullName()),
		zap.String("building", record.Building),
		zap.String("department", record.Department),
	)

	confirmation := fmt.Sprintf("Thanks, %s. This workstation is now enrolled.", record.FullName())
	if err := r.info(ctx, confirmation); err != nil {
		return record, err
	}
	return record, nil
}

func (r *Runner) acknowledgementPage(ctx context.Context, seq *enroll.Sequencer) error {
	if err := r.info(ctx, r.ackMessage); err != nil {
		return err
	}

	for {
		ok, err := r.driver.Confirm(ctx, ConfirmConfig{
			Message: "Acknowledge and continue?",
			Default: true,
		})
		if err != nil {
			return err
		}
		if !ok {
			// The kiosk cannot be dismissed; re-prompt until acknowledged.
			continue
		}
		return seq.Acknowledge()
	}
}

func (r *Runner) namePage(ctx context.Context, seq *enroll.Sequencer) error {
	record := seq.Record()

	for {
		first, err := r.driver.Input(ctx, InputConfig{
			Message: "First Name:",
			Default: record.FirstName,
		})
		if err != nil {
			return err
		}
		last, err := r.driver.Input(ctx, InputConfig{
			Message: "Last Name:",
			Default: record.LastName,
		})
		if err != nil {
			return err
		}

		err = seq.SubmitName(first, last)
		if err == nil {
			return nil
		}

		var verr *enroll.ValidationError
		if !errors.As(err, &verr) {
			return err
		}
		if err := r.reportValidation(ctx, verr); err != nil {
			return err
		}
	}
}

func (r *Runner) selectionPage(ctx context.Context, seq *enroll.Sequencer, log *zap.Logger) error {
	cat := seq.Catalog()
	buildings := cat.Buildings()
	departments := cat.Departments()

	record := seq.Record()

	for {
		buildingIdx, err := r.driver.Select(ctx, SelectConfig{
			Message:      "Select your building:",
			Options:      buildings,
			DefaultIndex: defaultIndex(buildings, record.Building),
		})
		if err != nil {
			return err
		}
		departmentIdx, err := r.driver.Select(ctx, SelectConfig{
			Message:      "Select your department:",
			Options:      departments,
			DefaultIndex: defaultIndex(departments, record.Department),
		})
		if err != nil {
			return err
		}

		building := optionAt(buildings, buildingIdx)
		department := optionAt(departments, departmentIdx)

		err = seq.SubmitSelection(building, department)
		if err == nil {
			return nil
		}

		var verr *enroll.ValidationError
		if errors.As(err, &verr) {
			if err := r.reportValidation(ctx, verr); err != nil {
				return err
			}
			continue
		}

		var perr *enroll.PersistenceError
		if errors.As(err, &perr) {
			log.Warn("record write failed", zap.Error(perr))
			if err := r.infoError(ctx, fmt.Sprintf("Could not save the enrollment: %v", perr.Err)); err != nil {
				return err
			}
			retry, err := r.driver.Confirm(ctx, ConfirmConfig{
				Message: "Retry saving?",
				Default: true,
			})
			if err != nil {
				return err
			}
			if retry {
				continue
			}
			return perr
		}

		return err
	}
}

func (r *Runner) reportValidation(ctx context.Context, verr *enroll.ValidationError) error {
	for _, msg := range verr.Form {
		if err := r.infoError(ctx, msg); err != nil {
			return err
		}
	}

	fields := make([]string, 0, len(verr.Fields))
	for field := range verr.Fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	for _, field := range fields {
		msg := fmt.Sprintf("Invalid %s: %s", field, strings.Join(verr.Fields[field], "; "))
		if err := r.infoError(ctx, msg); err != nil {
			return err
		}
	}
	return nil
}

func (r *Runner) info(ctx context.Context, msg string) error {
	return r.driver.Info(ctx, r.theme.InfoPrefix+msg)
}

func (r *Runner) infoError(ctx context.Context, msg string) error {
	return r.driver.Info(ctx, r.theme.ErrorPrefix+msg)
}

func defaultIndex(options []string, value string) int {
	if value == "" {
		return 0
	}
	if idx := indexOf(options, value); idx >= 0 {
		return idx
	}
	return 0
}

func optionAt(options []string, idx int) string {
	if idx < 0 || idx >= len(options) {
		return ""
	}
	return options[idx]
}
