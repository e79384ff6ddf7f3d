package enroll

// Step is an ordinal position in the wizard's fixed page sequence.
type Step string

const (
	// StepAcknowledgement is the initial page asking the operator to proceed.
	StepAcknowledgement Step = "acknowledgement"
	// StepNameInput collects the operator's first and last name.
	StepNameInput Step = "name_input"
	// StepSelection collects the building and department choices.
	StepSelection Step = "selection"
	// StepSubmitted is the terminal state; the record has been persisted.
	StepSubmitted Step = "submitted"
)

var stepOrder = []Step{
	StepAcknowledgement,
	StepNameInput,
	StepSelection,
	StepSubmitted,
}

// Terminal reports whether the step ends the wizard session.
func (s Step) Terminal() bool {
	return s == StepSubmitted
}

func stepIndex(s Step) int {
	for i, step := range stepOrder {
		if step == s {
			return i
		}
	}
	return -1
}
