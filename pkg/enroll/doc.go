// Package enroll implements the enrollment wizard core: the in-progress
// record, the page sequencer that gates transitions between wizard steps,
// and the error types presentation layers consume.
//
// The sequencer is a small finite-state machine. Each submit operation
// validates its page's inputs before mutating the record; a failed
// validation leaves the state untouched and reports per-field messages.
// Entering the terminal step persists the record through a Writer exactly
// once.
package enroll
