package tui

import "go.uber.org/zap"

// DefaultAckMessage mirrors the wording the enrollment tool has always
// shown on its first page.
const DefaultAckMessage = "Please answer a few quick questions to get this workstation properly enrolled with management."

// Theme captures optional formatting hints applied when printing messages.
// Keep minimal to avoid coupling wizard logic to ANSI specifics.
type Theme struct {
	InfoPrefix  string
	ErrorPrefix string
}

// Option configures the wizard runner.
type Option func(*Runner)

// WithPromptDriver overrides the prompt driver used by the runner.
func WithPromptDriver(driver PromptDriver) Option {
	return func(r *Runner) {
		if driver != nil {
			r.driver = driver
		}
	}
}

// WithAckMessage overrides the acknowledgement page message.
func WithAckMessage(message string) Option {
	return func(r *Runner) {
		if message != "" {
			r.ackMessage = message
		}
	}
}

// WithTheme applies optional message prefixes.
func WithTheme(theme Theme) Option {
	return func(r *Runner) {
		r.theme = theme
	}
}

// WithLogger attaches a structured logger for session diagnostics. The
// runner stays silent without one.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Runner) {
		if logger != nil {
			r.logger = logger
		}
	}
}
