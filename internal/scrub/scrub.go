// Package scrub normalises operator-typed text before it reaches the
// enrollment record. Values end up in a shared append-only log file, so any
// markup is stripped and control characters are dropped.
package scrub

import (
	"html"
	"strings"
	"sync"
	"unicode"

	"github.com/microcosm-cc/bluemonday"
)

var (
	textPolicyOnce sync.Once
	textPolicy     *bluemonday.Policy
)

// Text strips markup and control characters from raw input and collapses the
// result to single-space separated words. It returns "" when nothing
// printable survives.
func Text(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}

	// The policy HTML-escapes its output; undo that so names like O'Brien
	// reach the log file as typed.
	cleaned := html.UnescapeString(sanitizer().Sanitize(trimmed))
	cleaned = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, cleaned)

	return strings.Join(strings.Fields(cleaned), " ")
}

func sanitizer() *bluemonday.Policy {
	textPolicyOnce.Do(func() {
		textPolicy = bluemonday.StrictPolicy()
	})
	return textPolicy
}
