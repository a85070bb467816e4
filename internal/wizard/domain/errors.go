package domain

import (
	"fmt"
	"strings"
)

// ValidationError reports user-correctable input problems. It blocks the
// offending operation (a step stays put, an edit is rejected) but is never
// fatal: the handler surfaces it inline and the session continues.
type ValidationError struct {
	Fields []string
	Reason string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) > 0 {
		return fmt.Sprintf("%s: %s", e.Reason, strings.Join(e.Fields, ", "))
	}
	return e.Reason
}

// MissingFields builds a validation error for required-but-empty fields.
func MissingFields(fields ...string) *ValidationError {
	return &ValidationError{Fields: fields, Reason: "required fields missing"}
}

// UnknownChoice builds a validation error for an identifier the catalog
// does not know.
func UnknownChoice(field, value string) *ValidationError {
	return &ValidationError{Fields: []string{field}, Reason: fmt.Sprintf("unknown %s %q", field, value)}
}
