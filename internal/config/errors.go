package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedInstance is matched by every validation failure.
var ErrMalformedInstance = errors.New("malformed instance")

// ValidationError describes a single problem in an instance.
type ValidationError struct {
	FieldPath string
	Message   string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.FieldPath, e.Message)
}

// ValidationErrors aggregates every problem found in one instance.
type ValidationErrors struct {
	Instance string
	Errors   []ValidationError
}

func (ve *ValidationErrors) Add(fieldPath, message string) {
	ve.Errors = append(ve.Errors, ValidationError{FieldPath: fieldPath, Message: message})
}

func (ve *ValidationErrors) Addf(fieldPath, format string, args ...any) {
	ve.Add(fieldPath, fmt.Sprintf(format, args...))
}

func (ve *ValidationErrors) HasErrors() bool {
	return len(ve.Errors) > 0
}

func (ve *ValidationErrors) Error() string {
	msgs := make([]string, 0, len(ve.Errors))
	for _, e := range ve.Errors {
		msgs = append(msgs, e.Error())
	}
	return fmt.Sprintf("instance %q: %s", ve.Instance, strings.Join(msgs, "; "))
}

func (ve *ValidationErrors) Unwrap() error {
	return ErrMalformedInstance
}
