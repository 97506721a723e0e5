package templates

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingField is wrapped by every FieldError.
	ErrMissingField = errors.New("templates: required field missing")
	// ErrInvalidLevel signals a heading level outside 1..6.
	ErrInvalidLevel = errors.New("templates: heading level must be between 1 and 6")
	// ErrUnknownLineStyle is returned by New when the selected separator line
	// style is not part of the line theme.
	ErrUnknownLineStyle = errors.New("templates: unknown line style")
	// ErrInvalidLineTheme wraps go-theme validation and selection failures.
	ErrInvalidLineTheme = errors.New("templates: invalid line theme")
)

// FieldError reports a required field that was empty when a template ran.
type FieldError struct {
	Template string
	Field    string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("templates: %s: %s is required", e.Template, e.Field)
}

// Unwrap lets callers match with errors.Is(err, ErrMissingField).
func (e *FieldError) Unwrap() error {
	return ErrMissingField
}

func missing(template, field string) error {
	return &FieldError{Template: template, Field: field}
}
