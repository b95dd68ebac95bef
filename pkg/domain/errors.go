package domain

import (
	"errors"
	"fmt"
)

// Configuration error categories. Loaders wrap every failure in exactly one
// of these so callers can classify with errors.Is instead of inspecting
// message text.
var (
	// ErrConfigNotFound is returned when the questionnaire source is missing
	// or unreadable.
	ErrConfigNotFound = errors.New("questionnaire not found")
	// ErrConfigParse is returned when the questionnaire source is not
	// well-formed.
	ErrConfigParse = errors.New("questionnaire is not well-formed")
	// ErrConfigSchema is returned when a well-formed questionnaire violates
	// the document schema.
	ErrConfigSchema = errors.New("questionnaire violates schema")
)

// SchemaError describes a single schema violation. Index is the 0-based
// position of the offending question, or negative for document-level
// violations.
type SchemaError struct {
	Index  int
	Reason string
}

func (e *SchemaError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("document: %s", e.Reason)
	}
	return fmt.Sprintf("questions[%d]: %s", e.Index, e.Reason)
}

// Unwrap makes SchemaError match ErrConfigSchema under errors.Is.
func (e *SchemaError) Unwrap() error {
	return ErrConfigSchema
}

// IsConfigError reports whether err belongs to any configuration error
// category. Configuration errors are fatal to a session; everything else is
// an unexpected runtime failure.
func IsConfigError(err error) bool {
	return errors.Is(err, ErrConfigNotFound) ||
		errors.Is(err, ErrConfigParse) ||
		errors.Is(err, ErrConfigSchema)
}
