package table

import (
	"errors"
	"fmt"
)

var ErrValidation = errors.New("validation error")

const (
	FieldVariable   = "variable"
	FieldVariables  = "variables"
	FieldStatements = "statements"
)

// ValidationError blocks table generation entirely. Index is the position
// of the offending entry, or -1 when the list as a whole is at fault.
type ValidationError struct {
	Field  string
	Index  int
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid %s %d (%q): %s", e.Field, e.Index+1, e.Value, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
