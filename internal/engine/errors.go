package engine

import "fmt"

// InvalidInputError reports a malformed record handed to the engine. It is
// a caller bug, not a runtime condition: bad records must be rejected at
// the boundary, never coerced into the aggregates.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s %s", e.Field, e.Reason)
}
