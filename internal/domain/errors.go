package domain

import "fmt"

// ValidationError reports a user-input problem. It is surfaced directly and
// the operation is not attempted.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}
