package grader

import "fmt"

// ValidationError rejects a grading request before any LLM call is made.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid grading request: %s %s", e.Field, e.Reason)
}

// UpstreamError wraps a failure of the LLM grading service. The message
// is preserved verbatim for user display.
type UpstreamError struct {
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("grading service: %v", e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }
