package llm

import "fmt"

// UnavailableError indicates the completion service could not produce
// usable text: network failure, non-2xx response, or a malformed response
// envelope. Callers treat all causes identically because the pipeline has a
// deterministic fallback regardless of cause.
type UnavailableError struct {
	Message string
	Cause   error
}

func (e *UnavailableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("completion unavailable: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("completion unavailable: %s", e.Message)
}

func (e *UnavailableError) Unwrap() error {
	return e.Cause
}
