package embedding

import "fmt"

// NotReadyError indicates the embedding model handle could not be
// initialized yet. Retryable: the next call attempts initialization again.
type NotReadyError struct {
	Cause error
}

func (e *NotReadyError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("embedding model not ready: %v", e.Cause)
	}
	return "embedding model not ready"
}

func (e *NotReadyError) Unwrap() error {
	return e.Cause
}

// Error represents a failure embedding a specific text.
type Error struct {
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("embedding error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("embedding error: %s", e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}
