package store

import "fmt"

// NotFoundError indicates no profile exists for the user id.
type NotFoundError struct {
	UserID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("user not found: %s", e.UserID)
}

// UnavailableError indicates the document database is unreachable or
// rejected the operation.
type UnavailableError struct {
	Message string
	Cause   error
}

func (e *UnavailableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("store unavailable: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("store unavailable: %s", e.Message)
}

func (e *UnavailableError) Unwrap() error {
	return e.Cause
}
