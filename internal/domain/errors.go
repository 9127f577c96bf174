package domain

import "errors"

var (
	ErrNotAuthenticated   = errors.New("not authenticated")
	ErrAuthInFlight       = errors.New("authentication already in progress")
	ErrSubmitInFlight     = errors.New("submission already in progress")
	ErrCredentialNotFound = errors.New("credential not found")

	// ErrSubmissionFailed is the uniform user-facing failure for generation
	// submissions; the collaborator's specific error is logged, not shown.
	ErrSubmissionFailed = errors.New("generation failed, please try again")
)

// ValidationError reports a locally rejected input. It never reaches the
// network.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
