package booking

import (
	"errors"
	"fmt"
)

// Error codes for the failures a booking flow can surface. Every error is
// handled at the form boundary; none are retried automatically.
const (
	CodeMissingCredential = "missingCredential"
	CodeNotFound          = "notFound"
	CodeValidation        = "validation"
	CodeRemoteFailure     = "remoteFailure"
)

type FlowError struct {
	Code    string
	Message string
}

func (e *FlowError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewMissingCredentialError(msg string) error {
	return &FlowError{Code: CodeMissingCredential, Message: msg}
}

func NewNotFoundError(msg string) error {
	return &FlowError{Code: CodeNotFound, Message: msg}
}

func NewValidationError(msg string) error {
	return &FlowError{Code: CodeValidation, Message: msg}
}

// NewRemoteError wraps a non-2xx backend response. The message is the server's
// own, passed through verbatim when present.
func NewRemoteError(msg string) error {
	if msg == "" {
		msg = "Unknown error"
	}
	return &FlowError{Code: CodeRemoteFailure, Message: msg}
}

func hasCode(err error, code string) bool {
	var fe *FlowError
	return errors.As(err, &fe) && fe.Code == code
}

func IsMissingCredential(err error) bool { return hasCode(err, CodeMissingCredential) }
func IsNotFound(err error) bool          { return hasCode(err, CodeNotFound) }
func IsValidation(err error) bool        { return hasCode(err, CodeValidation) }
func IsRemoteFailure(err error) bool     { return hasCode(err, CodeRemoteFailure) }
