package core

import "github.com/pkg/errors"

// FieldError ties an error message to one input field; the HTTP layer
// renders these as a field->message map.
type FieldError struct {
	Field string
	Error string
}

// ValidationError carries rejected input back to the caller, either as an
// overall error or as per-field errors.
type ValidationError struct {
	Err    error
	Fields []FieldError
}

func NewValidationError(err error, flds ...FieldError) error {
	return &ValidationError{err, flds}
}

func (err ValidationError) Error() string {
	if err.Err == nil {
		return ""
	}
	return err.Err.Error()
}

// shutdown marks an integrity fault the server must not keep serving over,
// such as a storage backend that keeps rejecting writes.
type shutdown struct {
	message string
}

func NewShutdownError(msg string) error {
	return &shutdown{message: msg}
}

func (s shutdown) Error() string {
	return s.message
}

// IsShutdown checks whether a shutdown error is hiding anywhere in the
// wrapped chain.
func IsShutdown(err error) bool {
	_, ok := errors.Cause(err).(*shutdown)
	return ok
}
