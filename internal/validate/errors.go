package validate

import (
	"errors"
	"fmt"
)

// Kind classifies a validation failure. All kinds are recoverable,
// user-facing errors; none are fatal to the process.
type Kind string

const (
	KindMissingField     Kind = "MISSING_FIELD"
	KindInvalidFormat    Kind = "INVALID_FORMAT"
	KindInvalidEnum      Kind = "INVALID_ENUM"
	KindInvalidReference Kind = "INVALID_REFERENCE"
	KindOutOfRange       Kind = "OUT_OF_RANGE"
	KindTooLong          Kind = "TOO_LONG"
)

// Error is a single structured validation failure: the offending field,
// the failure kind, and a message fit to show the end user.
type Error struct {
	Field   string `json:"field,omitempty"`
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func newError(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// WithField returns err with the field name attached when err is a
// validation Error. Composite validators use it to locate primitive
// failures.
func WithField(err error, field string) error {
	var verr *Error
	if errors.As(err, &verr) {
		return &Error{Field: field, Kind: verr.Kind, Message: verr.Message}
	}
	return err
}

// AsError unwraps err into a validation Error when possible.
func AsError(err error) (*Error, bool) {
	var verr *Error
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}
