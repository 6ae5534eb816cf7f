package loader

import (
	"fmt"

	"golang.org/x/xerrors"
)

// ErrInvalidInput is matched by every InputError.
var ErrInvalidInput = xerrors.New("invalid share document")

// InputError describes why a share document was rejected.
type InputError struct {
	Field  string
	Reason string
	Err    error
}

func (e *InputError) Error() string {
	msg := fmt.Sprintf("invalid share document: %s: %s", e.Field, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Is implements errors.Is.
func (e *InputError) Is(target error) bool {
	return target == ErrInvalidInput
}

// Unwrap returns the underlying decoding error, if any.
func (e *InputError) Unwrap() error {
	return e.Err
}

func inputErrorf(field string, err error, format string, args ...interface{}) *InputError {
	return &InputError{
		Field:  field,
		Reason: fmt.Sprintf(format, args...),
		Err:    err,
	}
}
