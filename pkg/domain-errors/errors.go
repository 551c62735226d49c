// Package domainerrors provides coded errors for the compliance domain.
//
// Every failure surfaced by this module carries a Code so callers can
// branch on the kind of failure without string matching. Construct with
// New or Wrap; inspect with HasCode.
package domainerrors

import (
	"errors"
	"fmt"
)

// Code identifies a category of domain failure.
type Code string

const (
	// Generic codes.
	CodeInvalidInput       Code = "invalid_input"
	CodeValidation         Code = "validation"
	CodeInvariantViolation Code = "invariant_violation"
	CodeInternal           Code = "internal"

	// Classification codes. Each maps to one failure mode of the
	// record classifier or an action view constructor.
	CodeMissingRecord         Code = "missing_record"
	CodeUnrecognizedAction    Code = "unrecognized_action"
	CodeWrongActionClass      Code = "wrong_action_class"
	CodeUnrecognizedSubAction Code = "unrecognized_sub_action"
	CodeInvalidClassName      Code = "invalid_class_name"
)

// Error is a domain error with a machine-readable code and an optional
// wrapped cause.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap exposes the cause for errors.Is / errors.As chains.
func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a domain error with the given code and message.
func New(code Code, message string) error {
	return &Error{Code: code, Message: message}
}

// Wrap annotates an existing error with a domain code and message.
// Returns nil when err is nil.
func Wrap(err error, code Code, message string) error {
	if err == nil {
		return nil
	}
	return &Error{Code: code, Message: message, Err: err}
}

// HasCode reports whether any error in the chain is a domain error with
// the given code.
func HasCode(err error, code Code) bool {
	for err != nil {
		var de *Error
		if errors.As(err, &de) {
			if de.Code == code {
				return true
			}
			err = de.Err
			continue
		}
		return false
	}
	return false
}

// CodeOf returns the code of the outermost domain error in the chain,
// or CodeInternal when err is not a domain error.
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeInternal
}

// Is reports whether any error in err's chain matches target.
// Convenience re-export so call sites need a single import.
func Is(err, target error) bool {
	return errors.Is(err, target)
}
