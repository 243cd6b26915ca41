package num512

import (
	"errors"
	"fmt"
)

// ErrorCode identifies the outcome of a fallible operation. Every code except
// OK satisfies the error interface, so arithmetic can return it directly
// without allocating.
type ErrorCode int

const (
	// OK is the status of an operation that succeeded. It is never returned as
	// an error; a nil error means OK.
	OK ErrorCode = iota

	// ErrOverflow signifies that the mathematical result exceeds the maximum
	// value of the result type. The wrapped result is still returned.
	ErrOverflow

	// ErrUnderflow signifies that the mathematical result is below the minimum
	// value of the result type (less than zero for U512). The wrapped result is
	// still returned.
	ErrUnderflow

	// ErrDivideByZero signifies an attempt to divide by zero.
	ErrDivideByZero

	// ErrInvalidString signifies text that could not be parsed, or an output
	// buffer too small to hold the formatted digits.
	ErrInvalidString

	// ErrInvalidBase signifies a radix outside [MinBase, MaxBase].
	ErrInvalidBase

	// ErrNilPointer signifies a nil destination or source.
	ErrNilPointer

	// numErrorCodes is the maximum error code number used in tests.
	numErrorCodes
)

var errorCodeStrings = map[ErrorCode]string{
	OK:               "OK",
	ErrOverflow:      "ErrOverflow",
	ErrUnderflow:     "ErrUnderflow",
	ErrDivideByZero:  "ErrDivideByZero",
	ErrInvalidString: "ErrInvalidString",
	ErrInvalidBase:   "ErrInvalidBase",
	ErrNilPointer:    "ErrNilPointer",
}

var errorCodeMessages = map[ErrorCode]string{
	OK:               "num512: ok",
	ErrOverflow:      "num512: overflow",
	ErrUnderflow:     "num512: underflow",
	ErrDivideByZero:  "num512: division by zero",
	ErrInvalidString: "num512: invalid string",
	ErrInvalidBase:   "num512: invalid base",
	ErrNilPointer:    "num512: nil pointer",
}

// String returns the ErrorCode as a human-readable name.
func (e ErrorCode) String() string {
	if s := errorCodeStrings[e]; s != "" {
		return s
	}
	return fmt.Sprintf("Unknown ErrorCode (%d)", int(e))
}

func (e ErrorCode) Error() string {
	if s := errorCodeMessages[e]; s != "" {
		return s
	}
	return fmt.Sprintf("num512: unknown error code %d", int(e))
}

// Error carries an ErrorCode along with a description of the input that caused
// it. It is returned by the parsing and conversion paths; arithmetic returns
// the bare ErrorCode.
type Error struct {
	ErrorCode   ErrorCode // Describes the kind of error
	Description string    // Human readable description of the issue
}

func (e Error) Error() string { return e.Description }

// Unwrap exposes the ErrorCode so errors.Is(err, ErrInvalidString) matches.
func (e Error) Unwrap() error { return e.ErrorCode }

func makeError(c ErrorCode, desc string) Error {
	return Error{ErrorCode: c, Description: desc}
}

// IsErrorCode reports whether err is, or wraps, the ErrorCode c.
func IsErrorCode(err error, c ErrorCode) bool {
	return errors.Is(err, c)
}

// Code extracts the ErrorCode from err. A nil err is OK. Errors that did not
// come from this package are reported as -1.
func Code(err error) ErrorCode {
	if err == nil {
		return OK
	}
	var c ErrorCode
	if errors.As(err, &c) {
		return c
	}
	return -1
}
