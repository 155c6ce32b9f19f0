package query

import (
	"errors"
	"fmt"
)

// Code classifies façade failures. Expected data conditions (a lookup miss)
// and programming misuse get distinct codes so callers can branch without
// string matching.
type Code string

const (
	CodeNotFound     Code = "NOT_FOUND"
	CodeUnknownTable Code = "UNKNOWN_TABLE"
	CodeInternal     Code = "INTERNAL"
)

// Error is the structured error returned by every façade operation.
type Error struct {
	Code    Code
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.cause }

func notFound() *Error {
	return &Error{Code: CodeNotFound, Message: "no rows found"}
}

func internal(err error) *Error {
	return &Error{Code: CodeInternal, Message: "query failed", cause: err}
}

// IsNotFound reports whether err is a façade error with CodeNotFound.
func IsNotFound(err error) bool {
	var qe *Error
	return errors.As(err, &qe) && qe.Code == CodeNotFound
}
