package errors

import (
	"fmt"

	"github.com/eaugeas/rbtree/logs"
	"github.com/pkg/errors"
)

// Error is a failure identified by a code that callers can
// match on, together with a human-readable description
type Error struct {
	// ErrorCode is a unique identifier for the error that can be used to identify
	// the particular type of error encountered
	ErrorCode int `json:"errorCode"`

	// Description is a human-readable description of the error that occurred
	// to aid the client in debugging
	Description string `json:"description"`
}

// New creates an Error with the provided code and a description
// formatted with fmt.Sprintf
func New(code int, format string, args ...interface{}) *Error {
	return &Error{ErrorCode: code, Description: fmt.Sprintf(format, args...)}
}

// Error is the implementation of go's error interface for Error
func (e *Error) Error() string {
	return e.Description
}

// Log implementation of logs.Loggable
func (e *Error) Log(fields logs.Fields) {
	fields.Add("error_code", e.ErrorCode)
	fields.Add("description", e.Description)
}

// Code returns the code of the *Error at the root cause of err.
// It returns 0 if err is nil or has not been caused by an *Error
func Code(err error) int {
	if err == nil {
		return 0
	}

	if e, ok := errors.Cause(err).(*Error); ok {
		return e.ErrorCode
	}

	return 0
}
