package config

import "fmt"

// ErrAlreadyParsed is returned when attempting to parse the
// flags of a Parser more than once
var ErrAlreadyParsed = fmt.Errorf("flags have already been parsed")

// ErrParseFlags is returned when the command line flags
// cannot be parsed
type ErrParseFlags struct {
	Cause error
}

// Error implementation of error for ErrParseFlags
func (e ErrParseFlags) Error() string {
	return fmt.Sprintf("failed to parse flags: %s", e.Cause.Error())
}

// ErrInvalidValue is returned by binders when a configured
// value is out of its valid range
type ErrInvalidValue struct {
	Key    string
	Reason string
}

// Error implementation of error for ErrInvalidValue
func (e ErrInvalidValue) Error() string {
	return fmt.Sprintf("invalid value for %s: %s", e.Key, e.Reason)
}
