package params

import (
	"errors"
	"fmt"
	"strings"
)

// ErrValidation is the root of every client-caused request error.
// Requests failing with it never reach the remote API.
var ErrValidation = errors.New("invalid request")

var (
	// ErrMissingPart reports an absent or empty part list.
	ErrMissingPart = fmt.Errorf("%w: part must name at least one resource part", ErrValidation)
	// ErrEmptyIDList reports an id filter with no usable token.
	ErrEmptyIDList = fmt.Errorf("%w: id list is empty", ErrValidation)
)

// FilterCountError reports that zero or several mutually exclusive filters were given.
type FilterCountError struct {
	Specified []string
	Valid     []string
}

func (e *FilterCountError) Error() string {
	got := "none"
	if len(e.Specified) > 0 {
		got = strings.Join(e.Specified, ", ")
	}
	return fmt.Sprintf("exactly one filter must be specified: %s; got: %s", strings.Join(e.Valid, ", "), got)
}

func (e *FilterCountError) Unwrap() error { return ErrValidation }

// InvalidTagError reports values outside a field's declared tag set.
type InvalidTagError struct {
	Field  string
	Tokens []string
	Valid  TagSet
}

func (e *InvalidTagError) Error() string {
	quoted := make([]string, len(e.Tokens))
	for i, t := range e.Tokens {
		quoted[i] = fmt.Sprintf("%q", t)
	}
	return fmt.Sprintf("invalid %s %s: must be one of: %s", e.Field, strings.Join(quoted, ", "), e.Valid)
}

func (e *InvalidTagError) Unwrap() error { return ErrValidation }

// RangeError reports an integer outside its closed range.
type RangeError struct {
	Field    string
	Value    int64
	Min, Max int64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s must be between %d and %d, got %d", e.Field, e.Min, e.Max, e.Value)
}

func (e *RangeError) Unwrap() error { return ErrValidation }

// ConflictError reports two fields that cannot be combined.
type ConflictError struct {
	Field  string
	With   string
	Reason string
}

func (e *ConflictError) Error() string {
	msg := fmt.Sprintf("%s cannot be combined with %s", e.Field, e.With)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

func (e *ConflictError) Unwrap() error { return ErrValidation }

// EmptyValueError reports a present string field with no content.
type EmptyValueError struct {
	Field string
}

func (e *EmptyValueError) Error() string { return e.Field + " must not be empty" }

func (e *EmptyValueError) Unwrap() error { return ErrValidation }
