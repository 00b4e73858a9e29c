package iso20022

import (
	"errors"
	"fmt"
)

// ErrorCode is a stable numeric identifier for a validation or decode
// failure. Codes are part of the public contract and never change meaning
// between releases.
type ErrorCode uint32

// Constraint violation codes.
const (
	// CodeTooShort indicates a value below its minimum length.
	CodeTooShort ErrorCode = 1001
	// CodeTooLong indicates a value above its maximum length.
	CodeTooLong ErrorCode = 1002
	// CodeBelowMinimum indicates a numeric value below its declared minimum.
	CodeBelowMinimum ErrorCode = 1003
	// CodeAboveMaximum indicates a numeric value above its declared maximum.
	CodeAboveMaximum ErrorCode = 1004
	// CodePatternMismatch indicates a value that does not match its pattern.
	CodePatternMismatch ErrorCode = 1005
	// CodeInvalidEnum indicates a value outside its enumerated literal set.
	CodeInvalidEnum ErrorCode = 1006
	// CodeChoiceConflict indicates a choice with more than one alternative
	// populated. Only reported when strict choice checking is enabled.
	CodeChoiceConflict ErrorCode = 1007
)

// Decode failure codes.
const (
	// CodeMalformedWire indicates input the codec could not parse.
	CodeMalformedWire ErrorCode = 9001
	// CodeMissingRequired indicates a required field absent from the wire.
	CodeMissingRequired ErrorCode = 9002
	// CodeUnknownMessageType indicates a root tag with no registered schema.
	CodeUnknownMessageType ErrorCode = 9999
)

// ConstraintError reports a single leaf value violating one declared rule.
// Constraint violations are syntactic, never transient: retrying the same
// value always fails the same way.
type ConstraintError struct {
	Code    ErrorCode
	Message string
}

func (e *ConstraintError) Error() string {
	return fmt.Sprintf("constraint %d: %s", e.Code, e.Message)
}

// NewConstraintError creates a ConstraintError with a stable code.
func NewConstraintError(code ErrorCode, message string) *ConstraintError {
	return &ConstraintError{Code: code, Message: message}
}

// ValidationError wraps the first constraint violation found while walking
// a record tree. Validation errors are advisory: the caller decides whether
// to reject, log, or proceed with the decoded structure.
type ValidationError struct {
	Cause *ConstraintError
}

func (e *ValidationError) Error() string {
	return "validation failed: " + e.Cause.Error()
}

// Unwrap exposes the underlying ConstraintError to errors.Is/As.
func (e *ValidationError) Unwrap() error {
	return e.Cause
}

// Code returns the stable numeric code of the underlying violation.
func (e *ValidationError) Code() ErrorCode {
	return e.Cause.Code
}

// DecodeError reports malformed wire input, a missing required field, or an
// unknown root tag. Decode errors are fatal for the message that produced
// them: no partially built document is ever returned alongside one.
type DecodeError struct {
	Code    ErrorCode
	Message string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %d: %s", e.Code, e.Message)
}

// NewDecodeError creates a DecodeError with a stable code.
func NewDecodeError(code ErrorCode, message string) *DecodeError {
	return &DecodeError{Code: code, Message: message}
}

// CodeOf extracts the stable numeric code from any error produced by this
// module. It returns 0 for nil and for errors that carry no code.
func CodeOf(err error) ErrorCode {
	var ce *ConstraintError
	if errors.As(err, &ce) {
		return ce.Code
	}
	var de *DecodeError
	if errors.As(err, &de) {
		return de.Code
	}
	return 0
}

// Validator is implemented by leaf types that carry field constraints.
// The validation propagator calls Validate on any populated field whose
// type implements it instead of descending into the value.
type Validator interface {
	Validate() error
}

// Choice marks a record whose fields are mutually exclusive alternatives.
// The marker carries no behavior; it lets the propagator enforce
// exactly-one population when strict choice checking is enabled.
type Choice interface {
	IsChoice()
}
