package codec

import (
	"errors"
	"fmt"
)

// Error represents a failure to encode or decode a query expression.
//
// Codec errors include:
//   - Type mismatch: a JSON value is not an object where one is required
//   - Missing field: a required key absent from a JSON object
//   - Unknown name: a discriminator, match type, operand, or flag that
//     does not resolve
//   - Unsupported expression: the encoder was handed an unknown variant
//   - Malformed JSON: text input that does not parse
//
// Field-name resolution failures are NOT codec errors; the decoder
// propagates them verbatim from the Resolver.
type Error struct {
	// Code identifies the error category.
	Code ErrorCode

	// Message is a human-readable description.
	Message string

	// Key names the JSON key involved (missing-field errors).
	Key string

	// Name is the unresolved name (unknown type/match/operand/flag errors).
	Name string

	// Err is the underlying error (malformed JSON).
	Err error
}

// ErrorCode categorizes codec errors.
type ErrorCode string

const (
	// ErrCodeTypeMismatch indicates a JSON value of the wrong kind.
	ErrCodeTypeMismatch ErrorCode = "TYPE_MISMATCH"

	// ErrCodeMissingField indicates a required key was absent.
	// The first missing key wins; keys are checked in a fixed order
	// per node kind.
	ErrCodeMissingField ErrorCode = "MISSING_FIELD"

	// ErrCodeUnknownExpressionType indicates an unrecognized discriminator.
	ErrCodeUnknownExpressionType ErrorCode = "UNKNOWN_EXPRESSION_TYPE"

	// ErrCodeUnknownMatchType indicates an unresolvable match name.
	ErrCodeUnknownMatchType ErrorCode = "UNKNOWN_MATCH_TYPE"

	// ErrCodeUnknownOperand indicates an unresolvable operand name.
	ErrCodeUnknownOperand ErrorCode = "UNKNOWN_OPERAND"

	// ErrCodeUnknownFlag indicates an unresolvable flag name.
	ErrCodeUnknownFlag ErrorCode = "UNKNOWN_FLAG"

	// ErrCodeUnsupportedExpression indicates the encoder was given an
	// expression variant it does not recognize.
	ErrCodeUnsupportedExpression ErrorCode = "UNSUPPORTED_EXPRESSION"

	// ErrCodeMalformedJSON indicates text that does not parse as JSON.
	ErrCodeMalformedJSON ErrorCode = "MALFORMED_JSON"
)

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("%s: %s (key=%s)", e.Code, e.Message, e.Key)
	}
	if e.Name != "" {
		return fmt.Sprintf("%s: %s (name=%s)", e.Code, e.Message, e.Name)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// CodeOf extracts the codec error code from an error.
// Returns "" for nil and for non-codec errors (resolver failures).
// Uses errors.As to handle wrapped errors.
func CodeOf(err error) ErrorCode {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Code
	}
	return ""
}

// IsMissingField reports whether err is a missing-field error for key.
func IsMissingField(err error, key string) bool {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Code == ErrCodeMissingField && ce.Key == key
	}
	return false
}

func newTypeMismatch(message string) *Error {
	return &Error{Code: ErrCodeTypeMismatch, Message: message}
}

func newMissingField(kind, key string) *Error {
	noun := "expression"
	if kind != "" {
		noun = kind + " expression"
	}
	return &Error{
		Code:    ErrCodeMissingField,
		Message: fmt.Sprintf("JSON %s must have %q key", noun, key),
		Key:     key,
	}
}

func newUnknownExpressionType(name string) *Error {
	return &Error{
		Code:    ErrCodeUnknownExpressionType,
		Message: "unknown expression type",
		Name:    name,
	}
}

func newUnknownMatchType(name string) *Error {
	return &Error{
		Code:    ErrCodeUnknownMatchType,
		Message: "unknown match type",
		Name:    name,
	}
}

func newUnknownOperand(name string) *Error {
	return &Error{
		Code:    ErrCodeUnknownOperand,
		Message: "unknown operand",
		Name:    name,
	}
}

func newUnknownFlag(name string) *Error {
	return &Error{
		Code:    ErrCodeUnknownFlag,
		Message: "unknown match flag",
		Name:    name,
	}
}

func newUnsupportedExpression(e any) *Error {
	return &Error{
		Code:    ErrCodeUnsupportedExpression,
		Message: fmt.Sprintf("unsupported expression type: %T", e),
	}
}

func newMalformedJSON(err error) *Error {
	return &Error{
		Code:    ErrCodeMalformedJSON,
		Message: "text does not parse as JSON",
		Err:     err,
	}
}
