package enum

import (
	"errors"
	"fmt"
)

// Error is returned by every failing enumeration operation.
//
// The error kinds are:
//   - Invalid name: an instance was registered with an empty name
//   - Duplicate name: an exact name is already registered for the type
//   - Not found: a name or value lookup missed, or a flag mask cannot be built
//   - Negative value: negative flag input without the matching capability
//   - Not a power of two / missing flag: flag definitions are malformed
//   - Parse failed: a comma-separated flag list had an unknown token
//
// Error carries structured fields for diagnostics. Match kinds with
// errors.Is against the Err* sentinels or with the IsXxx helpers.
type Error struct {
	// Code identifies the error category.
	Code ErrorCode

	// Type is the enumeration type name.
	Type string

	// Name is the instance name involved, if any.
	Name string

	// Value is the formatted value involved, if any.
	Value string

	// Message is a human-readable description.
	Message string

	// Err is the underlying cause, if any.
	Err error
}

// ErrorCode categorizes enumeration errors.
type ErrorCode string

const (
	// CodeInvalidName indicates an instance was created with an empty name.
	CodeInvalidName ErrorCode = "INVALID_NAME"

	// CodeDuplicateName indicates an exact-name collision within a type.
	CodeDuplicateName ErrorCode = "DUPLICATE_NAME"

	// CodeNotFound indicates a lookup miss or an unresolvable flag value.
	CodeNotFound ErrorCode = "NOT_FOUND"

	// CodeNegativeValue indicates negative flag input that the type does not allow.
	CodeNegativeValue ErrorCode = "NEGATIVE_VALUE_NOT_ALLOWED"

	// CodeNotPowerOfTwo indicates a declared flag value with more than one bit set.
	CodeNotPowerOfTwo ErrorCode = "NOT_POWER_OF_TWO"

	// CodeMissingFlag indicates a gap in the declared flag bit sequence.
	CodeMissingFlag ErrorCode = "MISSING_FLAG"

	// CodeParseFailed indicates a flag name list could not be parsed.
	CodeParseFailed ErrorCode = "PARSE_FAILED"

	// CodeInternal indicates a broken internal invariant.
	CodeInternal ErrorCode = "INTERNAL"
)

// Sentinels for errors.Is. They match any *Error with the same Code.
var (
	ErrInvalidName   = &Error{Code: CodeInvalidName}
	ErrDuplicateName = &Error{Code: CodeDuplicateName}
	ErrNotFound      = &Error{Code: CodeNotFound}
	ErrNegativeValue = &Error{Code: CodeNegativeValue}
	ErrNotPowerOfTwo = &Error{Code: CodeNotPowerOfTwo}
	ErrMissingFlag   = &Error{Code: CodeMissingFlag}
	ErrParseFailed   = &Error{Code: CodeParseFailed}
)

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = string(e.Code)
	} else {
		msg = fmt.Sprintf("%s: %s", e.Code, msg)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is a sentinel with the same Code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code == e.Code && t.Type == "" && t.Name == "" && t.Value == "" && t.Message == ""
}

// CodeOf returns the Code of the first *Error in err's chain, or "".
func CodeOf(err error) ErrorCode {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// IsNotFound returns true if err is a lookup miss.
// Uses errors.As to handle wrapped errors.
func IsNotFound(err error) bool {
	return CodeOf(err) == CodeNotFound
}

// IsDuplicateName returns true if err is an exact-name collision.
func IsDuplicateName(err error) bool {
	return CodeOf(err) == CodeDuplicateName
}

// IsDefinitionError returns true if err reports malformed flag definitions.
func IsDefinitionError(err error) bool {
	code := CodeOf(err)
	return code == CodeNotPowerOfTwo || code == CodeMissingFlag
}

func newNameNotFound(typeName, name string) *Error {
	return &Error{
		Code:    CodeNotFound,
		Type:    typeName,
		Name:    name,
		Message: fmt.Sprintf("no %s with name %q found", typeName, name),
	}
}

func newValueNotFound[V Integer](typeName string, value V) *Error {
	return &Error{
		Code:    CodeNotFound,
		Type:    typeName,
		Value:   fmt.Sprint(value),
		Message: fmt.Sprintf("no %s with value %d found", typeName, value),
	}
}
