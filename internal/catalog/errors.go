package catalog

import (
	"fmt"

	"github.com/roach88/smartenum/enum"
)

// Error code constants, shared with the CLI.
const (
	ErrCodeGeneric     = "E001" // Generic/unknown error
	ErrCodeScanError   = "E002" // Directory scan error
	ErrCodeNoFiles     = "E003" // No catalog files found
	ErrCodeParseFailed = "E004" // CUE or YAML parse failed
	ErrCodeNotFound    = "E005" // Path or type not found
	ErrCodeUnsupported = "E006" // Unsupported file extension

	// Definition errors
	ErrCodeNoMembers       = "E101" // Type declares no members
	ErrCodeMemberName      = "E102" // Member with empty name
	ErrCodeDuplicateMember = "E103" // Member name repeated within a type
	ErrCodeDuplicateType   = "E104" // Type name declared twice
	ErrCodeInvalidField    = "E105" // Unknown or mistyped field

	// Flag validation errors
	ErrCodeNotPowerOfTwo = "E201" // Flag value is not a power of two
	ErrCodeMissingFlag   = "E202" // Gap in the flag bit sequence

	// Flag query errors
	ErrCodeNegativeValue = "E203" // Negative input without the capability
	ErrCodeUnknownFlag   = "E204" // Flag list names an unknown member
)

// LoadError represents an error found while loading or validating a catalog.
type LoadError struct {
	Code    string
	Message string
	Type    string // enumeration type name, if known
	File    string
	Line    int
	Err     error
}

func (e *LoadError) Error() string {
	switch {
	case e.File != "" && e.Line > 0:
		return fmt.Sprintf("%s:%d: %s: %s", e.File, e.Line, e.Code, e.Message)
	case e.File != "":
		return fmt.Sprintf("%s: %s: %s", e.File, e.Code, e.Message)
	default:
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// CodeForEnumError maps enumeration error codes to catalog codes.
func CodeForEnumError(err error) string {
	switch enum.CodeOf(err) {
	case enum.CodeInvalidName:
		return ErrCodeMemberName
	case enum.CodeDuplicateName:
		return ErrCodeDuplicateMember
	case enum.CodeNotPowerOfTwo:
		return ErrCodeNotPowerOfTwo
	case enum.CodeMissingFlag:
		return ErrCodeMissingFlag
	case enum.CodeNotFound:
		return ErrCodeNotFound
	case enum.CodeNegativeValue:
		return ErrCodeNegativeValue
	case enum.CodeParseFailed:
		return ErrCodeUnknownFlag
	default:
		return ErrCodeGeneric
	}
}
