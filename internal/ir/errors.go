package ir

import (
	"errors"
	"fmt"
)

// ErrorCode categorizes IR construction and analysis errors.
type ErrorCode string

const (
	// ErrInvalidName indicates a name that fails the identifier grammar,
	// or an operator name without the "operator" prefix.
	ErrInvalidName ErrorCode = "INVALID_NAME"

	// ErrDuplicateDefinition indicates a registry already contains an
	// entry with the same name and operand signature.
	ErrDuplicateDefinition ErrorCode = "DUPLICATE_DEFINITION"

	// ErrTypeMismatch indicates disagreeing data types, such as the two
	// sides of a set instruction.
	ErrTypeMismatch ErrorCode = "TYPE_MISMATCH"

	// ErrIndexOutOfRange indicates a reference index outside the target's
	// shape, or the wrong number of indices.
	ErrIndexOutOfRange ErrorCode = "INDEX_OUT_OF_RANGE"

	// ErrOutOfRangeLiteral indicates an integer literal outside the range
	// representable by its type.
	ErrOutOfRangeLiteral ErrorCode = "OUT_OF_RANGE_LITERAL"

	// ErrOperandArity indicates a wrong operand count, or that no overload
	// matches the operand types.
	ErrOperandArity ErrorCode = "OPERAND_ARITY"

	// ErrOperandKind indicates an operand of the wrong kind: a non-
	// reference where a reference is required, a non-literal duration, or
	// a condition on an instruction that cannot be conditional.
	ErrOperandKind ErrorCode = "OPERAND_KIND"

	// ErrUnknownName indicates an instruction or function name that is not
	// registered.
	ErrUnknownName ErrorCode = "UNKNOWN_NAME"

	// ErrInternalConsistency indicates malformed IR or a node variant an
	// exhaustive switch did not expect. This is a bug, not a user error.
	ErrInternalConsistency ErrorCode = "INTERNAL_CONSISTENCY"
)

// Error is the tagged error type surfaced by the builders and analyses.
type Error struct {
	Code    ErrorCode
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Errorf creates a tagged error with a formatted message.
func Errorf(code ErrorCode, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// CodeOf returns the code of a tagged error, or "" when err is not one.
// Uses errors.As to handle wrapped errors.
func CodeOf(err error) ErrorCode {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// IsUserError reports whether the error is a user input problem rather than
// an internal consistency violation.
func IsUserError(err error) bool {
	code := CodeOf(err)
	return code != "" && code != ErrInternalConsistency
}

// IsInternalError reports whether the error indicates a bug in the IR or in
// the code manipulating it.
func IsInternalError(err error) bool {
	return CodeOf(err) == ErrInternalConsistency
}
