package pkgerror

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrNotFound indicates that the requested object is not stored.
	ErrNotFound = errors.New("object not found")
)

// Type separates caller mistakes from failures on our side.
type Type int

const (
	TypeServer Type = iota
	TypeValidation
)

func (t Type) String() string {
	switch t {
	case TypeValidation:
		return "ERROR_TYPE_VALIDATION"
	case TypeServer:
		return "ERROR_TYPE_SERVER"
	default:
		return "ERROR_TYPE_UNKNOWN"
	}
}

// Code is a stable identifier mapped to an HTTP status at the edge.
type Code int

const (
	CodeInternal       Code = iota
	CodeInvalidFormat       // request body is not in the expected encoding
	CodeMissingField        // a required form field was not sent
	CodeInvalidPayload      // an invocation envelope could not be decoded
)

func (c Code) String() string {
	switch c {
	case CodeInvalidFormat:
		return "ERROR_CODE_INVALID_FORMAT"
	case CodeMissingField:
		return "ERROR_CODE_MISSING_FIELD"
	case CodeInvalidPayload:
		return "ERROR_CODE_INVALID_PAYLOAD"
	default:
		return "ERROR_CODE_INTERNAL"
	}
}

// Error carries a caller-facing message, a type and a code, optionally
// wrapping the error that caused it.
type Error struct {
	err     error
	msg     string
	errType Type
	code    Code
}

// Error returns the wrapped error text when there is one, else the message.
func (e *Error) Error() string {
	if e.err != nil {
		return e.err.Error()
	}
	if e.msg != "" {
		return e.msg
	}
	if e.errType == TypeValidation {
		return "Validation violation"
	}

	return "Internal error"
}

// String is the verbose form used in logs.
func (e *Error) String() string {
	return fmt.Sprintf("Error Type: %s, Code: %s, Message: %s, Underlying Error: %v",
		e.errType, e.code, e.msg, e.err)
}

func (e *Error) Msg() string { return e.msg }

func (e *Error) Type() Type { return e.errType }

func (e *Error) Code() Code { return e.code }

func (e *Error) Unwrap() error { return e.err }

// StatusCode maps the code to an HTTP status. Every validation code is a 400.
func (e *Error) StatusCode() int {
	switch e.code {
	case CodeInvalidFormat, CodeMissingField, CodeInvalidPayload:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func new(err error, msg string, et Type, code Code) error {
	return &Error{err: err, msg: msg, errType: et, code: code}
}

// NewInvalidFormat reports a request body that could not be read as the
// expected encoding.
func NewInvalidFormat() error {
	return new(nil, "invalid request body", TypeValidation, CodeInvalidFormat)
}

// NewMissingField reports a required request field that was not sent.
func NewMissingField(field string) error {
	return new(fmt.Errorf("missing field %q", field), field+" is required", TypeValidation, CodeMissingField)
}

// NewInvalidPayload wraps a decoding failure of an invocation envelope.
func NewInvalidPayload(err error) error {
	return new(err, "invalid invocation payload", TypeValidation, CodeInvalidPayload)
}
