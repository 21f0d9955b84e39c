// Package errors is the coded error type shared by the normalizer, its
// loaders and its transports
package errors

// Import as perr so it never shadows the standard errors package

import (
	stderrs "errors"
	"fmt"
	"net/http"
)

// ErrorCode classifies a failure for callers and for the wire
// Numbers are part of the API payload; append only
type ErrorCode uint16

const (
	// ErrorCodeUnknown is anything not classified below
	ErrorCodeUnknown ErrorCode = iota

	// ErrorCodePanic is a panic caught by the recover middleware
	ErrorCodePanic

	// ErrorCodeUnavailable is a dependency that may come back (database, warehouse)
	ErrorCodeUnavailable

	// ErrorCodeTooManyRequests is rate limiting
	ErrorCodeTooManyRequests

	// ErrorCodeInvalidArgument is malformed input: a bad stage name, a broken slang table
	ErrorCodeInvalidArgument

	// ErrorCodeValidation is a request that decoded but failed its rules
	ErrorCodeValidation

	// ErrorCodeJSON is a request body that did not decode
	ErrorCodeJSON

	// ErrorCodeNotFound is a missing resource such as a word list path
	ErrorCodeNotFound

	// ErrorCodeTooLarge is text over the configured size limit
	ErrorCodeTooLarge

	// ErrorCodeDB is a Postgres failure
	ErrorCodeDB

	// ErrorCodeWarehouse is a ClickHouse failure
	ErrorCodeWarehouse
)

var codeNames = [...]string{
	ErrorCodeUnknown:         "unknown",
	ErrorCodePanic:           "panic",
	ErrorCodeUnavailable:     "unavailable",
	ErrorCodeTooManyRequests: "too_many_requests",
	ErrorCodeInvalidArgument: "invalid_argument",
	ErrorCodeValidation:      "validation",
	ErrorCodeJSON:            "json",
	ErrorCodeNotFound:        "not_found",
	ErrorCodeTooLarge:        "too_large",
	ErrorCodeDB:              "db",
	ErrorCodeWarehouse:       "warehouse",
}

func (c ErrorCode) String() string {
	if int(c) < len(codeNames) {
		return codeNames[c]
	}
	return fmt.Sprintf("code(%d)", uint16(c))
}

// HTTPStatusCode maps a code to its response status
func HTTPStatusCode(c ErrorCode) int {
	switch c {
	case ErrorCodeNotFound:
		return http.StatusNotFound
	case ErrorCodeInvalidArgument:
		return http.StatusUnprocessableEntity
	case ErrorCodeValidation, ErrorCodeJSON:
		return http.StatusBadRequest
	case ErrorCodeTooLarge:
		return http.StatusRequestEntityTooLarge
	case ErrorCodeTooManyRequests:
		return http.StatusTooManyRequests
	case ErrorCodeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// Error carries a message for people, a code for machines, an optional
// offending field and operation label, and the wrapped cause
type Error struct {
	orig  error
	msg   string
	code  ErrorCode
	field string
	op    string
}

// Wire is the JSON error body
type Wire struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Field   string    `json:"field,omitempty"`
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.orig == nil {
		return e.msg
	}
	return e.msg + ": " + e.orig.Error()
}

func (e *Error) Unwrap() error { return e.orig }

// Code returns the classification
func (e *Error) Code() ErrorCode { return e.code }

// Field returns the offending input field, if any
func (e *Error) Field() string { return e.field }

// Op returns the operation label, if any
func (e *Error) Op() string { return e.op }

// ToWire drops the cause and keeps what a client may see
func (e *Error) ToWire() Wire { return Wire{Code: e.code, Message: e.msg, Field: e.field} }

// As finds the first *Error in err's chain
func As(err error) (*Error, bool) {
	var e *Error
	if stderrs.As(err, &e) {
		return e, true
	}
	return nil, false
}

// Root returns the innermost cause
func Root(err error) error {
	for err != nil {
		next := stderrs.Unwrap(err)
		if next == nil {
			break
		}
		err = next
	}
	return err
}

// CodeOf returns err's code, Unknown for foreign errors
func CodeOf(err error) ErrorCode {
	if e, ok := As(err); ok {
		return e.code
	}
	return ErrorCodeUnknown
}

// IsCode reports whether err carries code
func IsCode(err error, code ErrorCode) bool { return CodeOf(err) == code }

// HTTPStatus is HTTPStatusCode(CodeOf(err))
func HTTPStatus(err error) int { return HTTPStatusCode(CodeOf(err)) }

// WireFrom renders any error for the wire; nil gives the zero Wire
func WireFrom(err error) Wire {
	if err == nil {
		return Wire{}
	}
	if e, ok := As(err); ok {
		return e.ToWire()
	}
	return Wire{Code: ErrorCodeUnknown, Message: err.Error()}
}

// HTTP returns status and body together
func HTTP(err error) (int, Wire) {
	if err == nil {
		return http.StatusOK, Wire{}
	}
	return HTTPStatus(err), WireFrom(err)
}

// WithField returns a copy of err with field set; foreign errors come back as is
func WithField(err error, field string) error {
	e, ok := As(err)
	if !ok {
		return err
	}
	c := *e
	c.field = field
	return &c
}

// WithOp returns a copy of err with op set; foreign errors and nil come back as is
func WithOp(err error, op string) error {
	e, ok := As(err)
	if !ok {
		return err
	}
	c := *e
	c.op = op
	return &c
}

// New builds an *Error
func New(code ErrorCode, msg string) error { return &Error{code: code, msg: msg} }

// Newf builds an *Error with a formatted message
func Newf(code ErrorCode, format string, a ...any) error {
	return &Error{code: code, msg: fmt.Sprintf(format, a...)}
}

// Wrap builds an *Error around orig
func Wrap(orig error, code ErrorCode, msg string) error {
	return &Error{code: code, msg: msg, orig: orig}
}

// Wrapf builds an *Error around orig with a formatted message
func Wrapf(orig error, code ErrorCode, format string, a ...any) error {
	return &Error{code: code, msg: fmt.Sprintf(format, a...), orig: orig}
}

// WrapIf is Wrap that passes nil through
func WrapIf(err error, code ErrorCode, msg string) error {
	if err == nil {
		return nil
	}
	return Wrap(err, code, msg)
}

// NotFoundf returns a not found error
func NotFoundf(format string, a ...any) error { return Newf(ErrorCodeNotFound, format, a...) }

// InvalidArgf returns an invalid argument error
func InvalidArgf(format string, a ...any) error { return Newf(ErrorCodeInvalidArgument, format, a...) }

// Validationf returns a validation error
func Validationf(format string, a ...any) error { return Newf(ErrorCodeValidation, format, a...) }

// JSONErrf returns a body decoding error
func JSONErrf(format string, a ...any) error { return Newf(ErrorCodeJSON, format, a...) }

// TooLargef returns a size limit error
func TooLargef(format string, a ...any) error { return Newf(ErrorCodeTooLarge, format, a...) }

// PanicErrf returns a recovered panic error
func PanicErrf(format string, a ...any) error { return Newf(ErrorCodePanic, format, a...) }

// Unavailablef returns a transient dependency error
func Unavailablef(format string, a ...any) error { return Newf(ErrorCodeUnavailable, format, a...) }

// Internalf returns an unclassified error
func Internalf(format string, a ...any) error { return Newf(ErrorCodeUnknown, format, a...) }

// Retryable reports whether a store error is worth another attempt (see store.go)
func Retryable(err error) bool { return IsRetryable(err) }
