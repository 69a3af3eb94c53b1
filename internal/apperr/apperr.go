package apperr

import (
	"errors"
	"fmt"
)

// Error codes shared by the loader and the HTTP layer.
const (
	CodeConfigInvalid = "CONFIG_INVALID"
	CodeDataLoad      = "DATA_LOAD"
	CodeNotFound      = "NOT_FOUND"
	CodeInvalidInput  = "INVALID_INPUT"
	CodeInternal      = "INTERNAL_ERROR"
)

// Error is a coded application error.
type Error struct {
	Code    string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Message == "" && e.Cause != nil {
		return e.Cause.Error()
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func New(code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap attaches context to err, keeping the code of an inner *Error.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	code := CodeInternal
	var inner *Error
	if errors.As(err, &inner) {
		code = inner.Code
	}
	return &Error{Code: code, Message: message, Cause: err}
}

func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WithCode wraps err under the given code without adding text.
func WithCode(code string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Code: code, Cause: err}
}

// GetCode returns the outermost code in the chain, or "UNKNOWN".
func GetCode(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return "UNKNOWN"
}

func DataLoad(format string, args ...interface{}) *Error {
	return New(CodeDataLoad, fmt.Sprintf(format, args...))
}

func NotFound(resource string) *Error {
	return New(CodeNotFound, fmt.Sprintf("%s not found", resource))
}

func InvalidInput(message string) *Error {
	return New(CodeInvalidInput, message)
}

func ConfigInvalid(message string) *Error {
	return New(CodeConfigInvalid, message)
}
