package model

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

type ErrorKind struct {
	s      string
	status int
}

var (
	InvalidInput        = ErrorKind{"invalid_input", http.StatusBadRequest}
	UnsupportedFileType = ErrorKind{"unsupported_file_type", http.StatusUnsupportedMediaType}
	ParseFailure        = ErrorKind{"parse_failure", http.StatusUnprocessableEntity}
	ProcessingFailure   = ErrorKind{"processing_failure", http.StatusInternalServerError}
)

func (k ErrorKind) String() string {
	return k.s
}

func (k ErrorKind) Status() int {
	return k.status
}

// Error is the only error type handlers surface to clients. The wrapped
// cause stays in the logs, Message is what the caller sees.
type Error struct {
	Kind    ErrorKind
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %s", e.Kind, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.cause
}

func NewError(kind ErrorKind, cause error, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), cause: cause}
}

func NewInvalidInput(format string, args ...any) *Error {
	return NewError(InvalidInput, nil, format, args...)
}

func NewUnsupportedFileType(format string, args ...any) *Error {
	return NewError(UnsupportedFileType, nil, format, args...)
}

func NewParseFailure(cause error, format string, args ...any) *Error {
	return NewError(ParseFailure, cause, format, args...)
}

func NewProcessingFailure(cause error, format string, args ...any) *Error {
	return NewError(ProcessingFailure, cause, format, args...)
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// ErrorHandler translates the error taxonomy above into JSON responses.
// Anything not wrapped in *Error is reported as a processing failure.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var opErr *Error
	if errors.As(err, &opErr) {
		return c.Status(opErr.Kind.Status()).JSON(ErrorResponse{Error: opErr.Message})
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).JSON(ErrorResponse{Error: fiberErr.Message})
	}

	return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{Error: "internal error"})
}
