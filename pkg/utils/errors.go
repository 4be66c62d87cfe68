package utils

import (
	"errors"
	"fmt"
)

// Error kinds returned by services. Handlers translate them into HTTP status
// codes with errors.Is.
var (
	ErrNotFound     = errors.New("not found")
	ErrForbidden    = errors.New("forbidden")
	ErrUnauthorized = errors.New("unauthorized")
	ErrBadRequest   = errors.New("bad request")
	ErrConflict     = errors.New("conflict")
)

// AppError carries a human readable message and unwraps to its kind.
// Fields is set only for request validation failures.
type AppError struct {
	Kind    error
	Message string
	Fields  map[string]string
}

func (e *AppError) Error() string {
	msg := e.Kind.Error()
	if e.Message != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Message)
	}
	if len(e.Fields) > 0 {
		msg = fmt.Sprintf("%s (%s)", msg, FormatValidationErrors(e.Fields))
	}
	return msg
}

func (e *AppError) Unwrap() error {
	return e.Kind
}

func NotFoundError(message string) error {
	return &AppError{Kind: ErrNotFound, Message: message}
}

func ForbiddenError(message string) error {
	return &AppError{Kind: ErrForbidden, Message: message}
}

func UnauthorizedError(message string) error {
	return &AppError{Kind: ErrUnauthorized, Message: message}
}

func BadRequestError(message string) error {
	return &AppError{Kind: ErrBadRequest, Message: message}
}

// ValidationError wraps the field map from ValidateStruct as a bad request.
func ValidationError(fields map[string]string) error {
	return &AppError{Kind: ErrBadRequest, Message: "Validation failed", Fields: fields}
}

func ConflictError(message string) error {
	return &AppError{Kind: ErrConflict, Message: message}
}

// ErrorMessage returns the message without the kind prefix, for response bodies.
func ErrorMessage(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Message != "" {
		return appErr.Message
	}
	return err.Error()
}

// ErrorFields returns the per-field messages of a validation error, or nil.
func ErrorFields(err error) map[string]string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Fields
	}
	return nil
}
