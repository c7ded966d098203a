package errors

import (
	stderrors "errors"
	"fmt"
)

type ErrorCode int

const (
	// 1xxx - request problems
	ErrInvalidInput       ErrorCode = 1001
	ErrInvalidRequestData ErrorCode = 1002
	ErrMissingField       ErrorCode = 1003

	// 2xxx - authentication / authorization
	ErrUnauthorized               ErrorCode = 2001
	ErrTokenExpired               ErrorCode = 2002
	ErrInvalidTokenFormat         ErrorCode = 2003
	ErrMissingAuthorizationHeader ErrorCode = 2004
	ErrForbidden                  ErrorCode = 2005

	// 3xxx - resources
	ErrNotFound      ErrorCode = 3001
	ErrAlreadyExists ErrorCode = 3002

	// 5xxx - server side
	ErrInternalServer  ErrorCode = 5000
	ErrExternalService ErrorCode = 5001
)

// AppError is returned by services. Message is safe to show to clients,
// Err keeps the underlying cause for logs.
type AppError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
}

func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// As is errors.As re-exported so callers importing this package under the
// name "errors" don't need a second import.
func As(err error, target any) bool {
	return stderrors.As(err, target)
}

func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

func New(text string) error {
	return stderrors.New(text)
}
