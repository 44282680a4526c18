package errx

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"

	"github.com/lib/pq"
)

const (
	// SystemErrorMessage is a user-facing fallback when internal errors occur.
	SystemErrorMessage = "internal server error"
	// DatabaseErrorMessage describes storage failures.
	DatabaseErrorMessage = "database operation failed"
	NotFoundMessage      = "not found"
	ConflictMessage      = "already exists"
	InvalidInputMessage  = "invalid input"
)

// AppError wraps an underlying error with an HTTP status and safe message.
type AppError struct {
	Err     error
	Status  int
	Message string
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError with the provided information.
func New(err error, status int, message string) *AppError {
	return &AppError{
		Err:     err,
		Status:  status,
		Message: message,
	}
}

// BadRequest is shorthand for a 400 with the given message.
func BadRequest(message string) *AppError {
	return New(nil, http.StatusBadRequest, message)
}

// WrapDB maps database errors onto AppError. Postgres constraint violations
// become client errors; everything else is a gateway failure.
func WrapDB(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return New(err, http.StatusNotFound, NotFoundMessage)
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case "23505":
			return New(err, http.StatusConflict, ConflictMessage)
		case "23502", "23514", "22P02":
			return New(err, http.StatusBadRequest, InvalidInputMessage)
		}
	}

	return New(err, http.StatusBadGateway, DatabaseErrorMessage)
}

// StatusOf extracts the HTTP status and safe message for any error.
func StatusOf(err error) (int, string) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Status, appErr.Message
	}
	return http.StatusInternalServerError, SystemErrorMessage
}
