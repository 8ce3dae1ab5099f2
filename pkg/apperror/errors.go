package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	Kind       string `json:"kind,omitempty"` // machine-readable failure kind expected by the gateway
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Security & Authentication (SEC) ----

func ErrInvalidCredentials() *AppError {
	return New("SEC_001", "Invalid notification credentials", http.StatusForbidden)
}

// ---- Notification processing (NOTIF) ----

func ErrMalformedNotification(err error) *AppError {
	return Wrap("NOTIF_001", "Malformed notification request", http.StatusBadRequest, err)
}

func ErrUnmappedAction(err error) *AppError {
	e := Wrap("NOTIF_002", "Notification event is not handled", http.StatusUnprocessableEntity, err)
	e.Kind = "UnmappedAdyenActionException"
	return e
}

func ErrNoCommandResolved(err error) *AppError {
	e := Wrap("NOTIF_003", "No command could be resolved for the notification", http.StatusUnprocessableEntity, err)
	e.Kind = "NoCommandResolvedException"
	return e
}

func ErrPayloadTooLarge(err error) *AppError {
	return Wrap("NOTIF_004", "Notification request body too large", http.StatusRequestEntityTooLarge, err)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

func ErrDatabaseError(err error) *AppError {
	return Wrap("SYS_001", "Internal database error", http.StatusInternalServerError, err)
}

func ErrProcessingFailed(err error) *AppError {
	return Wrap("SYS_002", "Notification processing failed", http.StatusInternalServerError, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a NOTIF_001-style validation error.
func Validation(message string) *AppError {
	return New("NOTIF_001", message, http.StatusBadRequest)
}
