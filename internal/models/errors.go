package models

import "net/http"

// ErrorKind is the closed set of application error categories. Each kind
// carries a fixed HTTP status code; StatusCode is the only place status
// codes are derived from error semantics.
type ErrorKind int

const (
	KindNotFound ErrorKind = iota
	KindBadRequest
	KindInternal
	KindUnauthorized
)

// AppError is an application-level error tagged with its kind. Unauthorized
// carries no message; the other kinds do.
type AppError struct {
	Kind    ErrorKind
	Message string
}

// NotFound creates an AppError for a missing resource.
func NotFound(message string) *AppError {
	return &AppError{Kind: KindNotFound, Message: message}
}

// BadRequest creates an AppError for a malformed request.
func BadRequest(message string) *AppError {
	return &AppError{Kind: KindBadRequest, Message: message}
}

// Internal creates an AppError for an unexpected server-side failure.
func Internal(message string) *AppError {
	return &AppError{Kind: KindInternal, Message: message}
}

// Unauthorized creates an AppError for a request lacking valid credentials.
func Unauthorized() *AppError {
	return &AppError{Kind: KindUnauthorized}
}

func (e *AppError) Error() string {
	switch e.Kind {
	case KindNotFound:
		return "Not found: " + e.Message
	case KindBadRequest:
		return "Bad request: " + e.Message
	case KindInternal:
		return "Internal error: " + e.Message
	case KindUnauthorized:
		return "Unauthorized"
	}
	return e.Message
}

// StatusCode maps the error kind to its HTTP status. Every kind is
// enumerated; an unknown kind reports as an internal error.
func (e *AppError) StatusCode() int {
	switch e.Kind {
	case KindNotFound:
		return http.StatusNotFound
	case KindBadRequest:
		return http.StatusBadRequest
	case KindInternal:
		return http.StatusInternalServerError
	case KindUnauthorized:
		return http.StatusUnauthorized
	}
	return http.StatusInternalServerError
}
