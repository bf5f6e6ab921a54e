// Package apperr defines the application error taxonomy and its mapping to
// HTTP status codes, so the boundary layer never collapses distinct failure
// kinds into one status.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindNotFound
	KindInvalidID
	KindUnauthenticated
	KindForbidden
	KindUnsupportedFileType
	KindFileTooLarge
	KindStoreUnavailable
)

// Error carries a failure kind, a human message, and optional field-level
// validation messages.
type Error struct {
	Kind    Kind
	Message string
	Fields  map[string]string
}

func (e *Error) Error() string { return e.Message }

// Status maps an error kind to its HTTP status code.
func (e *Error) Status() int {
	switch e.Kind {
	case KindValidation, KindInvalidID:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindUnauthenticated:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindUnsupportedFileType:
		return http.StatusUnsupportedMediaType
	case KindFileTooLarge:
		return http.StatusRequestEntityTooLarge
	case KindStoreUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// Status resolves any error to an HTTP status. Non-application errors map to 500.
func Status(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.Status()
	}
	return http.StatusInternalServerError
}

// IsKind reports whether err is an application error of the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

func Validation(message string, fields map[string]string) *Error {
	return &Error{Kind: KindValidation, Message: message, Fields: fields}
}

func NotFound(what string) *Error {
	return &Error{Kind: KindNotFound, Message: what + " not found"}
}

func InvalidID(id string) *Error {
	return &Error{Kind: KindInvalidID, Message: fmt.Sprintf("invalid identifier %q", id)}
}

func Unauthenticated(message string) *Error {
	return &Error{Kind: KindUnauthenticated, Message: message}
}

func Forbidden(message string) *Error {
	return &Error{Kind: KindForbidden, Message: message}
}

func UnsupportedFileType(ext string) *Error {
	return &Error{Kind: KindUnsupportedFileType, Message: fmt.Sprintf("unsupported file type %q, only .doc and .docx are accepted", ext)}
}

func FileTooLarge(limit int64) *Error {
	return &Error{Kind: KindFileTooLarge, Message: fmt.Sprintf("file exceeds the %d byte limit", limit)}
}

func StoreUnavailable(err error) *Error {
	return &Error{Kind: KindStoreUnavailable, Message: "store unavailable: " + err.Error()}
}
