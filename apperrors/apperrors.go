// Package apperrors is the single place where failure kinds map to
// HTTP response codes.
package apperrors

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Kind int

const (
	Unauthenticated Kind = iota
	Forbidden
	AlreadyVoted
	NotFound
	Validation
	Internal
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap keeps the underlying cause for logs while the client only ever
// sees Message.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf reports the taxonomy kind of err, defaulting to Internal for
// anything that is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Internal
}

func statusOf(kind Kind) int {
	switch kind {
	case Unauthenticated:
		return http.StatusUnauthorized
	case Forbidden:
		return http.StatusForbidden
	case AlreadyVoted, Validation:
		return http.StatusBadRequest
	case NotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Respond converts err into the JSON error shape used by every handler.
func Respond(c *gin.Context, err error) {
	var e *Error
	if !errors.As(err, &e) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(statusOf(e.Kind), gin.H{"error": e.Message})
}
