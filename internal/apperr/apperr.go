// Package apperr defines the structured failures returned by services and
// rendered by the API layer.
package apperr

import (
	"errors"
	"net/http"

	"github.com/dtroode/gophfeed-server/internal/model"
)

// Kind classifies an application error.
type Kind int

const (
	KindInternal Kind = iota
	KindInvalidInput
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindConflict
)

var kindNames = map[Kind]string{
	KindInternal:     "Internal",
	KindInvalidInput: "InvalidInput",
	KindUnauthorized: "Unauthorized",
	KindForbidden:    "Forbidden",
	KindNotFound:     "NotFound",
	KindConflict:     "Conflict",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Internal"
}

// Status returns the HTTP-equivalent status of the kind.
func (k Kind) Status() int {
	switch k {
	case KindInvalidInput:
		return http.StatusUnprocessableEntity
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Error is a classified failure with an optional data payload.
type Error struct {
	Kind    Kind
	Message string
	// Status overrides Kind.Status when non-zero.
	Status int
	Data   any
	Err    error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Code returns the status reported to clients.
func (e *Error) Code() int {
	if e.Status != 0 {
		return e.Status
	}
	return e.Kind.Status()
}

// KindOf returns the kind of the first *Error in err's chain, or KindInternal.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// NewInvalidInput reports failed field constraints.
func NewInvalidInput(violations []model.Violation) *Error {
	return &Error{Kind: KindInvalidInput, Message: "Invalid input", Data: violations}
}

// NewNotAuthenticated reports a request without a verified identity.
func NewNotAuthenticated() *Error {
	return &Error{Kind: KindUnauthorized, Message: "User is not authenticated"}
}

// NewInvalidUser reports a verified token whose account no longer exists.
func NewInvalidUser() *Error {
	return &Error{Kind: KindUnauthorized, Message: "Invalid user"}
}

// NewIncorrectPassword reports a failed password check.
func NewIncorrectPassword() *Error {
	return &Error{Kind: KindUnauthorized, Message: "Password is incorrect"}
}

// NewLoginUserNotFound reports an unknown login email. It is reported with
// status 401 like other credential failures.
func NewLoginUserNotFound() *Error {
	return &Error{Kind: KindNotFound, Message: "User not found", Status: http.StatusUnauthorized}
}

// NewUserNotFound reports a missing account.
func NewUserNotFound() *Error {
	return &Error{Kind: KindNotFound, Message: "No user found"}
}

// NewPostNotFound reports a post id that does not resolve.
func NewPostNotFound() *Error {
	return &Error{Kind: KindNotFound, Message: "No post found"}
}

// NewNotAuthorized reports an authenticated caller acting on a resource it does not own.
func NewNotAuthorized() *Error {
	return &Error{Kind: KindForbidden, Message: "Not authorized"}
}

// NewUserAlreadyExists reports a duplicate signup email.
func NewUserAlreadyExists(email string) *Error {
	return &Error{Kind: KindConflict, Message: "User already exists", Data: map[string]string{"email": email}}
}

// NewInternal wraps an unclassified failure.
func NewInternal(err error) *Error {
	return &Error{Kind: KindInternal, Message: "An error occurred.", Err: err}
}
