// Package errs defines the error taxonomy the dispatch core surfaces to its
// callers: NotFound, Conflict and Forbidden, each carrying a stable
// machine-readable code. The HTTP boundary maps kinds to status codes; the
// core itself never recovers from these.
package errs

import "errors"

// Kind classifies an error for the boundary layer
type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindConflict
	KindForbidden
)

// Stable reason codes carried on domain errors
const (
	CodeBookingNotFound        = "booking-not-found"
	CodeTaxiNotFound           = "taxi-not-found"
	CodePassengerNotFound      = "passenger-not-found"
	CodeBookingNotAvailable    = "booking-not-available"
	CodeBookingCannotComplete  = "booking-cannot-be-completed"
	CodeBookingStatusChange    = "booking-status-change-not-allowed"
	CodeBookingUpdateForbidden = "booking-update-forbidden"
	CodeBookingCancelForbidden = "booking-cancel-forbidden"
)

// Error is a domain error with a kind and a stable reason code
type Error struct {
	Kind    Kind
	Code    string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// NotFound creates a NotFound error with the given code
func NotFound(code, message string) *Error {
	return &Error{Kind: KindNotFound, Code: code, Message: message}
}

// Conflict creates a Conflict error with the given code
func Conflict(code, message string) *Error {
	return &Error{Kind: KindConflict, Code: code, Message: message}
}

// Forbidden creates a Forbidden error with the given code
func Forbidden(code, message string) *Error {
	return &Error{Kind: KindForbidden, Code: code, Message: message}
}

// KindOf returns the kind of err, or KindUnknown for non-domain errors
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// CodeOf returns the reason code of err, or "" for non-domain errors
func CodeOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// IsNotFound reports whether err is a NotFound domain error
func IsNotFound(err error) bool { return KindOf(err) == KindNotFound }

// IsConflict reports whether err is a Conflict domain error
func IsConflict(err error) bool { return KindOf(err) == KindConflict }

// IsForbidden reports whether err is a Forbidden domain error
func IsForbidden(err error) bool { return KindOf(err) == KindForbidden }
