// Package apperr defines the closed error taxonomy shared by the gateways,
// the flow services, and the HTTP handlers. Every service-level failure is an
// *Error with a Kind; handlers map kinds to HTTP statuses exhaustively instead
// of matching on message text.
package apperr

import (
	"errors"
	"time"
)

type Kind int

const (
	// KindValidation: format/length/match failures caught before any network
	// call, or upstream rejections of submitted form data.
	KindValidation Kind = iota + 1
	// KindNotFound: an account was required for this identifier and none exists.
	KindNotFound
	// KindOTPInvalid: the submitted code did not match the pending challenge.
	KindOTPInvalid
	// KindOTPExpired: the challenge expired; the client should offer a resend
	// rather than a retype.
	KindOTPExpired
	// KindCredential: wrong password or account mismatch. The upstream message
	// is already generic and passes through verbatim.
	KindCredential
	// KindTokenInvalid: an expired or rejected follow-up token (reset token or
	// session bearer). The client must restart the owning flow.
	KindTokenInvalid
	// KindThrottled: the resend cooldown is still running.
	KindThrottled
	// KindContextMissing: a step was entered without its pending flow context;
	// the client must redirect to identifier entry.
	KindContextMissing
	// KindBusy: another request for the same OTP challenge is still in flight.
	KindBusy
	// KindUpstream: transport failure or 5xx. Surfaced as a generic retryable
	// message, never as raw backend text.
	KindUpstream
)

type Error struct {
	Kind       Kind
	Message    string
	Fields     map[string]string
	RetryAfter time.Duration
	Err        error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// New creates an error of the given kind with a client-safe message.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap attaches an internal cause that is logged but never sent to clients.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// Validation builds a field-level validation error.
func Validation(message string, fields map[string]string) *Error {
	return &Error{Kind: KindValidation, Message: message, Fields: fields}
}

// Throttled reports a running resend cooldown and how long is left on it.
func Throttled(retryAfter time.Duration) *Error {
	return &Error{
		Kind:       KindThrottled,
		Message:    "please wait before requesting another code",
		RetryAfter: retryAfter,
	}
}

// KindOf extracts the kind from err, or zero if err is not an *Error.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return 0
}

// As is a convenience wrapper around errors.As for *Error.
func As(err error) (*Error, bool) {
	var appErr *Error
	ok := errors.As(err, &appErr)
	return appErr, ok
}
