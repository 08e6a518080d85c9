package provider

import (
	"errors"
	"fmt"
)

type ErrorKind string

const (
	KindTimeout     ErrorKind = "TIMEOUT"
	KindUnavailable ErrorKind = "UNAVAILABLE"
	KindRateLimited ErrorKind = "RATE_LIMITED"
	KindRejected    ErrorKind = "REJECTED"
	KindMalformed   ErrorKind = "MALFORMED"
)

// Error describes a failed provider call. StatusCode is zero for transport failures.
type Error struct {
	Provider   string
	Kind       ErrorKind
	StatusCode int
	err        error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("%s provider: %s", e.Provider, e.Kind)
	if e.StatusCode != 0 {
		msg += fmt.Sprintf(" (status %d)", e.StatusCode)
	}
	if e.err != nil {
		msg += ": " + e.err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.err
}

// IsRetryable: timeouts, transport failures, 5xx and 429 retry; other 4xx and
// malformed bodies are terminal. Errors of unknown origin retry.
func IsRetryable(err error) bool {
	var pe *Error
	if !errors.As(err, &pe) {
		return true
	}
	switch pe.Kind {
	case KindRejected, KindMalformed:
		return false
	default:
		return true
	}
}

func kindForStatus(status int) ErrorKind {
	switch {
	case status == 429:
		return KindRateLimited
	case status >= 500:
		return KindUnavailable
	default:
		return KindRejected
	}
}
