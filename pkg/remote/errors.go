package remote

import (
	"errors"
	"fmt"
)

// RejectedError is a non-retryable remote refusal: invalid id, referential
// integrity violation, malformed request. The flusher logs these as
// permanent failures instead of retrying.
type RejectedError struct {
	Status int
	Reason string
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("remote rejected request (status %d): %s", e.Status, e.Reason)
}

// TransientError is a retryable failure: timeout, connection reset, 5xx,
// rate limiting.
type TransientError struct {
	Status int
	Cause  error
}

func (e *TransientError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("transient remote failure: %v", e.Cause)
	}
	return fmt.Sprintf("transient remote failure (status %d)", e.Status)
}

func (e *TransientError) Unwrap() error { return e.Cause }

// IsRejected reports whether err is a permanent remote refusal.
func IsRejected(err error) bool {
	var re *RejectedError
	return errors.As(err, &re)
}

// IsTransient reports whether err is worth retrying.
func IsTransient(err error) bool {
	var te *TransientError
	return errors.As(err, &te)
}
