package fetch

import (
	"errors"
	"fmt"
)

// ErrRetryExhausted indicates the backoff budget ran out before a request
// succeeded.
var ErrRetryExhausted = errors.New("retry budget exhausted")

// TransportError is a connection-level failure (dial, timeout, reset).
// Retryable.
type TransportError struct {
	Path  string
	Cause error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("fetching %s: %v", e.Path, e.Cause)
}

func (e *TransportError) Unwrap() error { return e.Cause }

// StatusError is a non-2xx response. Retryable, but a persistent 401/403
// usually means bad credentials.
type StatusError struct {
	Path string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("fetching %s: server returned status %d", e.Path, e.Code)
}

// Hint returns advice for the user, or "" when there is none.
func (e *StatusError) Hint() string {
	if e.Code == 401 || e.Code == 403 {
		return "make sure your credentials are valid"
	}
	return ""
}

// DecodeError is a permanent failure to decode a response body. FieldPath
// names the JSON field that failed, so schema drift is diagnosable.
type DecodeError struct {
	Path      string
	FieldPath string
	Cause     error
}

func (e *DecodeError) Error() string {
	if e.FieldPath != "" {
		return fmt.Sprintf("parsing %s: field %q: %v", e.Path, e.FieldPath, e.Cause)
	}
	return fmt.Sprintf("parsing %s: %v", e.Path, e.Cause)
}

func (e *DecodeError) Unwrap() error { return e.Cause }
