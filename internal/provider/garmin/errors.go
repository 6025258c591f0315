package garmin

import (
	"fmt"
	"time"
)

// AuthError means Garmin rejected the credentials or the SSO flow no longer
// matches what we implement (e.g. an extra verification challenge).
type AuthError struct {
	Reason string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("garmin authentication failed: %s", e.Reason)
}

// TransportError wraps a network-level failure that persisted through the
// bounded retry loop.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error during %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// RateLimitError means Garmin kept answering 429 through all retry attempts.
type RateLimitError struct {
	Op         string
	RetryAfter time.Duration // 0 when no Retry-After header was sent
}

func (e *RateLimitError) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("rate limited during %s (retry after %s)", e.Op, e.RetryAfter)
	}
	return fmt.Sprintf("rate limited during %s", e.Op)
}

// SchemaError means a response no longer parses into the expected shape,
// which usually means the private API changed.
type SchemaError struct {
	Endpoint string
	Err      error
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("unexpected response shape from %s: %v", e.Endpoint, e.Err)
}

func (e *SchemaError) Unwrap() error { return e.Err }
