package provider

import (
	"hews-sync/internal/provider/garmin"
)

// Error taxonomy, aliased from the concrete provider so callers can classify
// failures without importing vendor packages.
type (
	// AuthError: credentials rejected or login flow changed. Not retryable.
	AuthError = garmin.AuthError
	// TransportError: network failure that persisted through bounded retries.
	TransportError = garmin.TransportError
	// RateLimitError: provider kept answering 429 through all retry attempts.
	RateLimitError = garmin.RateLimitError
	// SchemaError: response no longer parses; the private API likely changed.
	SchemaError = garmin.SchemaError
)
