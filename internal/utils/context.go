package utils

// contextKey is a type used for context keys to avoid conflicts with other packages' context keys.
type contextKey struct {
	name string
}

// String returns the string representation of the context key.
func (c *contextKey) String() string {
	return c.name
}

var (
	// ClaimsKey is the context key used for storing JWT claims in a request context.
	ClaimsKey = &contextKey{"claims"}

	// TraceIdKey is the context key used for storing the trace id of a request.
	TraceIdKey = &contextKey{"traceId"}

	// SanitizedPayloadKey is the context key used for storing the validated request payload.
	SanitizedPayloadKey = &contextKey{"sanitizedPayload"}
)
