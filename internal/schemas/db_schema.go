package schemas

// Database health status values reported by the connection manager.
const (
	HealthStatusHealthy   = "healthy"
	HealthStatusUnhealthy = "unhealthy"
)

// PoolStats is a snapshot of the connection pool counters. All counters are
// zero when the pool implementation does not expose statistics.
type PoolStats struct {
	PoolSize   int32 `json:"pool_size"`
	CheckedIn  int32 `json:"checked_in"`
	CheckedOut int32 `json:"checked_out"`
	Overflow   int32 `json:"overflow"`
	Invalid    int32 `json:"invalid"`
}

// DatabaseHealth is the structured result of a database health probe. Status
// is always set; the probe fields are only meaningful when the probe ran.
type DatabaseHealth struct {
	Status       string     `json:"status"`
	TestQuery    bool       `json:"test_query"`
	SchemaExists bool       `json:"schema_exists"`
	PoolStats    *PoolStats `json:"pool_stats,omitempty"`
	Error        string     `json:"error,omitempty"`
}

// Healthy reports whether the probe found the database usable.
func (h *DatabaseHealth) Healthy() bool {
	return h.Status == HealthStatusHealthy
}

// RawResult is the outcome of a raw SQL statement. Execution failures are
// carried in the Error field instead of being raised to the caller.
type RawResult struct {
	Success bool    `json:"success"`
	Result  [][]any `json:"result,omitempty"`
	Error   string  `json:"error,omitempty"`
}
