// Package schemas defines the data structures exchanged with clients.
package schemas

// Service status values reported by the health endpoints.
const (
	StatusReady    = "ready"
	StatusNotReady = "not_ready"
	StatusAlive    = "alive"
)

// ErrorDTO is a struct that represents an error response
// Error is the custom error, see CustomError
// Detail optionally carries diagnostic information in debug mode
type ErrorDTO struct {
	Error  CustomError `json:"error"`
	Detail string      `json:"detail,omitempty"`
}

// MetadataDTO is a struct that represents the service metadata response
// Name is the configured project name
// Version is the running service version
// Environment is the deployment environment the service runs in
type MetadataDTO struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	Environment string `json:"environment"`
}

// HealthDTO is a struct that represents the basic health response
// Status is the service status
// Service is the service identifier
// Version is the running service version
type HealthDTO struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
}

// DatabaseHealthDTO is a struct that represents the database health response
// Status mirrors the database probe status
// Database is the full probe result
type DatabaseHealthDTO struct {
	Status   string          `json:"status"`
	Database *DatabaseHealth `json:"database"`
}

// ReadinessDTO is a struct that represents the readiness response
// Status is ready or not_ready
// Service is set when the service is ready to accept traffic
// Reason is set when the service is not ready
// Database is the probe result the decision is based on
type ReadinessDTO struct {
	Status   string          `json:"status"`
	Service  string          `json:"service,omitempty"`
	Reason   string          `json:"reason,omitempty"`
	Database *DatabaseHealth `json:"database"`
}

// LivenessDTO is a struct that represents the liveness response
// Status is alive whenever the process can answer at all
// Service is the service identifier
type LivenessDTO struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// TokenPairDTO is a struct that represents a token response
// AccessToken is the short-lived JWT used for auth
// RefreshToken is the long-lived token used to get a new access token
type TokenPairDTO struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// PageInfo is a struct that represents the pagination metadata of a listing
// Page is the 1-based page number
// Size is the page size
// TotalItems is the total number of records across all pages
// TotalPages is the total number of pages
// HasNext reports whether a later page exists
// HasPrevious reports whether an earlier page exists
type PageInfo struct {
	Page        int  `json:"page"`
	Size        int  `json:"size"`
	TotalItems  int  `json:"total_items"`
	TotalPages  int  `json:"total_pages"`
	HasNext     bool `json:"has_next"`
	HasPrevious bool `json:"has_previous"`
}

// PaginatedResponse is a struct that represents a paginated response
// Records is the records of the response
// Pagination is the pagination metadata of the response
type PaginatedResponse struct {
	Records    interface{} `json:"records"`
	Pagination *PageInfo   `json:"pagination"`
}
