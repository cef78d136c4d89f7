package models

// APIResponse is the uniform wrapper for every HTTP response body.
// Exactly one of Data/Error is set: Success(data) populates Data and
// Error(message) populates Error. Absent fields are omitted from the
// serialized JSON entirely, never emitted as null.
type APIResponse[T any] struct {
	Success bool   `json:"success"`
	Data    *T     `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Success creates a successful response wrapping data.
func Success[T any](data T) APIResponse[T] {
	return APIResponse[T]{
		Success: true,
		Data:    &data,
	}
}

// Error creates an error response carrying only a message.
func Error(message string) APIResponse[struct{}] {
	return APIResponse[struct{}]{
		Success: false,
		Error:   message,
	}
}

// HealthInfo is the health check payload.
type HealthInfo struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// NewHealthInfo returns the payload for a healthy instance at the given
// build version.
func NewHealthInfo(version string) HealthInfo {
	return HealthInfo{
		Status:  "healthy",
		Version: version,
	}
}

// APIInfo is the root endpoint payload describing the API surface.
type APIInfo struct {
	Name      string   `json:"name"`
	Version   string   `json:"version"`
	Endpoints []string `json:"endpoints"`
}
