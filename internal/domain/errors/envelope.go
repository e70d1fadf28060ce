package errors

import "time"

// ErrorResponse is the wire envelope for every failed request.
type ErrorResponse struct {
	ErrorCode        string            `json:"errorCode"`
	Message          string            `json:"message"`
	Timestamp        time.Time         `json:"timestamp"`
	Path             string            `json:"path"`
	Status           int               `json:"status"`
	ValidationErrors []ValidationError `json:"validationErrors,omitempty"`
}

// ValidationError describes a single rejected input field. Field-level
// failures are reported before any business-rule check runs.
type ValidationError struct {
	Field         string `json:"field"`
	Message       string `json:"message"`
	RejectedValue any    `json:"rejectedValue"`
}
