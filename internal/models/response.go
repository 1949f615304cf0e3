// Package models defines the JSON shapes of the HTTP ops surface.
package models

import "github.com/metrondb/metrond/internal/storage"

// HealthResponse is the body of GET /health
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Version   string `json:"version"`
}

// StatsResponse is the body of GET /stats
type StatsResponse struct {
	Location string        `json:"location"`
	InMemory bool          `json:"in_memory"`
	Storage  storage.Stats `json:"storage"`
}

// ErrorResponse wraps an error payload
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail describes a single error
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Path    string `json:"path,omitempty"`
}
