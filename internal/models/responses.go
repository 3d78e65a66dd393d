package models

import "time"

// HealthResponse represents a basic health check response
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
}

// DBHealthResponse represents a database health check response
type DBHealthResponse struct {
	Status    string        `json:"status"`
	Timestamp time.Time     `json:"timestamp"`
	Connected bool          `json:"connected"`
	Latency   time.Duration `json:"latency"`
	Error     string        `json:"error,omitempty"`
}

// ProcessResponse is the response from the process endpoint. ActionsJSON is
// null when the action-extraction reply could not be interpreted as a task
// list; ActionsRaw always carries the model's reply verbatim.
type ProcessResponse struct {
	Category    string       `json:"category"`
	ActionsRaw  string       `json:"actions_raw"`
	ActionsJSON []ActionItem `json:"actions_json"`
}

// AgentResponse is the response from the agent endpoint
type AgentResponse struct {
	Reply string `json:"reply"`
}

// ErrorResponse is the common error payload
type ErrorResponse struct {
	Error string `json:"error"`
}
