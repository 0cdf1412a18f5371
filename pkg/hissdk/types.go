package hissdk

import "time"

// ErrorResponse is the body of every error response: {"error": "..."}.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is returned by operations that only acknowledge success.
type MessageResponse struct {
	Message string `json:"message"`
}

// ============================================================================
// Program Types
// ============================================================================

// Program is a health program as listed by GET /api/programs.
type Program struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

// CreateProgramRequest is the body of POST /api/programs.
type CreateProgramRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

// CreateProgramResponse carries the id of a newly created program.
type CreateProgramResponse struct {
	ID int64 `json:"id"`
}

// ============================================================================
// Client Types
// ============================================================================

// ClientRecord is a registered client.
type ClientRecord struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// CreateClientRequest is the body of POST /api/clients.
type CreateClientRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// ClientProfile is a client together with the programs they are enrolled in.
type ClientProfile struct {
	ID        int64             `json:"id"`
	FirstName string            `json:"firstName"`
	LastName  string            `json:"lastName"`
	Email     string            `json:"email"`
	Programs  []EnrolledProgram `json:"programs"`
}

// EnrolledProgram is a program entry inside a ClientProfile.
type EnrolledProgram struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	EnrolledAt  time.Time `json:"enrolledAt"`
}

// EnrollRequest is the body of POST /api/clients/{id}/enroll.
type EnrollRequest struct {
	ProgramID int64 `json:"programId"`
}

// ClientSearch holds the field filters of GET /api/clients/search. Empty
// fields are ignored; set fields must all match.
type ClientSearch struct {
	FirstName string
	LastName  string
	Email     string
}

// ============================================================================
// Health Types
// ============================================================================

// HealthResponse represents the response structure for health check endpoints.
// Used by both /livez and /readyz endpoints (readyz includes additional Checks field).
type HealthResponse struct {
	// Status indicates the overall health status (e.g., "ok")
	Status string `json:"status"`

	// Uptime is the service uptime duration as a string (e.g., "1h23m45s")
	Uptime string `json:"uptime,omitempty"`

	// Version is the service version string
	Version string `json:"version,omitempty"`

	// Checks contains readiness check results (only for /readyz)
	Checks *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks represents the status of the service's dependencies.
type HealthChecks struct {
	Database string `json:"database"`
}
