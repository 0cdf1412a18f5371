package domain

import "time"

// Enrollment links a client to a program. Deleting either side cascades.
type Enrollment struct {
	ID         int64
	ClientID   int64
	ProgramID  int64
	EnrolledAt time.Time
}
