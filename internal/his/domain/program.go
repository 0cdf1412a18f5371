package domain

import "time"

// Program is a named health initiative (e.g. TB, Malaria) clients can enroll in.
type Program struct {
	ID          int64
	Name        string
	Description *string // nil when no description was supplied
	CreatedAt   time.Time
}
