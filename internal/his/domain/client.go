package domain

import "time"

type Client struct {
	ID        int64
	FirstName string
	LastName  string
	Email     string // unique across clients
	CreatedAt time.Time
}

// ClientProfile is a client together with the programs they are enrolled in.
type ClientProfile struct {
	Client
	Programs []EnrolledProgram
}

// EnrolledProgram is a program as seen through one of a client's enrollments.
type EnrolledProgram struct {
	Program
	EnrolledAt time.Time
}

// ClientFilter narrows a client listing. All matching is a case-insensitive
// substring match; empty fields are ignored.
//
// Query matches any of first name, last name or email. The remaining fields
// must all match when set.
type ClientFilter struct {
	Query     string
	FirstName string
	LastName  string
	Email     string
}
