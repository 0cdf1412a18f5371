package service

import "errors"

var (
	ErrInvalidProgram    = errors.New("program name cannot be empty")
	ErrInvalidClient     = errors.New("invalid client data")
	ErrClientNotFound    = errors.New("client not found")
	ErrDuplicateEmail    = errors.New("a client with this email already exists")
	ErrInvalidEnrollment = errors.New("invalid enrollment")
)
