package model

import "errors"

var (
	// ErrNotFound is returned when a row does not exist or an ownership
	// filter matched nothing.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate is returned on a unique constraint violation.
	ErrDuplicate = errors.New("already exists")
	// ErrInvalidCredentials is returned when login verification fails.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrEmptyField is returned when a required field is empty after
	// trimming.
	ErrEmptyField = errors.New("required field is empty")
)
