package db

import "errors"

// Domain-level database error sentinels.
var (
	// Resource errors
	ErrResourceNotFound    = errors.New("resource not found")
	ErrResourceUnavailable = errors.New("resource has already been requested")

	// User errors
	ErrUserNotFound   = errors.New("user not found")
	ErrDuplicateEmail = errors.New("email already registered")
)
