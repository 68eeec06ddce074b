package services

import "errors"

// Domain errors translated to status codes at the request boundary.
var (
	// ErrNotFound signals a missing entity (404).
	ErrNotFound = errors.New("not found")

	// ErrConflict signals a duplicate username on registration (400).
	ErrConflict = errors.New("already exists")

	// ErrBadReference signals a create referencing a missing row (400).
	ErrBadReference = errors.New("referenced entity does not exist")
)
