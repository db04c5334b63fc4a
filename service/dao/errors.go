package dao

import "errors"

var (
	// ErrNotFound is returned when the requested record does not exist
	ErrNotFound = errors.New("dao: not found")

	// ErrInvalidID indicates an empty record id
	ErrInvalidID = errors.New("dao: invalid id")

	// ErrNilEntity is returned when saving a nil record
	ErrNilEntity = errors.New("dao: nil entity")
)
