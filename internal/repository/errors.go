package repository

import "errors"

var (
	// ErrInvalidID reports an identifier that is not a valid ObjectID hex.
	ErrInvalidID = errors.New("invalid id")
	// ErrNotFound reports that no document matched the given identifier.
	ErrNotFound = errors.New("not found")
	// ErrNoUpdate reports an update request with no fields to change.
	ErrNoUpdate = errors.New("no data to update")
	// ErrDuplicate reports a uniqueness conflict, such as a reused email.
	ErrDuplicate = errors.New("already exists")
)
