package interfaces

import "errors"

// Errors repositories return for failed conditional writes. Use cases translate them.
var (
	ErrAlreadyExists   = errors.New("item already exists")
	ErrVersionConflict = errors.New("item version conflict")
)
