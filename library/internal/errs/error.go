package errs

import (
	"errors"
)

var (
	ErrNotFound = errors.New("not found")
	// ErrReference is a foreign key violation.
	ErrReference = errors.New("referenced record does not exist or is still in use")
	ErrConflict  = errors.New("record already exists")
	ErrInvalid   = errors.New("invalid value")
)
