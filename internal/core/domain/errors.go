package domain

import "errors"

// Error taxonomy shared by every layer. Callers classify with errors.Is;
// anything that matches none of these sentinels is treated as internal.
var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrForbidden       = errors.New("forbidden")
	// ErrConflict is reserved for optimistic locking and not returned today.
	ErrConflict = errors.New("conflict")
	ErrInternal = errors.New("internal error")
)
