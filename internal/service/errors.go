package service

import "errors"

// Error kinds surfaced by the services. The HTTP layer maps them to status
// codes with errors.Is; everything else is a 500.
var (
	ErrNotFound   = errors.New("not found")
	ErrBadRequest = errors.New("bad request")
	ErrForbidden  = errors.New("forbidden")
	ErrConflict   = errors.New("conflict")
)
