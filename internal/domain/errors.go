package domain

import "errors"

// ErrNotFound is returned when a referenced record does not exist, including
// a measurement that names an unknown user. Handlers translate it into an
// HTTP 404 response.
var ErrNotFound = errors.New("not found")

// ErrConflict is returned when a write collides with existing state, such as
// registering an email address that is already taken. Handlers translate it
// into an HTTP 409 response.
var ErrConflict = errors.New("conflict")
