package repository

import "errors"

// ErrNotFound is returned when a targeted row does not exist. Services
// translate it into a 404 response.
var ErrNotFound = errors.New("not found")
