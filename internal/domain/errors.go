package domain

import "errors"

// ErrNotFound is returned by repo and store functions when the requested
// record does not exist.
// HTTP handlers should map this to 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned when input fails business rule validation
// (e.g. missing required field, coordinates out of range).
// HTTP handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrImport is returned when an import file cannot be parsed or does not
// carry the expected {trips, vehicles} shape. The store guarantees that no
// state change has happened when this error is returned.
var ErrImport = errors.New("invalid import file")
