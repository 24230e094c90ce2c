package models

import "errors"

// Sentinel errors shared by both resources. Use errors.Is() to check these.
var (
	// ErrInvalidID indicates the identifier is not a well-formed store id.
	ErrInvalidID = errors.New("invalid id")

	// ErrNotFound indicates no record exists for the identifier.
	ErrNotFound = errors.New("not found")

	// ErrStorage indicates the store rejected or failed the operation.
	ErrStorage = errors.New("storage error")

	// ErrDecode indicates a stored document is missing or has a malformed field.
	ErrDecode = errors.New("malformed document")
)
