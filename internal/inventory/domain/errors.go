package domain

import "errors"

var (
	// ErrNotFound is returned when an item or level does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidArgument is returned for empty batches, missing attributes
	// and values outside their allowed range.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrProductService is returned when the external product catalogue
	// answers with anything other than success or not-found.
	ErrProductService = errors.New("product service error")
)
