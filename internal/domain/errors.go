package domain

import "errors"

var (
	// ErrNotFound signals a missing resource.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists signals a duplicate resource.
	ErrAlreadyExists = errors.New("already exists")
	// ErrInvalidQuery signals a query that cannot be processed.
	ErrInvalidQuery = errors.New("invalid query")
	// ErrSpamQuery signals a query rejected by the spam filter.
	ErrSpamQuery = errors.New("spam query")
	// ErrSourceUnavailable signals that the storefront backend is unreachable.
	ErrSourceUnavailable = errors.New("product source unavailable")
)
