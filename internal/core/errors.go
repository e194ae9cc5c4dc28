package core

import "errors"

// Service-level sentinel errors. Handlers map these to HTTP statuses.
var (
	// ErrValidation marks a request rejected before touching any provider.
	ErrValidation = errors.New("validation error")

	// ErrInvalidToken is returned for any token verification failure;
	// malformed, expired and revoked tokens are not distinguished.
	ErrInvalidToken = errors.New("invalid authentication token")

	// ErrUserNotFound is returned when a profile mirror is missing.
	ErrUserNotFound = errors.New("user not found")

	// ErrDesignNotFound is returned when a design document does not exist.
	ErrDesignNotFound = errors.New("design not found")

	// ErrForbidden is returned when the caller does not own the design.
	ErrForbidden = errors.New("forbidden")

	// ErrTemplateNotFound is returned for an unknown room template ID.
	ErrTemplateNotFound = errors.New("room template not found")

	// ErrCatalogItemNotFound is returned for an unknown catalog item ID.
	ErrCatalogItemNotFound = errors.New("catalog item not found")
)
