package model

import "errors"

var (
	// ErrPublicationNotFound covers both missing rows and soft-deleted ones.
	ErrPublicationNotFound = errors.New("publication not found")

	// ErrValidation marks structural input violations and author-existence
	// failures on create. Wrapped messages name the offending field.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidStatusTransition marks a lifecycle policy violation.
	// Wrapped messages name both the current and target states.
	ErrInvalidStatusTransition = errors.New("invalid status transition")
)

// ToErrorCode converts an error to its API error code.
func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrPublicationNotFound):
		return "PUBLICATION_NOT_FOUND"
	case errors.Is(err, ErrInvalidStatusTransition):
		return "INVALID_STATUS_TRANSITION"
	case errors.Is(err, ErrValidation):
		return "VALIDATION_FAILED"
	default:
		return "INTERNAL_ERROR"
	}
}

// ToHTTPStatus converts an error to an HTTP status code.
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrPublicationNotFound):
		return 404
	case errors.Is(err, ErrInvalidStatusTransition), errors.Is(err, ErrValidation):
		return 400
	default:
		return 500
	}
}
