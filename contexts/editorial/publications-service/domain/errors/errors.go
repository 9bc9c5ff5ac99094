package errors

import "errors"

var (
	ErrPublicationNotFound      = errors.New("publication not found")
	ErrInvalidPublicationInput  = errors.New("invalid publication input")
	ErrInvalidTransition        = errors.New("invalid publication status transition")
	ErrEmptyContent             = errors.New("publication content cannot be empty")
	ErrMissingEditor            = errors.New("editor name is required for approval")
	ErrMissingRejectionReason   = errors.New("rejection reason is required")
	ErrMissingReviewComments    = errors.New("review comments are required when requesting changes")
	ErrAuthorNotFound           = errors.New("author not found")
	ErrAuthorServiceUnavailable = errors.New("authors service unavailable")
)
