package entities

import (
	"strings"

	domainerrors "editorial/contexts/editorial/publications-service/domain/errors"
)

// transitionRules holds the content-readiness checks the workflow graph
// cannot express, keyed by target status. Published has no rule: any
// approved publication may be published.
var transitionRules = map[PublicationStatus]func(Publication) error{
	StatusInReview:        requireContent,
	StatusApproved:        requireEditor,
	StatusRejected:        requireRejectionReason,
	StatusRequiresChanges: requireReviewComments,
}

// ValidateTransition enforces the business rule for the target status.
// Callers check CanTransition first; this never re-checks graph legality.
func ValidateTransition(publication Publication, target PublicationStatus) error {
	rule, exists := transitionRules[target]
	if !exists {
		return nil
	}
	return rule(publication)
}

func requireContent(publication Publication) error {
	if !publication.HasContent() {
		return domainerrors.ErrEmptyContent
	}
	return nil
}

func requireEditor(publication Publication) error {
	if strings.TrimSpace(publication.EditorName) == "" {
		return domainerrors.ErrMissingEditor
	}
	return nil
}

func requireRejectionReason(publication Publication) error {
	if strings.TrimSpace(publication.RejectionReason) == "" {
		return domainerrors.ErrMissingRejectionReason
	}
	return nil
}

func requireReviewComments(publication Publication) error {
	if strings.TrimSpace(publication.ReviewComments) == "" {
		return domainerrors.ErrMissingReviewComments
	}
	return nil
}
