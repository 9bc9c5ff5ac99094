package entities

import (
	"strings"
	"time"
)

type PublicationStatus string

const (
	StatusDraft           PublicationStatus = "draft"
	StatusInReview        PublicationStatus = "in_review"
	StatusApproved        PublicationStatus = "approved"
	StatusPublished       PublicationStatus = "published"
	StatusRejected        PublicationStatus = "rejected"
	StatusRequiresChanges PublicationStatus = "requires_changes"
)

// allowedTransitions is the single source of truth for the review workflow.
// Published and rejected have no outgoing edges.
var allowedTransitions = map[PublicationStatus][]PublicationStatus{
	StatusDraft:           {StatusInReview},
	StatusInReview:        {StatusApproved, StatusRejected, StatusRequiresChanges},
	StatusRequiresChanges: {StatusInReview},
	StatusApproved:        {StatusPublished},
	StatusPublished:       {},
	StatusRejected:        {},
}

type Publication struct {
	PublicationID   string
	Title           string
	Content         string
	AuthorID        string
	Status          PublicationStatus
	ReviewComments  string
	EditorName      string
	RejectionReason string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// CanTransition reports whether the workflow graph allows moving from one
// status to another. Unknown statuses and self transitions are not edges.
func CanTransition(from PublicationStatus, to PublicationStatus) bool {
	targets, known := allowedTransitions[from]
	if !known {
		return false
	}
	for _, target := range targets {
		if target == to {
			return true
		}
	}
	return false
}

func IsSupportedStatus(value PublicationStatus) bool {
	_, known := allowedTransitions[value]
	return known
}

// IsTerminal reports whether a status has no outgoing transitions.
func IsTerminal(status PublicationStatus) bool {
	targets, known := allowedTransitions[status]
	return known && len(targets) == 0
}

func (p Publication) HasContent() bool {
	return strings.TrimSpace(p.Content) != ""
}
