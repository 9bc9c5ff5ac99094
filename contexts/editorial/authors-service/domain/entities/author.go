package entities

import (
	"strings"
	"time"

	domainerrors "editorial/contexts/editorial/authors-service/domain/errors"
)

const (
	minNameLength         = 2
	maxNameLength         = 100
	maxBiographyLength    = 500
	maxOrganizationLength = 100
)

// Author is the registry record publications reference by AuthorID.
// Deletion is a soft operation: Active flips to false and the record
// stays readable, so existing publications keep their enrichment.
type Author struct {
	AuthorID     string
	FirstName    string
	LastName     string
	Email        string
	Biography    string
	Organization string
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (a Author) FullName() string {
	return strings.TrimSpace(a.FirstName + " " + a.LastName)
}

// Validate checks the shape rules for a registry record. It does not
// check uniqueness; that is the repository's concern.
func (a Author) Validate() error {
	if !nameLengthOK(a.FirstName) || !nameLengthOK(a.LastName) {
		return domainerrors.ErrInvalidAuthorInput
	}
	if !emailOK(a.Email) {
		return domainerrors.ErrInvalidAuthorInput
	}
	if len(a.Biography) > maxBiographyLength {
		return domainerrors.ErrInvalidAuthorInput
	}
	if len(a.Organization) > maxOrganizationLength {
		return domainerrors.ErrInvalidAuthorInput
	}
	return nil
}

func nameLengthOK(value string) bool {
	trimmed := strings.TrimSpace(value)
	return len(trimmed) >= minNameLength && len(trimmed) <= maxNameLength
}

// emailOK accepts local@domain with at least one dot in the domain.
func emailOK(value string) bool {
	trimmed := strings.TrimSpace(value)
	at := strings.Index(trimmed, "@")
	if at <= 0 || at == len(trimmed)-1 {
		return false
	}
	domain := trimmed[at+1:]
	if strings.Contains(domain, "@") {
		return false
	}
	dot := strings.LastIndex(domain, ".")
	return dot > 0 && dot < len(domain)-1
}
