package ports

import (
	"context"
	"time"

	"editorial/contexts/editorial/publications-service/domain/entities"
)

type PublicationFilter struct {
	AuthorID string
	Page     int
	Size     int
}

type PublicationPage struct {
	Items      []entities.Publication
	Page       int
	Size       int
	TotalItems int64
	TotalPages int
}

type PublicationRepository interface {
	CreatePublication(ctx context.Context, publication entities.Publication) error
	// UpdatePublication persists the publication only while its stored status
	// still equals expectedStatus, so concurrent status changes against the
	// same id are serialized by the store.
	UpdatePublication(ctx context.Context, publication entities.Publication, expectedStatus entities.PublicationStatus) error
	GetPublication(ctx context.Context, publicationID string) (entities.Publication, error)
	ListPublications(ctx context.Context, filter PublicationFilter) (PublicationPage, error)
}

type HistoryRepository interface {
	AppendStatusChange(ctx context.Context, item entities.StatusChange) error
	ListStatusChanges(ctx context.Context, publicationID string) ([]entities.StatusChange, error)
}

// AuthorGateway is the contract toward the external authors registry.
// Exists is a hard dependency during create; FetchSummary is best-effort
// during reads and its failure is observable but never fatal there.
type AuthorGateway interface {
	Exists(ctx context.Context, authorID string) (bool, error)
	FetchSummary(ctx context.Context, authorID string) (entities.AuthorSummary, error)
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}
