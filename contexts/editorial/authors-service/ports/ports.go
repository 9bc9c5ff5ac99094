package ports

import (
	"context"
	"time"

	"editorial/contexts/editorial/authors-service/domain/entities"
)

type AuthorPage struct {
	Items      []entities.Author
	Page       int
	Size       int
	TotalItems int64
	TotalPages int
}

type AuthorRepository interface {
	CreateAuthor(ctx context.Context, author entities.Author) error
	UpdateAuthor(ctx context.Context, author entities.Author) error
	GetAuthor(ctx context.Context, authorID string) (entities.Author, error)
	ListAuthors(ctx context.Context, page int, size int) (AuthorPage, error)
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}
