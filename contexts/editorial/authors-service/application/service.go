package application

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"editorial/contexts/editorial/authors-service/domain/entities"
	domainerrors "editorial/contexts/editorial/authors-service/domain/errors"
	"editorial/contexts/editorial/authors-service/ports"
)

type Service struct {
	Authors     ports.AuthorRepository
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

type CreateAuthorInput struct {
	FirstName    string
	LastName     string
	Email        string
	Biography    string
	Organization string
}

type UpdateAuthorInput struct {
	FirstName    string
	LastName     string
	Email        string
	Biography    string
	Organization string
}

func (s Service) CreateAuthor(ctx context.Context, input CreateAuthorInput) (entities.Author, error) {
	authorID, err := s.IDGenerator.NewID(ctx)
	if err != nil {
		return entities.Author{}, err
	}
	now := s.Clock.Now().UTC()
	author := entities.Author{
		AuthorID:     authorID,
		FirstName:    strings.TrimSpace(input.FirstName),
		LastName:     strings.TrimSpace(input.LastName),
		Email:        strings.TrimSpace(input.Email),
		Biography:    strings.TrimSpace(input.Biography),
		Organization: strings.TrimSpace(input.Organization),
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := author.Validate(); err != nil {
		return entities.Author{}, err
	}
	if err := s.Authors.CreateAuthor(ctx, author); err != nil {
		return entities.Author{}, err
	}
	ResolveLogger(s.Logger).InfoContext(
		ctx,
		"author_created",
		"event", "author_created",
		"module", "authors",
		"layer", "application",
		"author_id", author.AuthorID,
	)
	return author, nil
}

func (s Service) UpdateAuthor(ctx context.Context, authorID string, input UpdateAuthorInput) (entities.Author, error) {
	author, err := s.Authors.GetAuthor(ctx, strings.TrimSpace(authorID))
	if err != nil {
		return entities.Author{}, err
	}
	author.FirstName = strings.TrimSpace(input.FirstName)
	author.LastName = strings.TrimSpace(input.LastName)
	author.Email = strings.TrimSpace(input.Email)
	author.Biography = strings.TrimSpace(input.Biography)
	author.Organization = strings.TrimSpace(input.Organization)
	author.UpdatedAt = s.Clock.Now().UTC()
	if err := author.Validate(); err != nil {
		return entities.Author{}, err
	}
	if err := s.Authors.UpdateAuthor(ctx, author); err != nil {
		return entities.Author{}, err
	}
	ResolveLogger(s.Logger).InfoContext(
		ctx,
		"author_updated",
		"event", "author_updated",
		"module", "authors",
		"layer", "application",
		"author_id", author.AuthorID,
	)
	return author, nil
}

// DeactivateAuthor is the registry's delete: the record keeps serving
// lookups so publications created against it stay enrichable.
func (s Service) DeactivateAuthor(ctx context.Context, authorID string) error {
	author, err := s.Authors.GetAuthor(ctx, strings.TrimSpace(authorID))
	if err != nil {
		return err
	}
	author.Active = false
	author.UpdatedAt = s.Clock.Now().UTC()
	if err := s.Authors.UpdateAuthor(ctx, author); err != nil {
		return err
	}
	ResolveLogger(s.Logger).InfoContext(
		ctx,
		"author_deactivated",
		"event", "author_deactivated",
		"module", "authors",
		"layer", "application",
		"author_id", author.AuthorID,
	)
	return nil
}

func (s Service) GetAuthor(ctx context.Context, authorID string) (entities.Author, error) {
	return s.Authors.GetAuthor(ctx, strings.TrimSpace(authorID))
}

func (s Service) ListAuthors(ctx context.Context, page int, size int) (ports.AuthorPage, error) {
	return s.Authors.ListAuthors(ctx, page, size)
}

// AuthorExists backs the registry check publications run before
// accepting a new submission.
func (s Service) AuthorExists(ctx context.Context, authorID string) (bool, error) {
	_, err := s.Authors.GetAuthor(ctx, strings.TrimSpace(authorID))
	if err != nil {
		if errors.Is(err, domainerrors.ErrAuthorNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
