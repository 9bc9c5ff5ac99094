package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"editorial/contexts/editorial/authors-service/application"
	"editorial/contexts/editorial/authors-service/domain/entities"
	httptransport "editorial/contexts/editorial/authors-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) CreateAuthorHandler(ctx context.Context, req httptransport.CreateAuthorRequest) (httptransport.AuthorDTO, error) {
	author, err := h.Service.CreateAuthor(ctx, application.CreateAuthorInput{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Biography:    req.Biography,
		Organization: req.Organization,
	})
	if err != nil {
		return httptransport.AuthorDTO{}, err
	}
	return mapAuthor(author), nil
}

func (h Handler) UpdateAuthorHandler(ctx context.Context, authorID string, req httptransport.UpdateAuthorRequest) (httptransport.AuthorDTO, error) {
	author, err := h.Service.UpdateAuthor(ctx, authorID, application.UpdateAuthorInput{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Biography:    req.Biography,
		Organization: req.Organization,
	})
	if err != nil {
		return httptransport.AuthorDTO{}, err
	}
	return mapAuthor(author), nil
}

func (h Handler) DeleteAuthorHandler(ctx context.Context, authorID string) error {
	return h.Service.DeactivateAuthor(ctx, authorID)
}

func (h Handler) GetAuthorHandler(ctx context.Context, authorID string) (httptransport.AuthorDTO, error) {
	author, err := h.Service.GetAuthor(ctx, authorID)
	if err != nil {
		return httptransport.AuthorDTO{}, err
	}
	return mapAuthor(author), nil
}

func (h Handler) ListAuthorsHandler(ctx context.Context, page int, size int) (httptransport.ListAuthorsResponse, error) {
	result, err := h.Service.ListAuthors(ctx, page, size)
	if err != nil {
		return httptransport.ListAuthorsResponse{}, err
	}
	items := make([]httptransport.AuthorDTO, 0, len(result.Items))
	for _, author := range result.Items {
		items = append(items, mapAuthor(author))
	}
	return httptransport.ListAuthorsResponse{
		Items:      items,
		Page:       result.Page,
		Size:       result.Size,
		TotalItems: result.TotalItems,
		TotalPages: result.TotalPages,
	}, nil
}

func (h Handler) AuthorExistsHandler(ctx context.Context, authorID string) (bool, error) {
	return h.Service.AuthorExists(ctx, authorID)
}

func mapAuthor(author entities.Author) httptransport.AuthorDTO {
	return httptransport.AuthorDTO{
		AuthorID:     author.AuthorID,
		FirstName:    author.FirstName,
		LastName:     author.LastName,
		FullName:     author.FullName(),
		Email:        author.Email,
		Biography:    author.Biography,
		Organization: author.Organization,
		Active:       author.Active,
		CreatedAt:    author.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    author.UpdatedAt.Format(time.RFC3339),
	}
}
