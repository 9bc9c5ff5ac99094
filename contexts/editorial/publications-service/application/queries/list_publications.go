package queries

import (
	"context"
	"log/slog"
	"strings"

	application "editorial/contexts/editorial/publications-service/application"
	"editorial/contexts/editorial/publications-service/ports"
)

type ListPublicationsQuery struct {
	AuthorID string
	Page     int
	Size     int
}

type ListPublicationsResult struct {
	Items      []application.View
	Page       int
	Size       int
	TotalItems int64
	TotalPages int
}

type ListPublicationsUseCase struct {
	Publications ports.PublicationRepository
	Enricher     application.Enricher
	Logger       *slog.Logger
}

func (uc ListPublicationsUseCase) Execute(ctx context.Context, query ListPublicationsQuery) (ListPublicationsResult, error) {
	logger := application.ResolveLogger(uc.Logger)
	page, err := uc.Publications.ListPublications(ctx, ports.PublicationFilter{
		AuthorID: strings.TrimSpace(query.AuthorID),
		Page:     query.Page,
		Size:     query.Size,
	})
	if err != nil {
		return ListPublicationsResult{}, err
	}

	logger.Info("publications listed",
		"event", "publications_listed",
		"module", "editorial/publications-service",
		"layer", "application",
		"count", len(page.Items),
		"total_items", page.TotalItems,
	)
	return ListPublicationsResult{
		Items:      uc.Enricher.Page(ctx, page.Items),
		Page:       page.Page,
		Size:       page.Size,
		TotalItems: page.TotalItems,
		TotalPages: page.TotalPages,
	}, nil
}
