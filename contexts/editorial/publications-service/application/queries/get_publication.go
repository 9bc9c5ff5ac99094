package queries

import (
	"context"
	"log/slog"
	"strings"

	application "editorial/contexts/editorial/publications-service/application"
	"editorial/contexts/editorial/publications-service/ports"
)

type GetPublicationUseCase struct {
	Publications ports.PublicationRepository
	Enricher     application.Enricher
	Logger       *slog.Logger
}

func (uc GetPublicationUseCase) Execute(ctx context.Context, publicationID string) (application.View, error) {
	publication, err := uc.Publications.GetPublication(ctx, strings.TrimSpace(publicationID))
	if err != nil {
		return application.View{}, err
	}
	return uc.Enricher.One(ctx, publication), nil
}
